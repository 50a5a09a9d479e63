package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "techstore",
		Short:         "TechStore storefront CLI: browse, filter, and manage your cart",
		Long:          "techstore lets you browse the product catalog, filter it through a shareable link, manage a locally persisted cart, and preview products in the interactive browser.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newProductsCmd(app),
		newProductCmd(app),
		newCategoriesCmd(app),
		newCartCmd(app),
		newBrowseCmd(app),
		newViewerCmd(app),
	)

	return rootCmd
}
