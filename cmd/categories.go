package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/techstore/techstore-cli/internal/adapters/render/listing"
	"github.com/techstore/techstore-cli/internal/domain"
)

func newCategoriesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, err := app.catalog.GetCategories(cmd.Context())
			if err != nil {
				return err
			}

			products, err := app.catalog.GetAll(cmd.Context())
			if err != nil {
				return err
			}

			counts := make(map[domain.Category]int, len(categories))
			for _, product := range products {
				counts[product.Category]++
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), listing.RenderCategories(categories, counts))
			return nil
		},
	}
}
