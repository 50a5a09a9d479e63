package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/techstore/techstore-cli/internal/adapters/render/listing"
	"github.com/techstore/techstore-cli/internal/domain"
)

func newProductCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show details and reviews for one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ProductID(args[0])

			product, err := app.catalog.GetByID(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get product %q: %w", id, err)
			}

			reviews, err := app.catalog.GetReviews(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get reviews for %q: %w", id, err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), listing.RenderProductDetail(product, reviews))
			return nil
		},
	}
}
