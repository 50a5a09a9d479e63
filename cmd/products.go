package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/techstore/techstore-cli/internal/adapters/address"
	"github.com/techstore/techstore-cli/internal/adapters/render/listing"
	"github.com/techstore/techstore-cli/internal/application"
	"github.com/techstore/techstore-cli/internal/domain"
)

func newProductsCmd(app *app) *cobra.Command {
	var link string
	var search string
	var category string
	var minPrice float64
	var maxPrice float64
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products matching the active filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bar := address.NewBarFromLink(link)

			filters, err := application.NewFilterService(cmd.Context(), app.catalog, bar, 0)
			if err != nil {
				return err
			}
			defer filters.Stop()

			if cmd.Flags().Changed("search") {
				filters.SetSearch(search)
			}
			if cmd.Flags().Changed("category") {
				selected, err := resolveCategory(category)
				if err != nil {
					return err
				}
				filters.SetCategory(selected)
			}
			if cmd.Flags().Changed("min-price") || cmd.Flags().Changed("max-price") {
				rng := filters.State().PriceRange
				if cmd.Flags().Changed("min-price") {
					rng.Min = minPrice
				}
				if cmd.Flags().Changed("max-price") {
					rng.Max = maxPrice
				}
				filters.SetPriceRange(rng.Min, rng.Max)
			}

			visible, err := filters.Visible(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				encoded, err := json.MarshalIndent(visible, "", "  ")
				if err != nil {
					return fmt.Errorf("encode products: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			}

			out := listing.RenderProducts(visible, listing.ProductsOptions{
				ShareLink: bar.Link(app.shareBase),
			})
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&link, "link", "", "Shareable link to start from")
	cmd.Flags().StringVar(&search, "search", "", "Search query matched against name and description")
	cmd.Flags().StringVar(&category, "category", "", "Category filter (phones|laptops|headphones|cameras, empty for all)")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "Lower price bound")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "Upper price bound")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the matching products as JSON")

	return cmd
}

// resolveCategory maps the flag value to a category. Unlike address
// decoding, an unknown token on the command line is an explicit user error
// and is reported rather than silently defaulted.
func resolveCategory(raw string) (domain.Category, error) {
	if raw == "" {
		return "", nil
	}
	category, ok := domain.ParseCategory(raw)
	if !ok {
		return "", fmt.Errorf("unknown category %q", raw)
	}
	return category, nil
}
