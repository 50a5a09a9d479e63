package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/techstore/techstore-cli/internal/adapters/render/listing"
	"github.com/techstore/techstore-cli/internal/application"
	"github.com/techstore/techstore-cli/internal/domain"
)

func newCartCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the persisted shopping cart",
	}

	cmd.AddCommand(
		newCartAddCmd(app),
		newCartRemoveCmd(app),
		newCartSetCmd(app),
		newCartClearCmd(app),
		newCartStatusCmd(app),
	)

	return cmd
}

func newCartAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add one unit of a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ProductID(args[0])

			product, err := app.catalog.GetByID(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get product %q: %w", id, err)
			}

			carts := application.NewCartService(app.cartStore, app.catalog)
			carts.Hydrate(cmd.Context())
			carts.Add(cmd.Context(), product)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s to cart\n", product.Name)
			return nil
		},
	}
}

func newCartRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ProductID(args[0])

			carts := application.NewCartService(app.cartStore, app.catalog)
			carts.Hydrate(cmd.Context())
			carts.Remove(cmd.Context(), id)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from cart\n", id)
			return nil
		},
	}
}

func newCartSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <product-id> <quantity>",
		Short: "Set the quantity for a product (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ProductID(args[0])

			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse quantity %q: %w", args[1], err)
			}

			carts := application.NewCartService(app.cartStore, app.catalog)
			carts.Hydrate(cmd.Context())
			carts.SetQuantity(cmd.Context(), id, quantity)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s quantity to %d\n", id, quantity)
			return nil
		},
	}
}

func newCartClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every line from the cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			carts := application.NewCartService(app.cartStore, app.catalog)
			carts.Hydrate(cmd.Context())
			carts.Clear(cmd.Context())

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			return nil
		},
	}
}

func newCartStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the cart contents and totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			carts := application.NewCartService(app.cartStore, app.catalog)
			carts.Hydrate(cmd.Context())

			out := listing.RenderCart(carts.Lines(), carts.TotalItems(), carts.TotalPrice())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
