// Package listing renders storefront views for the terminal.
package listing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/techstore/techstore-cli/internal/domain"
)

type ProductsOptions struct {
	ShareLink string
}

func RenderProducts(products []domain.Product, opts ProductsOptions) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Products"),
		s.header.Render(fmt.Sprintf("matching: %d", len(products))),
	}

	if len(products) == 0 {
		lines = append(lines, s.empty.Render("No products match the current filters."))
	}

	for _, product := range products {
		lines = append(lines, s.section.Render(renderProductLine(product, s)))
	}

	if opts.ShareLink != "" {
		lines = append(lines, s.section.Render(s.header.Render("share: ")+s.link.Render(opts.ShareLink)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProductLine(product domain.Product, s styles) string {
	parts := []string{
		s.name.Render(product.Name) + s.meta.Render(fmt.Sprintf(" (%s)", product.ID)),
		s.meta.Render(string(product.Category)) + "  " + s.price.Render(formatMoney(product.Price)) + "  " + s.meta.Render(ratingLabel(product)),
	}

	if !product.InStock {
		parts = append(parts, s.outOfStock.Render("out of stock"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func RenderProductDetail(product domain.Product, reviews []domain.Review) string {
	s := newStyles()

	lines := []string{
		s.title.Render(product.Name),
		s.meta.Render(string(product.Category)) + "  " + s.price.Render(formatMoney(product.Price)),
		s.review.Render(product.Description),
	}

	if !product.InStock {
		lines = append(lines, s.outOfStock.Render("out of stock"))
	}

	if len(product.Specs) > 0 {
		specs := []string{s.header.Render("Specs")}
		for _, key := range sortedKeys(product.Specs) {
			specs = append(specs, s.meta.Render(key+": ")+s.review.Render(product.Specs[key]))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, specs...)))
	}

	if len(reviews) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("No reviews yet.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	header := s.header.Render(fmt.Sprintf("Reviews (%d)", len(reviews)))
	parts := []string{header}
	for _, review := range reviews {
		parts = append(parts, renderReview(review, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderReview(review domain.Review, s styles) string {
	meta := fmt.Sprintf("%s  %s", review.UserName, strings.Repeat("★", review.Rating)+strings.Repeat("☆", 5-review.Rating))
	if review.VerifiedPurchase {
		meta += "  verified"
	}
	if !review.Date.IsZero() {
		meta += "  " + review.Date.Format("2006-01-02")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.reviewMeta.Render(meta),
		s.review.Render(review.Comment),
	)
}

func RenderCart(lines []domain.CartLine, totalItems int, totalPrice float64) string {
	s := newStyles()

	out := []string{s.title.Render("Cart")}

	if len(lines) == 0 {
		out = append(out, s.empty.Render("Your cart is empty."))
		return lipgloss.JoinVertical(lipgloss.Left, out...)
	}

	for _, line := range lines {
		out = append(out, lipgloss.JoinVertical(lipgloss.Left,
			s.name.Render(line.Product.Name)+s.meta.Render(fmt.Sprintf(" (%s)", line.Product.ID)),
			s.meta.Render(fmt.Sprintf("%d × ", line.Quantity))+s.price.Render(formatMoney(line.Product.Price)),
		))
	}

	out = append(out, s.section.Render(
		s.total.Render(fmt.Sprintf("%d items  %s", totalItems, formatMoney(totalPrice))),
	))

	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func RenderCategories(categories []domain.CategoryInfo, counts map[domain.Category]int) string {
	s := newStyles()

	lines := []string{s.title.Render("Categories")}
	for _, category := range categories {
		lines = append(lines,
			s.name.Render(category.Name)+s.meta.Render(fmt.Sprintf("  %s  %d products", category.ID, counts[category.ID])),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func ratingLabel(product domain.Product) string {
	if product.ReviewCount == 0 {
		return "no reviews"
	}
	return fmt.Sprintf("%.1f★ (%d)", product.Rating, product.ReviewCount)
}

func formatMoney(value float64) string {
	return fmt.Sprintf("$%.2f", value)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
