package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/techstore/techstore-cli/internal/adapters/address"
	"github.com/techstore/techstore-cli/internal/application"
	"github.com/techstore/techstore-cli/internal/domain"
)

var ErrNoRenderContext = errors.New("render context limit reached")

const browseRefreshInterval = 100 * time.Millisecond

func newBrowseCmd(app *app) *cobra.Command {
	var link string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			consumerID := uuid.NewString()
			if !app.leases.Request(consumerID) {
				return ErrNoRenderContext
			}
			defer app.leases.Release(consumerID)

			bar := address.NewBarFromLink(link)

			filters, err := application.NewFilterService(cmd.Context(), app.catalog, bar, app.debounce)
			if err != nil {
				return err
			}
			defer filters.Stop()

			carts := application.NewCartService(app.cartStore, app.catalog)
			carts.Hydrate(cmd.Context())

			m := newBrowseModel(cmd.Context(), app, bar, filters, carts)

			p := tea.NewProgram(
				m,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithContext(cmd.Context()),
			)

			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			result, ok := finalModel.(browseModel)
			if !ok {
				return fmt.Errorf("unexpected final browse model type %T", finalModel)
			}

			return result.err
		},
	}

	cmd.Flags().StringVar(&link, "link", "", "Shareable link to start from")

	return cmd
}

type browseRefreshMsg struct{}

type browseModel struct {
	ctx     context.Context
	app     *app
	bar     *address.Bar
	filters *application.FilterService
	carts   *application.CartService

	search  textinput.Model
	visible []domain.Product
	cursor  int
	err     error

	styles browseStyles
}

type browseStyles struct {
	title    lipgloss.Style
	selected lipgloss.Style
	dim      lipgloss.Style
	footer   lipgloss.Style
}

func newBrowseStyles() browseStyles {
	return browseStyles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
	}
}

func newBrowseModel(ctx context.Context, app *app, bar *address.Bar, filters *application.FilterService, carts *application.CartService) browseModel {
	search := textinput.New()
	search.Placeholder = "Search products..."
	search.SetValue(filters.State().SearchQuery)
	search.Focus()

	return browseModel{
		ctx:     ctx,
		app:     app,
		bar:     bar,
		filters: filters,
		carts:   carts,
		search:  search,
		styles:  newBrowseStyles(),
	}
}

func browseRefreshTick() tea.Cmd {
	return tea.Tick(browseRefreshInterval, func(time.Time) tea.Msg {
		return browseRefreshMsg{}
	})
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return browseRefreshMsg{} })
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case browseRefreshMsg:
		visible, err := m.filters.Visible(m.ctx)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.visible = visible
		if m.cursor >= len(m.visible) {
			m.cursor = max(0, len(m.visible)-1)
		}
		return m, browseRefreshTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if m.cursor < len(m.visible) {
				m.carts.Add(m.ctx, m.visible[m.cursor])
			}
			return m, nil
		case "tab":
			m.filters.SetCategory(nextCategory(m.filters.State().SelectedCategory))
			return m, nil
		case "ctrl+r":
			m.filters.Reset()
			m.search.SetValue("")
			return m, nil
		}

		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.filters.SearchInput(m.search.Value())
		return m, cmd

	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
}

func (m browseModel) View() string {
	out := m.styles.title.Render("TechStore") + "\n\n"
	out += m.search.View() + "\n\n"

	category := string(m.filters.State().SelectedCategory)
	if category == "" {
		category = "all"
	}
	out += m.styles.dim.Render(fmt.Sprintf("category: %s  •  %d products", category, len(m.visible))) + "\n\n"

	if len(m.visible) == 0 {
		out += m.styles.dim.Render("No products match the current filters.") + "\n"
	}

	for i, product := range m.visible {
		line := fmt.Sprintf("%s  $%.2f", product.Name, product.Price)
		if !product.InStock {
			line += "  (out of stock)"
		}
		if i == m.cursor {
			out += m.styles.selected.Render("> "+line) + "\n"
		} else {
			out += "  " + line + "\n"
		}
	}

	out += "\n" + m.styles.footer.Render(fmt.Sprintf(
		"cart: %d items  $%.2f  •  %s",
		m.carts.TotalItems(), m.carts.TotalPrice(), m.bar.Link(m.app.shareBase),
	)) + "\n"
	out += m.styles.dim.Render("enter add to cart  •  tab cycle category  •  ctrl+r reset  •  esc quit") + "\n"

	return out
}

// nextCategory cycles all -> phones -> laptops -> headphones -> cameras -> all.
func nextCategory(current domain.Category) domain.Category {
	order := []domain.Category{
		"",
		domain.CategoryPhones,
		domain.CategoryLaptops,
		domain.CategoryHeadphones,
		domain.CategoryCameras,
	}
	for i, category := range order {
		if category == current {
			return order[(i+1)%len(order)]
		}
	}
	return ""
}
