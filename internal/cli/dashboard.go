package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/etabo/mifugo-connect/internal/market"
	"github.com/etabo/mifugo-connect/internal/query"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the market terminal dashboard",
	Long: `Open the market terminal dashboard: the benchmark Goat price trend at
Lodwar and the latest network updates across all hubs.

Press q or Ctrl+C to leave.`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if _, err := tea.NewProgram(newDashboardModel()).Run(); err != nil {
		return fmt.Errorf("dashboard UI error: %w", err)
	}
	return nil
}

// The dashboard chart mirrors the terminal's benchmark: Goat at Lodwar,
// last seven observations.
const (
	chartAnimal = market.AnimalGoat
	chartMarket = market.MarketLodwar
	chartWindow = 7
	tableLimit  = 10
	barWidth    = 32
)

// dashboardModel is the bubbletea model for the market dashboard.
type dashboardModel struct {
	theme Theme
	width int
}

func newDashboardModel() dashboardModel {
	return dashboardModel{theme: defaultTheme, width: 80}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m dashboardModel) View() tea.View {
	return tea.NewView(m.renderContent())
}

func (m dashboardModel) renderContent() string {
	records := store.List()

	var b strings.Builder
	b.WriteString(m.theme.accentStyle().Render("Market Terminal") +
		m.theme.hintStyle().Render(fmt.Sprintf("  ·  Lodwar Regional Hub  ·  %d records", len(records))) + "\n\n")

	b.WriteString(m.renderChart(records))
	b.WriteString("\n")
	b.WriteString(m.renderTable(records))
	b.WriteString("\n" + m.theme.hintStyle().Render("q to quit") + "\n")
	return b.String()
}

// renderChart draws the benchmark trend as horizontal bars scaled to the
// window's maximum price.
func (m dashboardModel) renderChart(records []market.Record) string {
	points := market.SelectTrend(records, chartAnimal, chartMarket, chartWindow)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s Price Trend (%s - Last %d Entries)\n",
		chartAnimal, chartMarket, chartWindow))

	if len(points) == 0 {
		b.WriteString(m.theme.hintStyle().Render("  no data") + "\n")
		return b.String()
	}

	maxPrice := points[0].Price
	for _, p := range points {
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
	}

	for _, p := range points {
		n := p.Price * barWidth / maxPrice
		if n < 1 {
			n = 1
		}
		bar := m.theme.barStyle().Render(strings.Repeat("█", n))
		b.WriteString(fmt.Sprintf("  %s  %s %s\n", p.Date, bar, query.FormatPrice(p.Price)))
	}
	return b.String()
}

// renderTable lists the most recent records across all hubs.
func (m dashboardModel) renderTable(records []market.Record) string {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	if len(records) > tableLimit {
		records = records[:tableLimit]
	}

	var b strings.Builder
	b.WriteString("Latest Network Updates\n")
	b.WriteString(m.theme.hintStyle().Render(
		fmt.Sprintf("  %-10s  %-8s  %-9s  %10s  %-6s", "DATE", "ANIMAL", "MARKET", "PRICE", "DEMAND")) + "\n")
	for _, r := range records {
		b.WriteString(fmt.Sprintf("  %-10s  %-8s  %-9s  %10s  %-6s\n",
			r.Date.Format(market.DateLayout), r.Animal, r.Market,
			query.FormatPrice(r.Price), r.Demand))
	}
	return b.String()
}
