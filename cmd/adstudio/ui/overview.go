package ui

import (
	"fmt"
	"strings"

	"adstudio/internal/catalog"
	"adstudio/internal/qa"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// OverviewModel renders the dashboard's landing tab: stat cards, the
// weekly output chart, platform rollups, quality tallies, and the export
// listing. Everything is derived from the fixture catalogue once.
type OverviewModel struct {
	viewport viewport.Model
	data     *catalog.SampleData
	styles   Styles
	width    int
	height   int
}

// NewOverviewModel creates the overview tab over the given catalogue.
func NewOverviewModel(data *catalog.SampleData, styles Styles) OverviewModel {
	vp := viewport.New(80, 20)
	m := OverviewModel{viewport: vp, data: data, styles: styles}
	m.refresh()
	return m
}

// SetSize resizes the tab's viewport.
func (m *OverviewModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.refresh()
}

// Update handles scrolling.
func (m OverviewModel) Update(msg tea.Msg) (OverviewModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the tab.
func (m OverviewModel) View() string {
	return m.viewport.View()
}

func (m *OverviewModel) refresh() {
	var sb strings.Builder

	sb.WriteString(m.statCards())
	sb.WriteString("\n\n")
	sb.WriteString(m.weeklyChart())
	sb.WriteString("\n")
	sb.WriteString(m.rollupTable())
	sb.WriteString("\n")
	sb.WriteString(m.qualityAndExports())

	m.viewport.SetContent(sb.String())
}

// statCards summarizes record counts by lifecycle state.
func (m *OverviewModel) statCards() string {
	ready := len(catalog.ByStatus(m.data.Ads, catalog.FilterStatus(catalog.StatusReady))) +
		len(catalog.ByStatus(m.data.Scripts, catalog.FilterStatus(catalog.StatusReady)))
	review := len(catalog.ByStatus(m.data.Ads, catalog.FilterStatus(catalog.StatusReview))) +
		len(catalog.ByStatus(m.data.Scripts, catalog.FilterStatus(catalog.StatusReview)))

	cards := []struct {
		label string
		value string
	}{
		{"Ad Variations", fmt.Sprintf("%d", len(m.data.Ads))},
		{"UGC Scripts", fmt.Sprintf("%d", len(m.data.Scripts))},
		{"Ready to Ship", fmt.Sprintf("%d", ready)},
		{"In Review", fmt.Sprintf("%d", review)},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render(c.value),
			m.styles.Muted.Render(c.label),
		)
		rendered = append(rendered, m.styles.StatCard.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// weeklyChart draws the output history as horizontal bars, ads and
// scripts stacked per week.
func (m *OverviewModel) weeklyChart() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Weekly Output"))
	sb.WriteString("\n")

	maxTotal := 1
	for _, w := range m.data.Weekly {
		if t := w.Ads + w.Scripts; t > maxTotal {
			maxTotal = t
		}
	}

	barSpace := 36
	adBar := lipgloss.NewStyle().Foreground(m.styles.Theme.Primary)
	scBar := lipgloss.NewStyle().Foreground(m.styles.Theme.Accent)
	for _, w := range m.data.Weekly {
		adLen := w.Ads * barSpace / maxTotal
		scLen := w.Scripts * barSpace / maxTotal
		sb.WriteString(fmt.Sprintf("%-7s %s%s %s\n",
			w.Week,
			adBar.Render(strings.Repeat("█", adLen)),
			scBar.Render(strings.Repeat("█", scLen)),
			m.styles.Muted.Render(fmt.Sprintf("%d ads · %d scripts", w.Ads, w.Scripts)),
		))
	}
	sb.WriteString(m.styles.Muted.Render("        ■ ads  ■ scripts"))
	sb.WriteString("\n")
	return sb.String()
}

func (m *OverviewModel) rollupTable() string {
	t := NewSimpleTable("Platforms", "Platform", "Campaigns", "Ad Sets", "Ads", "Reach", "Budget/mo", "Ready")
	for _, r := range m.data.Rollups {
		t.AddRow(
			r.Platform.Label(),
			fmt.Sprintf("%d", r.Campaigns),
			fmt.Sprintf("%d", r.AdSets),
			fmt.Sprintf("%d", r.Ads),
			formatReach(r.Reach),
			fmt.Sprintf("$%.0f", r.Budget),
			fmt.Sprintf("%d%%", r.ReadyPct),
		)
	}
	return t.View(m.styles)
}

func (m *OverviewModel) qualityAndExports() string {
	// Live tallies for the checks qa implements, authored tallies for the
	// rest (tone match has no mechanical check).
	live := qa.Summarize(m.data.Ads)
	qt := NewSimpleTable("Quality Checks", "Check", "Passed", "Failed")
	for _, tally := range live {
		qt.AddRow(tally.Check, fmt.Sprintf("%d", tally.Passed), fmt.Sprintf("%d", tally.Failed))
	}
	for _, tally := range m.data.Quality {
		if tally.Check == "Character limits" || tally.Check == "CTA present" {
			continue
		}
		qt.AddRow(tally.Check, fmt.Sprintf("%d", tally.Passed), fmt.Sprintf("%d", tally.Failed))
	}

	et := NewSimpleTable("Recent Exports", "File", "Format", "Records", "Created")
	for _, f := range m.data.Exports {
		et.AddRow(f.Name, f.Format, fmt.Sprintf("%d", f.Records), f.Created)
	}

	return qt.View(m.styles) + "\n" + et.View(m.styles)
}

func formatReach(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}
