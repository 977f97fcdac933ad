package ui

import (
	"strings"

	"adstudio/internal/catalog"

	tea "github.com/charmbracelet/bubbletea"
)

// DashboardTab identifies one tab of the dashboard page.
type DashboardTab int

const (
	TabOverview DashboardTab = iota
	TabAds
	TabScripts
	TabBoard
)

var tabTitles = []string{"Overview", "Ad Copy", "UGC Scripts", "Script Board"}

// DashboardModel composes the dashboard tabs over one shared catalogue.
type DashboardModel struct {
	tab      DashboardTab
	overview OverviewModel
	ads      GalleryModel
	scripts  GalleryModel
	board    BoardPageModel
	styles   Styles
	width    int
	height   int
}

// NewDashboardModel builds the dashboard over the catalogue.
func NewDashboardModel(data *catalog.SampleData, styles Styles) DashboardModel {
	return DashboardModel{
		overview: NewOverviewModel(data, styles),
		ads:      NewAdsGallery(data.Ads, styles),
		scripts:  NewScriptsGallery(data.Scripts, styles),
		board:    NewBoardPageModel(data.Scripts, styles),
		styles:   styles,
	}
}

// Tab returns the active tab.
func (m DashboardModel) Tab() DashboardTab { return m.tab }

// InOverlay reports whether a gallery detail overlay is open, so the app
// keeps esc for closing it rather than page navigation.
func (m DashboardModel) InOverlay() bool {
	return m.ads.ShowingDetail() || m.scripts.ShowingDetail()
}

// Busy reports whether the board is mid pick-up.
func (m DashboardModel) Busy() bool { return m.board.Holding() }

// SetSize propagates the drawable area to every tab.
func (m *DashboardModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	inner := h - TabBarHeight
	m.overview.SetSize(w, inner)
	m.ads.SetSize(w, inner)
	m.scripts.SetSize(w, inner)
	m.board.SetSize(w, inner)
}

// Update routes messages to the active tab. Left/right switch tabs when
// nothing is focused on finer-grained input.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			if !m.InOverlay() && !m.Busy() {
				m.tab = (m.tab + 1) % DashboardTab(len(tabTitles))
				return m, nil
			}
		case "shift+tab":
			if !m.InOverlay() && !m.Busy() {
				m.tab = (m.tab + DashboardTab(len(tabTitles)) - 1) % DashboardTab(len(tabTitles))
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.tab {
	case TabOverview:
		m.overview, cmd = m.overview.Update(msg)
	case TabAds:
		m.ads, cmd = m.ads.Update(msg)
	case TabScripts:
		m.scripts, cmd = m.scripts.Update(msg)
	case TabBoard:
		m.board, cmd = m.board.Update(msg)
	}
	return m, cmd
}

// View renders the tab bar and the active tab.
func (m DashboardModel) View() string {
	var sb strings.Builder

	parts := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		style := m.styles.Tab
		if DashboardTab(i) == m.tab {
			style = m.styles.TabActive
		}
		parts = append(parts, style.Render(title))
	}
	sb.WriteString(strings.Join(parts, ""))
	sb.WriteString("\n\n")

	switch m.tab {
	case TabOverview:
		sb.WriteString(m.overview.View())
	case TabAds:
		sb.WriteString(m.ads.View())
	case TabScripts:
		sb.WriteString(m.scripts.View())
	case TabBoard:
		sb.WriteString(m.board.View())
	}
	return sb.String()
}
