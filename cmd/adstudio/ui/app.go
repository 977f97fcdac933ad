package ui

import (
	"fmt"
	"strings"

	"adstudio/internal/catalog"
	"adstudio/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Page identifies a routed top-level screen. There are exactly two, like
// the web dashboard this replaces: the dashboard and the setup wizard.
type Page int

const (
	PageDashboard Page = iota
	PageSetup
)

// Model is the application root: sidebar navigation between the two
// pages, with all state owned here and passed down explicitly.
type Model struct {
	cfg    *config.Config
	logger *zap.Logger
	styles Styles

	page      Page
	dashboard DashboardModel
	setup     SetupModel

	width  int
	height int
}

// NewModel wires the app over an explicitly constructed catalogue.
func NewModel(cfg *config.Config, data *catalog.SampleData, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := NewStyles(ThemeFor(cfg.Theme))
	return Model{
		cfg:       cfg,
		logger:    logger,
		styles:    styles,
		dashboard: NewDashboardModel(data, styles),
		setup:     NewSetupModel(cfg.Brand, styles),
	}
}

// Page returns the active route.
func (m Model) Page() Page { return m.page }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w, h := ContentSize(msg.Width, msg.Height)
		m.dashboard.SetSize(w, h)
		m.setup.SetSize(w, h)
		return m, nil

	case setupDoneMsg:
		// Generation finished: route back to the dashboard and reset the
		// wizard for the next run. Stale messages from a cancelled run are
		// dropped here the same way the wizard drops its ticks.
		if msg.runID != m.setup.runID || !m.setup.generating {
			return m, nil
		}
		m.logger.Info("setup run complete", zap.Int("products", len(m.setup.Session().Products)))
		m.setup = NewSetupModel(m.cfg.Brand, m.styles)
		w, h := ContentSize(m.width, m.height)
		m.setup.SetSize(w, h)
		m.page = PageDashboard
		return m, nil

	case urlImportedMsg, genTickMsg:
		var cmd tea.Cmd
		m.setup, cmd = m.setup.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// Quit only where q cannot be text entry.
			if m.page == PageDashboard && !m.dashboard.InOverlay() {
				return m, tea.Quit
			}
		case "ctrl+d":
			if m.page != PageDashboard {
				m.setup.Cancel()
				m.page = PageDashboard
				return m, nil
			}
		case "ctrl+s":
			if m.page != PageSetup {
				m.page = PageSetup
				return m, nil
			}
		case "esc":
			// Esc backs out of setup to the dashboard unless the page has
			// its own esc handling in flight.
			if m.page == PageSetup && !m.setup.Generating() {
				m.setup.Cancel()
				m.page = PageDashboard
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.page {
	case PageDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case PageSetup:
		m.setup, cmd = m.setup.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	header := m.styles.Header.Width(max(m.width, 0)).Render("adstudio — " + m.cfg.Brand.Name)

	var content string
	switch m.page {
	case PageDashboard:
		content = m.dashboard.View()
	case PageSetup:
		content = m.setup.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar(),
		m.styles.Content.Render(content),
	)

	footer := m.styles.Footer.Render("ctrl+d dashboard · ctrl+s setup · tab switch · q quit")
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m Model) sidebar() string {
	items := []struct {
		label string
		page  Page
	}{
		{"Dashboard", PageDashboard},
		{"Setup", PageSetup},
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("adstudio"))
	sb.WriteString("\n")
	for _, it := range items {
		style := m.styles.NavItem
		marker := "  "
		if it.page == m.page {
			style = m.styles.NavItemActive
			marker = "» "
		}
		sb.WriteString(style.Render(fmt.Sprintf("%s%s", marker, it.label)))
		sb.WriteString("\n")
	}
	return m.styles.Sidebar.Width(SidebarWidth).Render(sb.String())
}

// Run starts the interactive program in the alternate screen.
func Run(cfg *config.Config, data *catalog.SampleData, logger *zap.Logger) error {
	p := tea.NewProgram(NewModel(cfg, data, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
