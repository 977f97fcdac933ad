package ui

import (
	"strings"
	"testing"

	"adstudio/internal/catalog"
	"adstudio/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp() Model {
	m := NewModel(config.Default(), catalog.NewSampleData(), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestAppRoutesBetweenPages(t *testing.T) {
	m := newTestApp()
	if m.Page() != PageDashboard {
		t.Fatalf("app should start on the dashboard")
	}

	m, _ = update(t, m, key("ctrl+s"))
	if m.Page() != PageSetup {
		t.Fatalf("ctrl+s should open setup")
	}

	m, _ = update(t, m, key("ctrl+d"))
	if m.Page() != PageDashboard {
		t.Fatalf("ctrl+d should return to the dashboard")
	}
}

func TestAppEscLeavesSetup(t *testing.T) {
	m := newTestApp()
	m, _ = update(t, m, key("ctrl+s"))
	m, _ = update(t, m, key("esc"))
	if m.Page() != PageDashboard {
		t.Fatalf("esc should back out of setup")
	}
}

func TestAppQuitKeys(t *testing.T) {
	m := newTestApp()

	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatalf("q should quit from the dashboard")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected a quit message")
	}

	m, _ = update(t, m, key("ctrl+s"))
	if _, cmd := update(t, m, key("q")); cmd != nil {
		t.Fatalf("q must stay text entry inside setup")
	}
}

func TestAppLeavingSetupInvalidatesPendingTicks(t *testing.T) {
	m := newTestApp()
	m, _ = update(t, m, key("ctrl+s"))

	// Start a delayed URL import, then bail out before it lands.
	m, _ = update(t, m, key("https://yourstore.com/products/lamp"))
	m, _ = update(t, m, key("enter"))
	stale := m.setup.runID
	m, _ = update(t, m, key("ctrl+d"))

	m, _ = update(t, m, urlImportedMsg{runID: stale})
	if got := len(m.setup.Session().Products); got != 0 {
		t.Fatalf("stale import tick added %d products", got)
	}
}

func TestAppSetupDoneRoutesHomeAndResets(t *testing.T) {
	m := newTestApp()
	m, _ = update(t, m, key("ctrl+s"))

	m.setup.generating = true
	m, _ = update(t, m, setupDoneMsg{runID: m.setup.runID})

	if m.Page() != PageDashboard {
		t.Fatalf("finished setup should land on the dashboard")
	}
	if m.setup.Generating() || len(m.setup.Session().Products) != 0 {
		t.Fatalf("setup should reset for the next run")
	}
}

func TestAppStaleSetupDoneIsDropped(t *testing.T) {
	m := newTestApp()
	m, _ = update(t, m, key("ctrl+s"))

	m, _ = update(t, m, setupDoneMsg{runID: m.setup.runID + 1})
	if m.Page() != PageSetup {
		t.Fatalf("a stale completion message must not navigate")
	}
}

func TestAppViewRendersChrome(t *testing.T) {
	m := newTestApp()
	view := m.View()
	for _, want := range []string{"adstudio", "Dashboard", "Setup"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}
