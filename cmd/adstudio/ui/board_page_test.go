package ui

import (
	"strings"
	"testing"

	"adstudio/internal/catalog"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestBoard() BoardPageModel {
	m := NewBoardPageModel(catalog.NewSampleData().Scripts, DefaultStyles())
	m.SetSize(120, 40)
	return m
}

func TestBoardPickUpAndDrop(t *testing.T) {
	m := newTestBoard()

	// First lane is draft; pick up its first card.
	first := m.Board().Lane(catalog.StatusDraft)[0]
	m, _ = m.Update(key(" "))
	if !m.Holding() {
		t.Fatalf("expected a held card after space")
	}

	// Move the drop target one lane right (review) and drop.
	m, _ = m.Update(key("l"))
	m, _ = m.Update(key("enter"))
	if m.Holding() {
		t.Fatalf("expected drop to release the card")
	}

	moved, ok := m.Board().Find(first.ID)
	if !ok || moved.Status != catalog.StatusReview {
		t.Fatalf("expected %s in review lane, got %s", first.ID, moved.Status)
	}
}

func TestBoardDropWithoutHeldCardIsNoOp(t *testing.T) {
	m := newTestBoard()

	before := map[string]catalog.Status{}
	for _, sc := range m.Board().Scripts() {
		before[sc.ID] = sc.Status
	}

	m, _ = m.Update(key("enter"))
	for _, sc := range m.Board().Scripts() {
		if sc.Status != before[sc.ID] {
			t.Fatalf("record %s moved without a pick-up", sc.ID)
		}
	}
}

func TestBoardEscCancelsHold(t *testing.T) {
	m := newTestBoard()

	held := m.Board().Lane(catalog.StatusDraft)[0]
	m, _ = m.Update(key(" "))
	m, _ = m.Update(key("l"))
	m, _ = m.Update(key("l"))
	m, _ = m.Update(key("esc"))

	if m.Holding() {
		t.Fatalf("esc should release the held card")
	}
	got, _ := m.Board().Find(held.ID)
	if got.Status != catalog.StatusDraft {
		t.Fatalf("cancelled hold must not move the card, got %s", got.Status)
	}
}

func TestBoardSameLaneDropKeepsStatus(t *testing.T) {
	m := newTestBoard()

	held := m.Board().Lane(catalog.StatusDraft)[0]
	m, _ = m.Update(key(" "))
	m, _ = m.Update(key("enter")) // drop on origin lane

	got, _ := m.Board().Find(held.ID)
	if got.Status != catalog.StatusDraft {
		t.Fatalf("same-lane drop changed status to %s", got.Status)
	}
}

func TestBoardViewShowsAllLanes(t *testing.T) {
	m := newTestBoard()
	view := m.View()

	for _, s := range catalog.AllStatuses {
		if !strings.Contains(view, s.Label()) {
			t.Fatalf("expected lane header %q in view", s.Label())
		}
	}
}
