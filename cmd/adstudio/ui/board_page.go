package ui

import (
	"fmt"
	"strings"

	"adstudio/internal/catalog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BoardPageModel is the script status board: four fixed lanes, one card
// per script, and keyboard pick-up/drop in place of mouse dragging.
//
// Interaction: h/l move between lanes, j/k within a lane, space picks the
// selected card up, h/l then move the drop target (the highlighted lane),
// enter drops, esc puts the card back. A drop on the card's own lane is a
// no-op, matching the board semantics in catalog.Board.
type BoardPageModel struct {
	board *catalog.Board

	laneIdx int // cursor lane (or drop target while holding)
	rowIdx  int

	heldID   string // non-empty while a card is picked up
	heldFrom int    // lane index the held card came from

	styles Styles
	width  int
	height int
}

// NewBoardPageModel seeds the board from the catalogue's scripts. The
// board owns a copy; moves live for the session only.
func NewBoardPageModel(scripts []catalog.UGCScript, styles Styles) BoardPageModel {
	return BoardPageModel{
		board:  catalog.NewBoard(scripts),
		styles: styles,
	}
}

// Board exposes the underlying board for the dashboard's status line.
func (m BoardPageModel) Board() *catalog.Board { return m.board }

// Holding reports whether a card is currently picked up.
func (m BoardPageModel) Holding() bool { return m.heldID != "" }

// SetSize stores the drawable area.
func (m *BoardPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m BoardPageModel) lane() catalog.Status { return catalog.AllStatuses[m.laneIdx] }

func (m BoardPageModel) laneLen(i int) int {
	return len(m.board.Lane(catalog.AllStatuses[i]))
}

func (m *BoardPageModel) clampRow() {
	if n := m.laneLen(m.laneIdx); m.rowIdx >= n {
		m.rowIdx = n - 1
	}
	if m.rowIdx < 0 {
		m.rowIdx = 0
	}
}

// Update handles board keys.
func (m BoardPageModel) Update(msg tea.Msg) (BoardPageModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "h", "left":
		if m.laneIdx > 0 {
			m.laneIdx--
			if !m.Holding() {
				m.clampRow()
			}
		}
	case "l", "right":
		if m.laneIdx < len(catalog.AllStatuses)-1 {
			m.laneIdx++
			if !m.Holding() {
				m.clampRow()
			}
		}
	case "j", "down":
		if !m.Holding() && m.rowIdx < m.laneLen(m.laneIdx)-1 {
			m.rowIdx++
		}
	case "k", "up":
		if !m.Holding() && m.rowIdx > 0 {
			m.rowIdx--
		}
	case " ":
		if !m.Holding() {
			lane := m.board.Lane(m.lane())
			if m.rowIdx < len(lane) {
				m.heldID = lane[m.rowIdx].ID
				m.heldFrom = m.laneIdx
			}
		}
	case "enter":
		if m.Holding() {
			// Drop: same-lane and unknown-id drops are no-ops inside Move.
			m.board.Move(m.heldID, m.lane())
			m.heldID = ""
			m.clampRow()
		}
	case "esc":
		if m.Holding() {
			// Put the card back where it came from.
			m.laneIdx = m.heldFrom
			m.heldID = ""
			m.clampRow()
		}
	}
	return m, nil
}

// View renders the four lanes side by side.
func (m BoardPageModel) View() string {
	laneWidth := LaneWidth(m.width)

	lanes := make([]string, 0, len(catalog.AllStatuses))
	for i, status := range catalog.AllStatuses {
		lanes = append(lanes, m.renderLane(i, status, laneWidth))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, lanes...)

	hint := "h/l lanes · j/k cards · space pick up · enter drop"
	if m.Holding() {
		hint = "holding card — h/l choose lane · enter drop · esc cancel"
	}
	return board + "\n" + m.styles.Muted.Render(hint)
}

func (m BoardPageModel) renderLane(idx int, status catalog.Status, width int) string {
	cards := m.board.Lane(status)

	header := fmt.Sprintf("%s (%d)", status.Label(), len(cards))
	var sb strings.Builder
	sb.WriteString(m.styles.StatusStyle(status.Label()).Render(header))
	sb.WriteString("\n")

	for row, sc := range cards {
		style := m.styles.Card
		switch {
		case sc.ID == m.heldID:
			style = m.styles.CardHeld
		case !m.Holding() && idx == m.laneIdx && row == m.rowIdx:
			style = m.styles.CardSelected
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Bold.Render(truncate(sc.ProductName, width-4)),
			m.styles.Muted.Render(truncate(fmt.Sprintf("%s · %s", sc.Type, sc.Duration), width-4)),
		)
		sb.WriteString(style.Width(width - 2).Render(body))
		sb.WriteString("\n")
	}
	if len(cards) == 0 {
		sb.WriteString(m.styles.Muted.Render("(empty)"))
		sb.WriteString("\n")
	}

	laneStyle := m.styles.Lane
	// While holding, the cursor lane is the drop target and gets the
	// highlight border, like a drag-over state.
	if m.Holding() && idx == m.laneIdx {
		laneStyle = m.styles.LaneActive
	}
	return laneStyle.Width(width).Render(sb.String())
}
