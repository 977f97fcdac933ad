package ui

import (
	"fmt"
	"strings"

	"adstudio/internal/brief"
	"adstudio/internal/catalog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// galleryCard is one rendered card in a gallery, prebuilt from either an
// ad variation or a UGC script.
type galleryCard struct {
	id        string
	status    catalog.Status
	title     string
	subtitle  string
	preview   string
	briefText string // clipboard form
	briefMD   string // detail overlay form
}

// RecordStatus lets cards run through the catalog filters.
func (c galleryCard) RecordStatus() catalog.Status { return c.status }

// GalleryModel is a filterable card list with a detail overlay. The ads
// and scripts tabs are two instances over different card sets.
type GalleryModel struct {
	cards    []galleryCard
	visible  []galleryCard
	filter   int // index into catalog.GalleryFilters
	cursor   int
	showing  bool // detail overlay open
	detail   viewport.Model
	renderer *glamour.TermRenderer
	notice   string
	styles   Styles
	width    int
	height   int
}

// NewAdsGallery builds the gallery over the ad variations.
func NewAdsGallery(ads []catalog.AdVariation, styles Styles) GalleryModel {
	cards := make([]galleryCard, 0, len(ads))
	for _, ad := range ads {
		cards = append(cards, galleryCard{
			id:        ad.ID,
			status:    ad.Status,
			title:     ad.ProductName,
			subtitle:  fmt.Sprintf("%s · %s", ad.Platform.Label(), ad.Angle),
			preview:   ad.Headline,
			briefText: brief.AdText(ad),
			briefMD:   brief.AdMarkdown(ad),
		})
	}
	return newGallery(cards, styles)
}

// NewScriptsGallery builds the gallery over the UGC scripts.
func NewScriptsGallery(scripts []catalog.UGCScript, styles Styles) GalleryModel {
	cards := make([]galleryCard, 0, len(scripts))
	for _, sc := range scripts {
		cards = append(cards, galleryCard{
			id:        sc.ID,
			status:    sc.Status,
			title:     sc.ProductName,
			subtitle:  fmt.Sprintf("%s · %s · %d scenes", sc.Type, sc.Duration, len(sc.Scenes)),
			preview:   sc.Hook,
			briefText: brief.ScriptText(sc),
			briefMD:   brief.ScriptMarkdown(sc),
		})
	}
	return newGallery(cards, styles)
}

func newGallery(cards []galleryCard, styles Styles) GalleryModel {
	stylePath := "light"
	if styles.Theme.IsDark {
		stylePath = "dark"
	}
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithStylePath(stylePath),
		glamour.WithWordWrap(76),
	)
	m := GalleryModel{
		cards:    cards,
		renderer: renderer,
		detail:   viewport.New(80, 20),
		styles:   styles,
	}
	m.applyFilter()
	return m
}

// SetSize resizes the list and the overlay.
func (m *GalleryModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.detail.Width = w
	m.detail.Height = h - 2
}

// Filter returns the active filter.
func (m GalleryModel) Filter() catalog.StatusFilter {
	return catalog.GalleryFilters[m.filter]
}

// Visible returns the currently shown cards.
func (m GalleryModel) Visible() []galleryCard { return m.visible }

// Selected returns the card under the cursor, if any.
func (m GalleryModel) Selected() (galleryCard, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return galleryCard{}, false
	}
	return m.visible[m.cursor], true
}

// ShowingDetail reports whether the overlay is open.
func (m GalleryModel) ShowingDetail() bool { return m.showing }

func (m *GalleryModel) applyFilter() {
	m.visible = catalog.ByStatus(m.cards, catalog.GalleryFilters[m.filter])
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles gallery keys: j/k select, f cycles the status filter,
// enter opens the detail overlay, c copies the brief, esc closes.
func (m GalleryModel) Update(msg tea.Msg) (GalleryModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.showing {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	m.notice = ""
	switch key.String() {
	case "j", "down":
		if m.showing {
			m.detail.LineDown(1)
		} else if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.showing {
			m.detail.LineUp(1)
		} else if m.cursor > 0 {
			m.cursor--
		}
	case "f":
		if !m.showing {
			m.filter = (m.filter + 1) % len(catalog.GalleryFilters)
			m.applyFilter()
		}
	case "enter":
		if card, ok := m.Selected(); ok && !m.showing {
			m.openDetail(card)
		}
	case "esc":
		m.showing = false
	case "c":
		if card, ok := m.Selected(); ok {
			if err := clipboard.WriteAll(card.briefText); err != nil {
				m.notice = "clipboard unavailable"
			} else {
				m.notice = "brief copied"
			}
		}
	}
	return m, nil
}

func (m *GalleryModel) openDetail(card galleryCard) {
	body := card.briefMD
	if m.renderer != nil {
		if out, err := m.renderer.Render(card.briefMD); err == nil {
			body = out
		}
	}
	m.detail.SetContent(body)
	m.detail.GotoTop()
	m.showing = true
}

// View renders the card list, or the overlay when one is open.
func (m GalleryModel) View() string {
	if m.showing {
		hint := m.styles.Muted.Render("esc close · c copy brief · j/k scroll")
		return m.styles.Overlay.Render(m.detail.View()) + "\n" + hint
	}

	var sb strings.Builder
	sb.WriteString(m.filterBar())
	sb.WriteString("\n\n")

	if len(m.visible) == 0 {
		sb.WriteString(m.styles.Muted.Render("No records match this filter."))
		return sb.String()
	}

	for i, card := range m.visible {
		style := m.styles.Card
		if i == m.cursor {
			style = m.styles.CardSelected
		}
		badge := m.styles.StatusStyle(card.status.Label()).Render(card.status.Label())
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Bold.Render(card.title)+"  "+badge,
			m.styles.Muted.Render(card.subtitle),
			m.styles.Body.Render(truncate(card.preview, 72)),
		)
		sb.WriteString(style.Width(min(m.width-2, 80)).Render(body))
		sb.WriteString("\n")
	}

	if m.notice != "" {
		sb.WriteString(m.styles.Success.Render(m.notice))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m GalleryModel) filterBar() string {
	parts := make([]string, 0, len(catalog.GalleryFilters))
	for i, f := range catalog.GalleryFilters {
		style := m.styles.Tab
		if i == m.filter {
			style = m.styles.TabActive
		}
		parts = append(parts, style.Render(f.Label()))
	}
	return strings.Join(parts, "") + m.styles.Muted.Render("   (f to cycle)")
}

func truncate(s string, l int) string {
	if len(s) > l {
		return s[:l-3] + "..."
	}
	return s
}
