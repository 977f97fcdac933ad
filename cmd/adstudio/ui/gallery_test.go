package ui

import (
	"strings"
	"testing"

	"adstudio/internal/catalog"
)

func newAdsTestGallery() GalleryModel {
	m := NewAdsGallery(catalog.NewSampleData().Ads, DefaultStyles())
	m.SetSize(100, 30)
	return m
}

func TestGalleryStartsUnfiltered(t *testing.T) {
	m := newAdsTestGallery()
	if !m.Filter().All {
		t.Fatalf("expected the all filter initially")
	}
	if len(m.Visible()) != len(catalog.NewSampleData().Ads) {
		t.Fatalf("all filter must show every record")
	}
}

func TestGalleryFilterCycleRestrictsCards(t *testing.T) {
	m := newAdsTestGallery()

	// First cycle lands on the ready filter.
	m, _ = m.Update(key("f"))
	f := m.Filter()
	if f.All || f.Status != catalog.StatusReady {
		t.Fatalf("expected ready filter after one cycle, got %+v", f)
	}
	for _, card := range m.Visible() {
		if card.status != catalog.StatusReady {
			t.Fatalf("card %s leaked through ready filter", card.id)
		}
	}

	// A full cycle returns to all.
	for i := 0; i < len(catalog.GalleryFilters)-1; i++ {
		m, _ = m.Update(key("f"))
	}
	if !m.Filter().All {
		t.Fatalf("expected all filter after full cycle")
	}
}

func TestGalleryDetailOverlay(t *testing.T) {
	m := newAdsTestGallery()

	card, ok := m.Selected()
	if !ok {
		t.Fatalf("expected a selected card")
	}

	m, _ = m.Update(key("enter"))
	if !m.ShowingDetail() {
		t.Fatalf("enter should open the detail overlay")
	}
	if view := m.View(); !strings.Contains(view, card.title) {
		t.Fatalf("overlay should mention %q", card.title)
	}

	m, _ = m.Update(key("esc"))
	if m.ShowingDetail() {
		t.Fatalf("esc should close the overlay")
	}
	if len(m.Visible()) == 0 {
		t.Fatalf("closing the overlay must leave the list intact")
	}
}

func TestGalleryCursorStaysInBounds(t *testing.T) {
	m := newAdsTestGallery()

	for i := 0; i < 100; i++ {
		m, _ = m.Update(key("j"))
	}
	if _, ok := m.Selected(); !ok {
		t.Fatalf("cursor walked off the list")
	}

	// Narrowing the filter must clamp the cursor too.
	m, _ = m.Update(key("f"))
	if _, ok := m.Selected(); !ok && len(m.Visible()) > 0 {
		t.Fatalf("cursor not clamped after filtering")
	}
}

func TestScriptsGalleryShowsSceneCount(t *testing.T) {
	data := catalog.NewSampleData()
	m := NewScriptsGallery(data.Scripts, DefaultStyles())
	m.SetSize(100, 30)

	if !strings.Contains(m.View(), "scenes") {
		t.Fatalf("script cards should show their scene count")
	}
}
