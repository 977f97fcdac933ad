package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByStatusAllReturnsFullListUnmodified(t *testing.T) {
	data := NewSampleData()

	got := ByStatus(data.Ads, FilterAll)
	if diff := cmp.Diff(data.Ads, got); diff != "" {
		t.Fatalf("all-filter changed the list (-want +got):\n%s", diff)
	}
}

func TestByStatusMatchesExactly(t *testing.T) {
	data := NewSampleData()

	for _, s := range AllStatuses {
		s := s
		t.Run(string(s), func(t *testing.T) {
			got := ByStatus(data.Ads, FilterStatus(s))
			for _, ad := range got {
				assert.Equal(t, s, ad.Status, "ad %s leaked through %s filter", ad.ID, s)
			}

			// Nothing with the status may be left out.
			want := 0
			for _, ad := range data.Ads {
				if ad.Status == s {
					want++
				}
			}
			assert.Len(t, got, want)
		})
	}
}

func TestByStatusPreservesOrder(t *testing.T) {
	data := NewSampleData()

	got := ByStatus(data.Scripts, FilterStatus(StatusDraft))
	require.NotEmpty(t, got)

	// The filtered ids must appear in the same relative order as the source.
	idx := map[string]int{}
	for i, sc := range data.Scripts {
		idx[sc.ID] = i
	}
	for i := 1; i < len(got); i++ {
		assert.Less(t, idx[got[i-1].ID], idx[got[i].ID])
	}
}

func TestGalleryFiltersCoverEveryStatus(t *testing.T) {
	require.Len(t, GalleryFilters, 5)
	assert.True(t, GalleryFilters[0].All)

	seen := map[Status]bool{}
	for _, f := range GalleryFilters[1:] {
		seen[f.Status] = true
	}
	for _, s := range AllStatuses {
		assert.True(t, seen[s], "no gallery filter for %s", s)
	}
}
