package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddByURLRoundRobin(t *testing.T) {
	s := NewSession()

	n := URLPoolSize*2 + 1
	var names []string
	for i := 0; i < n; i++ {
		p := s.AddByURL("https://example.com/products/anything")
		names = append(names, p.Name)
	}

	require.Len(t, s.Products, n, "each add appends exactly one product")

	// The (K+1)-th addition repeats the first pool entry, and so on around.
	for i := 0; i < n; i++ {
		assert.Equal(t, names[i%URLPoolSize], names[i], "add %d broke the cycle", i)
	}
}

func TestAddByURLIgnoresURLContent(t *testing.T) {
	a, b := NewSession(), NewSession()
	first := a.AddByURL("https://store-one.example/widget")
	second := b.AddByURL("https://totally-different.example/other")

	// Same pool position, same product, regardless of input.
	assert.Equal(t, first.Name, second.Name)
	assert.NotEqual(t, first.ID, second.ID, "each staged product gets its own id")
}

func TestAddCSVAppendsConstantSet(t *testing.T) {
	s := NewSession()
	s.AddByURL("https://example.com/x")

	added := s.AddCSV()
	require.Len(t, added, 3)
	assert.Len(t, s.Products, 4)

	// A second "upload" appends the same three again.
	again := s.AddCSV()
	require.Len(t, again, 3)
	assert.Len(t, s.Products, 7)
	for i := range added {
		assert.Equal(t, added[i].Name, again[i].Name)
	}
}

func TestValidURL(t *testing.T) {
	assert.False(t, ValidURL(""))
	assert.False(t, ValidURL("   "))
	assert.True(t, ValidURL("https://example.com"))
	// Only presence is checked; this is not URL parsing.
	assert.True(t, ValidURL("not a url"))
}

func TestReadyToGenerate(t *testing.T) {
	s := NewSession()
	assert.False(t, s.ReadyToGenerate(), "empty session must not generate")

	s.AddByURL("https://example.com/p")
	assert.False(t, s.ReadyToGenerate(), "brand brief still missing")

	s.BrandName = "Willow & Wick Home"
	s.BrandTone = "friendly-professional"
	assert.True(t, s.ReadyToGenerate())

	for k := range s.Platforms {
		s.Platforms[k] = false
	}
	assert.False(t, s.ReadyToGenerate(), "no platform selected")
}

func TestSelectedPlatformsStableOrder(t *testing.T) {
	s := NewSession()
	s.Platforms["pinterest"] = true
	s.Platforms["meta"] = true

	assert.Equal(t, []string{"meta", "google", "pinterest"}, s.SelectedPlatforms())
}
