package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"adstudio/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fixedExporter(t *testing.T) *Exporter {
	t.Helper()
	e := New(t.TempDir(), nil)
	e.Now = func() time.Time { return time.Date(2025, 8, 25, 9, 30, 0, 0, time.UTC) }
	return e
}

func TestCSVWritesPerPlatformFiles(t *testing.T) {
	e := fixedExporter(t)
	data := catalog.NewSampleData()

	paths, err := e.CSV(context.Background(), data)
	require.NoError(t, err)

	// One file per platform with ads, plus the scripts file.
	require.Len(t, paths, 5)
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	assert.Equal(t, []string{
		"ads_meta_20250825_093000.csv",
		"ads_google_20250825_093000.csv",
		"ads_tiktok_20250825_093000.csv",
		"ads_pinterest_20250825_093000.csv",
		"ugc_scripts_20250825_093000.csv",
	}, names)
}

func TestCSVHeaderAndRows(t *testing.T) {
	e := fixedExporter(t)
	data := catalog.NewSampleData()

	paths, err := e.CSV(context.Background(), data)
	require.NoError(t, err)

	var metaPath string
	for _, p := range paths {
		if strings.Contains(p, "ads_meta_") {
			metaPath = p
		}
	}
	require.NotEmpty(t, metaPath)

	f, err := os.Open(metaPath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"product_name", "sku", "headline", "primary_text", "description", "cta", "angle", "status"}, rows[0])

	metaAds := catalog.ByStatus(data.Ads, catalog.FilterAll)
	count := 0
	for _, ad := range metaAds {
		if ad.Platform == catalog.PlatformMeta {
			count++
		}
	}
	assert.Len(t, rows[1:], count)
}

func TestScriptsCSVFlattensScenes(t *testing.T) {
	e := fixedExporter(t)
	data := catalog.NewSampleData()

	paths, err := e.CSV(context.Background(), data)
	require.NoError(t, err)

	scriptsPath := paths[len(paths)-1]
	f, err := os.Open(scriptsPath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows[1:], len(data.Scripts))

	// full_script column carries every scene's voiceover.
	full := rows[1][6]
	for _, scene := range data.Scripts[0].Scenes {
		assert.Contains(t, full, scene.Voiceover)
	}
}

func TestCSVCancelledContext(t *testing.T) {
	e := fixedExporter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.CSV(ctx, catalog.NewSampleData())
	require.ErrorIs(t, err, context.Canceled)
}

func TestJSONRoundTrips(t *testing.T) {
	e := fixedExporter(t)
	data := catalog.NewSampleData()

	path, err := e.JSON(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, "content_20250825_093000.json", filepath.Base(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Brand   string                `json:"brand"`
		Ads     []catalog.AdVariation `json:"ads"`
		Scripts []catalog.UGCScript   `json:"ugc_scripts"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, data.BrandName, doc.Brand)
	assert.Len(t, doc.Ads, len(data.Ads))
	assert.Len(t, doc.Scripts, len(data.Scripts))
}
