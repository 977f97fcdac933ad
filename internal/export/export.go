// Package export writes the catalogue out as platform-ready files: one CSV
// per platform for ad copy, one CSV for UGC scripts with scenes flattened,
// or a single combined JSON document. File names carry a timestamp so
// repeated exports never clobber each other.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"adstudio/internal/catalog"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Exporter writes export files into Dir. Now is injectable so tests get
// stable file names.
type Exporter struct {
	Dir    string
	Logger *zap.Logger
	Now    func() time.Time
}

// New returns an exporter writing into dir.
func New(dir string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{Dir: dir, Logger: logger, Now: time.Now}
}

func (e *Exporter) stamp() string {
	return e.Now().Format("20060102_150405")
}

// adColumns is the per-platform CSV column set, matching each platform's
// bulk upload template.
var adColumns = map[catalog.Platform][]string{
	catalog.PlatformMeta:      {"product_name", "sku", "headline", "primary_text", "description", "cta", "angle", "status"},
	catalog.PlatformGoogle:    {"product_name", "sku", "headline", "description_line_1", "description_line_2", "angle", "status"},
	catalog.PlatformTikTok:    {"product_name", "sku", "ad_text", "caption", "cta", "angle", "status"},
	catalog.PlatformPinterest: {"product_name", "sku", "title", "description", "cta", "angle", "status"},
}

func adRow(p catalog.Platform, ad catalog.AdVariation) []string {
	switch p {
	case catalog.PlatformGoogle:
		return []string{ad.ProductName, ad.SKU, ad.Headline, ad.Body, ad.Description, string(ad.Angle), string(ad.Status)}
	case catalog.PlatformTikTok:
		return []string{ad.ProductName, ad.SKU, ad.Headline, ad.Body, ad.CTA, string(ad.Angle), string(ad.Status)}
	case catalog.PlatformPinterest:
		return []string{ad.ProductName, ad.SKU, ad.Headline, ad.Body, ad.CTA, string(ad.Angle), string(ad.Status)}
	default: // meta
		return []string{ad.ProductName, ad.SKU, ad.Headline, ad.Body, ad.Description, ad.CTA, string(ad.Angle), string(ad.Status)}
	}
}

// CSV writes one ads file per platform that has records, plus one scripts
// file. The independent files are written concurrently; the first error
// cancels the rest. Returns the created file paths sorted by platform
// order, scripts last.
func (e *Exporter) CSV(ctx context.Context, data *catalog.SampleData) ([]string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	stamp := e.stamp()

	byPlatform := map[catalog.Platform][]catalog.AdVariation{}
	for _, ad := range data.Ads {
		byPlatform[ad.Platform] = append(byPlatform[ad.Platform], ad)
	}

	var (
		mu      sync.Mutex
		created = map[string]string{}
	)
	g, ctx := errgroup.WithContext(ctx)

	for _, p := range catalog.AllPlatforms {
		ads := byPlatform[p]
		if len(ads) == 0 {
			continue
		}
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(e.Dir, fmt.Sprintf("ads_%s_%s.csv", p, stamp))
			rows := make([][]string, 0, len(ads))
			for _, ad := range ads {
				rows = append(rows, adRow(p, ad))
			}
			if err := writeCSV(path, adColumns[p], rows); err != nil {
				return err
			}
			e.Logger.Info("exported ads",
				zap.String("platform", string(p)),
				zap.Int("records", len(ads)),
				zap.String("file", path))
			mu.Lock()
			created[string(p)] = path
			mu.Unlock()
			return nil
		})
	}

	if len(data.Scripts) > 0 {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(e.Dir, fmt.Sprintf("ugc_scripts_%s.csv", stamp))
			if err := e.writeScriptsCSV(path, data.Scripts); err != nil {
				return err
			}
			e.Logger.Info("exported scripts", zap.Int("records", len(data.Scripts)), zap.String("file", path))
			mu.Lock()
			created["scripts"] = path
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []string
	for _, p := range catalog.AllPlatforms {
		if path, ok := created[string(p)]; ok {
			out = append(out, path)
		}
	}
	if path, ok := created["scripts"]; ok {
		out = append(out, path)
	}
	return out, nil
}

var scriptColumns = []string{"product_name", "ugc_type", "target_duration", "hook", "cta", "scene_count", "full_script", "status"}

func (e *Exporter) writeScriptsCSV(path string, scripts []catalog.UGCScript) error {
	rows := make([][]string, 0, len(scripts))
	for _, sc := range scripts {
		var parts []string
		for i, scene := range sc.Scenes {
			parts = append(parts, fmt.Sprintf("[%d %s] %s | VO: %s", i+1, scene.Timestamp, scene.Direction, scene.Voiceover))
		}
		rows = append(rows, []string{
			sc.ProductName, string(sc.Type), string(sc.Duration), sc.Hook, sc.CTA,
			fmt.Sprintf("%d", len(sc.Scenes)), strings.Join(parts, " || "), string(sc.Status),
		})
	}
	return writeCSV(path, scriptColumns, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// jsonDoc is the combined JSON export shape.
type jsonDoc struct {
	ExportedAt string                 `json:"exported_at"`
	Brand      string                 `json:"brand"`
	Ads        []catalog.AdVariation  `json:"ads"`
	Scripts    []catalog.UGCScript    `json:"ugc_scripts"`
	Summary    map[string]interface{} `json:"summary"`
}

// JSON writes the whole catalogue into one timestamped document and
// returns its path.
func (e *Exporter) JSON(ctx context.Context, data *catalog.SampleData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	doc := jsonDoc{
		ExportedAt: e.Now().Format(time.RFC3339),
		Brand:      data.BrandName,
		Ads:        data.Ads,
		Scripts:    data.Scripts,
		Summary: map[string]interface{}{
			"ad_count":     len(data.Ads),
			"script_count": len(data.Scripts),
		},
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}

	path := filepath.Join(e.Dir, fmt.Sprintf("content_%s.json", e.stamp()))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	e.Logger.Info("exported json", zap.Int("ads", len(data.Ads)), zap.Int("scripts", len(data.Scripts)), zap.String("file", path))
	return path, nil
}
