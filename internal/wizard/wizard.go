// Package wizard implements the setup flow's simulation engine: product
// imports that pretend to scrape, and a generation run that pretends to
// work. Outputs are canned and deterministic; the only real inputs are the
// delays, and those run through the caller's context so a torn-down UI
// never receives a late result.
package wizard

import (
	"strings"

	"github.com/google/uuid"
)

// Step is one screen of the setup flow.
type Step int

const (
	StepProducts Step = iota
	StepBrand
	StepConfig
	StepGenerate
)

// Title returns the heading for a step.
func (s Step) Title() string {
	switch s {
	case StepProducts:
		return "Add Products"
	case StepBrand:
		return "Brand Brief"
	case StepConfig:
		return "Platforms & Output"
	case StepGenerate:
		return "Review & Generate"
	}
	return ""
}

// StepCount is the number of wizard screens.
const StepCount = 4

// Product is one store item staged for generation.
type Product struct {
	ID       string
	Name     string
	Price    string
	Category string
	Source   string // "url" or "csv"
}

// urlPool is the constant pool an add-by-URL draws from, round-robin.
// Nothing is fetched; the URL only gates the button.
var urlPool = []Product{
	{Name: "Rattan Pendant Lamp", Price: "$129", Category: "Lighting"},
	{Name: "Boucle Accent Chair", Price: "$349", Category: "Furniture"},
	{Name: "Marble Coaster Set", Price: "$38", Category: "Tabletop"},
	{Name: "Wool Area Rug 5x8", Price: "$289", Category: "Textiles"},
}

// csvSet is the constant result of a "CSV upload". The picked file's
// contents are discarded.
var csvSet = []Product{
	{Name: "Ceramic Planter Duo", Price: "$54", Category: "Decor"},
	{Name: "Oak Floating Shelves", Price: "$88", Category: "Storage"},
	{Name: "Brass Taper Holders", Price: "$42", Category: "Decor"},
}

// URLPoolSize is the K of the round-robin: the (K+1)-th add repeats the
// first pool entry.
var URLPoolSize = len(urlPool)

// Session accumulates wizard state for one setup run. The zero value is
// ready to use.
type Session struct {
	Products []Product

	BrandName string
	BrandTone string
	Audience  string

	Platforms map[string]bool
	Format    string // csv or json

	urlAdds int
}

// NewSession returns a session with the config step's defaults selected.
func NewSession() *Session {
	return &Session{
		Platforms: map[string]bool{"meta": true, "google": true, "tiktok": false, "pinterest": false},
		Format:    "csv",
	}
}

// ValidURL is the presence check gating the add button: any non-blank
// input counts, nothing is parsed or fetched.
func ValidURL(raw string) bool {
	return strings.TrimSpace(raw) != ""
}

// AddByURL appends the next pool product, cycling through the constant
// pool in order. The n-th call (0-based) returns pool entry n mod K.
func (s *Session) AddByURL(rawURL string) Product {
	p := urlPool[s.urlAdds%len(urlPool)]
	s.urlAdds++
	p.ID = uuid.NewString()
	p.Source = "url"
	s.Products = append(s.Products, p)
	return p
}

// AddCSV appends the constant three-product set, unconditionally. The
// selected file is never read.
func (s *Session) AddCSV() []Product {
	added := make([]Product, 0, len(csvSet))
	for _, p := range csvSet {
		p.ID = uuid.NewString()
		p.Source = "csv"
		s.Products = append(s.Products, p)
		added = append(added, p)
	}
	return added
}

// BrandComplete reports whether the brand step's required fields are
// non-empty.
func (s *Session) BrandComplete() bool {
	return strings.TrimSpace(s.BrandName) != "" && strings.TrimSpace(s.BrandTone) != ""
}

// SelectedPlatforms returns the enabled platform keys in a stable order.
func (s *Session) SelectedPlatforms() []string {
	var out []string
	for _, k := range []string{"meta", "google", "tiktok", "pinterest"} {
		if s.Platforms[k] {
			out = append(out, k)
		}
	}
	return out
}

// ReadyToGenerate reports whether every earlier step is satisfied.
func (s *Session) ReadyToGenerate() bool {
	return len(s.Products) > 0 && s.BrandComplete() && len(s.SelectedPlatforms()) > 0
}
