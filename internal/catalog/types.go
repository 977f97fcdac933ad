// Package catalog holds the sample content catalogue for the adstudio
// dashboard: generated ad copy variations, UGC video scripts, and the
// aggregate summaries the overview page renders.
//
// All records are authored fixtures. Nothing in this package reaches the
// network or disk; the catalogue is constructed once and handed to the UI
// as an explicit dependency.
package catalog

// Status is the review lifecycle of a generated record.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusReview   Status = "review"
	StatusReady    Status = "ready"
	StatusExported Status = "exported"
)

// AllStatuses lists the four lifecycle states in board-lane order.
var AllStatuses = []Status{StatusDraft, StatusReview, StatusReady, StatusExported}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusReview, StatusReady, StatusExported:
		return true
	}
	return false
}

// Label returns the human-readable form used on lane headers and badges.
func (s Status) Label() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusReview:
		return "In Review"
	case StatusReady:
		return "Ready"
	case StatusExported:
		return "Exported"
	}
	return string(s)
}

// Platform is an ad destination with its own copy format and limits.
type Platform string

const (
	PlatformMeta      Platform = "meta"
	PlatformGoogle    Platform = "google"
	PlatformTikTok    Platform = "tiktok"
	PlatformPinterest Platform = "pinterest"
)

// AllPlatforms lists the supported destinations in display order.
var AllPlatforms = []Platform{PlatformMeta, PlatformGoogle, PlatformTikTok, PlatformPinterest}

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	switch p {
	case PlatformMeta, PlatformGoogle, PlatformTikTok, PlatformPinterest:
		return true
	}
	return false
}

// Label returns the display name for a platform.
func (p Platform) Label() string {
	switch p {
	case PlatformMeta:
		return "Meta"
	case PlatformGoogle:
		return "Google"
	case PlatformTikTok:
		return "TikTok"
	case PlatformPinterest:
		return "Pinterest"
	}
	return string(p)
}

// Angle is the creative/persuasion approach an ad variation takes.
type Angle string

const (
	AngleBenefit     Angle = "benefit-focused"
	AngleProblem     Angle = "problem-solution"
	AngleSocialProof Angle = "social-proof"
	AngleUrgency     Angle = "urgency"
	AngleCuriosity   Angle = "curiosity"
	AngleLifestyle   Angle = "lifestyle"
)

// AdVariation is one piece of platform-specific ad copy for a product.
//
// The *Chars fields are author-time character counts. They are never
// recomputed from the text fields; the gallery is read-only, so the two
// cannot drift inside a session.
type AdVariation struct {
	ID          string
	ProductName string
	SKU         string
	Platform    Platform

	Headline    string
	Body        string
	Description string
	CTA         string

	HeadlineChars    int
	BodyChars        int
	DescriptionChars int

	Status  Status
	Angle   Angle
	Created string
}

// RecordStatus implements Record.
func (a AdVariation) RecordStatus() Status { return a.Status }

// ScriptType is the UGC video format a script follows.
type ScriptType string

const (
	ScriptReview     ScriptType = "review"
	ScriptUnboxing   ScriptType = "unboxing"
	ScriptProblem    ScriptType = "problem-solution"
	ScriptTutorial   ScriptType = "tutorial"
	ScriptComparison ScriptType = "comparison"
	ScriptLifestyle  ScriptType = "lifestyle"
)

// DurationBucket is the target runtime for a UGC video.
type DurationBucket string

const (
	Duration30 DurationBucket = "30s"
	Duration45 DurationBucket = "45s"
	Duration60 DurationBucket = "60s"
)

// Scene is one shot of a UGC script: when it runs, what the creator does,
// and what they say.
type Scene struct {
	Timestamp string // e.g. "0:05-0:12"
	Direction string // on-camera action / framing note
	Voiceover string
}

// UGCScript is a structured short-video script for one product and angle.
type UGCScript struct {
	ID          string
	ProductName string
	Type        ScriptType
	Duration    DurationBucket
	Hook        string
	Scenes      []Scene
	CTA         string
	Status      Status
}

// RecordStatus implements Record.
func (s UGCScript) RecordStatus() Status { return s.Status }

// Record is anything with a review status; both galleries and the board
// filter on it.
type Record interface {
	RecordStatus() Status
}

// PlatformRollup summarizes one platform's campaign footprint.
type PlatformRollup struct {
	Platform  Platform
	Campaigns int
	AdSets    int
	Ads       int
	Reach     int
	Budget    float64 // monthly, USD
	ReadyPct  int     // share of ads in ready/exported status
}

// ProductCount is the per-product ad tally shown on the overview page.
type ProductCount struct {
	Product string
	Ads     int
}

// WeekOutput is one bar of the weekly output history chart.
type WeekOutput struct {
	Week    string // e.g. "Aug 04"
	Ads     int
	Scripts int
}

// QualityTally is a pass/fail count for one authoring-time check.
type QualityTally struct {
	Check  string
	Passed int
	Failed int
}

// ExportFile describes one previously exported file in the listing.
type ExportFile struct {
	Name    string
	Format  string // csv or json
	Records int
	Created string
}
