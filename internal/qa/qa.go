// Package qa runs the authoring-time quality checks over the catalogue:
// character budgets per platform and CTA presence. Checks read the stored
// character counts, not the text: the counts are part of the record, and
// the gallery never edits the text they were taken from.
package qa

import (
	"fmt"

	"adstudio/internal/catalog"
)

// Issue is one failed check on one record.
type Issue struct {
	RecordID string
	Check    string
	Detail   string
}

// CheckAd validates an ad variation against its platform's limits.
func CheckAd(ad catalog.AdVariation) []Issue {
	limits, ok := catalog.PlatformLimits[ad.Platform]
	if !ok {
		return []Issue{{RecordID: ad.ID, Check: "Character limits", Detail: fmt.Sprintf("unknown platform %q", ad.Platform)}}
	}
	names := catalog.FieldNames(ad.Platform)

	var issues []Issue
	over := func(field string, got, limit int) {
		issues = append(issues, Issue{
			RecordID: ad.ID,
			Check:    "Character limits",
			Detail:   fmt.Sprintf("%s is %d chars, limit %d", field, got, limit),
		})
	}

	if limits.Headline > 0 && ad.HeadlineChars > limits.Headline {
		over(names[0], ad.HeadlineChars, limits.Headline)
	}
	if limits.Body > 0 && ad.BodyChars > limits.Body {
		over(names[1], ad.BodyChars, limits.Body)
	}
	if limits.Description > 0 && ad.DescriptionChars > limits.Description {
		over(names[2], ad.DescriptionChars, limits.Description)
	}

	// Google text ads have no CTA field; every other platform expects one.
	if ad.Platform != catalog.PlatformGoogle && ad.CTA == "" {
		issues = append(issues, Issue{RecordID: ad.ID, Check: "CTA present", Detail: "no call to action"})
	}
	return issues
}

// Summarize tallies pass/fail per check across all ads, in a stable order.
func Summarize(ads []catalog.AdVariation) []catalog.QualityTally {
	checks := []string{"Character limits", "CTA present"}
	failed := map[string]map[string]bool{}
	for _, c := range checks {
		failed[c] = map[string]bool{}
	}

	for _, ad := range ads {
		for _, issue := range CheckAd(ad) {
			if m, ok := failed[issue.Check]; ok {
				m[ad.ID] = true
			}
		}
	}

	out := make([]catalog.QualityTally, 0, len(checks))
	for _, c := range checks {
		out = append(out, catalog.QualityTally{
			Check:  c,
			Passed: len(ads) - len(failed[c]),
			Failed: len(failed[c]),
		})
	}
	return out
}
