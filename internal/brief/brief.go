// Package brief turns catalogue records into shareable text. The plain
// form goes to the clipboard; the markdown form feeds the detail overlay's
// glamour renderer. Both are deterministic string templates.
package brief

import (
	"fmt"
	"strings"

	"adstudio/internal/catalog"
)

// AdText renders an ad variation's visible fields as a plain-text brief.
func AdText(ad catalog.AdVariation) string {
	names := catalog.FieldNames(ad.Platform)
	limits := catalog.PlatformLimits[ad.Platform]

	var sb strings.Builder
	fmt.Fprintf(&sb, "AD BRIEF — %s (%s)\n", ad.ProductName, ad.SKU)
	fmt.Fprintf(&sb, "Platform: %s  |  Angle: %s  |  Status: %s\n", ad.Platform.Label(), ad.Angle, ad.Status.Label())
	sb.WriteString(strings.Repeat("-", 48) + "\n")
	fmt.Fprintf(&sb, "%s (%d/%d chars):\n%s\n\n", names[0], ad.HeadlineChars, limits.Headline, ad.Headline)
	fmt.Fprintf(&sb, "%s (%d/%d chars):\n%s\n", names[1], ad.BodyChars, limits.Body, ad.Body)
	if names[2] != "" && ad.Description != "" {
		fmt.Fprintf(&sb, "\n%s (%d/%d chars):\n%s\n", names[2], ad.DescriptionChars, limits.Description, ad.Description)
	}
	if ad.CTA != "" {
		fmt.Fprintf(&sb, "\nCTA: %s\n", ad.CTA)
	}
	fmt.Fprintf(&sb, "\nCreated %s\n", ad.Created)
	return sb.String()
}

// ScriptText renders a UGC script as a plain-text shoot brief.
func ScriptText(sc catalog.UGCScript) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "UGC SCRIPT — %s\n", sc.ProductName)
	fmt.Fprintf(&sb, "Type: %s  |  Target: %s  |  Status: %s\n", sc.Type, sc.Duration, sc.Status.Label())
	sb.WriteString(strings.Repeat("-", 48) + "\n")
	fmt.Fprintf(&sb, "HOOK: %s\n\n", sc.Hook)
	for i, scene := range sc.Scenes {
		fmt.Fprintf(&sb, "Scene %d  [%s]\n", i+1, scene.Timestamp)
		fmt.Fprintf(&sb, "  Direction: %s\n", scene.Direction)
		fmt.Fprintf(&sb, "  VO: %s\n\n", scene.Voiceover)
	}
	fmt.Fprintf(&sb, "CTA: %s\n", sc.CTA)
	return sb.String()
}

// AdMarkdown renders the detail-overlay body for an ad variation.
func AdMarkdown(ad catalog.AdVariation) string {
	names := catalog.FieldNames(ad.Platform)
	limits := catalog.PlatformLimits[ad.Platform]

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", ad.ProductName)
	fmt.Fprintf(&sb, "`%s` · **%s** · _%s_ · %s\n\n", ad.SKU, ad.Platform.Label(), ad.Angle, ad.Status.Label())
	fmt.Fprintf(&sb, "## %s\n\n%s\n\n*%d of %d characters*\n\n", names[0], ad.Headline, ad.HeadlineChars, limits.Headline)
	fmt.Fprintf(&sb, "## %s\n\n%s\n\n*%d of %d characters*\n", names[1], ad.Body, ad.BodyChars, limits.Body)
	if names[2] != "" && ad.Description != "" {
		fmt.Fprintf(&sb, "\n## %s\n\n%s\n\n*%d of %d characters*\n", names[2], ad.Description, ad.DescriptionChars, limits.Description)
	}
	if ad.CTA != "" {
		fmt.Fprintf(&sb, "\n**Call to action:** %s\n", ad.CTA)
	}
	return sb.String()
}

// ScriptMarkdown renders the detail-overlay body for a UGC script.
func ScriptMarkdown(sc catalog.UGCScript) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", sc.ProductName)
	fmt.Fprintf(&sb, "**%s** · target %s · %s\n\n", sc.Type, sc.Duration, sc.Status.Label())
	fmt.Fprintf(&sb, "> %s\n\n", sc.Hook)
	for i, scene := range sc.Scenes {
		fmt.Fprintf(&sb, "## Scene %d — %s\n\n", i+1, scene.Timestamp)
		fmt.Fprintf(&sb, "%s\n\n", scene.Direction)
		fmt.Fprintf(&sb, "**VO:** %s\n\n", scene.Voiceover)
	}
	fmt.Fprintf(&sb, "**CTA:** %s\n", sc.CTA)
	return sb.String()
}
