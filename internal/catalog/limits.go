package catalog

// CharLimits holds the per-field character budgets for a platform's ad
// format. A zero limit means the platform has no hard cap for that field.
type CharLimits struct {
	Headline    int
	Body        int
	Description int
}

// PlatformLimits maps each platform to its copy limits.
//
// Meta: headline / primary text / link description.
// Google: headline / description line 1 / description line 2.
// TikTok: ad text / caption (no third field).
// Pinterest: title / description (no third field).
var PlatformLimits = map[Platform]CharLimits{
	PlatformMeta:      {Headline: 40, Body: 125, Description: 30},
	PlatformGoogle:    {Headline: 30, Body: 90, Description: 90},
	PlatformTikTok:    {Headline: 100, Body: 100},
	PlatformPinterest: {Headline: 100, Body: 500},
}

// FieldNames returns the platform-native labels for the generic
// headline/body/description fields, in that order. Empty strings mark
// fields the platform does not use.
func FieldNames(p Platform) [3]string {
	switch p {
	case PlatformMeta:
		return [3]string{"Headline", "Primary Text", "Description"}
	case PlatformGoogle:
		return [3]string{"Headline", "Description Line 1", "Description Line 2"}
	case PlatformTikTok:
		return [3]string{"Ad Text", "Caption", ""}
	case PlatformPinterest:
		return [3]string{"Title", "Description", ""}
	}
	return [3]string{"Headline", "Body", "Description"}
}
