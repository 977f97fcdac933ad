package qa

import (
	"testing"

	"adstudio/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metaAd() catalog.AdVariation {
	return catalog.AdVariation{
		ID: "ad-t1", Platform: catalog.PlatformMeta,
		Headline: "h", Body: "b", Description: "d", CTA: "Shop Now",
		HeadlineChars: 30, BodyChars: 100, DescriptionChars: 20,
	}
}

func TestCheckAdPasses(t *testing.T) {
	assert.Empty(t, CheckAd(metaAd()))
}

func TestCheckAdFlagsOverBudgetFields(t *testing.T) {
	ad := metaAd()
	ad.HeadlineChars = 55 // meta limit is 40
	ad.BodyChars = 140    // meta limit is 125

	issues := CheckAd(ad)
	require.Len(t, issues, 2)
	for _, issue := range issues {
		assert.Equal(t, "Character limits", issue.Check)
		assert.Equal(t, "ad-t1", issue.RecordID)
	}
}

func TestCheckAdSkipsUnlimitedFields(t *testing.T) {
	ad := catalog.AdVariation{
		ID: "ad-t2", Platform: catalog.PlatformTikTok, CTA: "Shop Now",
		HeadlineChars: 80, BodyChars: 90,
		DescriptionChars: 9999, // tiktok has no third field
	}
	assert.Empty(t, CheckAd(ad))
}

func TestCheckAdCTARules(t *testing.T) {
	ad := metaAd()
	ad.CTA = ""
	issues := CheckAd(ad)
	require.Len(t, issues, 1)
	assert.Equal(t, "CTA present", issues[0].Check)

	// Google text ads carry no CTA field at all.
	google := catalog.AdVariation{ID: "ad-t3", Platform: catalog.PlatformGoogle, HeadlineChars: 20, BodyChars: 80, DescriptionChars: 80}
	assert.Empty(t, CheckAd(google))
}

func TestSummarizeCountsEachAdOnce(t *testing.T) {
	bad := metaAd()
	bad.HeadlineChars = 200
	bad.BodyChars = 400 // two limit failures, one ad

	tallies := Summarize([]catalog.AdVariation{metaAd(), bad})
	require.Len(t, tallies, 2)

	assert.Equal(t, "Character limits", tallies[0].Check)
	assert.Equal(t, 1, tallies[0].Passed)
	assert.Equal(t, 1, tallies[0].Failed)

	assert.Equal(t, "CTA present", tallies[1].Check)
	assert.Equal(t, 2, tallies[1].Passed)
}

func TestSampleCatalogueIsClean(t *testing.T) {
	for _, ad := range catalog.NewSampleData().Ads {
		assert.Emptyf(t, CheckAd(ad), "sample ad %s fails QA", ad.ID)
	}
}
