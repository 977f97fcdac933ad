package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleDataInvariants(t *testing.T) {
	data := NewSampleData()
	require.NotEmpty(t, data.Ads)
	require.NotEmpty(t, data.Scripts)

	ids := map[string]bool{}
	for _, ad := range data.Ads {
		assert.True(t, ad.Status.Valid(), "ad %s has status %q", ad.ID, ad.Status)
		assert.True(t, ad.Platform.Valid(), "ad %s has platform %q", ad.ID, ad.Platform)
		assert.False(t, ids[ad.ID], "duplicate id %s", ad.ID)
		ids[ad.ID] = true
	}
	for _, sc := range data.Scripts {
		assert.True(t, sc.Status.Valid(), "script %s has status %q", sc.ID, sc.Status)
		assert.NotEmpty(t, sc.Hook, "script %s has no hook", sc.ID)
		assert.NotEmpty(t, sc.Scenes, "script %s has no scenes", sc.ID)
		assert.False(t, ids[sc.ID], "duplicate id %s", sc.ID)
		ids[sc.ID] = true
	}
}

func TestSampleDataCallsAreIndependent(t *testing.T) {
	a := NewSampleData()
	b := NewSampleData()

	a.Scripts[0].Status = StatusExported
	a.Ads[0].Headline = "changed"

	assert.NotEqual(t, a.Scripts[0].Status, b.Scripts[0].Status)
	assert.NotEqual(t, a.Ads[0].Headline, b.Ads[0].Headline)
}

func TestPlatformLimitsDefined(t *testing.T) {
	for _, p := range AllPlatforms {
		limits, ok := PlatformLimits[p]
		require.True(t, ok, "no limits for %s", p)
		assert.Greater(t, limits.Headline, 0)
		assert.Greater(t, limits.Body, 0)
	}
}
