package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlatformIsValid(t *testing.T) {
	for _, p := range []Platform{
		PlatformLinkedIn, PlatformInstagram, PlatformTwitter,
		PlatformTikTok, PlatformFacebook, PlatformThreads,
	} {
		require.True(t, p.IsValid(), "%s should be valid", p)
	}
	require.False(t, Platform("MySpace").IsValid())
	require.False(t, Platform("linkedin").IsValid(), "values are case sensitive")
	require.False(t, Platform("").IsValid())
}

func TestObjectiveIsValid(t *testing.T) {
	require.True(t, ObjectiveEngagement.IsValid())
	require.True(t, ObjectiveAuthority.IsValid())
	require.True(t, ObjectiveSales.IsValid())
	require.Equal(t, "Sales/Leads", ObjectiveSales.String())
	require.False(t, Objective("Growth").IsValid())
}

func TestPostStatusIsValid(t *testing.T) {
	require.True(t, StatusDraft.IsValid())
	require.True(t, StatusScheduled.IsValid())
	require.True(t, StatusPublished.IsValid())
	require.False(t, PostStatus("Archived").IsValid())
}

func TestProfileEnumValidators(t *testing.T) {
	require.True(t, IsValidPositioning("educator"))
	require.False(t, IsValidPositioning("influencer"))

	require.True(t, IsValidAudienceLevel("intermediate"))
	require.False(t, IsValidAudienceLevel("expert"))

	require.True(t, IsValidOfferType("none"))
	require.False(t, IsValidOfferType("subscription"))

	require.True(t, IsValidContentFocus("relationship"))
	require.False(t, IsValidContentFocus("virality"))

	require.True(t, IsValidTone("provocative"))
	require.False(t, IsValidTone("sarcastic"))

	require.True(t, IsValidContentLength("long"))
	require.False(t, IsValidContentLength("huge"))

	require.True(t, IsValidPrimaryGoal("generate_leads"))
	require.False(t, IsValidPrimaryGoal("fame"))

	require.True(t, IsValidPostFrequency("few_times_week"))
	require.False(t, IsValidPostFrequency("monthly"))
}
