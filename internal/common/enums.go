package common

// Platform is the wire/storage value for a social network. Display labels
// never leave the prompt layer; these strings are what gets persisted and
// what clients send.
type Platform string

const (
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformInstagram Platform = "Instagram"
	PlatformTwitter   Platform = "Twitter/X"
	PlatformTikTok    Platform = "TikTok"
	PlatformFacebook  Platform = "Facebook"
	PlatformThreads   Platform = "Threads"
)

func (p Platform) String() string {
	return string(p)
}

func (p Platform) IsValid() bool {
	switch p {
	case PlatformLinkedIn, PlatformInstagram, PlatformTwitter,
		PlatformTikTok, PlatformFacebook, PlatformThreads:
		return true
	}
	return false
}

// Objective is the marketing goal a single post is optimized for.
type Objective string

const (
	ObjectiveEngagement Objective = "Engagement"
	ObjectiveAuthority  Objective = "Authority"
	ObjectiveSales      Objective = "Sales/Leads"
)

func (o Objective) String() string {
	return string(o)
}

func (o Objective) IsValid() bool {
	switch o {
	case ObjectiveEngagement, ObjectiveAuthority, ObjectiveSales:
		return true
	}
	return false
}

// PostStatus is the lifecycle state of a post. Transitions are intentionally
// unrestricted beyond enum membership.
type PostStatus string

const (
	StatusDraft     PostStatus = "Draft"
	StatusScheduled PostStatus = "Scheduled"
	StatusPublished PostStatus = "Published"
)

func (s PostStatus) String() string {
	return string(s)
}

func (s PostStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusPublished:
		return true
	}
	return false
}

// Creator profile enum values. Stored as-is; Portuguese labels for prompt
// rendering live in the generation package.

var validPositionings = map[string]bool{
	"educator": true, "authority": true, "inspirational": true, "seller": true,
}

var validAudienceLevels = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true,
}

var validOfferTypes = map[string]bool{
	"product": true, "service": true, "free_content": true, "none": true,
}

var validContentFocuses = map[string]bool{
	"authority": true, "relationship": true, "sales": true,
}

var validTones = map[string]bool{
	"professional": true, "casual": true, "provocative": true, "educational": true,
}

var validContentLengths = map[string]bool{
	"short": true, "medium": true, "long": true,
}

var validPrimaryGoals = map[string]bool{
	"grow_audience": true, "generate_leads": true, "sell": true,
}

var validPostFrequencies = map[string]bool{
	"daily": true, "few_times_week": true, "weekly": true,
}

func IsValidPositioning(v string) bool   { return validPositionings[v] }
func IsValidAudienceLevel(v string) bool { return validAudienceLevels[v] }
func IsValidOfferType(v string) bool     { return validOfferTypes[v] }
func IsValidContentFocus(v string) bool  { return validContentFocuses[v] }
func IsValidTone(v string) bool          { return validTones[v] }
func IsValidContentLength(v string) bool { return validContentLengths[v] }
func IsValidPrimaryGoal(v string) bool   { return validPrimaryGoals[v] }
func IsValidPostFrequency(v string) bool { return validPostFrequencies[v] }
