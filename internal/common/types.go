package common

import "time"

// CreatorProfile is the API-facing profile shape. It is what clients send to
// POST /api/profile and optionally embed in generation requests; the storage
// row lives in dbmysql and is converted by the profile service.
type CreatorProfile struct {
	Role            string       `json:"role"`
	ExperienceYears string       `json:"experienceYears"`
	Positioning     string       `json:"positioning"`
	Audience        AudienceInfo `json:"audience"`
	Offer           OfferInfo    `json:"offer"`
	ToneOfVoice     string       `json:"toneOfVoice"`
	ContentLength   string       `json:"contentLength"`
	StyleReference  string       `json:"styleReference,omitempty"`
	PrimaryGoal     string       `json:"primaryGoal"`
	MainChannels    []Platform   `json:"mainChannels"`
	PostFrequency   string       `json:"postFrequency"`
	CompletedAt     time.Time    `json:"completedAt"`
}

type AudienceInfo struct {
	Profile    string `json:"profile"`
	Level      string `json:"level"`
	MainPain   string `json:"mainPain"`
	MainDesire string `json:"mainDesire"`
}

type OfferInfo struct {
	Type         string `json:"type"`
	MainBenefit  string `json:"mainBenefit"`
	ContentFocus string `json:"contentFocus"`
}

// GeneratedContent is the validated result of one generation call. Hashtags
// are bare tag strings without the leading '#'.
type GeneratedContent struct {
	Hook     string   `json:"hook"`
	Body     string   `json:"body"`
	CTA      string   `json:"cta"`
	Tip      string   `json:"tip"`
	Hashtags []string `json:"hashtags"`
}
