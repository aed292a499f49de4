package dbmysql

import (
	"time"
)

// CreatorProfile holds the single current profile for an account. Saving
// replaces the row rather than appending a new one.
type CreatorProfile struct {
	ProfileID uint64 `gorm:"primaryKey;column:profile_id;autoIncrement" json:"-"`
	AccountID uint64 `gorm:"column:account_id;uniqueIndex;not null" json:"-"`

	Role            string `gorm:"column:role;size:200" json:"role"`
	ExperienceYears string `gorm:"column:experience_years;size:30" json:"experience_years"`
	Positioning     string `gorm:"column:positioning;size:20" json:"positioning"`

	AudienceProfile string `gorm:"column:audience_profile;size:500" json:"audience_profile"`
	AudienceLevel   string `gorm:"column:audience_level;size:20" json:"audience_level"`
	MainPain        string `gorm:"column:main_pain;size:500" json:"main_pain"`
	MainDesire      string `gorm:"column:main_desire;size:500" json:"main_desire"`

	OfferType    string `gorm:"column:offer_type;size:20" json:"offer_type"`
	MainBenefit  string `gorm:"column:main_benefit;size:500" json:"main_benefit"`
	ContentFocus string `gorm:"column:content_focus;size:20" json:"content_focus"`

	ToneOfVoice    string   `gorm:"column:tone_of_voice;size:20" json:"tone_of_voice"`
	ContentLength  string   `gorm:"column:content_length;size:10" json:"content_length"`
	StyleReference string   `gorm:"column:style_reference;size:500" json:"style_reference"`
	PrimaryGoal    string   `gorm:"column:primary_goal;size:20" json:"primary_goal"`
	MainChannels   []string `gorm:"column:main_channels;type:text;serializer:json" json:"main_channels"`
	PostFrequency  string   `gorm:"column:post_frequency;size:20" json:"post_frequency"`

	CompletedAt time.Time `gorm:"column:completed_at" json:"completed_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
