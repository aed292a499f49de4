package dbmysql

import (
	"time"
)

// Post is one planned piece of content. Topic, content and platform are
// immutable after creation; only status and metrics mutate in place.
type Post struct {
	PostID    string `gorm:"primaryKey;column:post_id;size:36" json:"id"`
	AccountID uint64 `gorm:"column:account_id;index;not null" json:"-"`

	Platform  string `gorm:"column:platform;size:20;not null" json:"platform"`
	Objective string `gorm:"column:objective;size:20;not null" json:"objective"`
	Topic     string `gorm:"column:topic;size:500;not null" json:"topic"`

	Hook     string   `gorm:"column:hook;size:500" json:"hook"`
	Body     string   `gorm:"column:body;type:text" json:"body"`
	CTA      string   `gorm:"column:cta;size:500" json:"cta"`
	Tip      string   `gorm:"column:tip;size:500" json:"tip"`
	Hashtags []string `gorm:"column:hashtags;type:text;serializer:json" json:"hashtags"`

	Status        string    `gorm:"column:status;size:20;not null;default:'Draft'" json:"status"`
	ScheduledDate time.Time `gorm:"column:scheduled_date" json:"scheduled_date"`

	Likes       int  `gorm:"column:likes;default:0" json:"likes"`
	Comments    int  `gorm:"column:comments;default:0" json:"comments"`
	Shares      *int `gorm:"column:shares" json:"shares,omitempty"`
	Impressions *int `gorm:"column:impressions" json:"impressions,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
