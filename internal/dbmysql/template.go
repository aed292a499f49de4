package dbmysql

import (
	"time"
)

// SavedTemplate is a named snapshot of a generated content bundle. Owned by
// the account, deletable, otherwise immutable.
type SavedTemplate struct {
	TemplateID string `gorm:"primaryKey;column:template_id;size:36" json:"id"`
	AccountID  uint64 `gorm:"column:account_id;index;not null" json:"-"`

	Name      string `gorm:"column:name;size:200;not null" json:"name"`
	Platform  string `gorm:"column:platform;size:20;not null" json:"platform"`
	Objective string `gorm:"column:objective;size:20;not null" json:"objective"`
	Topic     string `gorm:"column:topic;size:500" json:"topic"`

	Hook     string   `gorm:"column:hook;size:500" json:"hook"`
	Body     string   `gorm:"column:body;type:text" json:"body"`
	CTA      string   `gorm:"column:cta;size:500" json:"cta"`
	Tip      string   `gorm:"column:tip;size:500" json:"tip"`
	Hashtags []string `gorm:"column:hashtags;type:text;serializer:json" json:"hashtags"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
