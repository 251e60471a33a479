package models

import "time"

// SavedQuote is the persisted snapshot of a quoted profile, one row per
// client key. The profile and its frozen config are stored as a JSON blob:
// the store is a key-value lookup, never queried by item fields.
type SavedQuote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientKey string    `gorm:"uniqueIndex;size:512;not null" json:"clientKey"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Address   string    `gorm:"size:255" json:"address"`
	SavedAt   time.Time `gorm:"not null" json:"savedAt"`
	Snapshot  string    `gorm:"type:text;not null" json:"-"`
}

// QuoteSnapshot is the decoded form of SavedQuote.Snapshot: a deep copy of
// the profile as it was saved plus the config it was priced with. Editing a
// live profile never touches a snapshot taken earlier.
type QuoteSnapshot struct {
	Profile ClientProfile `json:"profile"`
	Config  QuoteConfig   `json:"config"`
	SavedAt time.Time     `json:"savedAt"`
}
