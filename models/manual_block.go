package models

import "time"

// BlockEntry is one staff-declared unavailable range within a day's block
// document.
type BlockEntry struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// ManualBlock holds all staff-declared unavailable intervals for one date.
// Staff replace the document wholesale; the availability engine only reads
// it.
type ManualBlock struct {
	Date      string       `bson:"date" json:"date"` // e.g., "2025-02-25"
	Intervals []BlockEntry `bson:"intervals" json:"intervals"`
	SetBy     string       `bson:"set_by" json:"setBy"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updatedAt"`
}
