package model

import "time"

// Attendance is one day's sheet. Staff holds snapshots of the members marked
// present, so later staff edits or deletions do not rewrite old sheets.
type Attendance struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	Staff     []Staff   `json:"staff"`
	CreatedBy string    `json:"created_by"` // account email
	CreatedAt time.Time `json:"created_at"`
}
