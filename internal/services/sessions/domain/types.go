// Package domain defines the core types and interfaces for the sessions service
package domain

import "time"

// Status is the session lifecycle state
type Status string

// Session lifecycle states
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Session is one coding session reported by an editor plugin
type Session struct {
	ID              string     `db:"id"                json:"id"`
	UserID          string     `db:"user_id"           json:"userId"`
	Editor          string     `db:"editor"            json:"editor,omitempty"`
	ProjectName     string     `db:"project_name"      json:"projectName,omitempty"`
	Language        string     `db:"language"          json:"language,omitempty"`
	Status          Status     `db:"status"            json:"status"`
	StartedAt       time.Time  `db:"started_at"        json:"startedAt"`
	EndedAt         *time.Time `db:"ended_at"          json:"endedAt,omitempty"`
	TotalKeystrokes int        `db:"total_keystrokes"  json:"totalKeystrokes"`
	TotalPastes     int        `db:"total_pastes"      json:"totalPastes"`
	TotalEdits      int        `db:"total_edits"       json:"totalEdits"`
	ActiveSeconds   int        `db:"active_seconds"    json:"activeDuration"`
	IdleSeconds     int        `db:"idle_seconds"      json:"idleDuration"`
	FilesEdited     int        `db:"files_edited"      json:"filesEdited"`
	LanguagesUsed   []string   `db:"languages_used"    json:"languagesUsed,omitempty"`
}

// StartInput opens a session
type StartInput struct {
	UserID      string `json:"userId"                validate:"required,max=128"`
	Editor      string `json:"editor,omitempty"      validate:"max=64"`
	ProjectName string `json:"projectName,omitempty" validate:"max=256"`
	Language    string `json:"language,omitempty"    validate:"max=64"`
}

// UpdateInput carries the plugin's running totals.
// Totals are cumulative for the session, not deltas
type UpdateInput struct {
	TotalKeystrokes int      `json:"totalKeystrokes" validate:"min=0"`
	TotalPastes     int      `json:"totalPastes"     validate:"min=0"`
	TotalEdits      int      `json:"totalEdits"      validate:"min=0"`
	ActiveDuration  int      `json:"activeDuration"  validate:"min=0"`
	IdleDuration    int      `json:"idleDuration"    validate:"min=0"`
	FilesEdited     int      `json:"filesEdited"     validate:"min=0"`
	LanguagesUsed   []string `json:"languagesUsed,omitempty" validate:"max=64,dive,max=64"`
}

// ListInput pages sessions for one user
type ListInput struct {
	UserID string
	Limit  int
	Offset int
}
