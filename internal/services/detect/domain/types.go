// Package domain defines the core types and interfaces for the detect service
package domain

import (
	"time"

	"devskill/internal/core/detection"
)

// Mode says which telemetry the engine saw
type Mode string

// Detection modes
const (
	// ModeFull means the engine scored a raw event stream
	ModeFull Mode = "full"
	// ModeApproximate means only aggregate counters were available
	ModeApproximate Mode = "approximate"
)

// Detection is one persisted engine run for a session
type Detection struct {
	SessionID      string              `json:"sessionId"`
	Score          int                 `json:"aiLikelihoodScore"`
	Confidence     int                 `json:"confidence"`
	Verdict        detection.Verdict   `json:"verdict"`
	Signals        detection.SignalSet `json:"signals"`
	Recommendation string              `json:"recommendation"`
	EngineVersion  int                 `json:"engineVersion"`
	Mode           Mode                `json:"mode"`
	ScoredAt       time.Time           `json:"scoredAt"`
}

// AnalyzeInput is the degraded path: aggregate counters plus an optional
// code sample, no event stream. SessionID is optional; when present the
// result is persisted against it
type AnalyzeInput struct {
	SessionID       string  `json:"sessionId,omitempty" validate:"max=64"`
	Code            string  `json:"code,omitempty"      validate:"max=262144"`
	TotalKeystrokes int     `json:"totalKeystrokes"     validate:"min=0"`
	TotalPastes     int     `json:"totalPastes"         validate:"min=0"`
	DurationSeconds float64 `json:"durationSeconds"     validate:"min=0"`
}

// Analysis is the degraded-path response
type Analysis struct {
	Score          int                 `json:"aiLikelihoodScore"`
	Confidence     int                 `json:"confidence"`
	Verdict        detection.Verdict   `json:"verdict"`
	Signals        detection.SignalSet `json:"signals"`
	Recommendation string              `json:"recommendation"`
	EngineVersion  int                 `json:"engineVersion"`
	Mode           Mode                `json:"mode"`
	SkillLevel     string              `json:"skillLevel,omitempty"`
}

// RescoreStats summarizes one batch rescore run
type RescoreStats struct {
	Sessions int `json:"sessions"`
	Scored   int `json:"scored"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}
