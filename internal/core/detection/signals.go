package detection

import (
	"fmt"
	"math"
)

// Signal names, in evaluation order. Stable keys in the Result signals map
const (
	SignalTypingRhythm   = "typing_rhythm"
	SignalPasteRatio     = "paste_ratio"
	SignalBurstPattern   = "burst_pattern"
	SignalBackspaceRatio = "backspace_ratio"
	SignalTypingVelocity = "typing_velocity"
)

// SignalResult is the output of one scorer. Score is 0..100 toward
// ai_likely; Description references the computed statistic so the composite
// stays auditable
type SignalResult struct {
	Name        string  `json:"name"`
	Score       int     `json:"score"`
	Verdict     Verdict `json:"verdict"`
	Description string  `json:"description"`
}

// neutralScore is returned whenever a scorer lacks sufficient data. Neutral
// maps to suspicious under the default thresholds, which is intended: thin
// telemetry should not read as a clean pass
const neutralScore = 50

// scoreFunc maps Features to a 0..100 score. ok=false means insufficient
// data; the engine substitutes the neutral score and keeps the description
type scoreFunc func(Features) (score int, desc string, ok bool)

// Rhythm scorer calibration. Scripted input replays with near-uniform
// intervals (cv at or under rhythmLowCV); natural typing with thinking
// pauses lands at rhythmHighCV and above
const (
	minRhythmSamples = 20
	rhythmLowCV      = 0.10
	rhythmHighCV     = 0.40
	rhythmTopScore   = 95
	rhythmFloorScore = 10
)

func scoreRhythm(f Features) (int, string, bool) {
	n := len(f.InterKeyMs)
	if n < minRhythmSamples {
		return 0, fmt.Sprintf(
			"insufficient data: %d inter-key intervals recorded, %d needed for rhythm analysis",
			n, minRhythmSamples,
		), false
	}
	mean, sd := meanStddev(f.InterKeyMs)
	if mean <= 0 {
		return 0, "insufficient data: degenerate interval distribution", false
	}
	cv := sd / mean

	var score int
	switch {
	case cv <= rhythmLowCV:
		score = rhythmTopScore
	case cv >= rhythmHighCV:
		score = rhythmFloorScore
	default:
		span := float64(rhythmTopScore - rhythmFloorScore)
		score = int(math.Round(rhythmTopScore - (cv-rhythmLowCV)/(rhythmHighCV-rhythmLowCV)*span))
	}
	return score, fmt.Sprintf(
		"keystroke intervals vary by %.0f%% of the mean (%.0fms) across %d samples",
		cv*100, mean, n,
	), true
}

func scorePasteRatio(f Features) (int, string, bool) {
	if f.Approximate && f.PasteCount > 0 {
		return 0, "insufficient data: paste sizes were not recorded", false
	}
	total := f.PastedChars + f.TypedChars
	if total == 0 {
		return 0, "insufficient data: no characters typed or pasted", false
	}
	ratio := float64(f.PastedChars) / float64(total)
	score := int(math.Round(ratio * 100))
	return score, fmt.Sprintf(
		"%.0f%% of %d characters arrived via %d paste event(s) rather than typing",
		ratio*100, total, f.PasteCount,
	), true
}

func scoreBurstPattern(f Features) (int, string, bool) {
	if len(f.Bursts) == 0 || f.DurationSeconds <= 0 {
		return 0, "insufficient data: no keystroke bursts within a timed session", false
	}

	// The dominant burst is the one producing the most keystrokes. A burst
	// holding most of the session's output inside a small slice of its
	// duration is the paste-then-edit shape
	dominant := f.Bursts[0]
	for _, b := range f.Bursts[1:] {
		if b.Keystrokes > dominant.Keystrokes {
			dominant = b
		}
	}
	share := float64(dominant.Keystrokes) / float64(f.KeystrokeCount)
	spanShare := float64(dominant.SpanMs()) / (f.DurationSeconds * 1000)
	if spanShare > 1 {
		spanShare = 1
	}
	intensity := share * (1 - spanShare)
	score := int(math.Round(intensity * 100))
	return score, fmt.Sprintf(
		"largest burst produced %.0f%% of keystrokes in %.0f%% of the session",
		share*100, spanShare*100,
	), true
}

// Backspace scorer calibration. Near-zero correction over a non-trivial
// session is mechanical; very high ratios read as artificial noise injection
// rather than extra-human sloppiness
const (
	minBackspaceKeys    = 10
	backspaceHumanRatio = 0.08
	backspaceNoiseRatio = 0.30
	backspaceTopScore   = 90
	backspaceFloorScore = 5
	backspaceNoiseScore = 55
)

func scoreBackspace(f Features) (int, string, bool) {
	if f.Approximate {
		return 0, "insufficient data: corrections were not recorded", false
	}
	if f.KeystrokeCount < minBackspaceKeys {
		return 0, fmt.Sprintf(
			"insufficient data: %d keystrokes recorded, %d needed for correction analysis",
			f.KeystrokeCount, minBackspaceKeys,
		), false
	}
	r := float64(f.BackspaceCount) / float64(f.KeystrokeCount)
	var score int
	switch {
	case r >= backspaceNoiseRatio:
		score = backspaceNoiseScore
	case r >= backspaceHumanRatio:
		score = backspaceFloorScore
	default:
		score = int(math.Round(backspaceTopScore * (1 - r/backspaceHumanRatio)))
	}
	return score, fmt.Sprintf(
		"%d corrections over %d keystrokes (%.1f%% backspace ratio)",
		f.BackspaceCount, f.KeystrokeCount, r*100,
	), true
}

// Velocity scorer calibration: sustained keystroke rates above what humans
// type point at replayed or injected input
const (
	velocityFastCPS  = 5.0
	velocityBriskCPS = 3.0
	velocityFast     = 85
	velocityBrisk    = 45
	velocityCalm     = 12
)

func scoreVelocity(f Features) (int, string, bool) {
	if f.DurationSeconds <= 0 || f.KeystrokeCount == 0 {
		return 0, "insufficient data: no keystrokes within a timed session", false
	}
	cps := float64(f.KeystrokeCount) / f.DurationSeconds
	var score int
	switch {
	case cps > velocityFastCPS:
		score = velocityFast
	case cps > velocityBriskCPS:
		score = velocityBrisk
	default:
		score = velocityCalm
	}
	return score, fmt.Sprintf(
		"%.1f keystrokes per second sustained over %.0fs",
		cps, f.DurationSeconds,
	), true
}

// meanStddev returns the mean and population standard deviation
func meanStddev(xs []float64) (mean, sd float64) {
	n := float64(len(xs))
	if n == 0 {
		return 0, 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean = sum / n
	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / n)
}
