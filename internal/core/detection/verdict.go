package detection

// Verdict is the three-way classification shared by every signal and the
// composite score. The string values are the compatibility contract with
// consumers; do not rename
type Verdict string

const (
	// VerdictHuman indicates behavior consistent with hand-typed code
	VerdictHuman Verdict = "human"
	// VerdictSuspicious indicates mixed or insufficient evidence
	VerdictSuspicious Verdict = "suspicious"
	// VerdictAILikely indicates strong indicators of generated code
	VerdictAILikely Verdict = "ai_likely"
)

// Thresholds holds the two score boundaries every verdict derivation uses.
// Scorers never invent their own boundaries
type Thresholds struct {
	Suspicious int
	AILikely   int
}

// DefaultThresholds returns the calibrated boundaries
func DefaultThresholds() Thresholds {
	return Thresholds{Suspicious: 40, AILikely: 70}
}

// Verdict classifies a score. A score landing exactly on a boundary takes
// the more severe verdict so detection errs toward human review
func (t Thresholds) Verdict(score int) Verdict {
	switch {
	case score >= t.AILikely:
		return VerdictAILikely
	case score >= t.Suspicious:
		return VerdictSuspicious
	default:
		return VerdictHuman
	}
}
