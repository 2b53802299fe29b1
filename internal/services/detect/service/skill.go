package service

import "strings"

// Skill levels reported on the analyze path
const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

// token lists are ordered most-advanced first; first hit wins
var (
	advancedTokens = []string{
		"class ", "lambda", "interface ", "async ", "yield ",
	}
	intermediateTokens = []string{
		"def ", "import ", "func ", "function ", "require(",
	}
)

// skillLevel is a crude construct-presence heuristic over a code sample.
// It exists for the degraded analyze path where no telemetry history is
// available; empty input reports no level at all
func skillLevel(code string) string {
	if strings.TrimSpace(code) == "" {
		return ""
	}
	for _, t := range advancedTokens {
		if strings.Contains(code, t) {
			return SkillAdvanced
		}
	}
	for _, t := range intermediateTokens {
		if strings.Contains(code, t) {
			return SkillIntermediate
		}
	}
	return SkillBeginner
}
