package detection

import "math"

// Weights maps signal name to its share of the composite score. Shares are
// renormalized over the signals that produced sufficient data, so a missing
// signal redistributes its weight instead of dragging the composite toward
// zero. A name absent from the map contributes nothing
type Weights map[string]float64

// DefaultWeights reflects relative evidence strength: rhythm and paste
// behavior separate humans from generators far better than raw velocity
func DefaultWeights() Weights {
	return Weights{
		SignalTypingRhythm:   0.30,
		SignalPasteRatio:     0.25,
		SignalBurstPattern:   0.20,
		SignalBackspaceRatio: 0.15,
		SignalTypingVelocity: 0.10,
	}
}

// aggregate combines per-signal scores into the composite likelihood and a
// confidence figure. Confidence reflects evidence volume only: the share of
// registered signals that had sufficient data, halved when the features were
// synthesized from aggregate counters. Zero sufficient signals yields the
// fully uncertain composite (50) at confidence 0
func aggregate(signals []SignalResult, sufficient []bool, w Weights, approximate bool) (score, confidence int) {
	var (
		weighted float64
		totalW   float64
		nSuff    int
	)
	for i, s := range signals {
		if !sufficient[i] {
			continue
		}
		nSuff++
		wt := w[s.Name]
		weighted += wt * float64(s.Score)
		totalW += wt
	}

	if nSuff == 0 || totalW <= 0 {
		return neutralScore, 0
	}

	score = clampScore(int(math.Round(weighted / totalW)))

	confidence = int(math.Round(100 * float64(nSuff) / float64(len(signals))))
	if approximate {
		confidence /= 2
	}
	return score, clampScore(confidence)
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
