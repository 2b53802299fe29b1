package detection

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SignalSet is the per-signal breakdown. It marshals as a JSON object whose
// keys appear in evaluation order, keeping output stable and diffable
type SignalSet []SignalResult

// Get returns the named signal, if present
func (s SignalSet) Get(name string) (SignalResult, bool) {
	for _, sr := range s {
		if sr.Name == name {
			return sr, true
		}
	}
	return SignalResult{}, false
}

// MarshalJSON emits an object keyed by signal name, preserving slice order
func (s SignalSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sr := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(sr.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(sr)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object form back, preserving document order
func (s *SignalSet) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("signal set: expected object, got %v", tok)
	}
	out := SignalSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("signal set: non-string key %v", keyTok)
		}
		var sr SignalResult
		if err := dec.Decode(&sr); err != nil {
			return err
		}
		if sr.Name == "" {
			sr.Name = name
		}
		out = append(out, sr)
	}
	*s = out
	return nil
}

// Result is the engine's final output. Field names, score ranges and the
// verdict values are the compatibility contract persistence and UI rely on.
// Created fresh per invocation and never mutated after construction
type Result struct {
	AILikelihoodScore int       `json:"aiLikelihoodScore"`
	Confidence        int       `json:"confidence"`
	Verdict           Verdict   `json:"verdict"`
	Signals           SignalSet `json:"signals"`
	Recommendation    string    `json:"recommendation"`
	EngineVersion     int       `json:"engineVersion"`
	Approximate       bool      `json:"approximate,omitempty"`
}

// Recommendation bands. The table is deterministic; no randomness and no
// time dependence
const (
	recommendBandHigh = 70
	recommendBandLow  = 40
)

func recommendationFor(score int) string {
	switch {
	case score > recommendBandHigh:
		return "Strong indicators of AI-generated code. Manual review of this session is recommended."
	case score >= recommendBandLow:
		return "Mixed behavioral signals. Spot-check this session before relying on it."
	default:
		return "Typing behavior is consistent with hand-written code."
	}
}
