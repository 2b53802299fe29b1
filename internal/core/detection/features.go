package detection

import "fmt"

// Default extraction knobs. Tunable via ExtractConfig; zero values fall back
// to these
const (
	// DefaultBurstGapMs closes a burst once the gap since the previous
	// keystroke exceeds it
	DefaultBurstGapMs = 2000
	// DefaultPasteCoalesceMs drops keystrokes arriving this soon after a
	// paste so programmatic insertion echoes are not counted as typing
	DefaultPasteCoalesceMs = 150
)

// Burst is a contiguous run of keystrokes whose inter-key gaps never exceed
// the configured gap threshold
type Burst struct {
	StartMs    int64
	EndMs      int64
	Keystrokes int
}

// SpanMs is the wall time the burst covered
func (b Burst) SpanMs() int64 { return b.EndMs - b.StartMs }

// Features is the derived, read-only per-session aggregate the scorers
// consume. All counts are non-negative. Approximate marks features
// synthesized from aggregate counters with no per-event timing; scorers
// that need event-level data stay neutral on approximate features
type Features struct {
	DurationSeconds float64

	KeystrokeCount int
	TypedChars     int
	BackspaceCount int

	PasteCount        int
	PastedChars       int
	LargestPasteChars int

	InterKeyMs []float64
	Bursts     []Burst

	Approximate bool
}

func (f Features) validate() error {
	if f.DurationSeconds < 0 {
		return fmt.Errorf("%w: negative duration %.2fs", ErrInvalidInput, f.DurationSeconds)
	}
	for name, n := range map[string]int{
		"keystroke count": f.KeystrokeCount,
		"typed chars":     f.TypedChars,
		"backspace count": f.BackspaceCount,
		"paste count":     f.PasteCount,
		"pasted chars":    f.PastedChars,
	} {
		if n < 0 {
			return fmt.Errorf("%w: negative %s %d", ErrInvalidInput, name, n)
		}
	}
	return nil
}

// ExtractConfig tunes feature extraction. Zero values mean defaults
type ExtractConfig struct {
	BurstGapMs      int64
	PasteCoalesceMs int64
}

// Extract turns an ordered event log into Features. Events must be sorted by
// timestamp ascending; a regression returns ErrInvalidInput. Pure function,
// no side effects
func Extract(events []Event, durationSeconds float64, cfg ExtractConfig) (Features, error) {
	if durationSeconds < 0 {
		return Features{}, fmt.Errorf("%w: negative duration %.2fs", ErrInvalidInput, durationSeconds)
	}
	if err := validateEvents(events); err != nil {
		return Features{}, err
	}

	gap := cfg.BurstGapMs
	if gap <= 0 {
		gap = DefaultBurstGapMs
	}
	coalesce := cfg.PasteCoalesceMs
	if coalesce <= 0 {
		coalesce = DefaultPasteCoalesceMs
	}

	f := Features{DurationSeconds: durationSeconds}

	var (
		prevKeyMs   int64
		haveKey     bool
		lastPasteMs int64
		havePaste   bool

		cur  Burst
		curN int
	)
	flush := func() {
		if curN > 0 {
			cur.Keystrokes = curN
			f.Bursts = append(f.Bursts, cur)
			curN = 0
		}
	}

	for _, ev := range events {
		switch ev.Kind {
		case EventPaste:
			f.PasteCount++
			f.PastedChars += ev.SizeChars
			if ev.SizeChars > f.LargestPasteChars {
				f.LargestPasteChars = ev.SizeChars
			}
			lastPasteMs, havePaste = ev.AtMs, true

		case EventDelete:
			f.BackspaceCount++

		case EventKeystroke:
			if havePaste && ev.AtMs-lastPasteMs <= coalesce {
				// programmatic insertion echo, not typing
				continue
			}
			chars := ev.SizeChars
			if chars <= 0 {
				chars = 1
			}
			f.TypedChars += chars

			if haveKey {
				d := ev.AtMs - prevKeyMs
				f.InterKeyMs = append(f.InterKeyMs, float64(d))
				if d > gap {
					flush()
					cur = Burst{StartMs: ev.AtMs, EndMs: ev.AtMs}
					curN = 1
				} else {
					cur.EndMs = ev.AtMs
					curN++
				}
			} else {
				cur = Burst{StartMs: ev.AtMs, EndMs: ev.AtMs}
				curN = 1
			}
			f.KeystrokeCount++
			prevKeyMs, haveKey = ev.AtMs, true

		case EventIdle:
			// carries no content; the gap check already splits bursts
		}
	}
	flush()

	return f, nil
}

// Approximate synthesizes Features from aggregate counters for collectors
// that report no per-event telemetry. Only count-based signals can fire on
// the result, so downstream confidence drops accordingly
func Approximate(totalKeystrokes, totalPastes int, durationSeconds float64) (Features, error) {
	if totalKeystrokes < 0 {
		return Features{}, fmt.Errorf("%w: negative keystroke count %d", ErrInvalidInput, totalKeystrokes)
	}
	if totalPastes < 0 {
		return Features{}, fmt.Errorf("%w: negative paste count %d", ErrInvalidInput, totalPastes)
	}
	if durationSeconds < 0 {
		return Features{}, fmt.Errorf("%w: negative duration %.2fs", ErrInvalidInput, durationSeconds)
	}
	return Features{
		DurationSeconds: durationSeconds,
		KeystrokeCount:  totalKeystrokes,
		TypedChars:      totalKeystrokes,
		PasteCount:      totalPastes,
		Approximate:     true,
	}, nil
}
