package detection

// EngineVersion stamps every Result so stored scores can be invalidated and
// re-run when the signal set or calibration changes
const EngineVersion = 3

// Config bundles the engine's tunables. Zero values mean defaults throughout
type Config struct {
	Extract    ExtractConfig
	Weights    Weights
	Thresholds Thresholds
}

type registeredScorer struct {
	name string
	fn   scoreFunc
}

// Engine runs the scoring pipeline. Safe for concurrent use: it holds only
// immutable configuration and every evaluation works on its own inputs
type Engine struct {
	cfg     Config
	scorers []registeredScorer
}

// New builds an Engine with the standard signal set in evaluation order
func New(cfg Config) *Engine {
	if cfg.Weights == nil {
		cfg.Weights = DefaultWeights()
	}
	if cfg.Thresholds == (Thresholds{}) {
		cfg.Thresholds = DefaultThresholds()
	}
	return &Engine{
		cfg: cfg,
		scorers: []registeredScorer{
			{SignalTypingRhythm, scoreRhythm},
			{SignalPasteRatio, scorePasteRatio},
			{SignalBurstPattern, scoreBurstPattern},
			{SignalBackspaceRatio, scoreBackspace},
			{SignalTypingVelocity, scoreVelocity},
		},
	}
}

// Evaluate extracts features from an ordered event log and scores them
func (e *Engine) Evaluate(events []Event, durationSeconds float64) (Result, error) {
	f, err := Extract(events, durationSeconds, e.cfg.Extract)
	if err != nil {
		return Result{}, err
	}
	return e.EvaluateFeatures(f)
}

// EvaluateFeatures scores an already-extracted feature set. Signals run
// independently; missing data per signal yields the neutral score, never an
// error. Only malformed features fail
func (e *Engine) EvaluateFeatures(f Features) (Result, error) {
	if err := f.validate(); err != nil {
		return Result{}, err
	}

	signals := make(SignalSet, 0, len(e.scorers))
	sufficient := make([]bool, 0, len(e.scorers))
	for _, s := range e.scorers {
		score, desc, ok := s.fn(f)
		if !ok {
			score = neutralScore
		}
		signals = append(signals, SignalResult{
			Name:        s.name,
			Score:       score,
			Verdict:     e.cfg.Thresholds.Verdict(score),
			Description: desc,
		})
		sufficient = append(sufficient, ok)
	}

	score, confidence := aggregate(signals, sufficient, e.cfg.Weights, f.Approximate)

	return Result{
		AILikelihoodScore: score,
		Confidence:        confidence,
		Verdict:           e.cfg.Thresholds.Verdict(score),
		Signals:           signals,
		Recommendation:    recommendationFor(score),
		EngineVersion:     EngineVersion,
		Approximate:       f.Approximate,
	}, nil
}
