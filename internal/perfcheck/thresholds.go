// Package perfcheck runs the storefront performance validation battery and
// scores each metric against fixed good / needs-improvement / poor bands.
package perfcheck

// Score is a three-level metric rating.
type Score string

const (
	ScoreGood             Score = "good"
	ScoreNeedsImprovement Score = "needs-improvement"
	ScorePoor             Score = "poor"
)

// points maps a score onto the 3/2/1 scale used for averaging.
func (s Score) points() int {
	switch s {
	case ScoreGood:
		return 3
	case ScoreNeedsImprovement:
		return 2
	default:
		return 1
	}
}

// Threshold defines the upper bounds of the good and needs-improvement
// bands. Values above Poor rate poor.
type Threshold struct {
	Good float64 `json:"good"`
	Poor float64 `json:"poor"`
}

// Rate scores a value against the threshold. Lower is always better.
func (t Threshold) Rate(value float64) Score {
	switch {
	case value <= t.Good:
		return ScoreGood
	case value <= t.Poor:
		return ScoreNeedsImprovement
	default:
		return ScorePoor
	}
}

// Thresholds holds the per-metric bands. Durations are milliseconds,
// image size is kilobytes, CLS is unitless.
type Thresholds struct {
	LCP         Threshold
	FID         Threshold
	CLS         Threshold
	PageLoad    Threshold
	DOMReady    Threshold
	FirstPaint  Threshold
	APIResponse Threshold
	ImageSize   Threshold
	CacheSpeed  Threshold
	RenderTime  Threshold
}

// DefaultThresholds returns the fixed battery bands.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LCP:         Threshold{Good: 2500, Poor: 4000},
		FID:         Threshold{Good: 100, Poor: 300},
		CLS:         Threshold{Good: 0.1, Poor: 0.25},
		PageLoad:    Threshold{Good: 3000, Poor: 5000},
		DOMReady:    Threshold{Good: 1500, Poor: 3000},
		FirstPaint:  Threshold{Good: 1000, Poor: 2000},
		APIResponse: Threshold{Good: 500, Poor: 2000},
		ImageSize:   Threshold{Good: 200, Poor: 500},
		CacheSpeed:  Threshold{Good: 10, Poor: 50},
		RenderTime:  Threshold{Good: 16, Poor: 50},
	}
}

// overall averages a set of scores onto the three-level scale. An empty
// set rates good: nothing measured means nothing failed.
func overall(scores []Score) Score {
	if len(scores) == 0 {
		return ScoreGood
	}
	total := 0
	for _, s := range scores {
		total += s.points()
	}
	avg := float64(total) / float64(len(scores))
	switch {
	case avg >= 2.5:
		return ScoreGood
	case avg >= 1.5:
		return ScoreNeedsImprovement
	default:
		return ScorePoor
	}
}
