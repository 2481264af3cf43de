package perfcheck

import "testing"

func TestThresholdRate(t *testing.T) {
	lcp := DefaultThresholds().LCP

	cases := []struct {
		value float64
		want  Score
	}{
		{1200, ScoreGood},
		{2500, ScoreGood},
		{3000, ScoreNeedsImprovement},
		{4000, ScoreNeedsImprovement},
		{4001, ScorePoor},
	}
	for _, tc := range cases {
		if got := lcp.Rate(tc.value); got != tc.want {
			t.Fatalf("Rate(%v): want %s, got %s", tc.value, tc.want, got)
		}
	}
}

func TestOverallGrading(t *testing.T) {
	cases := []struct {
		name   string
		scores []Score
		want   Score
	}{
		{"all good", []Score{ScoreGood, ScoreGood}, ScoreGood},
		{"avg 2.5 rounds to good", []Score{ScoreGood, ScoreNeedsImprovement}, ScoreGood},
		{"middle band", []Score{ScoreNeedsImprovement, ScoreNeedsImprovement}, ScoreNeedsImprovement},
		{"avg 2.0 stays middle", []Score{ScoreGood, ScorePoor}, ScoreNeedsImprovement},
		{"all poor", []Score{ScorePoor, ScorePoor}, ScorePoor},
		{"empty set", nil, ScoreGood},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := overall(tc.scores); got != tc.want {
				t.Fatalf("want %s, got %s", tc.want, got)
			}
		})
	}
}

func TestSummarizeFlagsPoorSections(t *testing.T) {
	sections := map[string]SectionResult{
		"apiPerformance": newSection(map[string]MetricScore{
			"apiResponse": {Value: 3000, Score: ScorePoor},
		}),
		"basicMetrics": newSection(map[string]MetricScore{
			"pageLoad": {Value: 1000, Score: ScoreGood},
		}),
	}

	s := summarize(sections)
	if s.Passed != 1 || s.Failed != 1 {
		t.Fatalf("want 1 passed 1 failed, got %d/%d", s.Passed, s.Failed)
	}
	if len(s.CriticalIssues) != 1 || s.CriticalIssues[0] != "apiPerformance: poor" {
		t.Fatalf("unexpected critical issues: %v", s.CriticalIssues)
	}
	if len(s.Recommendations) == 0 {
		t.Fatal("failing api latency should yield a recommendation")
	}
}
