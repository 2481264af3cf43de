package perfcheck

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// MetricScore is one measured value with its rating.
type MetricScore struct {
	Value     float64   `json:"value"`
	Score     Score     `json:"score"`
	Threshold Threshold `json:"threshold"`
}

// SectionResult groups the metrics of one battery section.
type SectionResult struct {
	Metrics map[string]MetricScore `json:"metrics"`
	Overall Score                  `json:"overall"`
}

// Summary condenses a full run.
type Summary struct {
	TotalSections   int      `json:"totalSections"`
	Passed          int      `json:"passed"`
	Failed          int      `json:"failed"`
	Overall         Score    `json:"overall"`
	CriticalIssues  []string `json:"criticalIssues,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Report is the outcome of one suite run.
type Report struct {
	Timestamp time.Time                `json:"timestamp"`
	Duration  time.Duration            `json:"duration"`
	Sections  map[string]SectionResult `json:"sections"`
	Summary   Summary                  `json:"summary"`
}

// newSection scores the given metric values and computes the section
// overall.
func newSection(metrics map[string]MetricScore) SectionResult {
	scores := make([]Score, 0, len(metrics))
	for _, m := range metrics {
		scores = append(scores, m.Score)
	}
	return SectionResult{Metrics: metrics, Overall: overall(scores)}
}

// summarize builds the run summary from the section results.
func summarize(sections map[string]SectionResult) Summary {
	s := Summary{TotalSections: len(sections)}
	scores := make([]Score, 0, len(sections))
	for _, name := range sortedNames(sections) {
		section := sections[name]
		scores = append(scores, section.Overall)
		switch section.Overall {
		case ScoreGood:
			s.Passed++
		case ScorePoor:
			s.Failed++
			s.CriticalIssues = append(s.CriticalIssues, fmt.Sprintf("%s: poor", name))
		}
	}
	s.Overall = overall(scores)
	s.Recommendations = recommend(sections)
	return s
}

func sortedNames(sections map[string]SectionResult) []string {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// recommend derives textual advice from failing metrics.
func recommend(sections map[string]SectionResult) []string {
	var recs []string
	notGood := func(section, metric string) bool {
		sec, ok := sections[section]
		if !ok {
			return false
		}
		m, ok := sec.Metrics[metric]
		return ok && m.Score != ScoreGood
	}

	if notGood("coreWebVitals", "lcp") {
		recs = append(recs, "optimize LCP: reduce hero image weight and server response time")
	}
	if notGood("coreWebVitals", "cls") {
		recs = append(recs, "reduce CLS: declare image dimensions and avoid late-inserted content")
	}
	if notGood("cachePerformance", "cacheSpeed") {
		recs = append(recs, "cache round trips are slow: check Redis latency and connection pooling")
	}
	if notGood("apiPerformance", "apiResponse") {
		recs = append(recs, "optimize API endpoints: paginate responses and trim payloads")
	}
	if notGood("imageOptimization", "averageImageSize") {
		recs = append(recs, "compress catalog images and serve responsive variants")
	}
	if notGood("renderPerformance", "renderTime") {
		recs = append(recs, "render exceeds the frame budget: memoize card rendering")
	}
	return recs
}

// Text renders the report as a plain-text summary.
func (r *Report) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== performance report ===\n")
	fmt.Fprintf(&b, "timestamp: %s\n", r.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "duration:  %s\n", r.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "overall:   %s (passed %d, failed %d of %d)\n",
		r.Summary.Overall, r.Summary.Passed, r.Summary.Failed, r.Summary.TotalSections)

	for _, name := range sortedNames(r.Sections) {
		section := r.Sections[name]
		fmt.Fprintf(&b, "\n[%s] %s\n", section.Overall, name)
		metrics := make([]string, 0, len(section.Metrics))
		for metric := range section.Metrics {
			metrics = append(metrics, metric)
		}
		sort.Strings(metrics)
		for _, metric := range metrics {
			m := section.Metrics[metric]
			fmt.Fprintf(&b, "  %-18s %10.2f  %s\n", metric, m.Value, m.Score)
		}
	}

	if len(r.Summary.CriticalIssues) > 0 {
		b.WriteString("\ncritical issues:\n")
		for _, issue := range r.Summary.CriticalIssues {
			fmt.Fprintf(&b, "  - %s\n", issue)
		}
	}
	if len(r.Summary.Recommendations) > 0 {
		b.WriteString("\nrecommendations:\n")
		for _, rec := range r.Summary.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
	}
	return b.String()
}
