// Package catalog holds the evaluation results shown in the report and renders them onto
// whichever chart surfaces the current document has.
package catalog

import (
	"strings"

	"github.com/iafilius/EvalReportCharts/src/chart"
	"github.com/iafilius/EvalReportCharts/src/logging"
)

// Entry binds one dataset to the surface that displays it.
type Entry struct {
	SurfaceID string
	Model     string
	Finding   int
	Data      chart.Dataset
}

// ModelKey is the surface id without its "Chart" suffix, e.g. gpt5 for gpt5Chart2. Modal ids
// are derived from it.
func (e Entry) ModelKey() string {
	key, _, _ := strings.Cut(e.SurfaceID, "Chart")
	return key
}

// Entries is the fixed result set, in page order.
var Entries = []Entry{
	{SurfaceID: "gpt5Chart", Model: "GPT-5", Finding: 1, Data: chart.Dataset{Score: 90, Accuracy: 60, Fluency: 20, Appropriateness: 10}},
	{SurfaceID: "claudeChart", Model: "Claude", Finding: 1, Data: chart.Dataset{Score: 63, Accuracy: 45, Fluency: 8, Appropriateness: 10}},
	{SurfaceID: "deepseekChart", Model: "DeepSeek", Finding: 1, Data: chart.Dataset{Score: 46, Accuracy: 25, Fluency: 16, Appropriateness: 5}},
	{SurfaceID: "gpt5Chart2", Model: "GPT-5", Finding: 2, Data: chart.Dataset{Score: 81, Accuracy: 45, Fluency: 16, Appropriateness: 20}},
	{SurfaceID: "nonThinkingChart3", Model: "Non-thinking", Finding: 3, Data: chart.Dataset{Score: 71, Accuracy: 45, Fluency: 6, Appropriateness: 20}},
	{SurfaceID: "thinkingChart3", Model: "Thinking", Finding: 3, Data: chart.Dataset{Score: 14, Accuracy: 0, Fluency: 4, Appropriateness: 10}},
}

// Lookup finds the entry for a surface id.
func Lookup(surfaceID string) (Entry, bool) {
	for _, e := range Entries {
		if e.SurfaceID == surfaceID {
			return e, true
		}
	}
	return Entry{}, false
}

// Findings returns the distinct finding numbers in page order.
func Findings() []int {
	var out []int
	seen := map[int]bool{}
	for _, e := range Entries {
		if !seen[e.Finding] {
			seen[e.Finding] = true
			out = append(out, e.Finding)
		}
	}
	return out
}

// ForFinding returns the entries of one finding.
func ForFinding(n int) []Entry {
	var out []Entry
	for _, e := range Entries {
		if e.Finding == n {
			out = append(out, e)
		}
	}
	return out
}

// Init renders every entry whose surface exists in host and returns how many were drawn.
// Calling it again repaints; hover bindings are not duplicated.
func Init(host chart.Host, r *chart.Renderer) int {
	n := 0
	for _, e := range Entries {
		if _, ok := host.Surface(e.SurfaceID); !ok {
			logging.Debugf("catalog: %s not on page, skipping", e.SurfaceID)
			continue
		}
		r.Render(e.SurfaceID, e.Data)
		n++
	}
	logging.Infof("catalog: rendered %d/%d charts", n, len(Entries))
	return n
}
