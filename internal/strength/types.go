// Package strength implements the password grading heuristics.
package strength

// Report is the top-level output object for a single evaluation.
type Report struct {
	Tool     string    `json:"tool"`
	Version  string    `json:"version"`
	Input    Input     `json:"input"`
	Summary  Summary   `json:"summary"`
	Findings []Finding `json:"findings"`
	Breach   *Breach   `json:"breach,omitempty"`
}

// Input describes the evaluated password and settings. Password is the
// masked form; the raw password never appears in a report.
type Input struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Policy   string `json:"policy"`
}

// Summary holds the score, category, entropy, and severity counts.
type Summary struct {
	Score         int      `json:"score"`
	Category      Category `json:"category"`
	EntropyBits   float64  `json:"entropy_bits"`
	CriticalCount int      `json:"critical_count"`
	WarnCount     int      `json:"warn_count"`
	InfoCount     int      `json:"info_count"`
}

// Finding represents one failed heuristic. Findings are ordered by check:
// length, character classes, common-password list, runs, entropy.
type Finding struct {
	ID         string   `json:"id"`
	Check      Check    `json:"check"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion"`
}

// Breach records the result of an optional breach-corpus lookup.
type Breach struct {
	Checked bool   `json:"checked"`
	Count   int    `json:"count"`
	Error   string `json:"error,omitempty"`
}

// Suggestions returns the improvement suggestions in check order.
func (r *Report) Suggestions() []string {
	var out []string
	for _, f := range r.Findings {
		if f.Suggestion != "" {
			out = append(out, f.Suggestion)
		}
	}
	return out
}
