package strength

import (
	"fmt"
	"unicode"

	passwordvalidator "github.com/wagslane/go-password-validator"

	"github.com/ahmilon47/passgrade/internal/policy"
	"github.com/ahmilon47/passgrade/internal/wordlist"
)

// Evaluator grades passwords against an immutable policy and wordlist.
// Evaluate is pure: the same input always yields the same report.
type Evaluator struct {
	policy *policy.Policy
	words  *wordlist.List
}

// NewEvaluator returns an Evaluator for the given policy and wordlist.
func NewEvaluator(p *policy.Policy, words *wordlist.List) *Evaluator {
	return &Evaluator{policy: p, words: words}
}

// Evaluate grades a password. It never fails: every string, including the
// empty string, produces a report.
func (e *Evaluator) Evaluate(password string) *Report {
	if password == "" {
		return e.finish(0, 0, []Finding{{
			Check:      CheckLength,
			Severity:   SeverityCritical,
			Message:    "no password set",
			Suggestion: "Set a password.",
		}})
	}

	var findings []Finding
	score := 0
	runes := []rune(password)
	n := len(runes)

	// Length tiers.
	w := e.policy.Weights
	l := e.policy.Length
	switch {
	case n >= l.Min:
		score += w.Length
	case n >= l.Partial:
		score += w.Length / 2
	}
	if n >= l.Good {
		score += w.LengthBonus
	}
	if n >= l.Strong {
		score += w.LengthBonus
	}
	switch {
	case n < l.Min:
		findings = append(findings, Finding{
			Check:      CheckLength,
			Severity:   SeverityCritical,
			Message:    fmt.Sprintf("only %d characters", n),
			Suggestion: fmt.Sprintf("Use at least %d characters.", l.Min),
		})
	case n < l.Good:
		findings = append(findings, Finding{
			Check:      CheckLength,
			Severity:   SeverityInfo,
			Message:    fmt.Sprintf("%d characters meets the minimum", n),
			Suggestion: fmt.Sprintf("Consider %d or more characters.", l.Good),
		})
	}

	// Character-class diversity.
	classes := scanClasses(runes)
	for _, cl := range classes {
		if cl.present {
			score += w.Class
			continue
		}
		findings = append(findings, Finding{
			Check:      CheckCharacterClass,
			Severity:   SeverityWarn,
			Message:    fmt.Sprintf("no %s character", cl.name),
			Suggestion: fmt.Sprintf("Add at least one %s character.", cl.name),
		})
	}

	// Unique-character bonus.
	score += uniqueCount(runes) * w.Unique

	// Common-password list.
	if e.words.Contains(password) {
		score -= e.policy.Penalties.Common
		findings = append(findings, Finding{
			Check:      CheckCommonPassword,
			Severity:   SeverityCritical,
			Message:    "matches a known common password",
			Suggestion: "Avoid common or previously breached passwords.",
		})
	}

	// Repeated and sequential runs.
	for _, r := range repeatRuns(runes) {
		score -= len([]rune(r.text)) * e.policy.Penalties.Run
		findings = append(findings, Finding{
			Check:      CheckRepeatRun,
			Severity:   SeverityWarn,
			Message:    fmt.Sprintf("repeated run %q at position %d", r.text, r.start+1),
			Suggestion: "Avoid repeating the same character.",
		})
	}
	for _, r := range sequentialRuns(runes) {
		score -= len([]rune(r.text)) * e.policy.Penalties.Run
		findings = append(findings, Finding{
			Check:      CheckSequentialRun,
			Severity:   SeverityWarn,
			Message:    fmt.Sprintf("sequential run %q at position %d", r.text, r.start+1),
			Suggestion: "Avoid sequences like \"abcd\" or \"1234\".",
		})
	}

	// Entropy is advisory: it produces a finding but never moves the score.
	bits := passwordvalidator.GetEntropy(password)
	if bits < e.policy.Entropy.MinBits {
		findings = append(findings, Finding{
			Check:      CheckLowEntropy,
			Severity:   SeverityInfo,
			Message:    fmt.Sprintf("estimated entropy %.1f bits is below %.0f", bits, e.policy.Entropy.MinBits),
			Suggestion: "Use a longer password drawn from more character types.",
		})
	}

	return e.finish(score, bits, findings)
}

// finish clamps, classifies, numbers the findings, and counts severities.
func (e *Evaluator) finish(score int, bits float64, findings []Finding) *Report {
	score = clampScore(score)

	var crit, warn, info int
	for i := range findings {
		findings[i].ID = fmt.Sprintf("F-%03d", i+1)
		switch findings[i].Severity {
		case SeverityCritical:
			crit++
		case SeverityWarn:
			warn++
		case SeverityInfo:
			info++
		}
	}

	return &Report{
		Summary: Summary{
			Score:         score,
			Category:      Classify(score, e.policy.Thresholds),
			EntropyBits:   bits,
			CriticalCount: crit,
			WarnCount:     warn,
			InfoCount:     info,
		},
		Findings: findings,
	}
}

// characterClass records the presence of one of the four classes.
type characterClass struct {
	name    string
	present bool
}

// scanClasses reports class presence in fixed order: lowercase, uppercase,
// digit, symbol. Anything outside the first three classes counts as a symbol.
func scanClasses(runes []rune) []characterClass {
	var lower, upper, digit, symbol bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return []characterClass{
		{"lowercase", lower},
		{"uppercase", upper},
		{"digit", digit},
		{"symbol", symbol},
	}
}

func uniqueCount(runes []rune) int {
	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		seen[r] = struct{}{}
	}
	return len(seen)
}
