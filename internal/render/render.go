// Package render produces text and Markdown output from a report.
package render

import (
	"fmt"
	"strings"

	"github.com/ahmilon47/passgrade/internal/strength"
)

// Text renders a report as a short human-readable summary: score, category,
// breach status, and the suggestions in check order.
func Text(r *strength.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Score:    %d/100\n", r.Summary.Score)
	fmt.Fprintf(&b, "Category: %s\n", r.Summary.Category)
	fmt.Fprintf(&b, "Entropy:  %.1f bits\n", r.Summary.EntropyBits)

	if r.Breach != nil {
		b.WriteString("Breaches: " + breachStatus(r.Breach) + "\n")
	}

	suggestions := r.Suggestions()
	if len(suggestions) > 0 {
		b.WriteString("\nSuggestions:\n")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}

	return b.String()
}

// Markdown renders a report as a Markdown document, findings grouped by
// severity with check order preserved within each group.
func Markdown(r *strength.Report) string {
	var b strings.Builder

	b.WriteString("# Password Strength Report\n\n")
	fmt.Fprintf(&b, "**Password:** %s\n", r.Input.Password)
	fmt.Fprintf(&b, "**Score:** %d / 100\n", r.Summary.Score)
	fmt.Fprintf(&b, "**Category:** %s\n", r.Summary.Category)
	fmt.Fprintf(&b, "**Entropy:** %.1f bits\n", r.Summary.EntropyBits)
	fmt.Fprintf(&b, "**Findings:** %d critical, %d warnings, %d info\n\n",
		r.Summary.CriticalCount, r.Summary.WarnCount, r.Summary.InfoCount)

	if r.Breach != nil {
		fmt.Fprintf(&b, "**Breaches:** %s\n\n", breachStatus(r.Breach))
	}

	criticals := filterFindings(r.Findings, strength.SeverityCritical)
	warns := filterFindings(r.Findings, strength.SeverityWarn)
	infos := filterFindings(r.Findings, strength.SeverityInfo)

	if len(criticals) > 0 {
		b.WriteString("## Critical\n\n")
		for _, f := range criticals {
			renderFinding(&b, f)
		}
	}
	if len(warns) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, f := range warns {
			renderFinding(&b, f)
		}
	}
	if len(infos) > 0 {
		b.WriteString("## Info\n\n")
		for _, f := range infos {
			renderFinding(&b, f)
		}
	}
	if len(r.Findings) == 0 {
		b.WriteString("No findings.\n")
	}

	return b.String()
}

func breachStatus(br *strength.Breach) string {
	switch {
	case !br.Checked || br.Error != "":
		return "lookup unavailable"
	case br.Count > 0:
		return fmt.Sprintf("seen %d times in breaches", br.Count)
	default:
		return "not found in breaches"
	}
}

func filterFindings(findings []strength.Finding, sev strength.Severity) []strength.Finding {
	var result []strength.Finding
	for _, f := range findings {
		if f.Severity == sev {
			result = append(result, f)
		}
	}
	return result
}

func renderFinding(b *strings.Builder, f strength.Finding) {
	fmt.Fprintf(b, "### %s [%s]\n\n", f.Check, f.Severity)
	fmt.Fprintf(b, "%s\n\n", f.Message)
	fmt.Fprintf(b, "**Suggestion:** %s\n\n", f.Suggestion)
}
