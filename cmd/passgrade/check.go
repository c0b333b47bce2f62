package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahmilon47/passgrade/internal/breach"
	"github.com/ahmilon47/passgrade/internal/mask"
	"github.com/ahmilon47/passgrade/internal/policy"
	"github.com/ahmilon47/passgrade/internal/render"
	"github.com/ahmilon47/passgrade/internal/strength"
	"github.com/ahmilon47/passgrade/internal/wordlist"
)

type checkFlags struct {
	format            string
	out               string
	policyName        string
	policyFile        string
	wordlistPath      string
	breachEnabled     bool
	suggest           bool
	severityThreshold string
	failOn            string
	verbose           bool
}

func newCheckCmd() *cobra.Command {
	f := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Grade a password and print the report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && args[0] != "-" {
				return runCheck(args[0], f)
			}
			password, err := readPassword(os.Stdin, os.Stderr)
			if err != nil {
				return exitError(3, "failed to read password: %v", err)
			}
			return runCheck(password, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "text", "Output format: text, json, or md")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.policyName, "policy", "default", "Built-in policy name")
	flags.StringVar(&f.policyFile, "policy-file", "", "Path to a custom policy YAML file")
	flags.StringVar(&f.wordlistPath, "wordlist", "", "Extra common-password list, one per line")
	flags.BoolVar(&f.breachEnabled, "breach", false, "Query the Have I Been Pwned range API")
	flags.BoolVar(&f.suggest, "suggest", false, "Suggest a generated password when the grade is below Good")
	flags.StringVar(&f.severityThreshold, "severity-threshold", "info", "Minimum finding severity: info, warn, or critical")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit non-zero if the category is at or below this level")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runCheck(password string, f *checkFlags) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	// 1. Load policy
	var pol *policy.Policy
	var err error
	if f.policyFile != "" {
		verbose("Loading policy file: %s", f.policyFile)
		pol, err = policy.Load(f.policyFile)
	} else {
		verbose("Loading policy: %s", f.policyName)
		pol, err = policy.LoadBuiltin(f.policyName)
	}
	if err != nil {
		return exitError(3, "failed to load policy: %v", err)
	}

	// 2. Load wordlist
	words := wordlist.Builtin()
	if f.wordlistPath != "" {
		verbose("Loading wordlist: %s", f.wordlistPath)
		words, err = wordlist.LoadFile(f.wordlistPath)
		if err != nil {
			return exitError(3, "failed to load wordlist: %v", err)
		}
	}
	verbose("Wordlist entries: %d", words.Len())

	// 3. Evaluate
	rep := strength.NewEvaluator(pol, words).Evaluate(password)
	verbose("Score %d, category %s, %d findings",
		rep.Summary.Score, rep.Summary.Category, len(rep.Findings))

	// 4. Breach lookup. Failure degrades to an unavailable status: the
	// grade itself never depends on the network.
	if f.breachEnabled {
		verbose("Querying breach corpus")
		count, err := breach.NewClient().Count(context.Background(), password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: breach lookup failed: %v\n", err)
			rep.Breach = &strength.Breach{Checked: true, Error: err.Error()}
		} else {
			rep.Breach = &strength.Breach{Checked: true, Count: count}
		}
	}

	// 5. Apply severity threshold filter
	rep.Findings = filterBySeverity(rep.Findings, f.severityThreshold)
	recountSeverities(rep)

	// 6. Fill metadata
	rep.Tool = "passgrade"
	rep.Version = version
	rep.Input = strength.Input{
		Password: mask.Mask(password),
		Length:   len([]rune(password)),
		Policy:   pol.Name,
	}

	// 7. Output
	var output string
	switch f.format {
	case "text":
		output = render.Text(rep)
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		output = render.Markdown(rep)
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Print(output)
	}

	// 8. Suggest a replacement. Goes to stderr so piped report output
	// stays clean.
	if f.suggest && rep.Summary.Category.Rank() < strength.CategoryGood.Rank() {
		suggestion, err := generatePassword(defaultGenerateLength, defaultGenerateDigits, defaultGenerateSymbols, false)
		if err != nil {
			verbose("Warning: failed to generate suggestion: %v", err)
		} else {
			fmt.Fprintf(os.Stderr, "Try instead: %s\n", suggestion)
		}
	}

	// 9. Exit code based on --fail-on
	if f.failOn != "" {
		threshold, err := parseCategory(f.failOn)
		if err != nil {
			return exitError(3, "invalid fail-on level: %v", err)
		}
		if rep.Summary.Category.Rank() <= threshold.Rank() {
			return exitError(2, "category %s meets fail threshold %s", rep.Summary.Category, threshold)
		}
	}

	return nil
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// readPassword prompts on w and reads a single line from r.
// Surrounding whitespace is stripped.
func readPassword(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Enter password to test: ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func filterBySeverity(findings []strength.Finding, threshold string) []strength.Finding {
	minOrder := severityThresholdOrder(threshold)
	var result []strength.Finding
	for _, fi := range findings {
		if fi.Severity.Valid() && severityOrder(fi.Severity) <= minOrder {
			result = append(result, fi)
		}
	}
	return result
}

// recountSeverities refreshes the summary counts after filtering.
// The score is untouched: filtering hides findings, it does not regrade.
func recountSeverities(rep *strength.Report) {
	var crit, warn, info int
	for _, fi := range rep.Findings {
		switch fi.Severity {
		case strength.SeverityCritical:
			crit++
		case strength.SeverityWarn:
			warn++
		case strength.SeverityInfo:
			info++
		}
	}
	rep.Summary.CriticalCount = crit
	rep.Summary.WarnCount = warn
	rep.Summary.InfoCount = info
}

func severityOrder(s strength.Severity) int {
	switch s {
	case strength.SeverityCritical:
		return 0
	case strength.SeverityWarn:
		return 1
	default:
		return 2
	}
}

func severityThresholdOrder(threshold string) int {
	switch strings.ToLower(threshold) {
	case "critical":
		return 0
	case "warn":
		return 1
	default:
		return 2 // info shows everything
	}
}

func parseCategory(s string) (strength.Category, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", " ")) {
	case "very weak", "very_weak":
		return strength.CategoryVeryWeak, nil
	case "weak":
		return strength.CategoryWeak, nil
	case "fair":
		return strength.CategoryFair, nil
	case "good":
		return strength.CategoryGood, nil
	case "strong":
		return strength.CategoryStrong, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}
