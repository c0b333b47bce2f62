package main

import (
	"fmt"

	gp "github.com/sethvargo/go-password/password"
	"github.com/spf13/cobra"

	"github.com/ahmilon47/passgrade/internal/policy"
	"github.com/ahmilon47/passgrade/internal/strength"
	"github.com/ahmilon47/passgrade/internal/wordlist"
)

const (
	defaultGenerateLength  = 16
	defaultGenerateDigits  = 4
	defaultGenerateSymbols = 2
)

type generateFlags struct {
	length  int
	digits  int
	symbols int
	count   int
	noUpper bool
	check   bool
}

func newGenerateCmd() *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate strong random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(f)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.length, "length", defaultGenerateLength, "Password length")
	flags.IntVar(&f.digits, "digits", defaultGenerateDigits, "Number of digits")
	flags.IntVar(&f.symbols, "symbols", defaultGenerateSymbols, "Number of symbols")
	flags.IntVar(&f.count, "count", 1, "Number of passwords to generate")
	flags.BoolVar(&f.noUpper, "no-upper", false, "Exclude uppercase letters")
	flags.BoolVar(&f.check, "check", false, "Grade each generated password")

	return cmd
}

func runGenerate(f *generateFlags) error {
	var evaluator *strength.Evaluator
	if f.check {
		pol, err := policy.LoadBuiltin("default")
		if err != nil {
			return exitError(3, "failed to load policy: %v", err)
		}
		evaluator = strength.NewEvaluator(pol, wordlist.Builtin())
	}

	count := f.count
	if count < 1 {
		count = 1
	}

	for i := 0; i < count; i++ {
		pw, err := generatePassword(f.length, f.digits, f.symbols, f.noUpper)
		if err != nil {
			return exitError(3, "failed to generate password: %v", err)
		}
		if evaluator != nil {
			rep := evaluator.Evaluate(pw)
			fmt.Printf("%s\t%d/100 %s\n", pw, rep.Summary.Score, rep.Summary.Category)
		} else {
			fmt.Println(pw)
		}
	}
	return nil
}

func generatePassword(length, digits, symbols int, noUpper bool) (string, error) {
	return gp.Generate(length, digits, symbols, noUpper, false)
}
