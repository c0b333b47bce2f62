package main

import (
	"testing"

	"github.com/ahmilon47/passgrade/internal/policy"
	"github.com/ahmilon47/passgrade/internal/strength"
	"github.com/ahmilon47/passgrade/internal/wordlist"
)

func TestGeneratePasswordLength(t *testing.T) {
	pw, err := generatePassword(defaultGenerateLength, defaultGenerateDigits, defaultGenerateSymbols, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(pw) != defaultGenerateLength {
		t.Errorf("expected length %d, got %d", defaultGenerateLength, len(pw))
	}
}

func TestGeneratedPasswordGradesStrong(t *testing.T) {
	pol, err := policy.LoadBuiltin("default")
	if err != nil {
		t.Fatal(err)
	}
	evaluator := strength.NewEvaluator(pol, wordlist.Builtin())

	for i := 0; i < 10; i++ {
		pw, err := generatePassword(defaultGenerateLength, defaultGenerateDigits, defaultGenerateSymbols, false)
		if err != nil {
			t.Fatal(err)
		}
		rep := evaluator.Evaluate(pw)
		if rep.Summary.Category.Rank() < strength.CategoryGood.Rank() {
			t.Errorf("generated password %q graded %s (score %d)",
				pw, rep.Summary.Category, rep.Summary.Score)
		}
	}
}

func TestGeneratePasswordRejectsImpossible(t *testing.T) {
	// More digits than total length.
	if _, err := generatePassword(4, 10, 0, false); err == nil {
		t.Error("expected error when digits exceed length")
	}
}
