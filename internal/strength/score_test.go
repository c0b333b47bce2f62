package strength

import (
	"testing"

	"github.com/ahmilon47/passgrade/internal/policy"
)

func TestClampScore(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{-50, 0},
		{-1, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{140, 100},
	}
	for _, tt := range tests {
		if got := clampScore(tt.input); got != tt.want {
			t.Errorf("clampScore(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	thresholds := policy.Thresholds{Weak: 30, Fair: 50, Good: 70, Strong: 90}

	tests := []struct {
		score int
		want  Category
	}{
		{0, CategoryVeryWeak},
		{29, CategoryVeryWeak},
		{30, CategoryWeak},
		{49, CategoryWeak},
		{50, CategoryFair},
		{69, CategoryFair},
		{70, CategoryGood},
		{89, CategoryGood},
		{90, CategoryStrong},
		{100, CategoryStrong},
	}
	for _, tt := range tests {
		if got := Classify(tt.score, thresholds); got != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	valid := []Category{CategoryVeryWeak, CategoryWeak, CategoryFair, CategoryGood, CategoryStrong}
	for _, c := range valid {
		if !c.Valid() {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if Category("Mediocre").Valid() {
		t.Error("expected Mediocre to be invalid")
	}
}

func TestCategoryRankOrdering(t *testing.T) {
	ordered := []Category{CategoryVeryWeak, CategoryWeak, CategoryFair, CategoryGood, CategoryStrong}
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Rank() <= ordered[i-1].Rank() {
			t.Errorf("%q should rank above %q", ordered[i], ordered[i-1])
		}
	}
	if Category("Mediocre").Rank() != -1 {
		t.Error("unknown category should rank -1")
	}
}

func TestSeverityValid(t *testing.T) {
	for _, s := range []Severity{SeverityInfo, SeverityWarn, SeverityCritical} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if Severity("HIGH").Valid() {
		t.Error("expected HIGH to be invalid")
	}
}

func TestCheckValid(t *testing.T) {
	valid := []Check{
		CheckLength, CheckCharacterClass, CheckCommonPassword,
		CheckRepeatRun, CheckSequentialRun, CheckLowEntropy,
	}
	for _, c := range valid {
		if !c.Valid() {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if Check("KEYBOARD_WALK").Valid() {
		t.Error("expected KEYBOARD_WALK to be invalid")
	}
}
