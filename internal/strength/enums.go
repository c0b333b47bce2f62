package strength

// Category is one of the five ordered strength labels.
type Category string

const (
	CategoryVeryWeak Category = "Very Weak"
	CategoryWeak     Category = "Weak"
	CategoryFair     Category = "Fair"
	CategoryGood     Category = "Good"
	CategoryStrong   Category = "Strong"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryVeryWeak, CategoryWeak, CategoryFair, CategoryGood, CategoryStrong:
		return true
	}
	return false
}

// Rank returns the category's position from weakest (0) to strongest (4).
// Unknown categories rank below Very Weak.
func (c Category) Rank() int {
	switch c {
	case CategoryVeryWeak:
		return 0
	case CategoryWeak:
		return 1
	case CategoryFair:
		return 2
	case CategoryGood:
		return 3
	case CategoryStrong:
		return 4
	default:
		return -1
	}
}

// Severity indicates the importance of a finding.
type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarn     Severity = "WARN"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeverityWarn, SeverityCritical:
		return true
	}
	return false
}

// Check identifies the heuristic that produced a finding.
type Check string

const (
	CheckLength         Check = "LENGTH"
	CheckCharacterClass Check = "CHARACTER_CLASS"
	CheckCommonPassword Check = "COMMON_PASSWORD"
	CheckRepeatRun      Check = "REPEAT_RUN"
	CheckSequentialRun  Check = "SEQUENTIAL_RUN"
	CheckLowEntropy     Check = "LOW_ENTROPY"
)

func (c Check) Valid() bool {
	switch c {
	case CheckLength, CheckCharacterClass, CheckCommonPassword,
		CheckRepeatRun, CheckSequentialRun, CheckLowEntropy:
		return true
	}
	return false
}
