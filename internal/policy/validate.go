package policy

import "fmt"

// ValidationError describes a single policy violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Policy for structural validity.
func Validate(p *Policy) []ValidationError {
	var errs []ValidationError

	if p.Name == "" {
		errs = append(errs, ValidationError{"name", "required"})
	}

	// Length tiers must ascend.
	l := p.Length
	if l.Min < 1 {
		errs = append(errs, ValidationError{"length.min", "must be >= 1"})
	}
	if l.Partial > l.Min {
		errs = append(errs, ValidationError{"length.partial", fmt.Sprintf("must be <= min (%d)", l.Min)})
	}
	if l.Good <= l.Min {
		errs = append(errs, ValidationError{"length.good", fmt.Sprintf("must be > min (%d)", l.Min)})
	}
	if l.Strong <= l.Good {
		errs = append(errs, ValidationError{"length.strong", fmt.Sprintf("must be > good (%d)", l.Good)})
	}

	if p.Weights.Length < 0 {
		errs = append(errs, ValidationError{"weights.length", "must be >= 0"})
	}
	if p.Weights.LengthBonus < 0 {
		errs = append(errs, ValidationError{"weights.length_bonus", "must be >= 0"})
	}
	if p.Weights.Class < 0 {
		errs = append(errs, ValidationError{"weights.class", "must be >= 0"})
	}
	if p.Weights.Unique < 0 {
		errs = append(errs, ValidationError{"weights.unique", "must be >= 0"})
	}
	if p.Penalties.Run < 0 {
		errs = append(errs, ValidationError{"penalties.run", "must be >= 0"})
	}
	if p.Penalties.Common < 0 {
		errs = append(errs, ValidationError{"penalties.common", "must be >= 0"})
	}
	if p.Entropy.MinBits < 0 {
		errs = append(errs, ValidationError{"entropy.min_bits", "must be >= 0"})
	}

	// Category cut points must partition [0,100] in order.
	t := p.Thresholds
	if t.Weak < 1 {
		errs = append(errs, ValidationError{"thresholds.weak", "must be >= 1"})
	}
	if t.Fair <= t.Weak {
		errs = append(errs, ValidationError{"thresholds.fair", fmt.Sprintf("must be > weak (%d)", t.Weak)})
	}
	if t.Good <= t.Fair {
		errs = append(errs, ValidationError{"thresholds.good", fmt.Sprintf("must be > fair (%d)", t.Fair)})
	}
	if t.Strong <= t.Good {
		errs = append(errs, ValidationError{"thresholds.strong", fmt.Sprintf("must be > good (%d)", t.Good)})
	}
	if t.Strong > 100 {
		errs = append(errs, ValidationError{"thresholds.strong", "must be <= 100"})
	}

	return errs
}
