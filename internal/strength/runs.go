package strength

import "unicode"

// run is a detected repeated or sequential character run.
type run struct {
	start int
	text  string
}

// repeatRuns finds maximal same-character runs of length >= 3.
func repeatRuns(rs []rune) []run {
	var runs []run
	i := 0
	for i < len(rs) {
		j := i + 1
		for j < len(rs) && rs[j] == rs[i] {
			j++
		}
		if j-i >= 3 {
			runs = append(runs, run{start: i, text: string(rs[i:j])})
		}
		i = j
	}
	return runs
}

// sequentialRuns finds maximal alphanumeric runs of length >= 3 where each
// character ascends or descends by exactly one code point ("abcd", "4321").
// A direction change ends the run; the pivot character may start a new one.
func sequentialRuns(rs []rune) []run {
	var runs []run
	start := 0
	dir := 0

	flush := func(end int) {
		if end-start >= 3 {
			runs = append(runs, run{start: start, text: string(rs[start:end])})
		}
	}

	for i := 1; i < len(rs); i++ {
		step := stepBetween(rs[i-1], rs[i])
		switch {
		case step == 0:
			flush(i)
			start = i
			dir = 0
		case dir == 0:
			dir = step
		case step != dir:
			flush(i)
			start = i - 1
			dir = step
		}
	}
	flush(len(rs))
	return runs
}

// stepBetween returns +1 or -1 when b continues an alphanumeric sequence
// from a, and 0 otherwise.
func stepBetween(a, b rune) int {
	if !isAlnum(a) || !isAlnum(b) {
		return 0
	}
	switch b - a {
	case 1:
		return 1
	case -1:
		return -1
	}
	return 0
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
