// Package wordlist holds the common-password list used to flag known weak
// passwords. Matching is case-insensitive exact match.
package wordlist

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed common.txt
var commonRaw string

// List is an immutable set of known weak passwords, stored lowercased.
type List struct {
	entries map[string]struct{}
}

// Builtin returns the embedded common-password list.
// Source: top entries of the SecLists breached password corpus.
func Builtin() *List {
	return parse(commonRaw)
}

// LoadFile reads a user-supplied wordlist, one password per line, and
// merges it with the embedded list.
func LoadFile(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist.LoadFile: %w", err)
	}
	l := Builtin()
	for pw := range parse(string(data)).entries {
		l.entries[pw] = struct{}{}
	}
	return l, nil
}

func parse(raw string) *List {
	lines := strings.Split(raw, "\n")
	entries := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		pw := strings.TrimSpace(line)
		if pw == "" || strings.HasPrefix(pw, "#") {
			continue
		}
		entries[strings.ToLower(pw)] = struct{}{}
	}
	return &List{entries: entries}
}

// Contains reports whether the password appears in the list, ignoring case.
func (l *List) Contains(password string) bool {
	_, ok := l.entries[strings.ToLower(password)]
	return ok
}

// Len returns the number of entries in the list.
func (l *List) Len() int {
	return len(l.entries)
}
