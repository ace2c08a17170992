package domain

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// FilterDuplicates returns projects unchanged. Projects carry no dedup key yet.
func FilterDuplicates(projects []Project) []Project {
	return projects
}

// FilterDuplicateBadSmells drops smells without a snippet and keeps only the
// first smell for each snippet text. Survivors keep their relative order.
// A nil input yields an empty, non-nil slice.
func FilterDuplicateBadSmells(smells []BadSmell) []BadSmell {
	out := make([]BadSmell, 0, len(smells))
	seen := make(map[string]struct{}, len(smells))
	for _, s := range smells {
		if s.Snippet == nil {
			continue
		}
		if _, dup := seen[*s.Snippet]; dup {
			continue
		}
		seen[*s.Snippet] = struct{}{}
		out = append(out, s)
	}
	return out
}

// SmellFilter narrows a smell list. Zero value matches everything.
type SmellFilter struct {
	RuleIDs  []string `json:"rule_ids,omitempty"`
	PathGlob string   `json:"path_glob,omitempty"`
}

func (f SmellFilter) IsEmpty() bool {
	return len(f.RuleIDs) == 0 && f.PathGlob == ""
}

// FilterBadSmells applies f to smells, preserving order.
func FilterBadSmells(smells []BadSmell, f SmellFilter) ([]BadSmell, error) {
	if f.IsEmpty() {
		return smells, nil
	}

	var pathMatcher glob.Glob
	if f.PathGlob != "" {
		g, err := glob.Compile(f.PathGlob, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: path glob %q: %v", ErrInvalidInput, f.PathGlob, err)
		}
		pathMatcher = g
	}

	rules := make(map[string]bool, len(f.RuleIDs))
	for _, r := range f.RuleIDs {
		rules[r] = true
	}

	out := make([]BadSmell, 0, len(smells))
	for _, s := range smells {
		if len(rules) > 0 && !rules[s.RuleID] {
			continue
		}
		if pathMatcher != nil && !pathMatcher.Match(s.FilePath) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// CountByRule tallies smells per rule ID.
func CountByRule(smells []BadSmell) map[string]int {
	counts := make(map[string]int)
	for _, s := range smells {
		counts[s.RuleID]++
	}
	return counts
}

// SplitList splits a comma separated list, trimming blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
