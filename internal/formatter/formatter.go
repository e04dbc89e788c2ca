// Package formatter normalizes generated source text before it is
// returned or persisted. Formatting is cosmetic only: it never changes
// what the code does, and when any pass fails the input is returned
// untouched rather than risking a broken artifact.
package formatter

import (
	"log"
	"strings"
)

const indentWidth = 2

// Format runs the normalization passes over code: line endings, tab
// expansion, trailing whitespace and blank-line squeezing.
func Format(code string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[WARN] formatter: pass failed, returning input unchanged: %v", r)
			out = code
		}
	}()

	out = normalizeNewlines(code)
	out = expandTabs(out)
	out = stripTrailingSpace(out)
	out = squeezeBlankLines(out)

	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// expandTabs rewrites leading tabs to spaces. Tabs after the first
// non-whitespace character are left alone, they may sit inside string
// literals.
func expandTabs(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		j := 0
		for j < len(line) && (line[j] == '\t' || line[j] == ' ') {
			j++
		}
		if !strings.ContainsRune(line[:j], '\t') {
			continue
		}
		expanded := strings.ReplaceAll(line[:j], "\t", strings.Repeat(" ", indentWidth))
		lines[i] = expanded + line[j:]
	}
	return strings.Join(lines, "\n")
}

func stripTrailingSpace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// squeezeBlankLines collapses runs of blank lines down to a single one.
func squeezeBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	blank := false
	for _, line := range lines {
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
