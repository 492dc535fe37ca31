package guide

import (
	"regexp"
	"strings"
)

var (
	explanationRe = regexp.MustCompile(`## What This Means\n([\s\S]*?)(?:##|$)`)
	checklistRe   = regexp.MustCompile(`## Your Personalized Checklist\n([\s\S]*?)(?:##|$)`)
	bulletRe      = regexp.MustCompile(`^[-*]\s+`)
)

// Parse extracts the explanation paragraph and checklist bullets from a
// generated reply. The reply must use the two fixed section headers; missing
// sections yield empty fields.
func Parse(content string) Advice {
	var advice Advice

	if m := explanationRe.FindStringSubmatch(content); m != nil {
		advice.Explanation = strings.TrimSpace(m[1])
	}

	if m := checklistRe.FindStringSubmatch(content); m != nil {
		for _, line := range strings.Split(m[1], "\n") {
			line = strings.TrimSpace(line)
			if line == "" || !bulletRe.MatchString(line) {
				continue
			}
			advice.Checklist = append(advice.Checklist, bulletRe.ReplaceAllString(line, ""))
		}
	}

	return advice
}
