package alert

import (
	"sort"
	"strings"
)

// Dedup removes alerts that duplicate an earlier entry, keeping the first
// occurrence in scan order. Two alerts are duplicates when their titles match
// case-insensitively, or when both carry a non-empty headline and those match
// case-insensitively. This is deliberately weak: differently-worded reports
// of the same event are not caught.
func Dedup(alerts []Alert) []Alert {
	unique := make([]Alert, 0, len(alerts))
	for _, candidate := range alerts {
		if !containsDuplicate(unique, candidate) {
			unique = append(unique, candidate)
		}
	}
	return unique
}

func containsDuplicate(kept []Alert, candidate Alert) bool {
	title := strings.ToLower(candidate.Title)
	headline := strings.ToLower(candidate.Headline)
	for _, a := range kept {
		if strings.ToLower(a.Title) == title {
			return true
		}
		if a.Headline != "" && candidate.Headline != "" &&
			strings.ToLower(a.Headline) == headline {
			return true
		}
	}
	return false
}

// SortAlerts orders alerts by severity (extreme first), breaking ties by
// timestamp descending. The sort is stable, so alerts with equal severity and
// timestamp keep their original relative order.
func SortAlerts(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		ri, rj := alerts[i].Severity.Rank(), alerts[j].Severity.Rank()
		if ri != rj {
			return ri < rj
		}
		ti, _ := ParseTimestamp(alerts[i].Timestamp)
		tj, _ := ParseTimestamp(alerts[j].Timestamp)
		return ti.After(tj)
	})
}
