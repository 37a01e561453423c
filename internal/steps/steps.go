// Package steps defines the two static wizard step catalogs (individual and
// group track) and the pure navigation lookups over them. Both tracks share
// the same first two entries before diverging.
package steps

import "lateral-intake/internal/application"

// Step is one page of the wizard, identified by a stable path string.
type Step struct {
	Path       string `json:"path"`
	Label      string `json:"label"`
	ShortLabel string `json:"short_label"`
}

// NotFound is the sentinel index for a path absent from a catalog.
const NotFound = -1

var individualSteps = []Step{
	{Path: "/application", Label: "Application Type", ShortLabel: "Type"},
	{Path: "/application/contact", Label: "Contact Information", ShortLabel: "Contact"},
	{Path: "/application/education", Label: "Education & Bar Admissions", ShortLabel: "Education"},
	{Path: "/application/work-history", Label: "Work History", ShortLabel: "Work"},
	{Path: "/application/financials", Label: "Financial History", ShortLabel: "Financials"},
	{Path: "/application/clients", Label: "Portable Clients", ShortLabel: "Clients"},
	{Path: "/application/conflicts", Label: "Conflicts Check", ShortLabel: "Conflicts"},
	{Path: "/application/due-diligence", Label: "Due Diligence", ShortLabel: "Diligence"},
	{Path: "/application/references", Label: "References", ShortLabel: "References"},
	{Path: "/application/review", Label: "Review & Submit", ShortLabel: "Review"},
}

var groupSteps = []Step{
	{Path: "/application", Label: "Application Type", ShortLabel: "Type"},
	{Path: "/application/contact", Label: "Contact Information", ShortLabel: "Contact"},
	{Path: "/application/group-overview", Label: "Group Overview", ShortLabel: "Group"},
	{Path: "/application/partners", Label: "Additional Partners", ShortLabel: "Partners"},
	{Path: "/application/team-members", Label: "Team Members", ShortLabel: "Team"},
	{Path: "/application/education", Label: "Education & Bar Admissions", ShortLabel: "Education"},
	{Path: "/application/work-history", Label: "Work History", ShortLabel: "Work"},
	{Path: "/application/financials", Label: "Financial History", ShortLabel: "Financials"},
	{Path: "/application/clients", Label: "Portable Clients", ShortLabel: "Clients"},
	{Path: "/application/conflicts", Label: "Conflicts Check", ShortLabel: "Conflicts"},
	{Path: "/application/due-diligence", Label: "Due Diligence", ShortLabel: "Diligence"},
	{Path: "/application/references", Label: "References", ShortLabel: "References"},
	{Path: "/application/combined-financials", Label: "Combined Financials", ShortLabel: "Combined"},
	{Path: "/application/review", Label: "Review & Submit", ShortLabel: "Review"},
}

// OrderFor returns the catalog for the given application type. An empty
// (not-yet-chosen) type defaults to the individual track. Callers receive a
// copy so the catalogs stay immutable.
func OrderFor(t application.Type) []Step {
	src := individualSteps
	if t == application.TypeGroup {
		src = groupSteps
	}
	out := make([]Step, len(src))
	copy(out, src)
	return out
}

// IndexOf returns the position of path within the catalog for t, or
// NotFound when the path does not belong to that track.
func IndexOf(t application.Type, path string) int {
	for i, s := range catalogFor(t) {
		if s.Path == path {
			return i
		}
	}
	return NotFound
}

// Next returns the path following current in the catalog for t, or "" when
// current is the last step or unknown.
func Next(t application.Type, current string) string {
	catalog := catalogFor(t)
	i := IndexOf(t, current)
	if i == NotFound || i+1 >= len(catalog) {
		return ""
	}
	return catalog[i+1].Path
}

// Previous returns the path before current in the catalog for t, or "" when
// current is the first step or unknown.
func Previous(t application.Type, current string) string {
	i := IndexOf(t, current)
	if i <= 0 {
		return ""
	}
	return catalogFor(t)[i-1].Path
}

// Lookup returns the catalog entry for path under t.
func Lookup(t application.Type, path string) (Step, bool) {
	i := IndexOf(t, path)
	if i == NotFound {
		return Step{}, false
	}
	return catalogFor(t)[i], true
}

func catalogFor(t application.Type) []Step {
	if t == application.TypeGroup {
		return groupSteps
	}
	return individualSteps
}
