package filter

import (
	"html"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"go-web3jobs-bot/internal/models"
)

// Filter decides which raw listings are worth notifying about.
// Apply is pure: no side effects, input order preserved.
type Filter struct {
	policy Policy

	//injectable clock for the age check
	now func() time.Time
}

func New(policy Policy) *Filter {
	return &Filter{policy: policy, now: time.Now}
}

// Apply keeps jobs that:
// 1. have a marketing/growth keyword in the title
// 2. don't match an exclude phrase
// 3. are remote/worldwide or in an allowed hub (or have no location at all)
// 4. were posted within the last MaxAgeDays days
// Checks run in that order so cheap string containment happens before date parsing.
func (f *Filter) Apply(jobs []models.Job) []models.Job {
	result := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if !f.matchesInclude(job.Title) {
			continue
		}
		if f.isExcludedTitle(job.Title) {
			continue
		}
		if !f.isLocationAllowed(job.Location) {
			continue
		}
		if f.isTooOld(job.Posted) {
			continue
		}
		result = append(result, job)
	}
	return result
}

// normalize decodes HTML entities and case-folds for keyword matching.
func normalize(text string) string {
	return cases.Fold().String(html.UnescapeString(text))
}

func (f *Filter) matchesInclude(title string) bool {
	t := normalize(title)
	for _, kw := range f.policy.IncludeKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

func (f *Filter) isExcludedTitle(title string) bool {
	t := normalize(title)
	for _, phrase := range f.policy.ExcludeTitlePhrases {
		if !strings.Contains(t, phrase) {
			continue
		}
		// "Product Marketing Manager" would otherwise trip the generic
		// "product manager" exclusion. The override is deliberately this
		// literal and nothing broader.
		if phrase == "product manager" && (strings.Contains(t, "product marketing") || strings.Contains(t, "growth marketing")) {
			continue
		}
		return true
	}
	return false
}

// isLocationAllowed implements the allowlist:
// - empty location passes (assume remote / unknown)
// - US-restricted and on-site patterns deny outright, even alongside "remote"
// - anything left must still contain an allowed keyword to pass
func (f *Filter) isLocationAllowed(location string) bool {
	loc := strings.TrimSpace(normalize(location))
	if loc == "" {
		return true
	}

	for _, p := range f.policy.USRestrictedPatterns {
		if strings.Contains(loc, p) {
			return false
		}
	}
	for _, p := range f.policy.OnsitePatterns {
		if strings.Contains(loc, p) {
			return false
		}
	}

	for _, kw := range f.policy.AllowedLocations {
		if strings.Contains(loc, kw) {
			return true
		}
	}
	return false
}

// isTooOld rejects listings older than MaxAgeDays. Unknown posted dates are
// assumed recent and never rejected here.
func (f *Filter) isTooOld(posted string) bool {
	dt, ok := ParsePosted(posted)
	if !ok {
		return false
	}
	cutoff := f.now().UTC().Add(-time.Duration(f.policy.MaxAgeDays) * 24 * time.Hour)
	return dt.Before(cutoff)
}
