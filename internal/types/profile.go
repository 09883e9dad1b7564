// Package types provides type definitions for structured data used throughout the career-navigator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceLevel buckets a candidate's seniority
type ExperienceLevel string

// Experience level values produced by profile extraction
const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
)

// UserProfile represents the structured profile extracted from the user's
// free-text career description. HoursPerWeek and Location are overwritten
// with caller-supplied values after extraction; caller intent always wins.
type UserProfile struct {
	CurrentSkills   []string        `json:"currentSkills"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	Domain          string          `json:"domain"`
	HoursPerWeek    int             `json:"hoursPerWeek"`
	Location        string          `json:"location"`
}
