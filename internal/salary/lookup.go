package salary

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prateek/career-navigator/internal/types"
)

// estimateNote accompanies every estimated (non-catalog) salary range
const estimateNote = "These are estimated ranges. Actual salaries may vary based on company, experience, and skills."

// bucket is a keyword-matched estimated salary range
type bucket struct {
	keyword  string
	min, max int
}

// Estimated ranges in ₹ LPA, checked in order; the first keyword contained
// in the requested role wins.
var estimatedBuckets = []bucket{
	{"frontend", 8, 15},
	{"backend", 10, 18},
	{"fullstack", 12, 20},
	{"product", 15, 30},
	{"data", 10, 25},
	{"devops", 12, 22},
	{"designer", 6, 15},
}

// defaultBucket applies when no keyword matches
var defaultBucket = bucket{"default", 8, 15}

// Lookup resolves a salary insight for a role and location. Catalog rows
// match by case-insensitive substring containment in either direction on
// role; among matches, a row whose city contains the location wins, else the
// first match. With no match at all an estimated range is returned, so
// Lookup always produces a value.
func (c *Catalog) Lookup(role, location string) *types.SalaryInsight {
	roleLower := strings.ToLower(role)

	var matches []Row
	for _, row := range c.rows {
		rowRole := strings.ToLower(row.Role)
		if strings.Contains(rowRole, roleLower) || strings.Contains(roleLower, rowRole) {
			matches = append(matches, row)
		}
	}

	if len(matches) == 0 {
		return estimate(role, location)
	}

	best := matches[0]
	locationLower := strings.ToLower(location)
	for _, row := range matches {
		if strings.Contains(strings.ToLower(row.City), locationLower) {
			best = row
			break
		}
	}

	currency := orDefault(best.Currency, "₹")
	return &types.SalaryInsight{
		Role:            best.Role,
		Location:        orDefault(best.City, location),
		SalaryRange:     fmt.Sprintf("%s%s-%s", currency, formatAmount(best.SalaryMin), formatAmount(best.SalaryMax)),
		SalaryMin:       best.SalaryMin,
		SalaryMax:       best.SalaryMax,
		Currency:        currency,
		ExperienceLevel: orDefault(best.ExperienceLevel, "Mid-level"),
		Source:          types.SalarySourceInternal,
		LastUpdated:     orDefault(best.LastUpdated, "2024"),
	}
}

// estimate builds the keyword-bucketed fallback range
func estimate(role, location string) *types.SalaryInsight {
	roleLower := strings.ToLower(role)

	match := defaultBucket
	for _, b := range estimatedBuckets {
		if strings.Contains(roleLower, b.keyword) {
			match = b
			break
		}
	}

	return &types.SalaryInsight{
		Role:            role,
		Location:        location,
		SalaryRange:     fmt.Sprintf("₹%d-%d LPA", match.min, match.max),
		SalaryMin:       float64(match.min),
		SalaryMax:       float64(match.max),
		Currency:        "₹",
		ExperienceLevel: "Mid-level",
		Source:          types.SalarySourceEstimated,
		LastUpdated:     strconv.Itoa(time.Now().Year()),
		Note:            estimateNote,
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
