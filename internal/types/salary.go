package types

// Salary data sources
const (
	SalarySourceInternal  = "Internal Database"
	SalarySourceEstimated = "Estimated"
)

// SalaryInsight is a deterministic salary lookup record. It is never
// model-generated; when no catalog row matches, an estimated range is
// returned with Source set to SalarySourceEstimated.
type SalaryInsight struct {
	Role            string  `json:"role"`
	Location        string  `json:"location"`
	SalaryRange     string  `json:"salaryRange"`
	SalaryMin       float64 `json:"salaryMin"`
	SalaryMax       float64 `json:"salaryMax"`
	Currency        string  `json:"currency"`
	ExperienceLevel string  `json:"experienceLevel"`
	Source          string  `json:"source"`
	LastUpdated     string  `json:"lastUpdated"`
	Note            string  `json:"note,omitempty"`
}
