package types

// SalaryExpectation is the salary component of a job search strategy
type SalaryExpectation struct {
	Range          string `json:"range"`
	Factors        string `json:"factors"`
	NegotiationTip string `json:"negotiationTip"`
}

// NetworkingPlan describes where and how to build connections
type NetworkingPlan struct {
	Platforms   []string `json:"platforms"`
	Strategy    string   `json:"strategy"`
	Communities []string `json:"communities"`
}

// ApplicationPlan describes the application cadence and follow-up approach
type ApplicationPlan struct {
	Approach           string `json:"approach"`
	WeeklyApplications int    `json:"weeklyApplications"`
	FollowUp           string `json:"followUp"`
}

// InterviewPrep describes interview preparation focus and timeline
type InterviewPrep struct {
	FocusAreas []string `json:"focusAreas"`
	Timeline   string   `json:"timeline"`
	Resources  []string `json:"resources"`
}

// JobSearchStrategy is the personalized job search advice produced near the
// end of the pipeline
type JobSearchStrategy struct {
	StartApplyingMonth int               `json:"startApplyingMonth"`
	TargetCompanies    []string          `json:"targetCompanies"`
	Salary             SalaryExpectation `json:"salary"`
	Networking         NetworkingPlan    `json:"networking"`
	ApplicationPlan    ApplicationPlan   `json:"applicationStrategy"`
	InterviewPrep      InterviewPrep     `json:"interviewPrep"`
}
