package types

import "time"

// CareerPlan is the final aggregate returned for one analyze request.
// It is owned by the pipeline for the lifetime of the request and is not
// persisted; either every field is populated or the request fails.
type CareerPlan struct {
	UserProfile       *UserProfile           `json:"userProfile"`
	SkillGapAnalysis  *SkillGapResult        `json:"skillGapAnalysis"`
	Roadmap           *RoadmapPlan           `json:"roadmap"`
	Courses           []CourseRecommendation `json:"courses"`
	Salary            *SalaryInsight         `json:"salary"`
	JobSearchStrategy *JobSearchStrategy     `json:"jobSearchStrategy"`
	UniqueAngle       *UniqueAngle           `json:"uniqueAngle"`
	GeneratedAt       time.Time              `json:"generatedAt"`
}
