package types

// RoadmapCourse is a course scheduled into a roadmap month
type RoadmapCourse struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Hours    int    `json:"hours"`
	URL      string `json:"url"`
}

// RoadmapMonth is one month of the learning plan
type RoadmapMonth struct {
	Focus        string          `json:"focus"`
	Courses      []RoadmapCourse `json:"courses"`
	Project      string          `json:"project"`
	HoursPerWeek int             `json:"hoursPerWeek"`
	Milestones   []string        `json:"milestones"`
}

// RoadmapPlan is the six-month learning roadmap
type RoadmapPlan struct {
	Month1      RoadmapMonth `json:"month1"`
	Month2      RoadmapMonth `json:"month2"`
	Month3      RoadmapMonth `json:"month3"`
	Month4      RoadmapMonth `json:"month4"`
	Month5      RoadmapMonth `json:"month5"`
	Month6      RoadmapMonth `json:"month6"`
	TotalHours  int          `json:"totalHours"`
	KeyTakeaway string       `json:"keyTakeaway"`
}
