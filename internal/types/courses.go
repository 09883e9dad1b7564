package types

// Difficulty describes a course's expected skill level
type Difficulty string

// Difficulty values used in course recommendations
const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// CourseRecommendation is a ranked course suggestion. The selection and
// ordering policy (8-12 courses, free/paid mix) is applied by the model,
// not enforced here.
type CourseRecommendation struct {
	CourseName     string     `json:"courseName"`
	Platform       string     `json:"platform"`
	Instructor     string     `json:"instructor"`
	Duration       string     `json:"duration"`
	Price          string     `json:"price"`
	URL            string     `json:"url"`
	SkillsCovered  []string   `json:"skillsCovered"`
	Difficulty     Difficulty `json:"difficulty"`
	Rating         float64    `json:"rating"`
	WhyRecommended string     `json:"whyRecommended"`
	Priority       Priority   `json:"priority"`
}
