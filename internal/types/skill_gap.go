package types

// Priority ranks how urgently a skill should be learned
type Priority string

// Priority values used in gap analysis and course recommendations
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TransferableSkill is a skill from the current role that carries over to the target role
type TransferableSkill struct {
	Skill      string `json:"skill"`
	HowItHelps string `json:"howItHelps"`
}

// SkillNeeded is a skill the user must learn for the target role
type SkillNeeded struct {
	Skill        string   `json:"skill"`
	Priority     Priority `json:"priority"`
	LearningTime string   `json:"learningTime"`
}

// SkillGapResult represents the gap analysis between the current and target role.
// GapScore is a model-estimated readiness metric in [0,100]; it has no computed
// relationship to the skill lists.
type SkillGapResult struct {
	CurrentSkills      []string            `json:"currentSkills"`
	TransferableSkills []TransferableSkill `json:"transferableSkills"`
	SkillsNeeded       []SkillNeeded       `json:"skillsNeeded"`
	GapScore           int                 `json:"gapScore"`
	Summary            string              `json:"summary"`
}

// SkillNames returns the names of the skills needed, in order
func (r *SkillGapResult) SkillNames() []string {
	names := make([]string, 0, len(r.SkillsNeeded))
	for _, s := range r.SkillsNeeded {
		names = append(names, s.Skill)
	}
	return names
}
