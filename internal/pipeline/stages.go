package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/prateek/career-navigator/internal/corpus"
	"github.com/prateek/career-navigator/internal/extraction"
	"github.com/prateek/career-navigator/internal/llm"
)

// Retrieval parameters for the corpus-backed stages
const (
	jobRequirementsK = 5
	courseSearchK    = 15
	storySearchK     = 3
	roadmapCourseCap = 12
)

// stage is one step of the chain. Stages run strictly in table order; each
// stage reads the state written by its predecessors.
type stage struct {
	name string
	run  func(ctx context.Context, p *Pipeline, s *state) error
}

// stages defines the ten-stage sequence. Reordering or inserting a stage is
// a table edit, not a control-flow change.
var stages = []stage{
	{"extract_profile", runExtractProfile},
	{"retrieve_job_requirements", runRetrieveJobRequirements},
	{"analyze_gap", runAnalyzeGap},
	{"retrieve_courses", runRetrieveCourses},
	{"generate_roadmap", runGenerateRoadmap},
	{"recommend_courses", runRecommendCourses},
	{"load_salary", runLoadSalary},
	{"retrieve_stories", runRetrieveStories},
	{"generate_strategy", runGenerateStrategy},
	{"generate_angle", runGenerateAngle},
}

// runExtractProfile builds the UserProfile from the raw role descriptions.
// Caller-supplied hoursPerWeek and location always win over extracted values.
func runExtractProfile(ctx context.Context, p *Pipeline, s *state) error {
	vars := map[string]string{
		"CurrentRole": s.req.CurrentRole,
		"TargetRole":  s.req.TargetRole,
		"Context":     s.req.AdditionalContext,
	}
	if err := p.extractor.Extract(ctx, "extract-profile", vars, llm.PersonaFactual, &s.profile); err != nil {
		return err
	}
	s.profile.HoursPerWeek = s.req.HoursPerWeek
	s.profile.Location = s.req.Location
	return nil
}

func runRetrieveJobRequirements(ctx context.Context, p *Pipeline, s *state) error {
	docs, err := p.stores.Jobs.Query(ctx, s.req.TargetRole, jobRequirementsK)
	if err != nil {
		return &extraction.GenerationError{Template: "retrieve_job_requirements", Cause: err}
	}
	s.jobRequirements = joinContents(docs)
	return nil
}

func runAnalyzeGap(ctx context.Context, p *Pipeline, s *state) error {
	vars := map[string]string{
		"CurrentSkills":   mustJSON(s.profile.CurrentSkills),
		"ExperienceLevel": string(s.profile.ExperienceLevel),
		"Domain":          s.profile.Domain,
		"TargetRole":      s.req.TargetRole,
		"JobRequirements": s.jobRequirements,
	}
	return p.extractor.Extract(ctx, "analyze-gap", vars, llm.PersonaBalanced, &s.gap)
}

func runRetrieveCourses(ctx context.Context, p *Pipeline, s *state) error {
	s.skillsToLearn = strings.Join(s.gap.SkillNames(), ", ")
	docs, err := p.stores.Courses.Query(ctx, s.skillsToLearn, courseSearchK)
	if err != nil {
		return &extraction.GenerationError{Template: "retrieve_courses", Cause: err}
	}
	s.courseDocs = docs
	return nil
}

func runGenerateRoadmap(ctx context.Context, p *Pipeline, s *state) error {
	relevant := s.courseDocs
	if len(relevant) > roadmapCourseCap {
		relevant = relevant[:roadmapCourseCap]
	}
	vars := map[string]string{
		"CurrentRole":     s.req.CurrentRole,
		"TargetRole":      s.req.TargetRole,
		"SkillsToLearn":   s.skillsToLearn,
		"HoursPerWeek":    strconv.Itoa(s.req.HoursPerWeek),
		"ExperienceLevel": string(s.profile.ExperienceLevel),
		"RelevantCourses": mustJSON(relevant),
	}
	return p.extractor.Extract(ctx, "generate-roadmap", vars, llm.PersonaBalanced, &s.roadmap)
}

// runRecommendCourses asks the model to select and rank 8-12 of the
// retrieved courses. The selection policy (length, free/paid mix) is a
// prompt instruction, not a post-filter.
func runRecommendCourses(ctx context.Context, p *Pipeline, s *state) error {
	vars := map[string]string{
		"SkillsToLearn":    s.skillsToLearn,
		"ExperienceLevel":  string(s.profile.ExperienceLevel),
		"HoursPerWeek":     strconv.Itoa(s.req.HoursPerWeek),
		"LearningStyle":    "balanced",
		"AvailableCourses": mustJSON(s.courseDocs),
	}
	return p.extractor.Extract(ctx, "recommend-courses", vars, llm.PersonaFactual, &s.courses)
}

// runLoadSalary is the one deterministic stage: a catalog lookup that
// always produces a value.
func runLoadSalary(_ context.Context, p *Pipeline, s *state) error {
	s.salary = p.salaries.Lookup(s.req.TargetRole, s.req.Location)
	return nil
}

func runRetrieveStories(ctx context.Context, p *Pipeline, s *state) error {
	query := fmt.Sprintf("%s to %s career transition", s.req.CurrentRole, s.req.TargetRole)
	docs, err := p.stores.Stories.Query(ctx, query, storySearchK)
	if err != nil {
		return &extraction.GenerationError{Template: "retrieve_stories", Cause: err}
	}
	s.storiesText = joinContents(docs)
	return nil
}

func runGenerateStrategy(ctx context.Context, p *Pipeline, s *state) error {
	vars := map[string]string{
		"CurrentRole":      s.req.CurrentRole,
		"TargetRole":       s.req.TargetRole,
		"Location":         s.req.Location,
		"ExperienceLevel":  string(s.profile.ExperienceLevel),
		"UniqueBackground": mustJSON(s.gap.TransferableSkills),
		"SalaryData":       mustJSON(s.salary),
	}
	return p.extractor.Extract(ctx, "generate-strategy", vars, llm.PersonaCreative, &s.strategy)
}

func runGenerateAngle(ctx context.Context, p *Pipeline, s *state) error {
	vars := map[string]string{
		"CurrentRole":        s.req.CurrentRole,
		"TargetRole":         s.req.TargetRole,
		"TransferableSkills": mustJSON(s.gap.TransferableSkills),
		"ExperienceLevel":    string(s.profile.ExperienceLevel),
		"TransitionStories":  s.storiesText,
	}
	return p.extractor.Extract(ctx, "generate-angle", vars, llm.PersonaCreative, &s.angle)
}

// joinContents concatenates retrieved document contents as prompt context
func joinContents(docs []corpus.Document) string {
	parts := make([]string, len(docs))
	for i, doc := range docs {
		parts[i] = doc.Content
	}
	return strings.Join(parts, "\n\n")
}

// mustJSON marshals prompt context values. The inputs are plain structs and
// slices that cannot fail to marshal.
func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}
