package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek/career-navigator/internal/corpus"
	"github.com/prateek/career-navigator/internal/extraction"
	"github.com/prateek/career-navigator/internal/llm"
	"github.com/prateek/career-navigator/internal/salary"
	"github.com/prateek/career-navigator/internal/types"
)

// constEmbedder gives every text the same vector; retrieval order degrades
// to corpus order, which is all these tests need
type constEmbedder struct{}

func (constEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0}
	}
	return out, nil
}

func (constEmbedder) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	return []float32{1, 0}, nil
}

// MockLLMClient implements llm.Client, dispatching canned responses on a
// distinctive phrase from each stage's prompt
type MockLLMClient struct {
	responses map[string]string
	errs      map[string]error
	calls     []string
}

func (m *MockLLMClient) Generate(_ context.Context, prompt string, _ llm.Persona) (string, error) {
	for phrase, response := range m.responses {
		if strings.Contains(prompt, phrase) {
			m.calls = append(m.calls, phrase)
			if err := m.errs[phrase]; err != nil {
				return "", err
			}
			return response, nil
		}
	}
	return "", errors.New("no canned response for prompt")
}

func (m *MockLLMClient) Close() error { return nil }

func (m *MockLLMClient) callCount(phrase string) int {
	n := 0
	for _, c := range m.calls {
		if c == phrase {
			n++
		}
	}
	return n
}

// Distinctive phrases from the six prompt templates
const (
	phraseProfile  = "Extract structured information"
	phraseGap      = "Analyze the skill gap"
	phraseRoadmap  = "6-month learning roadmap"
	phraseCourses  = "Recommend the best courses"
	phraseStrategy = "personalized job search strategy"
	phraseAngle    = "unique angle"
)

const profileJSON = `{
	"currentSkills": ["JavaScript", "React"],
	"experienceLevel": "mid",
	"domain": "software engineering",
	"hoursPerWeek": 40,
	"location": "Remote"
}`

const gapJSON = `{
	"currentSkills": ["JavaScript", "React"],
	"transferableSkills": [
		{"skill": "UI empathy", "howItHelps": "Understands user-facing tradeoffs"}
	],
	"skillsNeeded": [
		{"skill": "SQL", "priority": "high", "learningTime": "4 weeks"},
		{"skill": "User Research", "priority": "medium", "learningTime": "6 weeks"}
	],
	"gapScore": 65,
	"summary": "Solid foundation with focused gaps."
}`

const monthJSON = `{"focus": "Fundamentals", "courses": [], "project": "Build something small", "hoursPerWeek": 8, "milestones": ["First milestone"]}`

var roadmapJSON = `{
	"month1": ` + monthJSON + `,
	"month2": ` + monthJSON + `,
	"month3": ` + monthJSON + `,
	"month4": ` + monthJSON + `,
	"month5": ` + monthJSON + `,
	"month6": ` + monthJSON + `,
	"totalHours": 192,
	"keyTakeaway": "Consistency beats intensity."
}`

const coursesJSON = `[
	{"courseName": "SQL for Product Managers", "platform": "Coursera", "priority": "high"},
	{"courseName": "User Research Fundamentals", "platform": "Udemy", "difficulty": "Beginner"}
]`

const strategyJSON = `{
	"startApplyingMonth": 4,
	"targetCompanies": ["Acme", "Initech"],
	"salary": {"range": "₹15-30 LPA", "factors": "market demand", "negotiationTip": "anchor high"},
	"networking": {"platforms": ["LinkedIn"], "strategy": "comment before connecting", "communities": ["Product Folks"]},
	"applicationStrategy": {"approach": "targeted", "weeklyApplications": 5, "followUp": "after one week"},
	"interviewPrep": {"focusAreas": ["product sense"], "timeline": "month 4 onwards", "resources": ["Decode and Conquer"]}
}`

const angleJSON = `{
	"uniqueValue": "Engineer who speaks user",
	"superpower": "Prototype-driven discovery",
	"positioning": "Technical PM for developer products",
	"elevatorPitch": "I build what users need and know what it costs.",
	"resumeTip": "Lead with shipped outcomes.",
	"confidenceBoost": "Your build experience is rare among PMs."
}`

func cannedResponses() map[string]string {
	return map[string]string{
		phraseProfile:  profileJSON,
		phraseGap:      gapJSON,
		phraseRoadmap:  roadmapJSON,
		phraseCourses:  coursesJSON,
		phraseStrategy: strategyJSON,
		phraseAngle:    angleJSON,
	}
}

func fixtureStores(t *testing.T) *corpus.Stores {
	t.Helper()
	ctx := context.Background()
	embedder := constEmbedder{}

	jobs, err := corpus.BuildIndex(ctx, "jobs", []corpus.Document{
		{Content: "Role: Product Manager\nSkills Required: SQL, User Research, Roadmapping"},
		{Content: "Role: Frontend Developer\nSkills Required: React, TypeScript"},
	}, embedder)
	require.NoError(t, err)

	courses, err := corpus.BuildIndex(ctx, "courses", []corpus.Document{
		{Content: "Course: SQL for Product Managers\nPlatform: Coursera", Metadata: map[string]string{"courseName": "SQL for Product Managers"}},
		{Content: "Course: User Research Fundamentals\nPlatform: Udemy", Metadata: map[string]string{"courseName": "User Research Fundamentals"}},
	}, embedder)
	require.NoError(t, err)

	stories, err := corpus.BuildIndex(ctx, "stories", []corpus.Document{
		{Content: "Sarah transitioned from marketing to product management in 8 months."},
		{Content: "John moved from teaching to software development in 10 months."},
	}, embedder)
	require.NoError(t, err)

	return &corpus.Stores{Jobs: jobs, Courses: courses, Stories: stories}
}

func newTestPipeline(t *testing.T, client llm.Client) *Pipeline {
	t.Helper()
	return New(extraction.New(client, nil), fixtureStores(t), salary.NewCatalog(nil), nil)
}

func testRequest() Request {
	return Request{
		CurrentRole:       "Frontend Developer",
		TargetRole:        "Product Manager",
		AdditionalContext: "5 years building dashboards",
		HoursPerWeek:      8,
		Location:          "Pune",
	}
}

func TestRun_ProducesCompletePlan(t *testing.T) {
	client := &MockLLMClient{responses: cannedResponses()}
	pipe := newTestPipeline(t, client)

	plan, err := pipe.Run(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, plan)

	require.NotNil(t, plan.UserProfile)
	assert.Equal(t, types.ExperienceMid, plan.UserProfile.ExperienceLevel)

	require.NotNil(t, plan.SkillGapAnalysis)
	assert.Equal(t, 65, plan.SkillGapAnalysis.GapScore)
	assert.Equal(t, []string{"SQL", "User Research"}, plan.SkillGapAnalysis.SkillNames())

	require.NotNil(t, plan.Roadmap)
	assert.Equal(t, "Fundamentals", plan.Roadmap.Month1.Focus)
	assert.Equal(t, "Fundamentals", plan.Roadmap.Month6.Focus)
	assert.Equal(t, 192, plan.Roadmap.TotalHours)

	require.Len(t, plan.Courses, 2)
	assert.Equal(t, "SQL for Product Managers", plan.Courses[0].CourseName)

	require.NotNil(t, plan.Salary)
	assert.Equal(t, types.SalarySourceEstimated, plan.Salary.Source)
	assert.Equal(t, "₹15-30 LPA", plan.Salary.SalaryRange, "product keyword bucket")
	assert.Equal(t, "Pune", plan.Salary.Location)

	require.NotNil(t, plan.JobSearchStrategy)
	assert.Equal(t, 4, plan.JobSearchStrategy.StartApplyingMonth)
	assert.Equal(t, 5, plan.JobSearchStrategy.ApplicationPlan.WeeklyApplications)

	require.NotNil(t, plan.UniqueAngle)
	assert.Equal(t, "Prototype-driven discovery", plan.UniqueAngle.Superpower)

	assert.False(t, plan.GeneratedAt.IsZero())
}

func TestRun_CallerOverridesExtractedHoursAndLocation(t *testing.T) {
	client := &MockLLMClient{responses: cannedResponses()}
	pipe := newTestPipeline(t, client)

	// The canned profile claims 40 hours/week from Remote; the request says
	// 8 hours/week in Pune.
	plan, err := pipe.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, 8, plan.UserProfile.HoursPerWeek)
	assert.Equal(t, "Pune", plan.UserProfile.Location)
}

func TestRun_GenerationStagesRunInOrder(t *testing.T) {
	client := &MockLLMClient{responses: cannedResponses()}
	pipe := newTestPipeline(t, client)

	_, err := pipe.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{
		phraseProfile,
		phraseGap,
		phraseRoadmap,
		phraseCourses,
		phraseStrategy,
		phraseAngle,
	}, client.calls)
}

func TestRun_MalformedStageAbortsRemainingStages(t *testing.T) {
	responses := cannedResponses()
	responses[phraseRoadmap] = "I refuse to emit JSON today."
	client := &MockLLMClient{responses: responses}
	pipe := newTestPipeline(t, client)

	plan, err := pipe.Run(context.Background(), testRequest())
	require.Error(t, err)
	assert.Nil(t, plan, "no partial plan on stage failure")

	var malErr *extraction.MalformedOutputError
	require.True(t, errors.As(err, &malErr))
	assert.Equal(t, "generate-roadmap", malErr.Template)
	assert.Equal(t, "I refuse to emit JSON today.", malErr.RawOutput)

	assert.Equal(t, 0, client.callCount(phraseCourses), "later stages must not run")
	assert.Equal(t, 0, client.callCount(phraseStrategy))
	assert.Equal(t, 0, client.callCount(phraseAngle))
}

func TestRun_GenerationErrorAbortsImmediately(t *testing.T) {
	client := &MockLLMClient{
		responses: cannedResponses(),
		errs:      map[string]error{phraseProfile: errors.New("upstream timeout")},
	}
	pipe := newTestPipeline(t, client)

	plan, err := pipe.Run(context.Background(), testRequest())
	require.Error(t, err)
	assert.Nil(t, plan)

	var genErr *extraction.GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "extract-profile", genErr.Template)
	assert.Equal(t, 1, len(client.calls), "nothing after the failed stage may run")
}

func TestRun_EachStageCalledExactlyOnce(t *testing.T) {
	client := &MockLLMClient{responses: cannedResponses()}
	pipe := newTestPipeline(t, client)

	_, err := pipe.Run(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Len(t, client.calls, 6)
	for _, phrase := range []string{phraseProfile, phraseGap, phraseRoadmap, phraseCourses, phraseStrategy, phraseAngle} {
		assert.Equal(t, 1, client.callCount(phrase), "stage %q", phrase)
	}
}
