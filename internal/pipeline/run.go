// Package pipeline provides the high-level orchestration for career plan
// generation: a strictly sequential ten-stage chain threading structured
// stage outputs forward, interleaved with corpus retrieval and the
// deterministic salary lookup.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/prateek/career-navigator/internal/corpus"
	"github.com/prateek/career-navigator/internal/extraction"
	"github.com/prateek/career-navigator/internal/salary"
	"github.com/prateek/career-navigator/internal/types"
)

// Request carries the validated inputs for one pipeline run
type Request struct {
	CurrentRole       string
	TargetRole        string
	AdditionalContext string
	HoursPerWeek      int
	Location          string
}

// Pipeline runs the career analysis chain. All collaborators are injected;
// the pipeline holds no mutable state of its own and is safe for concurrent
// requests.
type Pipeline struct {
	extractor *extraction.Extractor
	stores    *corpus.Stores
	salaries  *salary.Catalog
	logger    *zap.Logger
}

// New creates a Pipeline
func New(extractor *extraction.Extractor, stores *corpus.Stores, salaries *salary.Catalog, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		extractor: extractor,
		stores:    stores,
		salaries:  salaries,
		logger:    logger,
	}
}

// state accumulates stage outputs across one run. Stage n+1 always depends
// on stage n's decoded output, so the dependency graph is a simple chain.
type state struct {
	req Request

	profile         *types.UserProfile
	jobRequirements string
	gap             *types.SkillGapResult
	skillsToLearn   string
	courseDocs      []corpus.Document
	roadmap         *types.RoadmapPlan
	courses         []types.CourseRecommendation
	salary          *types.SalaryInsight
	storiesText     string
	strategy        *types.JobSearchStrategy
	angle           *types.UniqueAngle
}

// Run executes the full chain for one request. Any stage failure aborts the
// whole request with a single error; no partial CareerPlan is ever returned
// and no stage is retried.
func (p *Pipeline) Run(ctx context.Context, req Request) (*types.CareerPlan, error) {
	s := &state{req: req}

	p.logger.Info("starting career analysis",
		zap.String("current_role", req.CurrentRole),
		zap.String("target_role", req.TargetRole))

	for i, st := range stages {
		p.logger.Debug("running stage",
			zap.Int("stage", i+1),
			zap.String("name", st.name))
		if err := st.run(ctx, p, s); err != nil {
			p.logger.Warn("stage failed, aborting request",
				zap.Int("stage", i+1),
				zap.String("name", st.name),
				zap.Error(err))
			return nil, err
		}
	}

	p.logger.Info("career analysis complete",
		zap.Int("gap_score", s.gap.GapScore),
		zap.Int("courses", len(s.courses)))

	return &types.CareerPlan{
		UserProfile:       s.profile,
		SkillGapAnalysis:  s.gap,
		Roadmap:           s.roadmap,
		Courses:           s.courses,
		Salary:            s.salary,
		JobSearchStrategy: s.strategy,
		UniqueAngle:       s.angle,
		GeneratedAt:       time.Now().UTC(),
	}, nil
}
