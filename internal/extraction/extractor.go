// Package extraction wraps a single generation call with a prompt template
// and a strict JSON-decoding contract. Every pipeline stage is built from
// this unit: render template, call the model with a persona preset, strip
// markdown fences, validate against the stage schema, unmarshal.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/prateek/career-navigator/internal/llm"
	"github.com/prateek/career-navigator/internal/prompts"
	"github.com/prateek/career-navigator/internal/schemas"
)

// promptFile is the embedded prompt template file for the career pipeline
const promptFile = "career.json"

// stageSchemas maps template ids to the schema their output must satisfy
var stageSchemas = map[string]string{
	"extract-profile":   schemas.UserProfile,
	"analyze-gap":       schemas.SkillGap,
	"generate-roadmap":  schemas.Roadmap,
	"recommend-courses": schemas.CourseRecommendations,
	"generate-strategy": schemas.JobSearchStrategy,
	"generate-angle":    schemas.UniqueAngle,
}

// Extractor turns prompt templates into validated structured values
type Extractor struct {
	client llm.Client
	logger *zap.Logger
}

// New creates an Extractor backed by the given LLM client
func New(client llm.Client, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{client: client, logger: logger}
}

// Extract renders the named template with vars, invokes the model with the
// persona preset, and decodes the response into out. The response text is
// decoded exactly once; the only repair applied is markdown fence stripping.
// Returns *GenerationError when the model call fails and
// *MalformedOutputError when the text does not decode as the stage's shape.
func (e *Extractor) Extract(ctx context.Context, templateID string, vars map[string]string, persona llm.Persona, out any) error {
	template, err := prompts.Get(promptFile, templateID)
	if err != nil {
		return fmt.Errorf("unknown template %s: %w", templateID, err)
	}
	prompt := prompts.Format(template, vars)

	text, err := e.client.Generate(ctx, prompt, persona)
	if err != nil {
		return &GenerationError{Template: templateID, Cause: err}
	}

	cleaned := llm.CleanJSONBlock(text)

	if schemaName, ok := stageSchemas[templateID]; ok {
		if err := schemas.Validate(schemaName, []byte(cleaned)); err != nil {
			if _, isLoad := err.(*schemas.SchemaLoadError); isLoad {
				return err
			}
			e.logger.Debug("stage output failed schema validation",
				zap.String("template", templateID),
				zap.String("raw_output", text),
				zap.Error(err))
			return &MalformedOutputError{Template: templateID, RawOutput: text, Cause: err}
		}
	}

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		e.logger.Debug("stage output failed JSON decoding",
			zap.String("template", templateID),
			zap.String("raw_output", text),
			zap.Error(err))
		return &MalformedOutputError{Template: templateID, RawOutput: text, Cause: err}
	}

	return nil
}
