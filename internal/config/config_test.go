package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("DEVELOPMENT", "")

	cfg := FromEnv()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
	assert.Equal(t, "data/job_descriptions.csv", cfg.JobsPath)
	assert.Equal(t, "data/course_catalog.csv", cfg.CoursesPath)
	assert.Equal(t, "data/transition_stories.txt", cfg.StoriesPath)
	assert.Equal(t, 1000, cfg.ChunkSize)
	assert.Equal(t, 200, cfg.ChunkOverlap)
	assert.False(t, cfg.Development)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-pro")
	t.Setenv("STORY_CHUNK_SIZE", "500")
	t.Setenv("DEVELOPMENT", "true")

	cfg := FromEnv()
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "gemini-2.0-pro", cfg.Model)
	assert.Equal(t, 500, cfg.ChunkSize)
	assert.True(t, cfg.Development)
}

func TestFromEnv_MalformedIntFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, 8080, cfg.Port)
}

func TestValidate(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	cfg := FromEnv()
	require.NoError(t, cfg.Validate())

	missing := cfg
	missing.GeminiAPIKey = ""
	assert.Error(t, missing.Validate())

	badPort := cfg
	badPort.Port = -1
	assert.Error(t, badPort.Validate())

	badOverlap := cfg
	badOverlap.ChunkOverlap = badOverlap.ChunkSize
	assert.Error(t, badOverlap.Validate())
}
