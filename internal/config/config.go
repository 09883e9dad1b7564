// Package config provides environment-backed configuration for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the service needs to start. Values come from the
// environment; FromEnv fills defaults for anything unset.
type Config struct {
	// Server
	Port int

	// Model
	GeminiAPIKey   string
	Model          string
	EmbeddingModel string

	// Data files
	JobsPath      string
	CoursesPath   string
	StoriesPath   string
	SalaryPath    string
	AnalyticsPath string

	// Retrieval
	ChunkSize    int
	ChunkOverlap int

	// Behavior
	Development bool
}

// FromEnv reads configuration from the environment, applying defaults for
// anything unset.
func FromEnv() Config {
	return Config{
		Port:           envInt("PORT", 8080),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		Model:          envStr("GEMINI_MODEL", "gemini-2.5-flash"),
		EmbeddingModel: envStr("GEMINI_EMBEDDING_MODEL", "text-embedding-004"),
		JobsPath:       envStr("JOBS_DATA_PATH", "data/job_descriptions.csv"),
		CoursesPath:    envStr("COURSES_DATA_PATH", "data/course_catalog.csv"),
		StoriesPath:    envStr("STORIES_DATA_PATH", "data/transition_stories.txt"),
		SalaryPath:     envStr("SALARY_DATA_PATH", "data/salary_data.csv"),
		AnalyticsPath:  envStr("ANALYTICS_DATA_PATH", "data/career_growth_navigator_analytics.csv"),
		ChunkSize:      envInt("STORY_CHUNK_SIZE", 1000),
		ChunkOverlap:   envInt("STORY_CHUNK_OVERLAP", 200),
		Development:    envBool("DEVELOPMENT"),
	}
}

// Validate checks that the configuration can actually start the service.
func (c Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: GEMINI_API_KEY is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: invalid port %d", c.Port)
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("config error: chunk overlap %d must be smaller than chunk size %d", c.ChunkOverlap, c.ChunkSize)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
