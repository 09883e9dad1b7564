package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prateek/career-navigator/internal/config"
	"github.com/prateek/career-navigator/internal/corpus"
	"github.com/prateek/career-navigator/internal/extraction"
	"github.com/prateek/career-navigator/internal/llm"
	"github.com/prateek/career-navigator/internal/logging"
	"github.com/prateek/career-navigator/internal/pipeline"
	"github.com/prateek/career-navigator/internal/salary"
	"github.com/prateek/career-navigator/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for career transition analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Development)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig().WithModel(cfg.Model), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	embedder, err := corpus.NewGeminiEmbedder(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}
	defer func() { _ = embedder.Close() }()

	logger.Info("building reference corpora",
		zap.String("jobs", cfg.JobsPath),
		zap.String("courses", cfg.CoursesPath),
		zap.String("stories", cfg.StoriesPath))

	stores, err := corpus.BuildStores(ctx, corpus.Sources{
		JobsPath:     cfg.JobsPath,
		CoursesPath:  cfg.CoursesPath,
		StoriesPath:  cfg.StoriesPath,
		ChunkSize:    cfg.ChunkSize,
		ChunkOverlap: cfg.ChunkOverlap,
	}, embedder, logger)
	if err != nil {
		return fmt.Errorf("failed to build reference corpora: %w", err)
	}

	salaries := salary.LoadCatalog(cfg.SalaryPath, logger)
	extractor := extraction.New(client, logger)
	pipe := pipeline.New(extractor, stores, salaries, logger)

	srv := server.New(server.Config{
		Port:          cfg.Port,
		AnalyticsPath: cfg.AnalyticsPath,
	}, pipe, stores, salaries, logger)

	return srv.Start()
}
