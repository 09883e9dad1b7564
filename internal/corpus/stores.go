package corpus

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Sources configures where the three corpora load their reference data from
type Sources struct {
	JobsPath     string
	CoursesPath  string
	StoriesPath  string
	ChunkSize    int
	ChunkOverlap int
}

// Stores aggregates the three corpus indexes. Built once at startup and
// injected into the pipeline so tests can substitute fixture corpora.
type Stores struct {
	Jobs    *Index
	Courses *Index
	Stories *Index
}

// BuildStores builds the three indexes concurrently. Missing or malformed
// source files degrade to the hand-authored sample corpora; an error is
// returned only when even the fallback corpus cannot be indexed.
func BuildStores(ctx context.Context, src Sources, embedder Embedder, logger *zap.Logger) (*Stores, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	splitter := Splitter{ChunkSize: src.ChunkSize, ChunkOverlap: src.ChunkOverlap}
	if splitter.ChunkSize <= 0 {
		splitter = DefaultSplitter()
	}

	stores := &Stores{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		index, err := buildCorpus(gCtx, "jobs", embedder, logger, func() ([]Document, error) {
			return loadJobDocuments(src.JobsPath)
		}, fallbackJobDocuments)
		if err != nil {
			return err
		}
		stores.Jobs = index
		return nil
	})

	g.Go(func() error {
		index, err := buildCorpus(gCtx, "courses", embedder, logger, func() ([]Document, error) {
			return loadCourseDocuments(src.CoursesPath)
		}, fallbackCourseDocuments)
		if err != nil {
			return err
		}
		stores.Courses = index
		return nil
	})

	g.Go(func() error {
		index, err := buildCorpus(gCtx, "stories", embedder, logger, func() ([]Document, error) {
			return loadStoryDocuments(src.StoriesPath, splitter)
		}, fallbackStoryDocuments)
		if err != nil {
			return err
		}
		stores.Stories = index
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stores, nil
}

// buildCorpus loads and indexes one corpus, degrading to fallback documents
// on any load failure or empty result.
func buildCorpus(ctx context.Context, name string, embedder Embedder, logger *zap.Logger, load func() ([]Document, error), fallback func() []Document) (*Index, error) {
	docs, err := load()
	if err != nil || len(docs) == 0 {
		logger.Warn("corpus source unavailable, using fallback sample data",
			zap.String("corpus", name),
			zap.Error(err))
		docs = fallback()
	}

	index, err := BuildIndex(ctx, name, docs, embedder)
	if err == nil {
		logger.Info("corpus index ready",
			zap.String("corpus", name),
			zap.Int("documents", index.Len()))
		return index, nil
	}

	// Embedding can fail independently of the source data; try the small
	// fallback corpus once before declaring the corpus unavailable.
	logger.Warn("corpus indexing failed, retrying with fallback sample data",
		zap.String("corpus", name),
		zap.Error(err))
	index, ferr := BuildIndex(ctx, name, fallback(), embedder)
	if ferr != nil {
		return nil, &CorpusUnavailableError{Corpus: name, Cause: ferr}
	}
	return index, nil
}
