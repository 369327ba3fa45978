package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/altitut/FundingMatch-sub001/ai"
	"github.com/altitut/FundingMatch-sub001/core"
	"github.com/altitut/FundingMatch-sub001/storage"
)

const (
	// ingestedDirName is where fully processed CSV files are moved.
	ingestedDirName = "Ingested"

	// defaultCheckpointTTL bounds how long an opportunity without a
	// parseable deadline stays deduplicated.
	defaultCheckpointTTL = 90 * 24 * time.Hour

	// purgeInterval is the minimum time between expiration sweeps.
	purgeInterval = 24 * time.Hour

	defaultBatchSize      = 20
	defaultReportInterval = 10
)

// Summary reports the outcome of an ingestion run.
type Summary struct {
	ProcessedFiles    []string
	NewOpportunities  int
	DuplicateSkipped  int
	ExpiredSkipped    int
	FailedEmbeddings  int
	ExpiredRemoved    int
	PurgedCheckpoints int
	Errors            []string
}

// Pipeline orchestrates parsing, deduplication, embedding, and storage of
// funding opportunity CSV exports.
type Pipeline struct {
	oppRepo        storage.OpportunityRepository
	checkpoints    storage.CheckpointRepository
	embedder       ai.Embedder
	pool           *ants.Pool
	batchSize      int
	checkpointTTL  time.Duration
	progressWriter io.Writer
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many opportunities are stored per write batch.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithCheckpointTTL sets the dedup window for opportunities without a
// parseable deadline.
func WithCheckpointTTL(ttl time.Duration) Option {
	return func(p *Pipeline) error {
		p.checkpointTTL = ttl
		return nil
	}
}

// WithProgressWriter sets where progress output is written.
// Default is io.Discard.
func WithProgressWriter(w io.Writer) Option {
	return func(p *Pipeline) error {
		if w == nil {
			w = io.Discard
		}
		p.progressWriter = w
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	oppRepo storage.OpportunityRepository,
	checkpoints storage.CheckpointRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if oppRepo == nil {
		return nil, ErrOpportunityRepositoryRequired
	}
	if checkpoints == nil {
		return nil, ErrCheckpointRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		oppRepo:        oppRepo,
		checkpoints:    checkpoints,
		embedder:       provider.Embedder(),
		pool:           pool,
		batchSize:      defaultBatchSize,
		checkpointTTL:  defaultCheckpointTTL,
		progressWriter: io.Discard,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// ProcessDirectory ingests every CSV file directly under dir.
// Fully processed files are moved into dir/Ingested so a re-run skips them.
// Per-file failures are recorded in the summary, not returned as errors.
func (p *Pipeline) ProcessDirectory(ctx context.Context, dir string) (*Summary, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}

	summary := &Summary{}

	for _, file := range files {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		p.logger.Info("processing file", "file", filepath.Base(file))

		opps, err := ParseFile(file)
		if err != nil {
			p.logger.Error("failed to parse file", "file", file, "err", err)
			summary.Errors = append(summary.Errors, err.Error())
			continue
		}

		p.processOpportunities(ctx, opps, summary)

		if err := p.moveToIngested(dir, file); err != nil {
			p.logger.Error("failed to move processed file", "file", file, "err", err)
			summary.Errors = append(summary.Errors, err.Error())
			continue
		}

		summary.ProcessedFiles = append(summary.ProcessedFiles, filepath.Base(file))
	}

	if err := p.maybePurge(ctx, summary); err != nil {
		p.logger.Error("expiration sweep failed", "err", err)
		summary.Errors = append(summary.Errors, err.Error())
	}

	return summary, nil
}

// processOpportunities deduplicates, embeds, and stores a parsed batch.
func (p *Pipeline) processOpportunities(ctx context.Context, opps []*core.Opportunity, summary *Summary) {
	now := time.Now().UTC()

	// Filter before embedding: remote calls are the expensive part.
	var pending []*core.Opportunity
	for _, opp := range opps {
		if err := core.ValidateOpportunity(opp); err != nil {
			p.logger.Warn("skipping invalid opportunity", "title", opp.Title, "err", err)
			summary.Errors = append(summary.Errors, err.Error())
			continue
		}

		opp.Id = core.IDFromContent(opp.IdentityKey())

		seen, err := p.checkpoints.HasCheckpoint(ctx, opp.Id, now)
		if err != nil {
			p.logger.Error("checkpoint lookup failed", "id", opp.Id, "err", err)
			summary.Errors = append(summary.Errors, err.Error())
			continue
		}
		if seen {
			summary.DuplicateSkipped++
			continue
		}

		if opp.IsExpired(now) {
			p.logger.Debug("skipping expired opportunity",
				"title", core.Truncate(opp.Title, 50), "close_date", opp.CloseDate)
			summary.ExpiredSkipped++
			continue
		}

		pending = append(pending, opp)
	}

	if len(pending) == 0 {
		return
	}

	tracker := NewProgressTracker(p.progressWriter, len(pending), defaultReportInterval)
	tracker.Start()

	// Embed concurrently. The embedder's rate limiter paces the remote
	// calls, so pool size only bounds in-flight goroutines.
	var (
		mu       sync.Mutex
		embedded []*core.Opportunity
		wg       sync.WaitGroup
	)
	for _, opp := range pending {
		opp := opp
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			defer tracker.Increment(1)

			vector, err := p.embedder.EmbedText(ctx, opp.EmbeddingText())
			if err != nil {
				p.logger.Error("embedding failed",
					"title", core.Truncate(opp.Title, 50), "err", err)
				mu.Lock()
				summary.FailedEmbeddings++
				mu.Unlock()
				return
			}

			opp.Vector = vector
			mu.Lock()
			embedded = append(embedded, opp)
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
			p.logger.Error("failed to submit embedding job", "err", err)
			mu.Lock()
			summary.FailedEmbeddings++
			mu.Unlock()
		}
	}
	wg.Wait()
	tracker.Finish()

	// Store in batches and checkpoint each stored opportunity.
	for start := 0; start < len(embedded); start += p.batchSize {
		end := start + p.batchSize
		if end > len(embedded) {
			end = len(embedded)
		}
		batch := embedded[start:end]

		if _, err := p.oppRepo.AddOpportunities(ctx, batch...); err != nil {
			p.logger.Error("failed to store batch", "size", len(batch), "err", err)
			summary.Errors = append(summary.Errors, err.Error())
			continue
		}

		for _, opp := range batch {
			cp := &core.IngestCheckpoint{
				OpportunityId: opp.Id,
				Title:         opp.Title,
				ProcessedAt:   now,
				ExpiresAt:     p.checkpointExpiry(opp, now),
			}
			if err := p.checkpoints.PutCheckpoint(ctx, cp); err != nil {
				p.logger.Error("failed to store checkpoint", "id", opp.Id, "err", err)
				summary.Errors = append(summary.Errors, err.Error())
			}
		}

		summary.NewOpportunities += len(batch)
		p.logger.Info("stored batch", "size", len(batch))
	}
}

// checkpointExpiry returns when an opportunity's checkpoint lapses:
// its deadline when one parses, otherwise now plus the configured TTL.
func (p *Pipeline) checkpointExpiry(opp *core.Opportunity, now time.Time) time.Time {
	if deadline, ok := opp.Deadline(); ok {
		return deadline
	}
	return now.Add(p.checkpointTTL)
}

// maybePurge sweeps expired checkpoints and opportunities at most once
// per purgeInterval.
func (p *Pipeline) maybePurge(ctx context.Context, summary *Summary) error {
	now := time.Now().UTC()

	last, err := p.checkpoints.LastPurge(ctx)
	if err != nil {
		return err
	}
	if !last.IsZero() && now.Sub(last) < purgeInterval {
		return nil
	}

	purged, err := p.checkpoints.PurgeExpired(ctx, now)
	if err != nil {
		return err
	}
	summary.PurgedCheckpoints = purged

	removed, err := p.RemoveExpired(ctx)
	if err != nil {
		return err
	}
	summary.ExpiredRemoved = removed

	p.logger.Info("expiration sweep complete",
		"purged_checkpoints", purged, "removed_opportunities", removed)

	return p.checkpoints.SetLastPurge(ctx, now)
}

// RemoveExpired deletes stored opportunities whose deadline has passed.
// Returns the number of opportunities removed.
func (p *Pipeline) RemoveExpired(ctx context.Context) (int, error) {
	opps, err := p.oppRepo.GetAllOpportunities(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	var expired []core.ID
	for _, opp := range opps {
		if opp.IsExpired(now) {
			expired = append(expired, opp.Id)
		}
	}

	if len(expired) == 0 {
		return 0, nil
	}

	if err := p.oppRepo.DeleteOpportunities(ctx, expired...); err != nil {
		return 0, err
	}
	return len(expired), nil
}

// moveToIngested moves a processed file into the Ingested subdirectory.
func (p *Pipeline) moveToIngested(dir, file string) error {
	ingested := filepath.Join(dir, ingestedDirName)
	if err := os.MkdirAll(ingested, 0755); err != nil {
		return err
	}
	return os.Rename(file, filepath.Join(ingested, filepath.Base(file)))
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
