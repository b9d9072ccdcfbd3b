// Package batch implements the Batch Coordinator: a worker
// pool that drives the Matching Engine and Status Rule Engine over the
// batch files produced by the MARC Streaming Loader, with
// signal-safe cleanup and commutative statistics aggregation. The
// worker pool is a bounded parallel batch pipeline built on
// golang.org/x/sync/errgroup.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pulibrary/marc-copyright/internal/domain"
	"github.com/pulibrary/marc-copyright/internal/indexer"
	"github.com/pulibrary/marc-copyright/internal/marcloader"
	"github.com/pulibrary/marc-copyright/internal/matcher"
	"github.com/pulibrary/marc-copyright/internal/status"
)

// Config is the Batch Coordinator's configuration surface.
type Config struct {
	NumWorkers     int
	ResultDir      string
	ExpirationYear int
	MaxDataYear    int
}

// Coordinator drives parallel processing of MARC batch files against a
// pair of built Candidate Indexes.
type Coordinator struct {
	Config            Config
	RegistrationIndex *indexer.Index
	RenewalIndex      *indexer.Index
	Matcher           *matcher.Engine
	Logger            logrus.FieldLogger
}

// NewCoordinator returns a Coordinator. NumWorkers defaults to the
// available parallelism when unset.
func NewCoordinator(cfg Config, regIndex, renIndex *indexer.Index, m *matcher.Engine, logger logrus.FieldLogger) *Coordinator {
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Coordinator{Config: cfg, RegistrationIndex: regIndex, RenewalIndex: renIndex, Matcher: m, Logger: logger}
}

// Run processes every batch file with a bounded pool of goroutines,
// returning the job-wide aggregated statistics and the list of result
// file paths produced. Per-batch failures are isolated (one batch's
// failure semantics): a batch that errors produces a failed result
// record and the job continues.
func (c *Coordinator) Run(ctx context.Context, batchPaths []string) (AggregateStats, []string, error) {
	ctx, cancel, cleanup := installSignalCleanup(ctx, c.Logger)
	defer cancel()

	resultPaths := make([]string, len(batchPaths))
	batchStats := make([]RecordStats, len(batchPaths))
	batchAggregates := make([]AggregateStats, len(batchPaths))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(c.Config.NumWorkers)

	for i, path := range batchPaths {
		i, path := i, path
		group.Go(func() error {
			select {
			case <-gctx.Done():
				return nil
			default:
			}
			resultPath, stats, partial := c.processBatch(path, i)
			resultPaths[i] = resultPath
			batchStats[i] = stats
			batchAggregates[i] = partial
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		cleanup(append(resultPaths, batchPaths...))
		return AggregateStats{}, nil, err
	}

	if ctx.Err() != nil {
		cleanup(append(resultPaths, batchPaths...))
		return AggregateStats{}, nil, fmt.Errorf("batch: interrupted: %w", ctx.Err())
	}

	total := NewAggregateStats()
	var finalPaths []string
	for i, stats := range batchStats {
		total.RecordsWithErrors += stats.RecordsWithErrors
		if stats.Failed {
			total.BatchesFailed++
			continue
		}
		total.Add(batchAggregates[i])
		if resultPaths[i] != "" {
			finalPaths = append(finalPaths, resultPaths[i])
		}
	}
	return total, finalPaths, nil
}

// processBatch loads, matches, and classifies one batch file, writing
// a result file and returning its path plus per-batch stats. Errors
// are contained here: a batch that fails to load or write is recorded
// as failed rather than propagated, per the coordinator's isolation
// contract.
func (c *Coordinator) processBatch(path string, index int) (string, RecordStats, AggregateStats) {
	batchID := fmt.Sprintf("batch-%04d", index)
	start := time.Now()
	stats := RecordStats{BatchID: batchID}
	agg := NewAggregateStats()

	pubs, err := marcloader.ReadBatchFile(path)
	if err != nil {
		c.Logger.WithError(err).WithField("batch", batchID).Error("batch: failed to read batch file")
		stats.Failed = true
		return c.writeFailedResult(batchID, stats), stats, agg
	}

	for _, p := range pubs {
		if err := c.classify(p); err != nil {
			stats.RecordsWithErrors++
			continue
		}
		stats.MarcCount++
		agg.TotalRecords++
		switch p.CountryClassification {
		case domain.CountryUS:
			agg.USRecords++
		case domain.CountryNonUS:
			agg.NonUSRecords++
		default:
			agg.UnknownCountry++
		}
		if p.HasRegistrationMatch() {
			stats.RegistrationMatchesFound++
			agg.RegistrationMatches++
		}
		if p.HasRenewalMatch() {
			stats.RenewalMatchesFound++
			agg.RenewalMatches++
		}
		if !p.HasRegistrationMatch() && !p.HasRenewalMatch() {
			agg.NoMatches++
		}
		agg.StatusCounts[p.Status.String()]++
	}
	stats.ProcessingTimeSeconds = time.Since(start).Seconds()

	resultPath := filepath.Join(c.Config.ResultDir, batchID+".result.gob")
	if err := WriteResultFile(resultPath, Result{Stats: stats, Publications: pubs}); err != nil {
		c.Logger.WithError(err).WithField("batch", batchID).Error("batch: failed to write result file")
		stats.Failed = true
		return "", stats, agg
	}
	return resultPath, stats, agg
}

func (c *Coordinator) classify(p *domain.Publication) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("batch: panic classifying record %s: %v", p.SourceID, r)
		}
	}()

	if m := c.Matcher.FindBestMatch(p, c.RegistrationIndex); m != nil {
		p.SetRegistrationMatch(m)
	}
	if m := c.Matcher.FindBestMatch(p, c.RenewalIndex); m != nil {
		p.SetRenewalMatch(m)
	}
	status.Apply(p, c.Config.ExpirationYear, c.Config.MaxDataYear)
	p.SortScore()
	p.CheckDataCompleteness()
	return nil
}

func (c *Coordinator) writeFailedResult(batchID string, stats RecordStats) string {
	resultPath := filepath.Join(c.Config.ResultDir, batchID+".result.gob")
	if err := WriteResultFile(resultPath, Result{Stats: stats}); err != nil {
		c.Logger.WithError(err).WithField("batch", batchID).Error("batch: failed to write failed-batch result file")
		return ""
	}
	return resultPath
}

// RemoveTempFiles deletes the batch and result files for a job,
// performed on normal completion or as part of interrupt cleanup.
func RemoveTempFiles(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		_ = os.Remove(p)
	}
}
