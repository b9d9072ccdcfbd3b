package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pulibrary/marc-copyright/internal/aggregate"
	"github.com/pulibrary/marc-copyright/internal/batch"
	"github.com/pulibrary/marc-copyright/internal/config"
	"github.com/pulibrary/marc-copyright/internal/diskcache"
	"github.com/pulibrary/marc-copyright/internal/domain"
	"github.com/pulibrary/marc-copyright/internal/indexer"
	"github.com/pulibrary/marc-copyright/internal/marcloader"
	"github.com/pulibrary/marc-copyright/internal/matcher"
	"github.com/pulibrary/marc-copyright/internal/status"
)

var (
	marcPath           string
	registrationPath   string
	renewalPath        string
	resultDirFlag      string
	expirationYearFlag int
	maxDataYearFlag    int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Determine copyright status for a MARC XML export",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&marcPath, "marc", "", "path to a MARC XML file or directory (required)")
	analyzeCmd.Flags().StringVar(&registrationPath, "registration", "", "path to a registration reference file (written by refloader.WriteFile)")
	analyzeCmd.Flags().StringVar(&renewalPath, "renewal", "", "path to a renewal reference file (written by refloader.WriteFile)")
	analyzeCmd.Flags().StringVar(&resultDirFlag, "result-dir", "", "directory for intermediate batch/result files (defaults to a temp dir)")
	analyzeCmd.Flags().IntVar(&expirationYearFlag, "expiration-year", 0, "override the copyright expiration year (defaults to current year minus 96)")
	analyzeCmd.Flags().IntVar(&maxDataYearFlag, "max-data-year", 0, "override the max data year (defaults to the registration corpus's)")
	_ = analyzeCmd.MarkFlagRequired("marc")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := logrus.StandardLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cache, err := diskcache.New(resolveCacheDir())
	if err != nil {
		return err
	}

	registrationIdx := indexer.New()
	registrationIdx.Build()
	renewalIdx := indexer.New()
	renewalIdx.Build()
	maxDataYear := maxDataYearFlag

	if registrationPath != "" {
		idx, corpusMaxYear, err := buildIndexFromFile(registrationPath, cache)
		if err != nil {
			return err
		}
		registrationIdx = idx
		if maxDataYear == 0 {
			maxDataYear = corpusMaxYear
		}
	}
	if renewalPath != "" {
		idx, _, err := buildIndexFromFile(renewalPath, cache)
		if err != nil {
			return err
		}
		renewalIdx = idx
	}

	if maxDataYearFlag == 0 && cfg.MaxDataYear != nil {
		maxDataYear = *cfg.MaxDataYear
	}
	if maxDataYear == 0 {
		maxDataYear = time.Now().Year()
	}

	expirationYear := expirationYearFlag
	if expirationYear == 0 {
		if cfg.CopyrightExpirationYear != nil {
			expirationYear = *cfg.CopyrightExpirationYear
		} else {
			expirationYear = status.DefaultExpirationYear(time.Now())
		}
	}

	resultDir := resultDirFlag
	if resultDir == "" {
		resultDir, err = os.MkdirTemp("", "marc-copyright-result-*")
		if err != nil {
			return fmt.Errorf("analyze: create result dir: %w", err)
		}
	}
	if err := os.MkdirAll(resultDir, 0o755); err != nil {
		return fmt.Errorf("analyze: create result dir %s: %w", resultDir, err)
	}

	batchPaths, err := streamMARCToBatches(marcPath, resultDir, cfg, logger)
	if err != nil {
		return err
	}

	matcherCfg := cfg.MatcherConfig()
	generic := buildGenericDetector(matcherCfg.GenericTitleFrequencyThreshold, registrationIdx, renewalIdx)
	engine := matcher.NewEngine(matcherCfg, generic)
	coord := batch.NewCoordinator(batch.Config{
		NumWorkers:     cfg.NumProcesses,
		ResultDir:      resultDir,
		ExpirationYear: expirationYear,
		MaxDataYear:    maxDataYear,
	}, registrationIdx, renewalIdx, engine, logger)

	_, resultPaths, err := coord.Run(context.Background(), batchPaths)
	if err != nil {
		return err
	}
	defer batch.RemoveTempFiles(append(batchPaths, resultPaths...)...)

	aggregator := aggregate.New()
	for _, path := range resultPaths {
		result, err := batch.ReadResultFile(path)
		if err != nil {
			return err
		}
		aggregator.AddResult(result)
	}

	exporter := aggregate.JSONExporter{Writer: cmd.OutOrStdout()}
	return exporter.Export(context.Background(), aggregator.All(), aggregator.FinalStats())
}

// streamMARCToBatches runs the MARC Streaming Loader over marcPath,
// spilling each batch to a gob file under resultDir and returning the
// resulting batch file paths.
func streamMARCToBatches(marcPath, resultDir string, cfg config.Config, logger logrus.FieldLogger) ([]string, error) {
	streamCfg := marcloader.Config{
		BatchSize:  cfg.BatchSize,
		USOnly:     cfg.USOnly,
		HasMinYear: cfg.MinYear != nil,
		HasMaxYear: cfg.MaxYear != nil,
	}
	if cfg.MinYear != nil {
		streamCfg.MinYear = *cfg.MinYear
	}
	if cfg.MaxYear != nil {
		streamCfg.MaxYear = *cfg.MaxYear
	}
	loader := marcloader.New(streamCfg, logger)

	var batchPaths []string
	batchIndex := 0
	_, err := loader.LoadPath(marcPath, func(pubs []*domain.Publication) error {
		path := filepath.Join(resultDir, fmt.Sprintf("batch-%04d.gob", batchIndex))
		batchIndex++
		if err := marcloader.WriteBatchFile(path, pubs); err != nil {
			return err
		}
		batchPaths = append(batchPaths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return batchPaths, nil
}
