package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pulibrary/marc-copyright/internal/diskcache"
	"github.com/pulibrary/marc-copyright/internal/domain"
	"github.com/pulibrary/marc-copyright/internal/groundtruth"
	"github.com/pulibrary/marc-copyright/internal/indexer"
)

var (
	gtMarcPath         string
	gtRegistrationPath string
	gtRenewalPath      string
)

var groundTruthCmd = &cobra.Command{
	Use:   "ground-truth",
	Short: "Extract identifier-matched MARC/reference pairs for evaluating matcher quality",
	RunE:  runGroundTruth,
}

func init() {
	groundTruthCmd.Flags().StringVar(&gtMarcPath, "marc", "", "path to a MARC XML file or directory (required)")
	groundTruthCmd.Flags().StringVar(&gtRegistrationPath, "registration", "", "path to a registration reference file")
	groundTruthCmd.Flags().StringVar(&gtRenewalPath, "renewal", "", "path to a renewal reference file")
	_ = groundTruthCmd.MarkFlagRequired("marc")
	rootCmd.AddCommand(groundTruthCmd)
}

func runGroundTruth(cmd *cobra.Command, args []string) error {
	logger := logrus.StandardLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cache, err := diskcache.New(resolveCacheDir())
	if err != nil {
		return err
	}

	var registration, renewal []*domain.Publication
	if gtRegistrationPath != "" {
		idx, _, err := buildIndexFromFile(gtRegistrationPath, cache)
		if err != nil {
			return err
		}
		registration = publicationsOf(idx)
	}
	if gtRenewalPath != "" {
		idx, _, err := buildIndexFromFile(gtRenewalPath, cache)
		if err != nil {
			return err
		}
		renewal = publicationsOf(idx)
	}

	resultDir, err := os.MkdirTemp("", "marc-copyright-groundtruth-*")
	if err != nil {
		return fmt.Errorf("ground-truth: create temp dir: %w", err)
	}
	defer os.RemoveAll(resultDir)

	batchPaths, err := streamMARCToBatches(gtMarcPath, resultDir, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		for _, p := range batchPaths {
			os.Remove(p)
		}
	}()

	_, stats, err := groundtruth.Extract(batchPaths, registration, renewal)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// publicationsOf materializes an already-built Candidate Index's
// entries back into a plain slice, for components (like the
// Ground-Truth Extractor) that want the raw reference corpus rather
// than the index's lookup structures.
func publicationsOf(idx *indexer.Index) []*domain.Publication {
	pubs := make([]*domain.Publication, idx.Len())
	for i := 0; i < idx.Len(); i++ {
		pubs[i] = idx.At(i)
	}
	return pubs
}
