package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/RachelGal/pharmacy-scraper/internal/adapters/driven/dataset/csvfile"
	"github.com/RachelGal/pharmacy-scraper/internal/adapters/driven/dataset/xlsxfile"
	"github.com/RachelGal/pharmacy-scraper/internal/adapters/driven/progress"
	"github.com/RachelGal/pharmacy-scraper/internal/adapters/driven/storage/sqlite"
	"github.com/RachelGal/pharmacy-scraper/internal/connectors/psi"
	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
	"github.com/RachelGal/pharmacy-scraper/internal/core/services"
	"github.com/RachelGal/pharmacy-scraper/internal/logger"
	"github.com/RachelGal/pharmacy-scraper/internal/normalisers/name"
	"github.com/RachelGal/pharmacy-scraper/internal/normalisers/phone"
)

const (
	filetypeCSV  = "csv"
	filetypeXLSX = "xlsx"
)

var (
	enrichInputFile   string
	enrichFiletype    string
	enrichOutputFile  string
	enrichCurrentData string
	enrichChangeLog   string
	enrichThreshold   float64
	enrichTieMargin   float64
	enrichNoCache     bool
)

// newRegisterClient builds the register client for a run. A package
// variable so tests can run the pipeline against a stub register.
var newRegisterClient = func(cfg *psi.Config) driven.RegisterClient {
	return psi.New(cfg)
}

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich a list of pharmacies from the register",
	Long: `Reads pharmacy trading names from the input file, searches the public
register for each one and writes an enriched CSV dataset with
registration numbers, phone numbers, addresses and pharmacist details.

With --current-data, the previous dataset is merged in: records that
matched before keep their data unless a fresh match replaces it, and a
change log of added, removed and updated records is written alongside
the output.

Records the register cannot answer for are written with status
NOT_FOUND or AMBIGUOUS; a finished run exits zero regardless of how
many matched.`,
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().StringVarP(&enrichInputFile, "input-file", "i", "", "file with pharmacy names to enrich")
	enrichCmd.Flags().StringVarP(&enrichFiletype, "filetype", "t", "", "input file type: csv or xlsx")
	enrichCmd.Flags().StringVarP(&enrichOutputFile, "output-file", "o", "output.csv", "enriched dataset destination")
	enrichCmd.Flags().StringVar(&enrichCurrentData, "current-data", "", "previous dataset to merge into")
	enrichCmd.Flags().StringVar(&enrichChangeLog, "change-log", "change_log.csv", "change log destination, written with --current-data")
	enrichCmd.Flags().Float64Var(&enrichThreshold, "threshold", services.DefaultSimilarityThreshold, "similarity threshold for accepting a match")
	enrichCmd.Flags().Float64Var(&enrichTieMargin, "tie-margin", services.DefaultTieMargin, "margin within which two candidates tie")
	enrichCmd.Flags().BoolVar(&enrichNoCache, "no-cache", false, "skip the search result cache")

	_ = enrichCmd.MarkFlagRequired("input-file")
	_ = enrichCmd.MarkFlagRequired("filetype")

	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, _ []string) error {
	if err := validateEnrichFiles(); err != nil {
		return err
	}

	svc, err := getSettingsService()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	applyEnvOverrides(&settings)
	if cmd.Flags().Changed("threshold") {
		settings.Matcher.Threshold = enrichThreshold
	}
	if cmd.Flags().Changed("tie-margin") {
		settings.Matcher.TieMargin = enrichTieMargin
	}
	if enrichNoCache {
		settings.Cache.Enabled = false
	}

	if settings.Log.File != "" {
		if err := logger.SetFile(settings.Log.File); err != nil {
			logger.Warn("Run log unavailable: %v", err)
		} else {
			defer logger.CloseFile()
		}
	}

	runID := uuid.NewString()
	logger.Section(fmt.Sprintf("Enrichment run %s", runID))
	logger.Info("Input %s (%s), output %s", enrichInputFile, enrichFiletype, enrichOutputFile)

	names := name.New()
	csvStore := csvfile.New(names)

	var reader driven.InputReader = csvStore
	if enrichFiletype == filetypeXLSX {
		reader = xlsxfile.New()
	}
	inputs, err := reader.ReadRecords(enrichInputFile)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var prior *domain.Dataset
	if enrichCurrentData != "" {
		prior, err = csvStore.ReadDataset(enrichCurrentData)
		if err != nil {
			return fmt.Errorf("reading current data: %w", err)
		}
	}

	register := newRegisterClient(&psi.Config{
		BaseURL:       settings.Register.BaseURL,
		Headless:      settings.Register.Headless,
		SearchTimeout: settings.Register.SearchTimeout,
		RequestDelay:  settings.Register.RequestDelay,
	})
	defer register.Close()

	matcher := services.NewMatcherService(names, name.NewScorer(),
		settings.Matcher.Threshold, settings.Matcher.TieMargin)
	enricher := services.NewEnrichmentService(register, phone.New(), names,
		matcher, services.NewMergerService(names), runID)

	if settings.Cache.Enabled {
		cache, err := sqlite.NewStore(cacheDataDir())
		if err != nil {
			logger.Warn("Search cache unavailable: %v", err)
		} else {
			defer cache.Close()
			enricher.SetResultCache(cache, settings.Cache.MaxAge)
		}
	}
	reporter := progress.New(verbose)
	defer reporter.Stop()
	enricher.SetProgressReporter(reporter)

	ds, summary, err := enricher.Enrich(cmd.Context(), inputs, prior)
	if err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}

	if err := csvStore.WriteDataset(enrichOutputFile, ds); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if prior != nil {
		changes := services.NewChangeLogService().Diff(prior, ds)
		if err := csvStore.WriteChanges(enrichChangeLog, changes); err != nil {
			return fmt.Errorf("writing change log: %w", err)
		}
		logger.Info("Change log written to %s (%d changes)", enrichChangeLog, len(changes))
		cmd.Printf("Change log written to %s\n", enrichChangeLog)
	}

	cmd.Printf("Wrote %d records to %s (run %s)\n", ds.Len(), enrichOutputFile, summary.RunID)
	return nil
}

// validateEnrichFiles runs the pre-flight file checks. Failures here
// abort before the browser starts.
func validateEnrichFiles() error {
	if enrichFiletype != filetypeCSV && enrichFiletype != filetypeXLSX {
		return fmt.Errorf("%w: filetype %q (want csv or xlsx)", domain.ErrUnsupportedType, enrichFiletype)
	}
	if err := checkFiletype(enrichInputFile, enrichFiletype, true); err != nil {
		return err
	}
	if err := checkFiletype(enrichOutputFile, filetypeCSV, false); err != nil {
		return err
	}
	if enrichCurrentData != "" {
		if err := checkFiletype(enrichCurrentData, filetypeCSV, true); err != nil {
			return err
		}
	}
	return nil
}

// checkFiletype validates that path carries the extension and, when
// mustExist is set, names a regular file.
func checkFiletype(path, extension string, mustExist bool) error {
	if !strings.HasSuffix(strings.ToLower(path), "."+extension) {
		return fmt.Errorf("%w: %s is not a %s file", domain.ErrUnsupportedType, path, extension)
	}
	if mustExist {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: %s does not exist", domain.ErrNotFound, path)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
		}
	}
	return nil
}
