package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"turnlint-hq/turnlint/pkg/cli"
	"turnlint-hq/turnlint/pkg/dataset"
	"turnlint-hq/turnlint/pkg/telemetry/metrics"
	"turnlint-hq/turnlint/pkg/watch"
)

var watchFlags struct {
	schedule    string
	metricsAddr string
}

var watchCmd = &cobra.Command{
	Use:   "watch PATH",
	Short: "Re-validate datasets on change",
	Long: `Watch a dataset file or directory and re-validate on every change.

Each re-validation logs its outcome and updates the Prometheus metrics.
An optional cron schedule re-validates periodically even without file
events, which covers rewrites the file watcher cannot see.

Examples:
  # Watch a single dataset file
  turnlint watch conversations.json

  # Watch a directory and expose metrics for scraping
  turnlint watch datasets/ --metrics-addr :9464

  # Also re-validate every 15 minutes
  turnlint watch datasets/ --schedule "*/15 * * * *"`,
	Args: cobra.ExactArgs(1),
	RunE: watchDatasets,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchFlags.schedule, "schedule", "", "cron schedule for periodic re-validation")
	watchCmd.Flags().StringVar(&watchFlags.metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on (e.g. :9464)")
}

func watchDatasets(cmd *cobra.Command, args []string) error {
	target := args[0]

	cfg, err := loadRuleConfig()
	if err != nil {
		return cli.NewConfigError(cfgFile, err.Error())
	}

	logger, err := newLogger()
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	collector := metrics.NewValidationMetrics(nil)

	revalidate := func(path string) {
		start := time.Now()
		result := dataset.ValidateFile(path, cfg)
		collector.Observe(result, time.Since(start))

		logger.Info("validation completed",
			"source", path,
			"run_id", result.RunID,
			"valid", result.IsValid,
			"turns", result.TotalTurns,
			"errors", result.Count(),
			"warnings", len(result.Warnings),
		)
	}

	revalidateAll := func() {
		files, err := datasetFiles(target)
		if err != nil {
			logger.Error("failed to enumerate datasets", "path", target, "error", err)
			return
		}
		for _, f := range files {
			revalidate(f)
		}
	}

	ctx := cli.SetupSignalHandler()

	if watchFlags.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		server := &http.Server{Addr: watchFlags.metricsAddr, Handler: mux}

		go func() {
			logger.Info("metrics server started", "addr", watchFlags.metricsAddr)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		go func() {
			<-ctx.Done()
			server.Close()
		}()
	}

	if watchFlags.schedule != "" {
		scheduler := watch.NewScheduler(watchFlags.schedule, logger)
		if err := scheduler.Start(ctx, revalidateAll); err != nil {
			return cli.NewCommandError("watch", err)
		}
	}

	// One pass up front so the initial state is known before any change.
	revalidateAll()

	watcher, err := watch.NewWatcher(&watch.WatcherConfig{
		Path:             target,
		DebounceInterval: 200 * time.Millisecond,
		Extensions:       []string{".json", ".jsonl", ".yaml", ".yml"},
	}, logger)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	if err := watcher.Watch(ctx, revalidate); err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}

// datasetFiles expands a watch target into the dataset files beneath it.
func datasetFiles(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{target}, nil
	}

	var files []string
	err = filepath.Walk(target, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != target {
				return filepath.SkipDir
			}
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json", ".jsonl", ".yaml", ".yml":
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
