// Package commands provides CLI command implementations for plexus.
package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/plexus-metrics/plexus/internal/config"
	"github.com/plexus-metrics/plexus/internal/jsonwalker"
	"github.com/plexus-metrics/plexus/pkg/cache"
	"github.com/plexus-metrics/plexus/pkg/observability"
	"github.com/plexus-metrics/plexus/pkg/project"
	"github.com/plexus-metrics/plexus/pkg/report"
)

// AnalyzeCommand holds the flags for the analyze command.
type AnalyzeCommand struct {
	configPath string
	inputDir   string
	format     string
	chartPath  string
	noColor    bool
	out        io.Writer
}

// NewAnalyzeCommand creates and configures the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	ac := &AnalyzeCommand{}

	cobraCmd := &cobra.Command{
		Use:   "analyze <input-dir>",
		Short: "Analyze a directory of jsonwalker replay documents",
		Long: `Analyze runs the Module Analyser and Project Analyser over every
*.json replay document in input-dir (see internal/jsonwalker for the
document format), then prints the project report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ac.inputDir = args[0]
			ac.configPath, _ = cmd.Flags().GetString("config")
			ac.out = cmd.OutOrStdout()

			return ac.Run(cmd)
		},
	}

	cobraCmd.Flags().StringVarP(&ac.format, "format", "f", "table", "Output format: table, json, or yaml")
	cobraCmd.Flags().StringVar(&ac.chartPath, "chart", "", "Write an HTML maintainability chart to this path")
	cobraCmd.Flags().BoolVar(&ac.noColor, "no-color", false, "Disable colored table output")

	registerAnalysisFlags(cobraCmd)

	return cobraCmd
}

// Run executes the analyze command.
func (ac *AnalyzeCommand) Run(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ac.configPath)
	if err != nil {
		return err
	}

	applyAnalysisFlagOverrides(cmd, cfg)

	providers, err := observability.Init(observability.Config{
		ServiceName:    "plexus",
		LogLevel:       parseLogLevel(cfg.Logging.Level),
		LogJSON:        cfg.Logging.JSON,
		MetricsEnabled: cfg.Metrics.Enabled,
	}, os.Stderr)
	if err != nil {
		return fmt.Errorf("analyze: init observability: %w", err)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = providers.Shutdown(shutdownCtx)
	}()

	analysisMetrics, err := observability.NewAnalysisMetrics(providers.Meter)
	if err != nil {
		return fmt.Errorf("analyze: init metrics: %w", err)
	}

	documents, err := loadDocuments(ac.inputDir)
	if err != nil {
		return err
	}

	result, err := ac.runAnalysis(ctx, cfg, documents, providers, analysisMetrics)
	if err != nil {
		return err
	}

	if err := ac.writeChart(result); err != nil {
		return err
	}

	return ac.printResult(result)
}

func (ac *AnalyzeCommand) runAnalysis(
	ctx context.Context, cfg *config.Config, documents []*jsonwalker.Document,
	providers observability.Providers, analysisMetrics *observability.AnalysisMetrics,
) (*project.Result, error) {
	ctx, span := providers.Tracer.Start(ctx, "plexus.analyze")
	defer span.End()

	var resultCache *cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.New(cfg.Cache.Directory)
	}

	cacheKey := contentHash(documents)

	if resultCache != nil {
		if cached, hit, err := resultCache.Get(cacheKey); err == nil && hit {
			analysisMetrics.RecordCache(ctx, true)
			providers.Logger.InfoContext(ctx, "cache hit", "key", cacheKey)

			return cached, nil
		}

		analysisMetrics.RecordCache(ctx, false)
	}

	modules := make([]project.ModuleInput, len(documents))
	for i, doc := range documents {
		modules[i] = project.ModuleInput{Path: doc.Path, AST: doc}
	}

	start := time.Now()

	result, err := project.NewAnalyser().Analyse(modules, jsonwalker.Walker{}, cfg.Analysis.ProjectOptions())

	analysisMetrics.RecordModule(ctx, time.Since(start), averageCyclomatic(result), averageMaintainability(result), err)

	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	if resultCache != nil {
		if err := resultCache.Put(cacheKey, result); err != nil {
			providers.Logger.WarnContext(ctx, "failed to write cache entry", "error", err)
		}
	}

	return result, nil
}

func averageCyclomatic(result *project.Result) float64 {
	if result == nil {
		return 0
	}

	return result.Cyclomatic
}

func averageMaintainability(result *project.Result) float64 {
	if result == nil {
		return 0
	}

	return result.Maintainability
}

func (ac *AnalyzeCommand) writeChart(result *project.Result) error {
	if ac.chartPath == "" {
		return nil
	}

	f, err := os.Create(ac.chartPath)
	if err != nil {
		return fmt.Errorf("analyze: create chart file: %w", err)
	}
	defer f.Close()

	if err := report.RenderMaintainabilityChart(result, f); err != nil {
		return fmt.Errorf("analyze: render chart: %w", err)
	}

	return nil
}

func (ac *AnalyzeCommand) printResult(result *project.Result) error {
	out := ac.out
	if out == nil {
		out = os.Stdout
	}

	switch ac.format {
	case "json":
		return printJSON(out, result)
	case "yaml":
		return printYAML(out, result)
	default:
		fmt.Fprintln(out, report.RenderModuleTable(result, ac.noColor))

		return nil
	}
}

func loadDocuments(dir string) ([]*jsonwalker.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("analyze: read input dir: %w", err)
	}

	var paths []string

	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(paths)

	documents := make([]*jsonwalker.Document, 0, len(paths))

	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("analyze: read %s: %w", p, err)
		}

		doc, err := jsonwalker.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("analyze: parse %s: %w", p, err)
		}

		documents = append(documents, doc)
	}

	return documents, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func contentHash(documents []*jsonwalker.Document) string {
	h := sha256.New()

	for _, doc := range documents {
		raw, _ := yaml.Marshal(doc)
		h.Write(raw)
	}

	return hex.EncodeToString(h.Sum(nil))
}
