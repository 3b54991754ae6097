package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/civanmustafa/Sembrand-editor/internal/config"
	"github.com/civanmustafa/Sembrand-editor/internal/report"
	"github.com/civanmustafa/Sembrand-editor/lexicon"
	"github.com/civanmustafa/Sembrand-editor/seo"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file...]",
		Short: "Analyze Arabic articles for SEO",
		Long: `Analyze checks each article for keyword density and placement,
heading and paragraph structure, repeated phrases, and spacing and
punctuation problems. Standard input is read when no file is given.

Examples:
  # Analyze one article with a primary and two secondary keywords
  arseo analyze -p "القهوة العربية" -s "تحميص البن" -s "الهيل" article.md

  # Analyze a directory of exported pages as a Markdown report
  arseo analyze --html -f markdown pages/*.html

  # Read from standard input
  cat article.md | arseo analyze -p "القهوة العربية"`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().StringP(config.KeyPrimary, "p", "", "Primary keyword")
	cmd.Flags().StringSliceP(config.KeySecondary, "s", nil,
		fmt.Sprintf("Secondary keyword (repeatable, at most %d)", seo.MaxSecondary))
	cmd.Flags().String(config.KeyCompany, "", "Company name")
	cmd.Flags().StringP(config.KeyFormat, "f", config.DefaultFormat, "Report format: json or markdown")
	cmd.Flags().String(config.KeyLexicon, "", "Lexicon YAML file replacing the built-in word lists")
	cmd.Flags().IntP(config.KeyConcurrency, "j", config.DefaultConcurrency, "Number of articles analyzed at once")
	cmd.Flags().Bool(config.KeyHTML, false, "Inputs are HTML pages")

	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runAnalyze(ctx, logger, cfg, inputNames(args), cmd.InOrStdin(), cmd.OutOrStdout())
}

// runAnalyze analyzes every input and writes one report for the batch.
func runAnalyze(ctx context.Context, logger *zap.Logger, cfg *config.Config, names []string, stdin io.Reader, out io.Writer) error {
	w, err := report.New(cfg.Format, out)
	if err != nil {
		return err
	}

	var opts seo.Options
	if cfg.Lexicon != "" {
		lex, err := lexicon.LoadFile(cfg.Lexicon)
		if err != nil {
			return err
		}
		opts.Lexicon = lex
		logger.Debug("loaded lexicon", zap.String("path", cfg.Lexicon))
	}

	results, err := analyzeBatch(ctx, logger, cfg, opts, names, stdin)
	if err != nil {
		return err
	}
	_, err = w.Write(results)
	return err
}

// analyzeBatch analyzes names concurrently, at most cfg.Concurrency at a
// time. Results keep the order of names. The first failure cancels the
// remaining inputs.
func analyzeBatch(ctx context.Context, logger *zap.Logger, cfg *config.Config, opts seo.Options, names []string, stdin io.Reader) ([]report.Result, error) {
	logger.Info("starting analysis",
		zap.Int("inputs", len(names)),
		zap.Int("concurrency", cfg.Concurrency),
	)
	start := time.Now()
	params := cfg.Params()

	// Pre-allocate results slice to maintain order
	results := make([]report.Result, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for i, name := range names {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			content, err := readInput(name, stdin, cfg.HTML)
			if err != nil {
				logger.Error("read failed", zap.String("file", name), zap.Error(err))
				return fmt.Errorf("read %s: %w", name, err)
			}

			rep, err := seo.AnalyzeWith(content, params, opts)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", name, err)
			}
			if rep.TotalWords == 0 && content != "" {
				logger.Warn("no words analyzed", zap.String("file", name), zap.Int("bytes", len(content)))
			}

			logger.Debug("analyzed",
				zap.String("file", name),
				zap.Int("words", rep.TotalWords),
				zap.Int("violations", rep.Structure.Summary.Violation),
			)
			results[i] = report.Result{Name: name, Report: rep}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("analysis complete",
		zap.Int("inputs", len(names)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return results, nil
}
