package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/civanmustafa/Sembrand-editor/internal/config"
	"github.com/civanmustafa/Sembrand-editor/internal/report"
	"github.com/civanmustafa/Sembrand-editor/phrases"
)

// NewPhrasesCmd creates the phrases command.
func NewPhrasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phrases [file]",
		Short: "List word sequences repeated in an article",
		Long: `Phrases reports every sequence of 2 to 8 words that occurs at least
twice, after folding letter variants and diacritics. Standard input is
read when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPhrasesCmd,
	}

	cmd.Flags().StringP(config.KeyFormat, "f", config.DefaultFormat, "Report format: json or markdown")
	cmd.Flags().Bool(config.KeyHTML, false, "Input is an HTML page")
	cmd.Flags().Int("min-words", 2, "Shortest phrase length in words")
	cmd.Flags().Int("max-words", 8, "Longest phrase length in words")
	cmd.Flags().Int("min-count", 2, "Minimum occurrences to report")

	return cmd
}

func runPhrasesCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var opts phrases.Options
	if opts.MinN, err = cmd.Flags().GetInt("min-words"); err != nil {
		return err
	}
	if opts.MaxN, err = cmd.Flags().GetInt("max-words"); err != nil {
		return err
	}
	if opts.MinCount, err = cmd.Flags().GetInt("min-count"); err != nil {
		return err
	}

	return runPhrases(logger, cfg, opts, inputNames(args)[0], cmd.InOrStdin(), cmd.OutOrStdout())
}

// runPhrases writes the repeated phrases of one input.
func runPhrases(logger *zap.Logger, cfg *config.Config, opts phrases.Options, name string, stdin io.Reader, out io.Writer) error {
	w, err := report.New(cfg.Format, out)
	if err != nil {
		return err
	}
	content, err := readInput(name, stdin, cfg.HTML)
	if err != nil {
		return err
	}

	res := phrases.ExtractWith(content, opts)
	logger.Debug("extracted phrases",
		zap.String("file", name),
		zap.Int("words", res.Stats.TotalWords),
		zap.Int("phrases", res.Stats.RepeatedPhrases),
	)
	_, err = w.WritePhrases(name, res)
	return err
}
