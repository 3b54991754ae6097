package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/civanmustafa/Sembrand-editor/internal/config"
	"github.com/civanmustafa/Sembrand-editor/occur"
)

// errNoFind is returned when --find is empty.
var errNoFind = errors.New("--find must not be empty")

// NewReplaceCmd creates the replace command.
func NewReplaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace --find TERM --with TEXT [file]",
		Short: "Replace a term in an article",
		Long: `Replace substitutes TEXT for the first occurrence of TERM, or for
every occurrence with --all. Matching ignores diacritics, tatweel and
letter variants, so "اسلام" finds "إسلام". The result is written to
standard output and the number of replacements to standard error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReplaceCmd,
	}

	cmd.Flags().String("find", "", "Term to search for")
	cmd.Flags().String("with", "", "Replacement text, inserted verbatim")
	cmd.Flags().Bool("all", false, "Replace every occurrence")
	cmd.Flags().Bool(config.KeyHTML, false, "Input is an HTML page")

	return cmd
}

func runReplaceCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	find, err := cmd.Flags().GetString("find")
	if err != nil {
		return err
	}
	with, err := cmd.Flags().GetString("with")
	if err != nil {
		return err
	}
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}

	name := inputNames(args)[0]
	content, err := readInput(name, cmd.InOrStdin(), cfg.HTML)
	if err != nil {
		return err
	}
	logger.Debug("read input", zap.String("file", name), zap.Bool("html", cfg.HTML), zap.Int("bytes", len(content)))
	return runReplace(logger, content, find, with, all, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// runReplace writes content with find replaced and reports the count.
func runReplace(logger *zap.Logger, content, find, with string, all bool, out, errOut io.Writer) error {
	if find == "" {
		return errNoFind
	}
	n := 1
	if all {
		n = -1
	}
	result, count := occur.Replace(content, find, with, n)
	logger.Debug("replaced term", zap.String("find", find), zap.Int("count", count))
	if _, err := io.WriteString(out, result); err != nil {
		return err
	}
	_, err := fmt.Fprintf(errOut, "replaced %d occurrence(s)\n", count)
	return err
}
