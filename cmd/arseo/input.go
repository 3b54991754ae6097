package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/civanmustafa/Sembrand-editor/document"
	"github.com/civanmustafa/Sembrand-editor/internal/config"
)

// stdinName names standard input among the inputs.
const stdinName = "-"

// inputNames returns args, or standard input when no file is given.
func inputNames(args []string) []string {
	if len(args) == 0 {
		return []string{stdinName}
	}
	return args
}

// readInput returns the text of one input. HTML inputs are reduced to
// the plain-text article form.
func readInput(name string, stdin io.Reader, html bool) (string, error) {
	r := stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	if html {
		return document.FromHTML(r)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// loadConfig binds the command's flags to a fresh viper instance and
// resolves the layered configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := config.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(v, path)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}
