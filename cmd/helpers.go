package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/scholarpage/internal/config"
	"github.com/ziadkadry99/scholarpage/internal/content"
	"github.com/ziadkadry99/scholarpage/internal/site"
)

// Exit statuses returned by the binary.
const (
	ExitFailure      = 1
	ExitMissingInput = 2
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	var missing *content.MissingInputError
	if errors.As(err, &missing) {
		return ExitMissingInput
	}
	return ExitFailure
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return loaded, nil
}

// addBuildFlags registers the flags that override the content and output
// locations of a build.
func addBuildFlags(c *cobra.Command) {
	c.Flags().String("content", "", "content file (overrides content_file)")
	c.Flags().String("output", "", "output HTML file (overrides output_file)")
	c.Flags().Bool("markdown", false, "treat research paragraphs and experience bullets as markdown")
}

// applyBuildFlags copies explicitly set build flags onto cfg.
func applyBuildFlags(c *cobra.Command, cfg *config.Config) {
	if c.Flags().Changed("content") {
		cfg.ContentFile, _ = c.Flags().GetString("content")
	}
	if c.Flags().Changed("output") {
		cfg.OutputFile, _ = c.Flags().GetString("output")
	}
	if c.Flags().Changed("markdown") {
		cfg.Markdown, _ = c.Flags().GetBool("markdown")
	}
}

// newGenerator builds a Generator for the effective config.
func newGenerator(cfg *config.Config) *site.Generator {
	gen := site.NewGenerator(cfg.ContentFile, cfg.OutputFile)
	gen.Assembler.Markdown = cfg.Markdown
	return gen
}

// generate runs one build and adds a hint when the content file is missing.
func generate(gen *site.Generator) (int, error) {
	n, err := gen.Generate()
	var missing *content.MissingInputError
	if errors.As(err, &missing) {
		return 0, fmt.Errorf("%w\nRun `scholarpage init` to create a template", err)
	}
	return n, err
}
