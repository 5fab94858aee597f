package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/scholarpage/internal/config"
	"github.com/ziadkadry99/scholarpage/internal/logging"
)

var (
	cfgFile string
	verbose bool

	cfg           *config.Config
	restoreLogger func()
)

var rootCmd = &cobra.Command{
	Use:   "scholarpage",
	Short: "Build a bilingual academic homepage from a YAML file",
	Long: `scholarpage reads a content file describing an academic profile
(name, affiliation, publications, research experience, honors and more)
and writes a single bilingual English/Chinese HTML page.

Run without a subcommand to build the page.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runBuild,
}

// Execute runs the root command. The logger installed by setup is flushed
// and restored on every exit path, including failed commands.
func Execute() error {
	defer func() {
		if restoreLogger != nil {
			restoreLogger()
			restoreLogger = nil
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	addBuildFlags(rootCmd)
}

// setup loads the config and installs the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig()
	if err != nil {
		return err
	}
	restore, err := logging.Setup(loaded.LogLevel, verbose)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	cfg = loaded
	restoreLogger = restore
	return nil
}
