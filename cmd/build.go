package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the HTML page from the content file",
	Long:  `Reads the content file, renders every section and replaces the output page in one step. A failed build leaves the previous page untouched.`,
	RunE:  runBuild,
}

func init() {
	addBuildFlags(buildCmd)
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	applyBuildFlags(cmd, cfg)

	n, err := generate(newGenerator(cfg))
	if err != nil {
		return err
	}

	fmt.Printf("Built %s from %s (%d bytes)\n", cfg.OutputFile, cfg.ContentFile, n)
	return nil
}
