package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/scholarpage/internal/config"
	"github.com/ziadkadry99/scholarpage/internal/content"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter content file",
	Long: `Writes a commented content file with placeholder values for every
section. With --wizard, asks for your name and email first and fills them in.
Also writes the config file when it does not exist yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		wizard, _ := cmd.Flags().GetBool("wizard")
		if cmd.Flags().Changed("content") {
			cfg.ContentFile, _ = cmd.Flags().GetString("content")
		}

		doc := content.Template()
		if wizard {
			opts, err := config.RunWizard()
			if err != nil {
				return err
			}
			doc = content.TemplateWith(opts)
		}

		if err := content.WriteTemplate(cfg.ContentFile, doc, force); err != nil {
			return err
		}
		fmt.Printf("Created %s. Fill it in, then run: scholarpage build\n", cfg.ContentFile)

		// Save the effective config next to it unless one already exists.
		if _, err := os.Stat(cfgFile); errors.Is(err, os.ErrNotExist) {
			if err := cfg.Save(cfgFile); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Printf("Configuration saved to %s\n", cfgFile)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing content file")
	initCmd.Flags().Bool("wizard", false, "ask for name and email interactively")
	initCmd.Flags().String("content", "", "content file to create (overrides content_file)")
	rootCmd.AddCommand(initCmd)
}
