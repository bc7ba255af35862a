package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/cardbook/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card dataset",
	Long: `Validate checks a dataset file (cards.toml, cards.yaml or cards.json) or a
dataset directory. Duplicate IDs, missing IDs or names and unknown card types
are errors; missing descriptions and images are reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		datasetPath := args[0]
		out := cmd.OutOrStdout()

		// Check if path exists
		if _, err := os.Stat(datasetPath); os.IsNotExist(err) {
			return fmt.Errorf("dataset not found: %s", datasetPath)
		}

		v := validator.NewValidator(datasetPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		logger.Debug("validated dataset",
			zap.String("path", datasetPath),
			zap.Int("errors", len(results.Errors)),
			zap.Int("warnings", len(results.Warnings)))

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Dataset '%s' is valid.\n", datasetPath)
		} else {
			fmt.Fprintf(out, "❌ Dataset '%s' has %d validation errors:\n", datasetPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
