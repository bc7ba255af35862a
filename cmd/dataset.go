package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardbook/internal/catalog"
	"github.com/arcanaland/cardbook/internal/config"
)

// datasetCmd represents the dataset command group
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage card datasets in your dataset library",
	Long:  `Commands for managing card datasets in your dataset library.`,
}

// datasetListCmd represents the dataset ls command
var datasetListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available datasets in your dataset library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		defaultDataset, err := config.GetDefaultDataset()
		if err != nil {
			return fmt.Errorf("error getting default dataset: %w", err)
		}

		if defaultDataset == "" {
			fmt.Fprintln(out, "* built-in [DEFAULT]")
		} else {
			fmt.Fprintln(out, "  built-in")
		}

		libraryPath := config.GetDatasetLibraryPath()
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "\nDataset library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'cardbook dataset init' to create it.")
			return nil
		}

		libraryPath, err = filepath.EvalSymlinks(libraryPath)
		if err != nil {
			return fmt.Errorf("error resolving symbolic link: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading dataset library: %w", err)
		}

		for _, entry := range entries {
			// Resolve the symbolic link or regular entry
			entryPath := filepath.Join(libraryPath, entry.Name())
			if _, err := os.Stat(entryPath); err != nil {
				fmt.Fprintf(out, "Error resolving entry %s: %v\n", entry.Name(), err)
				continue
			}

			c, err := catalog.Load(entryPath, logger)
			if err != nil {
				// Not a valid dataset, skip
				continue
			}

			label := c.Name
			if label == "" {
				label = c.ID
			}
			if entry.Name() == defaultDataset {
				fmt.Fprintf(out, "* %s (%s, %d cards) [DEFAULT]\n", entry.Name(), label, c.Len())
			} else {
				fmt.Fprintf(out, "  %s (%s, %d cards)\n", entry.Name(), label, c.Len())
			}
		}
		return nil
	},
}

// datasetSetDefaultCmd represents the dataset set-default command
var datasetSetDefaultCmd = &cobra.Command{
	Use:   "set-default [dataset_name]",
	Short: "Set the default dataset ('built-in' for the embedded one)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		datasetName := args[0]

		if datasetName == "built-in" {
			datasetName = ""
		} else {
			datasetPath, err := config.GetDatasetPath(datasetName)
			if err != nil {
				return err
			}

			// Try to load the dataset to make sure it's valid
			if _, err := catalog.Load(datasetPath, logger); err != nil {
				return fmt.Errorf("not a valid dataset: %w", err)
			}
		}

		if err := config.SetDefaultDataset(datasetName); err != nil {
			return fmt.Errorf("error setting default dataset: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default dataset set to: %s\n", args[0])
		return nil
	},
}

// datasetInitCmd represents the dataset init command
var datasetInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the dataset library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDatasetLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating dataset library: %w", err)
		}

		fmt.Fprintln(out, "Dataset library initialized at:", libraryPath)
		fmt.Fprintln(out, "You can now add datasets by copying them to this directory.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetListCmd)
	datasetCmd.AddCommand(datasetSetDefaultCmd)
	datasetCmd.AddCommand(datasetInitCmd)
}
