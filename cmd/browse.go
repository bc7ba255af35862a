package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardbook/internal/browser"
	"github.com/arcanaland/cardbook/internal/card"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the card database interactively",
	Long: `Browse opens an interactive card browser. Type to search, use tab and
shift+tab to switch between card types, arrow keys to move and enter to show
a card's description.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filterFlag, _ := cmd.Flags().GetString("filter")
		filter, err := card.ParseFilter(filterFlag)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}

		cfg, c, idx, err := loadIndex()
		if err != nil {
			return err
		}

		title := c.Name
		if title == "" {
			title = "Card Database"
		}

		m := browser.New(idx,
			browser.WithTitle(title),
			browser.WithReducedMotion(cfg.ReducedMotion),
		)
		if !filter.IsAll() {
			m.SetFilter(filter)
		}

		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running browser: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringP("filter", "f", "all", "Card type to start with")
}
