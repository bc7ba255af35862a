package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/arcanaland/cardbook/internal/card"
	"github.com/arcanaland/cardbook/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search cards by name and description",
	Long: `Search finds cards whose name or description approximately matches the query.
Small typos and partial words still match. Results are ordered closest match
first. Without a query every card is listed in dataset order.

Examples:
  cardbook search oven
  cardbook search --filter occupation wood
  cardbook search -f major-improvement`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filterFlag, _ := cmd.Flags().GetString("filter")
		showScores, _ := cmd.Flags().GetBool("scores")

		filter, err := card.ParseFilter(filterFlag)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}

		_, _, idx, err := loadIndex()
		if err != nil {
			return err
		}

		state := search.State{Query: strings.Join(args, " "), Filter: filter}
		results := idx.Search(state)
		logger.Debug("search",
			zap.String("query", state.Query),
			zap.String("filter", string(filter)),
			zap.Int("results", len(results)))

		printResults(cmd.OutOrStdout(), results, showScores, terminalWidth())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("filter", "f", "all",
		"Only show one card type: all, occupation, minor-improvement, major-improvement")
	searchCmd.Flags().Bool("scores", false, "Show the match score of each result (0 is exact)")
}

// printResults writes the result count followed by one entry per card
func printResults(w io.Writer, results []search.Result, showScores bool, width int) {
	if len(results) == 0 {
		fmt.Fprintln(w, colorize.HiBlackString("No cards match your search."))
		return
	}

	noun := "cards"
	if len(results) == 1 {
		noun = "card"
	}
	fmt.Fprintln(w, colorize.CyanString("%d %s", len(results), noun))
	fmt.Fprintln(w)

	for _, r := range results {
		line := colorize.HiWhiteString("%s", r.Card.Name) + " " +
			colorize.YellowString("· %s", r.Card.Type.Label()) + " " +
			colorize.HiBlackString("[%s]", r.Card.ID)
		if showScores && r.Field != "" {
			line += colorize.HiBlackString(" %.2f (%s)", r.Score, r.Field)
		}
		fmt.Fprintln(w, line)

		for _, l := range wrapText(r.Card.Description, width-4) {
			if l != "" {
				fmt.Fprintln(w, "    "+l)
			}
		}
	}
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
