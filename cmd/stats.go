package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardbook/internal/card"
	"github.com/arcanaland/cardbook/internal/config"
	"github.com/arcanaland/cardbook/internal/counter"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many cards of each type the dataset holds",
	Long: `Stats counts the cards of each type. On a terminal the numbers count up
from zero; use --no-animate or reduced_motion in your config to print them
directly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		noAnimate, _ := cmd.Flags().GetBool("no-animate")

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		counts := c.CountByType()
		rows := []statRow{{label: "Total", target: c.Len()}}
		for _, t := range card.Types {
			rows = append(rows, statRow{label: typeHeading(t), target: counts[t]})
		}

		animate := !noAnimate && !cfg.ReducedMotion && term.IsTerminal(int(os.Stdout.Fd()))
		return runStats(cmd.Context(), cmd.OutOrStdout(), rows, animate)
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)

	statsCmd.Flags().Bool("no-animate", false, "Print the final counts without animating")
}

type statRow struct {
	label   string
	target  int
	counter *counter.Counter
}

// runStats prints one line per row. When animate is set the lines are
// redrawn in place every frame until every counter is done.
func runStats(ctx context.Context, w io.Writer, rows []statRow, animate bool) error {
	for i := range rows {
		rows[i].counter = counter.New(rows[i].target,
			counter.Immediate(),
			counter.WithReducedMotion(!animate),
		)
	}

	printStatRows(w, rows, animate)
	if !animate {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ticker := time.NewTicker(counter.FrameInterval)
	defer ticker.Stop()

	for anyRunning(rows) {
		select {
		case <-ctx.Done():
			for _, r := range rows {
				r.counter.Stop()
			}
			return ctx.Err()
		case <-ticker.C:
		}

		for _, r := range rows {
			r.counter.Tick()
		}
		// Move the cursor back up over the previous frame
		fmt.Fprintf(w, "\x1b[%dA", len(rows))
		printStatRows(w, rows, true)
	}
	return nil
}

// printStatRows writes the rows; inPlace clears each line before writing it
func printStatRows(w io.Writer, rows []statRow, inPlace bool) {
	for _, r := range rows {
		if inPlace {
			fmt.Fprint(w, "\r\x1b[K")
		}
		fmt.Fprintf(w, "%s %s\n", colorize.CyanString("%-20s", r.label), colorize.HiWhiteString("%6s", r.counter.Display()))
	}
}

func anyRunning(rows []statRow) bool {
	for _, r := range rows {
		if r.counter.Running() {
			return true
		}
	}
	return false
}

// typeHeading is the plural heading for a card type
func typeHeading(t card.Type) string {
	switch t {
	case card.Occupation:
		return "Occupations"
	case card.MinorImprovement:
		return "Minor improvements"
	case card.MajorImprovement:
		return "Major improvements"
	}
	return string(t)
}
