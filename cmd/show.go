package cmd

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/cardbook/internal/art"
	"github.com/arcanaland/cardbook/internal/card"
	"github.com/arcanaland/cardbook/internal/catalog"
	"github.com/arcanaland/cardbook/internal/config"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card with ANSI art",
	Long: `Show displays detailed information about a card with ANSI terminal art
generated from the card image. Use card IDs as printed by 'cardbook search'.

Card images are looked up relative to the dataset directory. For the built-in
dataset set asset_dir in your config to the directory holding assets/cards/.

Examples:
  cardbook show clay-oven
  cardbook show --dataset ./my-cards wood-cutter
  cardbook show --no-art fireplace-2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		noArt, _ := cmd.Flags().GetBool("no-art")

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		cd, err := c.Card(args[0])
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		var ansiArt string
		if !noArt {
			ansiArt = loadCardArt(c, cd)
		}

		datasetName := c.Name
		if datasetName == "" {
			datasetName = c.ID
		}
		displayCard(cmd.OutOrStdout(), cd, ansiArt, datasetName, terminalWidth())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("no-art", false, "Do not render the card image")
}

// loadCardArt returns the ANSI art for a card, or an empty string when the
// image is unavailable
func loadCardArt(c *catalog.Catalog, cd card.Card) string {
	imagePath, err := c.ResolveImage(cd)
	if err != nil {
		logger.Debug("no card image", zap.String("card", cd.ID), zap.Error(err))
		return ""
	}

	ansiArt, err := art.Load(imagePath, config.GetCacheDir(), art.DefaultWidth, art.DefaultHeight)
	if err != nil {
		logger.Warn("failed to render card image", zap.String("image", imagePath), zap.Error(err))
		return ""
	}
	return ansiArt
}

func getTypeSymbol(t card.Type) string {
	switch t {
	case card.Occupation:
		return "👤"
	case card.MinorImprovement:
		return "🔧"
	case card.MajorImprovement:
		return "🏠"
	default:
		return "•"
	}
}

// displayCard prints the card information, with the ANSI art on the left
// when there is any
func displayCard(w io.Writer, cd card.Card, ansiArt, datasetName string, width int) {
	var ansiLines []string
	if ansiArt != "" {
		ansiLines = strings.Split(strings.TrimSuffix(ansiArt, "\n"), "\n")
	}
	maxAnsiWidth := art.Width(ansiArt)

	var infoLines []string
	infoLines = append(infoLines, colorize.CyanString("Card: ")+colorize.HiWhiteString("%s", cd.Name))
	infoLines = append(infoLines, colorize.CyanString("Set:  ")+colorize.HiWhiteString("%s", datasetName))
	infoLines = append(infoLines, colorize.CyanString("ID:   ")+colorize.HiWhiteString("%s", cd.ID))
	infoLines = append(infoLines, colorize.CyanString("Type: ")+
		colorize.HiWhiteString("%s · %s", cd.Type.Label(), getTypeSymbol(cd.Type)))

	// ANSI art on the left, info on the right
	spacing := 4
	infoStartCol := 0
	if maxAnsiWidth > 0 {
		infoStartCol = maxAnsiWidth + spacing
	}

	infoWidth := width - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}

	if cd.Description != "" {
		infoLines = append(infoLines, "")
		infoLines = append(infoLines, colorize.CyanString("Description:"))
		infoLines = append(infoLines, wrapText(cd.Description, infoWidth)...)
	}

	fmt.Fprintln(w)

	maxLines := max(len(ansiLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(w, "  ")
		if i < len(ansiLines) {
			fmt.Fprint(w, ansiLines[i])
			visibleWidth := len([]rune(art.Strip(ansiLines[i])))
			fmt.Fprint(w, strings.Repeat(" ", max(infoStartCol-visibleWidth, 0)))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(w, infoLines[i])
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}
