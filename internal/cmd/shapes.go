package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tursodatabase/pentris/internal"
	"github.com/tursodatabase/pentris/internal/tetris"
)

func init() {
	rootCmd.AddCommand(shapesCmd)
	addVariantFlag(shapesCmd)
}

var shapesCmd = &cobra.Command{
	Use:               "shapes",
	Short:             "Draw every shape of a variant in its four rotations.",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		variant := variantFlag
		if variant == "" {
			_, config, err := readConfig()
			if err != nil {
				return err
			}
			variant = config.Variant
		}
		catalog, err := tetris.CatalogByName(variant)
		if err != nil {
			return err
		}

		fmt.Printf("%d shapes in the %s set:\n\n", catalog.Len(), internal.Emph(catalog.Name()))
		for _, shape := range catalog.Shapes() {
			fmt.Println(internal.Emph(shape.Name()))
			fmt.Println(renderRotations(shape))
		}
		return nil
	},
}

func renderRotations(shape *tetris.Shape) string {
	cell := lipgloss.NewStyle().Background(shapeColor(shape))
	gap := lipgloss.NewStyle().PaddingRight(2)
	blocks := make([]string, 0, 4)
	for rotation := 0; rotation < 4; rotation++ {
		blocks = append(blocks, gap.Render(renderShape(shape, rotation, cell.Render("  "), "  ")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...) + "\n"
}

func renderShape(shape *tetris.Shape, rotation int, filled, empty string) string {
	size := shape.Size()
	box := make([][]bool, size)
	for y := range box {
		box[y] = make([]bool, size)
	}
	for _, p := range shape.Cells(rotation) {
		box[p.Y][p.X] = true
	}

	var b strings.Builder
	for y, row := range box {
		for _, set := range row {
			if set {
				b.WriteString(filled)
			} else {
				b.WriteString(empty)
			}
		}
		if y < size-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func shapeColor(shape *tetris.Shape) lipgloss.TerminalColor {
	hex := shape.Color().Hex()
	if hex < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(fmt.Sprintf("#%06x", hex))
}
