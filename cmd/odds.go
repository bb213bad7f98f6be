package cmd

import (
	"fmt"

	"github.com/arcanaland/hilo/internal/card"
	"github.com/arcanaland/hilo/internal/config"
	"github.com/arcanaland/hilo/internal/render"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var oddsCmd = &cobra.Command{
	Use:   "odds [card] [dealt...]",
	Short: "Show the chance the next card is higher, equal or lower",
	Long: `Odds deals the given card and any further dealt cards from a fresh deck,
then prints the chance that the next card drawn ranks higher, equal or lower
than the given card.

Examples:
  hilo odds --size 8 a14
  hilo odds c7 a2 b9 d13`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		d, err := newDeck(cmd, cfg)
		if err != nil {
			return err
		}

		probe, err := card.Parse(args[0])
		if err != nil {
			return err
		}
		if !d.IsValid(probe) {
			return fmt.Errorf("%w: %s is not in a %d card deck", card.ErrInvalid, probe, d.StartSize())
		}
		if err := d.Draw(probe); err != nil {
			return err
		}
		for _, token := range args[1:] {
			c, err := card.Parse(token)
			if err != nil {
				return err
			}
			if err := d.Draw(c); err != nil {
				return fmt.Errorf("dealing %s: %w", token, err)
			}
		}

		o, err := d.Probability(probe)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		width := terminalWidth(out)
		fmt.Fprintf(out, "%s %s\n", colorize.CyanString("Card:"), render.Card(probe))
		fmt.Fprintf(out, "%s %d\n", colorize.CyanString("Left:"), d.Size())
		fmt.Fprintf(out, "%s %s\n", colorize.CyanString("Odds:"), render.Odds(o))
		fmt.Fprintf(out, "      %s\n", render.Gauge(o, width/2))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(oddsCmd)

	oddsCmd.Flags().IntP("size", "s", 52, "Deck size, a multiple of 4")
}
