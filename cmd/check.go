package cmd

import (
	"fmt"

	"github.com/arcanaland/hilo/internal/card"
	"github.com/arcanaland/hilo/internal/config"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [card...]",
	Short: "Check whether card identifiers are valid for a deck",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		d, err := newDeck(cmd, cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		invalid := 0
		for _, token := range args {
			if d.IsValidIdentifier(token) {
				c := card.MustParse(token)
				fmt.Fprintf(out, "%-4s %s (%s)\n", token, colorize.GreenString("valid"), c.Suit.Name())
				continue
			}
			invalid++
			reason := fmt.Sprintf("not in a %d card deck", d.StartSize())
			if _, err := card.Parse(token); err != nil {
				reason = err.Error()
			}
			fmt.Fprintf(out, "%-4s %s: %s\n", token, colorize.RedString("invalid"), reason)
		}

		if invalid > 0 {
			return fmt.Errorf("%d of %d cards invalid", invalid, len(args))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntP("size", "s", 52, "Deck size, a multiple of 4")
}
