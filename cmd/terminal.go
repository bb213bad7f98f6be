package cmd

import (
	"io"
	"os"

	"github.com/arcanaland/hilo/internal/config"
	"github.com/arcanaland/hilo/internal/deck"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultWidth = 80

// isTerminal reports whether w is attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, or a default if w is not a terminal
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// clearScreen clears the terminal and homes the cursor
func clearScreen(w io.Writer) {
	if isTerminal(w) {
		io.WriteString(w, "\x1b[2J\x1b[H")
	}
}

// newDeck builds a deck from the --size flag, falling back to the config file
func newDeck(cmd *cobra.Command, cfg *config.Config) (*deck.Deck, error) {
	size := cfg.DeckSize
	if cmd.Flags().Changed("size") {
		size, _ = cmd.Flags().GetInt("size")
	}
	return deck.New(size, deck.WithMaxSize(cfg.MaxDeckSize))
}
