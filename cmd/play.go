package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arcanaland/hilo/internal/card"
	"github.com/arcanaland/hilo/internal/config"
	"github.com/arcanaland/hilo/internal/deck"
	"github.com/arcanaland/hilo/internal/game"
	"github.com/arcanaland/hilo/internal/render"
	"github.com/arcanaland/hilo/internal/table"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

const playHelp = `Commands (rows are numbered from 1):
  c  <row> <card>   collapse the row and start it again with card
  al <row> <card>   add card to the left end       (also: <)
  ar <row> <card>   add card to the right end      (also: >)
  rl <row>          return the leftmost card to the deck
  rr <row>          return the rightmost card to the deck
  h                 show this help
  q                 quit`

// errQuit ends the play loop without an error
var errQuit = errors.New("quit")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive game",
	Long: `Play deals a fresh deck and lays out one row per starting card, then reads
commands such as 'ar 1 c12' until you quit.

The deck size and row count come from the flags or the config file; starting
cards come from the config file or are asked for.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if !cfg.Color {
			colorize.NoColor = true
		}
		if cmd.Flags().Changed("rows") {
			cfg.Rows, _ = cmd.Flags().GetInt("rows")
		}

		p := &prompter{in: bufio.NewScanner(cmd.InOrStdin()), out: cmd.OutOrStdout()}

		d, err := p.askDeck(cmd, cfg)
		if err != nil {
			return ignoreQuit(err)
		}
		s, err := p.askSession(d, cfg)
		if err != nil {
			return ignoreQuit(err)
		}
		return ignoreQuit(p.loop(s))
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().IntP("size", "s", 52, "Deck size, a multiple of 4")
	playCmd.Flags().IntP("rows", "r", 1, "Number of rows on the table")
}

func ignoreQuit(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// prompter reads answers line by line and reports problems in red
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

var errColor = colorize.New(colorize.FgRed)

// ask prints question and returns the next trimmed line.
// End of input and "q" both yield errQuit.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	line := strings.TrimSpace(p.in.Text())
	if line == "q" || line == "quit" {
		return "", errQuit
	}
	return line, nil
}

func (p *prompter) fail(err error) {
	errColor.Fprintf(p.out, "Error: %v\n", err)
}

// askDeck uses the --size flag if given, otherwise asks with the config
// value as the default answer, until a deck can be built.
func (p *prompter) askDeck(cmd *cobra.Command, cfg *config.Config) (*deck.Deck, error) {
	if cmd.Flags().Changed("size") {
		return newDeck(cmd, cfg)
	}
	for {
		answer, err := p.ask(fmt.Sprintf("Deck size [%d]? ", cfg.DeckSize))
		if err != nil {
			return nil, err
		}
		size := cfg.DeckSize
		if answer != "" {
			if size, err = strconv.Atoi(answer); err != nil {
				p.fail(fmt.Errorf("invalid input: %q", answer))
				continue
			}
		}
		d, err := deck.New(size, deck.WithMaxSize(cfg.MaxDeckSize))
		if err != nil {
			p.fail(err)
			continue
		}
		return d, nil
	}
}

// askSession deals the starting cards from the config, or asks for one
// card per row when the config does not name them.
func (p *prompter) askSession(d *deck.Deck, cfg *config.Config) (*game.Session, error) {
	if cfg.Rows < 1 {
		return nil, fmt.Errorf("%w: need at least one row", table.ErrConstruction)
	}
	if len(cfg.InitialCards) == cfg.Rows {
		initial := make([]card.Card, 0, cfg.Rows)
		for _, token := range cfg.InitialCards {
			c, err := card.Parse(token)
			if err != nil {
				return nil, fmt.Errorf("initial_cards: %w", err)
			}
			initial = append(initial, c)
		}
		return game.New(d, initial)
	}

	initial := make([]card.Card, 0, cfg.Rows)
	for len(initial) < cfg.Rows {
		answer, err := p.ask(fmt.Sprintf("Card for row %d? ", len(initial)+1))
		if err != nil {
			return nil, err
		}
		c, err := card.Parse(answer)
		if err != nil {
			p.fail(err)
			continue
		}
		next := append(initial, c)
		// Trial deal against a scratch deck so a bad card can be asked again.
		if _, err := game.New(cloneDeck(d), next); err != nil {
			p.fail(err)
			continue
		}
		initial = next
	}
	return game.New(d, initial)
}

// cloneDeck returns a fresh deck of the same starting size
func cloneDeck(d *deck.Deck) *deck.Deck {
	c, err := deck.New(d.StartSize(), deck.WithMaxSize(0))
	if err != nil {
		panic(err)
	}
	return c
}

// loop renders the table and applies commands until the player quits
func (p *prompter) loop(s *game.Session) error {
	var lastErr error
	showHelp := false
	for {
		clearScreen(p.out)
		board, err := render.Table(s, terminalWidth(p.out))
		if err != nil {
			// Only an empty deck makes the odds undefined.
			fmt.Fprintln(p.out, "The deck is empty.")
			return nil
		}
		fmt.Fprint(p.out, board)
		if showHelp {
			fmt.Fprintln(p.out, playHelp)
			showHelp = false
		}
		if lastErr != nil {
			p.fail(lastErr)
			lastErr = nil
		}

		line, err := p.ask("> ")
		if err != nil {
			return err
		}
		switch line {
		case "":
		case "h", "help":
			showHelp = true
		default:
			lastErr = p.apply(s, line)
		}
	}
}

// apply parses "<command> <row> [card]" and runs it against the session
func (p *prompter) apply(s *game.Session, line string) error {
	fields := strings.Fields(line)
	cmd, err := table.ParseCommand(fields[0])
	if err != nil {
		return err
	}

	want := 2
	if cmd.NeedsCard() {
		want = 3
	}
	if len(fields) != want {
		return fmt.Errorf("%s takes %d arguments", cmd, want-1)
	}

	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("invalid row: %q", fields[1])
	}
	if !s.Table().RowExists(row - 1) {
		return fmt.Errorf("%w: %d", table.ErrNoSuchRow, row)
	}

	token := ""
	if cmd.NeedsCard() {
		token = fields[2]
	}
	return s.Apply(cmd, row-1, token)
}
