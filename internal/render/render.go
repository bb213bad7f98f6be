// Package render formats cards, rows and odds for the terminal.
package render

import (
	"fmt"
	"math"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/hilo/internal/card"
	"github.com/arcanaland/hilo/internal/deck"
	"github.com/arcanaland/hilo/internal/game"
	"github.com/arcanaland/hilo/internal/table"
)

var (
	red   = colorize.New(colorize.FgRed)
	green = colorize.New(colorize.FgGreen)
	blue  = colorize.New(colorize.FgBlue)
	faint = colorize.New(colorize.Faint)

	// Gauge endpoints
	allLower  = colorful.Color{R: 0.23, G: 0.51, B: 0.96}
	allHigher = colorful.Color{R: 0.13, G: 0.77, B: 0.37}
)

func suitSymbol(s card.Suit) string {
	switch s {
	case card.Clubs:
		return "♣"
	case card.Spades:
		return "♠"
	case card.Hearts:
		return "♥"
	case card.Diamonds:
		return "♦"
	default:
		return ""
	}
}

func rankSymbol(r card.Rank) string {
	switch r {
	case card.Ace:
		return "A"
	case card.King:
		return "K"
	case card.Queen:
		return "Q"
	case card.Jack:
		return "J"
	default:
		return fmt.Sprint(int(r))
	}
}

// Card renders a card as e.g. [♠ 10] or [♥  Q], red suits in red
func Card(c card.Card) string {
	value := rankSymbol(c.Rank)
	padding := ""
	if len(value) == 1 {
		padding = " "
	}
	s := fmt.Sprintf("[%s %s%s]", suitSymbol(c.Suit), padding, value)
	if c.Suit.Red() {
		return red.Sprint(s)
	}
	return s
}

// Row renders the cards of a row separated by spaces
func Row(r *table.Row) string {
	parts := make([]string, 0, r.Len())
	for _, c := range r.Cards() {
		parts = append(parts, Card(c))
	}
	return strings.Join(parts, " ")
}

// Odds renders a probability triple with arrows
func Odds(o deck.Odds) string {
	return fmt.Sprintf("%s %.2f %s %.2f %s %.2f",
		green.Sprint("▲"), o.Higher,
		"◀▶", o.Equal,
		blue.Sprint("▼"), o.Lower)
}

// Gauge renders a bar of width cells: higher share solid, equal share
// shaded, lower share light. The bar is tinted from blue to green by how
// the higher and lower shares balance.
func Gauge(o deck.Odds, width int) string {
	if width < 1 {
		width = 1
	}
	hi := int(math.Round(o.Higher * float64(width)))
	eq := int(math.Round(o.Equal * float64(width)))
	hi = min(max(hi, 0), width)
	eq = max(eq, 0)
	if hi+eq > width {
		eq = width - hi
	}
	bar := strings.Repeat("█", hi) + strings.Repeat("▒", eq) + strings.Repeat("░", width-hi-eq)

	if colorize.NoColor {
		return bar
	}
	t := 0.5
	if o.Higher+o.Lower > 0 {
		t = o.Higher / (o.Higher + o.Lower)
	}
	r, g, b := allLower.BlendHcl(allHigher, t).Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, bar)
}

// Table renders one line per row with the odds for both ends. Rows are
// numbered from 1.
func Table(s *game.Session, width int) (string, error) {
	var b strings.Builder
	gaugeWidth := width / 8
	if gaugeWidth < 4 {
		gaugeWidth = 4
	}

	for i, r := range s.Table().Rows() {
		left, right, err := s.Odds(i)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%2d  %s %s\t---\t%s\t---\t%s %s\n",
			i+1,
			Gauge(left, gaugeWidth), Odds(left),
			Row(r),
			Odds(right), Gauge(right, gaugeWidth))
	}
	fmt.Fprintf(&b, "%s\n", faint.Sprintf("%d cards left in the deck", s.Deck().Size()))
	return b.String(), nil
}
