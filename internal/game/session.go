// Package game ties a deck and a table together and moves cards between them.
package game

import (
	"errors"
	"fmt"

	"github.com/arcanaland/hilo/internal/card"
	"github.com/arcanaland/hilo/internal/deck"
	"github.com/arcanaland/hilo/internal/table"
)

// ErrDuplicateCard is returned when the same card seeds two rows
var ErrDuplicateCard = errors.New("card dealt twice")

// Session owns the deck and the table for one game
type Session struct {
	deck  *deck.Deck
	table *table.Table
}

// New deals each initial card from d and lays out one row per card.
// d is left untouched if any card cannot be dealt.
func New(d *deck.Deck, initial []card.Card) (*Session, error) {
	seen := make(map[card.Card]bool, len(initial))
	for _, c := range initial {
		if seen[c] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = true
		if err := checkDrawable(d, c); err != nil {
			return nil, err
		}
	}

	t, err := table.New(len(initial), initial)
	if err != nil {
		return nil, err
	}
	for _, c := range initial {
		if err := d.Draw(c); err != nil {
			return nil, err
		}
	}

	return &Session{deck: d, table: t}, nil
}

func checkDrawable(d *deck.Deck, c card.Card) error {
	if !d.IsValid(c) {
		return fmt.Errorf("%w: %s", card.ErrInvalid, c)
	}
	if !d.Contains(c) {
		return fmt.Errorf("%w: %s", deck.ErrNotInDeck, c)
	}
	return nil
}

// Deck returns the session's deck
func (s *Session) Deck() *deck.Deck {
	return s.deck
}

// Table returns the session's table
func (s *Session) Table() *table.Table {
	return s.table
}

// Apply runs cmd against the row at index. token names the new card for
// commands that place one and is ignored otherwise. Either the whole
// command takes effect or nothing does.
func (s *Session) Apply(cmd table.Command, index int, token string) error {
	row, err := s.table.Row(index)
	if err != nil {
		return err
	}

	if !cmd.NeedsCard() {
		switch cmd {
		case table.RemoveLeft:
			_, err = row.RemoveLeft(s.deck)
		case table.RemoveRight:
			_, err = row.RemoveRight(s.deck)
		default:
			err = fmt.Errorf("%w: %v", table.ErrUnknownCommand, cmd)
		}
		return err
	}

	c, err := card.Parse(token)
	if err != nil {
		return err
	}
	if err := checkDrawable(s.deck, c); err != nil {
		return err
	}
	if err := s.deck.Remove(c); err != nil {
		return err
	}

	switch cmd {
	case table.AddLeft:
		row.AddLeft(c)
	case table.AddRight:
		row.AddRight(c)
	case table.Collapse:
		if err := row.Collapse(c, s.deck); err != nil {
			// Put the drawn card back so the command has no effect.
			if rerr := s.deck.Add(c); rerr != nil {
				return errors.Join(err, rerr)
			}
			return err
		}
	}
	return nil
}

// Odds returns the probabilities for the left and right ends of a row
func (s *Session) Odds(index int) (left, right deck.Odds, err error) {
	row, err := s.table.Row(index)
	if err != nil {
		return deck.Odds{}, deck.Odds{}, err
	}
	if left, err = s.deck.Probability(row.Left()); err != nil {
		return deck.Odds{}, deck.Odds{}, err
	}
	if right, err = s.deck.Probability(row.Right()); err != nil {
		return deck.Odds{}, deck.Odds{}, err
	}
	return left, right, nil
}

// Conserved reports whether every card of the starting deck is accounted
// for either in the deck or on the table.
func (s *Session) Conserved() bool {
	return s.deck.Size()+s.table.CardCount() == s.deck.StartSize()
}
