package table

import (
	"errors"
	"fmt"

	"github.com/arcanaland/hilo/internal/card"
)

// ErrRowTooShort is returned when removing a card would leave a row empty
var ErrRowTooShort = errors.New("row has fewer than two cards")

// Pool is where cards go when they leave a row. *deck.Deck implements it.
type Pool interface {
	CheckAdd(c card.Card) error
	Add(c card.Card) error
}

// Row is an ordered, never empty sequence of cards in play
type Row struct {
	cards []card.Card
}

// NewRow creates a row holding a single card
func NewRow(c card.Card) *Row {
	return &Row{cards: []card.Card{c}}
}

// Len returns the number of cards in the row
func (r *Row) Len() int {
	return len(r.cards)
}

// Cards returns a copy of the row, left to right
func (r *Row) Cards() []card.Card {
	out := make([]card.Card, len(r.cards))
	copy(out, r.cards)
	return out
}

// Left returns the leftmost card
func (r *Row) Left() card.Card {
	if len(r.cards) == 0 {
		panic("table: Left on empty row")
	}
	return r.cards[0]
}

// Right returns the rightmost card
func (r *Row) Right() card.Card {
	if len(r.cards) == 0 {
		panic("table: Right on empty row")
	}
	return r.cards[len(r.cards)-1]
}

// Has reports whether c is somewhere in the row
func (r *Row) Has(c card.Card) bool {
	for _, rc := range r.cards {
		if rc == c {
			return true
		}
	}
	return false
}

// AddLeft prepends c. The caller must already have taken c from the deck.
func (r *Row) AddLeft(c card.Card) {
	r.cards = append([]card.Card{c}, r.cards...)
}

// AddRight appends c. The caller must already have taken c from the deck.
func (r *Row) AddRight(c card.Card) {
	r.cards = append(r.cards, c)
}

// RemoveLeft pops the leftmost card and returns it to p
func (r *Row) RemoveLeft(p Pool) (card.Card, error) {
	if len(r.cards) < 2 {
		return card.Card{}, ErrRowTooShort
	}
	c := r.cards[0]
	if err := p.Add(c); err != nil {
		return card.Card{}, fmt.Errorf("returning %s: %w", c, err)
	}
	r.cards = r.cards[1:]
	return c, nil
}

// RemoveRight pops the rightmost card and returns it to p
func (r *Row) RemoveRight(p Pool) (card.Card, error) {
	if len(r.cards) < 2 {
		return card.Card{}, ErrRowTooShort
	}
	c := r.cards[len(r.cards)-1]
	if err := p.Add(c); err != nil {
		return card.Card{}, fmt.Errorf("returning %s: %w", c, err)
	}
	r.cards = r.cards[:len(r.cards)-1]
	return c, nil
}

// Collapse returns every card in the row to p and reseeds the row with c.
// Nothing changes unless p accepts all of the row's cards.
func (r *Row) Collapse(c card.Card, p Pool) error {
	for _, rc := range r.cards {
		if err := p.CheckAdd(rc); err != nil {
			return fmt.Errorf("returning %s: %w", rc, err)
		}
	}
	for _, rc := range r.cards {
		if err := p.Add(rc); err != nil {
			// CheckAdd passed for every card, so Add cannot fail here.
			panic(err)
		}
	}
	r.cards = append(r.cards[:0], c)
	return nil
}
