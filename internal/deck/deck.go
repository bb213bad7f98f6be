package deck

import (
	"errors"
	"fmt"

	"github.com/arcanaland/hilo/internal/card"
)

// DefaultMaxSize is the size of a single physical deck
const DefaultMaxSize = 52

var (
	ErrConstruction = errors.New("invalid deck size")
	ErrNotFound     = errors.New("card value not in deck")
	ErrNotInDeck    = errors.New("card not in deck")
	ErrEmptyDeck    = errors.New("deck is empty")
)

// Odds holds the chance that the next card is higher, equal or lower in rank
type Odds struct {
	Higher float64
	Equal  float64
	Lower  float64
}

// Deck is the pool of cards that have not been dealt.
//
// Every card the deck has ever seen keeps an entry in the membership map,
// so presence checks are lookups. Counts per rank are kept alongside and
// are only ever changed together with membership by Add and Remove.
type Deck struct {
	size      int
	startSize int
	lowest    card.Rank

	membership map[card.Card]bool
	counts     map[card.Rank]int
}

type options struct {
	maxSize int
}

// Option configures deck construction
type Option func(*options)

// WithMaxSize caps the deck size. A value of zero or less removes the cap.
func WithMaxSize(n int) Option {
	return func(o *options) {
		o.maxSize = n
	}
}

// New creates a deck of size cards, four per rank, counting down from the ace.
// A size of 0 yields an empty deck that cannot answer probability queries.
func New(size int, opts ...Option) (*Deck, error) {
	o := options{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&o)
	}

	if size < 0 || size%len(card.Suits) != 0 {
		return nil, fmt.Errorf("%w: %d is not a multiple of %d", ErrConstruction, size, len(card.Suits))
	}
	if o.maxSize > 0 && size > o.maxSize {
		return nil, fmt.Errorf("%w: %d is larger than %d", ErrConstruction, size, o.maxSize)
	}

	ranks := size / len(card.Suits)
	lowest := card.MaxRank - card.Rank(ranks) + 1
	if lowest < 1 {
		return nil, fmt.Errorf("%w: %d needs ranks below 1", ErrConstruction, size)
	}

	d := &Deck{
		size:       size,
		startSize:  size,
		lowest:     lowest,
		membership: make(map[card.Card]bool, size),
		counts:     make(map[card.Rank]int, ranks),
	}
	for r := card.MaxRank; r >= lowest; r-- {
		d.counts[r] = len(card.Suits)
		for _, s := range card.Suits {
			d.membership[card.Card{Suit: s, Rank: r}] = true
		}
	}

	return d, nil
}

// Size returns the number of cards currently in the deck
func (d *Deck) Size() int {
	return d.size
}

// StartSize returns the size the deck was created with
func (d *Deck) StartSize() int {
	return d.startSize
}

// Lowest returns the lowest rank the deck was built with
func (d *Deck) Lowest() card.Rank {
	return d.lowest
}

// Count returns how many cards of rank r are in the deck
func (d *Deck) Count(r card.Rank) int {
	return d.counts[r]
}

// IsValid reports whether c belongs to the range of ranks this deck holds.
// It does not check whether c has been dealt.
func (d *Deck) IsValid(c card.Card) bool {
	switch c.Suit {
	case card.Clubs, card.Spades, card.Hearts, card.Diamonds:
	default:
		return false
	}
	return c.Rank <= card.MaxRank && c.Rank >= d.lowest
}

// IsValidIdentifier is IsValid for a raw token
func (d *Deck) IsValidIdentifier(token string) bool {
	c, err := card.Parse(token)
	if err != nil {
		return false
	}
	return d.IsValid(c)
}

// Contains reports whether c is currently in the deck
func (d *Deck) Contains(c card.Card) bool {
	return d.membership[c]
}

// Remove takes c out of the deck.
//
// Remove does not check that c is present: removing the same card twice
// decrements the counts twice. Use Draw when that matters.
func (d *Deck) Remove(c card.Card) error {
	if _, ok := d.counts[c.Rank]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, c)
	}
	d.membership[c] = false
	d.counts[c.Rank]--
	d.size--
	return nil
}

// CheckAdd reports the error Add would return for c without changing the deck
func (d *Deck) CheckAdd(c card.Card) error {
	if !d.IsValid(c) {
		return fmt.Errorf("%w: %s", card.ErrInvalid, c)
	}
	if _, ok := d.counts[c.Rank]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, c)
	}
	return nil
}

// Add returns c to the deck. Unlike Remove, it validates the card first.
func (d *Deck) Add(c card.Card) error {
	if err := d.CheckAdd(c); err != nil {
		return err
	}
	d.membership[c] = true
	d.counts[c.Rank]++
	d.size++
	return nil
}

// Draw removes c only if it is valid for this deck and currently present
func (d *Deck) Draw(c card.Card) error {
	if !d.IsValid(c) {
		return fmt.Errorf("%w: %s", card.ErrInvalid, c)
	}
	if !d.Contains(c) {
		return fmt.Errorf("%w: %s", ErrNotInDeck, c)
	}
	return d.Remove(c)
}

// Probability returns the odds that a card drawn from the deck ranks higher,
// equal or lower than c.
func (d *Deck) Probability(c card.Card) (Odds, error) {
	if d.size <= 0 {
		return Odds{}, ErrEmptyDeck
	}

	var higher, equal, lower int
	for r, n := range d.counts {
		switch {
		case r > c.Rank:
			higher += n
		case r == c.Rank:
			equal += n
		default:
			lower += n
		}
	}

	chance := func(n int) float64 { return float64(n) / float64(d.size) }
	return Odds{Higher: chance(higher), Equal: chance(equal), Lower: chance(lower)}, nil
}

// ProbabilityOf is Probability for a raw token. Only the rank segment is read.
func (d *Deck) ProbabilityOf(token string) (Odds, error) {
	r, err := card.ParseRank(token)
	if err != nil {
		return Odds{}, err
	}
	return d.Probability(card.Card{Rank: r})
}
