package card

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrInvalid is returned for tokens that do not match the identifier grammar.
	ErrInvalid = errors.New("invalid card")
	// ErrParse is returned when the rank segment of a token is not an integer.
	ErrParse = errors.New("invalid card value")
)

// Suit identifies one of the four canonical suits
type Suit byte

const (
	Clubs    Suit = 'a'
	Spades   Suit = 'b'
	Hearts   Suit = 'c'
	Diamonds Suit = 'd'
)

// Suits lists the suits in the order decks are built
var Suits = []Suit{Clubs, Spades, Hearts, Diamonds}

// Rank is the numeric value of a card
type Rank int

const (
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14

	MinRank Rank = 2
	MaxRank Rank = Ace
)

// Card represents a playing card, e.g. c12 is the queen of hearts
type Card struct {
	Suit Suit
	Rank Rank
}

var identifier = regexp.MustCompile(`^[abcd][0-9]{1,2}$`)

// Parse parses a <suit><rank> token. Ranks are not range checked.
func Parse(token string) (Card, error) {
	if !identifier.MatchString(token) {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalid, token)
	}
	rank, err := ParseRank(token)
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: Suit(token[0]), Rank: rank}, nil
}

// MustParse is like Parse but panics on error
func MustParse(token string) Card {
	c, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseRank parses everything after the suit byte as a rank
func ParseRank(token string) (Rank, error) {
	if len(token) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrParse, token)
	}
	n, err := strconv.Atoi(token[1:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, token)
	}
	return Rank(n), nil
}

// String formats the card back into its identifier
func (c Card) String() string {
	return fmt.Sprintf("%c%d", byte(c.Suit), int(c.Rank))
}

// InStandardRange reports whether the rank lies in [MinRank, MaxRank]
func (c Card) InStandardRange() bool {
	return c.Rank >= MinRank && c.Rank <= MaxRank
}

// Red reports whether the card belongs to a red suit
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Name returns the suit's English name
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	default:
		return "unknown"
	}
}
