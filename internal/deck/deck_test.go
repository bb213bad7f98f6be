package deck

import (
	"errors"
	"math"
	"testing"

	"github.com/arcanaland/hilo/internal/card"
)

func mustNew(t *testing.T, size int, opts ...Option) *Deck {
	t.Helper()
	d, err := New(size, opts...)
	if err != nil {
		t.Fatalf("New(%d) returned error: %v", size, err)
	}
	return d
}

func TestNew(t *testing.T) {
	d := mustNew(t, 52)
	if d.Size() != 52 {
		t.Errorf("Size() = %d, want 52", d.Size())
	}
	if !d.Contains(card.MustParse("a5")) {
		t.Error("a5 should be in a full deck")
	}
	if d.Count(7) != 4 {
		t.Errorf("Count(7) = %d, want 4", d.Count(7))
	}
	if d.Lowest() != 2 {
		t.Errorf("Lowest() = %d, want 2", d.Lowest())
	}
}

func TestNewEightCards(t *testing.T) {
	d := mustNew(t, 8)
	if d.Size() != 8 {
		t.Errorf("Size() = %d, want 8", d.Size())
	}
	if d.Count(14) != 4 || d.Count(13) != 4 || d.Count(12) != 0 {
		t.Errorf("counts = {14:%d 13:%d 12:%d}, want {14:4 13:4 12:0}", d.Count(14), d.Count(13), d.Count(12))
	}
	if len(d.counts) != 2 {
		t.Errorf("populated ranks = %d, want 2", len(d.counts))
	}
	if !d.Contains(card.MustParse("a14")) {
		t.Error("a14 should be in the deck")
	}
	if d.IsValidIdentifier("x1") {
		t.Error("x1 should never be valid")
	}
	if d.Contains(card.Card{Suit: 'x', Rank: 1}) {
		t.Error("x1 should not be contained")
	}
}

func TestNewRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
		opts []Option
	}{
		{"not multiple of 4", 5, nil},
		{"negative", -4, nil},
		{"above default cap", 56, nil},
		{"above custom cap", 32, []Option{WithMaxSize(28)}},
		{"no ranks left", 60, []Option{WithMaxSize(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.size, tt.opts...); !errors.Is(err, ErrConstruction) {
				t.Errorf("New(%d) error = %v, want ErrConstruction", tt.size, err)
			}
		})
	}
}

func TestNewUncapped(t *testing.T) {
	d := mustNew(t, 56, WithMaxSize(0))
	if d.Lowest() != 1 {
		t.Errorf("Lowest() = %d, want 1", d.Lowest())
	}
}

func TestEmptyDeck(t *testing.T) {
	d := mustNew(t, 0)
	if d.Size() != 0 {
		t.Errorf("Size() = %d, want 0", d.Size())
	}
	if d.IsValidIdentifier("a14") {
		t.Error("an empty deck has no valid cards")
	}
	if _, err := d.Probability(card.MustParse("a14")); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("Probability error = %v, want ErrEmptyDeck", err)
	}
}

func TestAdd(t *testing.T) {
	d := mustNew(t, 36)
	c := card.MustParse("a10")
	if err := d.Add(c); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if d.Size() != 37 {
		t.Errorf("Size() = %d, want 37", d.Size())
	}
	if !d.Contains(c) {
		t.Error("a10 should be in the deck")
	}
}

func TestAddRejectsInvalid(t *testing.T) {
	d := mustNew(t, 8)
	c := card.MustParse("a10")
	if err := d.Add(c); !errors.Is(err, card.ErrInvalid) {
		t.Fatalf("Add error = %v, want ErrInvalid", err)
	}
	if d.Size() != 8 || d.Contains(c) {
		t.Error("failed Add mutated the deck")
	}
}

func TestRemove(t *testing.T) {
	d := mustNew(t, 36)
	c := card.MustParse("a10")
	if err := d.Remove(c); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if d.Size() != 35 {
		t.Errorf("Size() = %d, want 35", d.Size())
	}
	if d.Contains(c) {
		t.Error("a10 should not be in the deck")
	}
	if d.Count(10) != 3 {
		t.Errorf("Count(10) = %d, want 3", d.Count(10))
	}
}

func TestRemoveUntrackedRank(t *testing.T) {
	d := mustNew(t, 8)
	c := card.MustParse("b10")
	if err := d.Remove(c); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Remove error = %v, want ErrNotFound", err)
	}
	if d.Size() != 8 {
		t.Errorf("Size() = %d, want 8", d.Size())
	}
	if _, seen := d.membership[c]; seen {
		t.Error("failed Remove recorded membership")
	}
}

func TestRemoveTwiceDoubleDecrements(t *testing.T) {
	d := mustNew(t, 8)
	c := card.MustParse("a14")
	_ = d.Remove(c)
	_ = d.Remove(c)
	if d.Size() != 6 || d.Count(14) != 2 {
		t.Errorf("Size() = %d, Count(14) = %d, want 6 and 2", d.Size(), d.Count(14))
	}
}

func TestDraw(t *testing.T) {
	d := mustNew(t, 8)
	c := card.MustParse("a14")
	if err := d.Draw(c); err != nil {
		t.Fatalf("Draw returned error: %v", err)
	}
	if err := d.Draw(c); !errors.Is(err, ErrNotInDeck) {
		t.Errorf("second Draw error = %v, want ErrNotInDeck", err)
	}
	if err := d.Draw(card.MustParse("a2")); !errors.Is(err, card.ErrInvalid) {
		t.Errorf("Draw(a2) error = %v, want ErrInvalid", err)
	}
	if d.Size() != 7 {
		t.Errorf("Size() = %d, want 7", d.Size())
	}
}

func TestProbability(t *testing.T) {
	d := mustNew(t, 8)
	c := card.MustParse("a14")
	if err := d.Remove(c); err != nil {
		t.Fatal(err)
	}
	got, err := d.Probability(c)
	if err != nil {
		t.Fatalf("Probability returned error: %v", err)
	}
	want := Odds{Higher: 0, Equal: 3.0 / 7.0, Lower: 4.0 / 7.0}
	if got != want {
		t.Errorf("Probability(a14) = %+v, want %+v", got, want)
	}
}

func TestProbabilityOf(t *testing.T) {
	d := mustNew(t, 8)
	if _, err := d.ProbabilityOf("bb"); !errors.Is(err, card.ErrParse) {
		t.Errorf("ProbabilityOf(bb) error = %v, want ErrParse", err)
	}
	got, err := d.ProbabilityOf("c13")
	if err != nil {
		t.Fatal(err)
	}
	if got.Higher != 0.5 || got.Equal != 0.5 || got.Lower != 0 {
		t.Errorf("ProbabilityOf(c13) = %+v", got)
	}
}

func TestProbabilityPartition(t *testing.T) {
	d := mustNew(t, 52)
	removed := []string{"a2", "b7", "c7", "d11", "a14", "c3", "b12"}
	for _, token := range removed {
		if err := d.Draw(card.MustParse(token)); err != nil {
			t.Fatal(err)
		}
	}
	for r := card.Rank(1); r <= 15; r++ {
		o, err := d.Probability(card.Card{Suit: card.Clubs, Rank: r})
		if err != nil {
			t.Fatal(err)
		}
		if sum := o.Higher + o.Equal + o.Lower; math.Abs(sum-1) > 1e-9 {
			t.Errorf("rank %d: odds sum to %v", r, sum)
		}
	}
}

func TestCountsMatchMembership(t *testing.T) {
	d := mustNew(t, 20)
	for _, token := range []string{"a14", "b13", "c12", "d11", "a10"} {
		if err := d.Draw(card.MustParse(token)); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.Add(card.MustParse("c12")); err != nil {
		t.Fatal(err)
	}

	total := 0
	for r, n := range d.counts {
		present := 0
		for c, in := range d.membership {
			if in && c.Rank == r {
				present++
			}
		}
		if present != n {
			t.Errorf("rank %d: count %d, membership %d", r, n, present)
		}
		total += n
	}
	if total != d.Size() {
		t.Errorf("sum of counts = %d, Size() = %d", total, d.Size())
	}
}
