package card

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token string
		want  Card
	}{
		{"a10", Card{Suit: Clubs, Rank: 10}},
		{"b14", Card{Suit: Spades, Rank: Ace}},
		{"c2", Card{Suit: Hearts, Rank: 2}},
		{"d1", Card{Suit: Diamonds, Rank: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.token, got, tt.want)
			}
			if got.String() != tt.token {
				t.Errorf("String() = %q, want %q", got.String(), tt.token)
			}
		})
	}
}

func TestParseRejectsBadTokens(t *testing.T) {
	for _, token := range []string{"", "14", "!14", "f10", "a", "a100", "bb", "x1", "A10"} {
		t.Run(token, func(t *testing.T) {
			if _, err := Parse(token); !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalid", token, err)
			}
		})
	}
}

func TestParseRank(t *testing.T) {
	if r, err := ParseRank("a1"); err != nil || r != 1 {
		t.Errorf("ParseRank(a1) = %d, %v", r, err)
	}
	if r, err := ParseRank("b14"); err != nil || r != 14 {
		t.Errorf("ParseRank(b14) = %d, %v", r, err)
	}
	for _, token := range []string{"bb", "a", ""} {
		if _, err := ParseRank(token); !errors.Is(err, ErrParse) {
			t.Errorf("ParseRank(%q) error = %v, want ErrParse", token, err)
		}
	}
}

func TestInStandardRange(t *testing.T) {
	if !MustParse("a2").InStandardRange() || !MustParse("a14").InStandardRange() {
		t.Error("a2 and a14 should be in range")
	}
	if MustParse("a1").InStandardRange() || MustParse("a15").InStandardRange() {
		t.Error("a1 and a15 should be out of range")
	}
}

func TestSuitRed(t *testing.T) {
	if Clubs.Red() || Spades.Red() {
		t.Error("black suits reported red")
	}
	if !Hearts.Red() || !Diamonds.Red() {
		t.Error("red suits reported black")
	}
}
