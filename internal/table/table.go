package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/hilo/internal/card"
)

var (
	ErrConstruction   = errors.New("invalid card amount")
	ErrNoSuchRow      = errors.New("no such row")
	ErrUnknownCommand = errors.New("unknown command")
)

// Table holds the rows currently in play
type Table struct {
	rows []*Row
}

// New creates rowCount rows, row i seeded with initial[i]
func New(rowCount int, initial []card.Card) (*Table, error) {
	if rowCount < 1 {
		return nil, fmt.Errorf("%w: need at least one row", ErrConstruction)
	}
	if rowCount != len(initial) {
		return nil, fmt.Errorf("%w: %d rows but %d cards", ErrConstruction, rowCount, len(initial))
	}

	rows := make([]*Row, 0, rowCount)
	for _, c := range initial {
		rows = append(rows, NewRow(c))
	}
	return &Table{rows: rows}, nil
}

// RowExists reports whether i is a valid row index
func (t *Table) RowExists(i int) bool {
	return i >= 0 && i < len(t.rows)
}

// Row returns row i
func (t *Table) Row(i int) (*Row, error) {
	if !t.RowExists(i) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchRow, i)
	}
	return t.rows[i], nil
}

// Rows returns the rows in table order
func (t *Table) Rows() []*Row {
	return t.rows
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// CardCount returns the number of cards across all rows
func (t *Table) CardCount() int {
	n := 0
	for _, r := range t.rows {
		n += r.Len()
	}
	return n
}

// Holds reports whether c is in any row
func (t *Table) Holds(c card.Card) bool {
	for _, r := range t.rows {
		if r.Has(c) {
			return true
		}
	}
	return false
}

// Command is an operation a player applies to a row
type Command int

const (
	Collapse Command = iota
	AddLeft
	AddRight
	RemoveLeft
	RemoveRight
)

var commandNames = map[Command]string{
	Collapse:    "collapse",
	AddLeft:     "add-left",
	AddRight:    "add-right",
	RemoveLeft:  "remove-left",
	RemoveRight: "remove-right",
}

var commandAliases = map[string]Command{
	"c":  Collapse,
	"al": AddLeft,
	"<":  AddLeft,
	"ar": AddRight,
	">":  AddRight,
	"rl": RemoveLeft,
	"rr": RemoveRight,
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// NeedsCard reports whether the command places a new card
func (c Command) NeedsCard() bool {
	return c == Collapse || c == AddLeft || c == AddRight
}

// ParseCommand accepts a command name or one of its short aliases
func ParseCommand(s string) (Command, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if cmd, ok := commandAliases[s]; ok {
		return cmd, nil
	}
	for cmd, name := range commandNames {
		if name == s {
			return cmd, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}
