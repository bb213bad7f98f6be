package validator

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/hilo/internal/card"
	"github.com/arcanaland/hilo/internal/config"
	"github.com/arcanaland/hilo/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate checks that the config describes a game that can be dealt.
// The returned error is only set when the file cannot be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	cfg, err := v.decode()
	if err != nil {
		return v.Results, err
	}

	d := v.validateDeck(cfg)
	v.validateRows(cfg)
	if d != nil {
		v.validateInitialCards(cfg, d)
	}

	return v.Results, nil
}

func (v *Validator) errorf(format string, a ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, a...))
}

func (v *Validator) warnf(format string, a ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, a...))
}

func (v *Validator) decode() (*config.Config, error) {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	cfg := config.Default()
	meta, err := toml.DecodeFile(v.ConfigPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", v.ConfigPath, err)
	}
	for _, key := range meta.Undecoded() {
		v.warnf("unknown key: %s", key.String())
	}
	return cfg, nil
}

// validateDeck checks the deck can be built and returns it, or nil if not
func (v *Validator) validateDeck(cfg *config.Config) *deck.Deck {
	if cfg.MaxDeckSize <= 0 {
		v.warnf("max_deck_size is %d, deck size is uncapped", cfg.MaxDeckSize)
	}

	d, err := deck.New(cfg.DeckSize, deck.WithMaxSize(cfg.MaxDeckSize))
	if err != nil {
		v.errorf("deck_size: %v", err)
		return nil
	}
	if d.Size() == 0 {
		v.warnf("deck_size is 0, the game cannot be played")
	}
	return d
}

func (v *Validator) validateRows(cfg *config.Config) {
	if cfg.Rows < 1 {
		v.errorf("rows must be at least 1, got %d", cfg.Rows)
		return
	}
	if cfg.Rows > cfg.DeckSize {
		v.errorf("rows (%d) is larger than deck_size (%d)", cfg.Rows, cfg.DeckSize)
	}
}

func (v *Validator) validateInitialCards(cfg *config.Config, d *deck.Deck) {
	if len(cfg.InitialCards) == 0 {
		return
	}

	if len(cfg.InitialCards) != cfg.Rows {
		v.errorf("initial_cards has %d cards but rows is %d", len(cfg.InitialCards), cfg.Rows)
	}

	seen := make(map[card.Card]bool)
	for i, token := range cfg.InitialCards {
		c, err := card.Parse(token)
		if err != nil {
			v.errorf("initial_cards[%d]: %v", i, err)
			continue
		}
		if !d.IsValid(c) {
			v.errorf("initial_cards[%d]: %s is not in a %d card deck", i, c, d.Size())
			continue
		}
		if seen[c] {
			v.errorf("initial_cards[%d]: %s is dealt twice", i, c)
		}
		seen[c] = true
	}
}
