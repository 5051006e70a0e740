// Package drishti computes planetary aspects and their strength (Drishti Bala).
package drishti

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOrb is returned when an orb is outside (0, MaxOrb].
	ErrInvalidOrb = errors.New("invalid aspect orb")
	// ErrInvalidMode is returned for an unknown matching mode.
	ErrInvalidMode = errors.New("invalid aspect mode")
)

// Mode selects how an aspect is matched.
type Mode string

const (
	// ModeSignBased matches by whole-sign house distance only.
	ModeSignBased Mode = "sign"
	// ModeDegreeBased matches by angular orb only.
	ModeDegreeBased Mode = "degree"
	// ModeHybrid accepts a sign match, or a degree match within one sign of nominal.
	ModeHybrid Mode = "hybrid"
)

const (
	DefaultOrb            = 12.0
	DefaultConjunctionOrb = 8.0
	MaxOrb                = 30.0
)

// Config controls aspect matching for one computation.
type Config struct {
	Mode                Mode    `json:"mode"`
	Orb                 float64 `json:"orb"`
	ConjunctionOrb      float64 `json:"conjunction_orb"`
	IncludeOuterPlanets bool    `json:"include_outer_planets"`
	NodeSpecialAspects  bool    `json:"node_special_aspects"` // give Rahu/Ketu the 5th and 9th aspects
}

// DefaultConfig returns hybrid matching with the standard orbs.
func DefaultConfig() Config {
	return Config{
		Mode:           ModeHybrid,
		Orb:            DefaultOrb,
		ConjunctionOrb: DefaultConjunctionOrb,
	}
}

// ParseMode converts a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSignBased:
		return ModeSignBased, nil
	case ModeDegreeBased:
		return ModeDegreeBased, nil
	case ModeHybrid, "":
		return ModeHybrid, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidMode)
}

// Validate rejects configurations the engine cannot honour.
func (c Config) Validate() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.Orb <= 0 || c.Orb > MaxOrb {
		return fmt.Errorf("orb %.2f: %w", c.Orb, ErrInvalidOrb)
	}
	if c.ConjunctionOrb <= 0 || c.ConjunctionOrb > MaxOrb {
		return fmt.Errorf("conjunction orb %.2f: %w", c.ConjunctionOrb, ErrInvalidOrb)
	}
	return nil
}

// withDefaults fills zero values so a zero Config behaves like DefaultConfig.
func (c Config) withDefaults() Config {
	if c.Mode == "" {
		c.Mode = ModeHybrid
	}
	if c.Orb <= 0 {
		c.Orb = DefaultOrb
	}
	if c.ConjunctionOrb <= 0 {
		c.ConjunctionOrb = DefaultConjunctionOrb
	}
	return c
}
