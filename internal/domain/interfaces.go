package domain

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// ChartSource supplies natal charts from the external position service.
// Implementations live outside the core (ephemeris adapters, file readers).
type ChartSource interface {
	// Chart returns the ascendant and planetary positions for one subject.
	Chart(ctx context.Context) (Chart, error)
}

// LabelLookup resolves stable identifiers to localized display strings.
// Only presentation layers use it; the engines emit canonical English.
type LabelLookup interface {
	// Label returns the localized text for id, or false when none exists.
	Label(id string) (string, bool)
}

// fingerprintNamespace scopes chart fingerprints so they never collide
// with other SHA-1 derived identifiers.
var fingerprintNamespace = uuid.MustParse("6f1c3c2e-8f95-4b7a-9d0e-2a4f1b7c9e11")

// Fingerprint derives a deterministic identifier from the chart contents.
// Identical charts always produce the same value regardless of the order
// the positions were supplied in.
func (c Chart) Fingerprint() (uuid.UUID, error) {
	canonical := Chart{
		Ascendant: Normalize(c.Ascendant),
		Positions: make([]PlanetPosition, len(c.Positions)),
	}
	copy(canonical.Positions, c.Positions)
	sort.SliceStable(canonical.Positions, func(i, j int) bool {
		return canonical.Positions[i].Planet.Index() < canonical.Positions[j].Planet.Index()
	})

	data, err := msgpack.Marshal(canonical)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return uuid.NewSHA1(fingerprintNamespace, data), nil
}
