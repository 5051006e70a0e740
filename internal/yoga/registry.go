package yoga

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// ErrDetectorNotFound is returned when a detector name is not registered.
var ErrDetectorNotFound = errors.New("detector not found")

// Registry manages all registered detectors. Detectors run in registration order.
type Registry struct {
	detectors []Detector
	index     map[string]int
	mu        sync.RWMutex
	log       zerolog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		index: make(map[string]int),
		log:   log.With().Str("component", "yoga_registry").Logger(),
	}
}

// NewPopulatedRegistry creates a registry holding every built-in detector.
func NewPopulatedRegistry(log zerolog.Logger) *Registry {
	r := NewRegistry(log)
	groups := [][]Detector{
		rajaDetectors(),
		dhanaDetectors(),
		mahapurushaDetectors(),
		nabhasaDetectors(),
		chandraDetectors(),
		suryaDetectors(),
		doshaDetectors(),
		additionalDetectors(),
		specialDetectors(),
	}
	for _, group := range groups {
		for _, d := range group {
			r.Register(d)
		}
	}
	r.log.Info().Int("detectors", len(r.detectors)).Msg("Yoga registry initialized")
	return r
}

// Register adds a detector. A detector with the same name replaces the old one in place.
func (r *Registry) Register(d Detector) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := d.Name()
	if i, ok := r.index[name]; ok {
		r.detectors[i] = d
	} else {
		r.index[name] = len(r.detectors)
		r.detectors = append(r.detectors, d)
	}
	r.log.Debug().
		Str("name", name).
		Str("group", string(d.Group())).
		Msg("Registered detector")
}

// Get retrieves a detector by name.
func (r *Registry) Get(name string) (Detector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDetectorNotFound, name)
	}
	return r.detectors[i], nil
}

// List returns all registered detectors in run order.
func (r *Registry) List() []Detector {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Detector, len(r.detectors))
	copy(out, r.detectors)
	return out
}

// Names returns the registered detector names in run order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.detectors))
	for i, d := range r.detectors {
		names[i] = d.Name()
	}
	return names
}

// Validate checks that every name refers to a registered detector.
func (r *Registry) Validate(names []string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range names {
		if _, ok := r.index[name]; !ok {
			return fmt.Errorf("%w: %s", ErrDetectorNotFound, name)
		}
	}
	return nil
}

// Detect runs every enabled detector and concatenates the results.
func (r *Registry) Detect(c *ChartContext, disabled map[string]bool) []Combination {
	detectors := r.List()

	var results []Combination
	perGroup := make(map[Group]int)
	skipped := 0
	for _, d := range detectors {
		if disabled[d.Name()] {
			skipped++
			continue
		}
		found := d.Detect(c)
		if len(found) > 0 {
			r.log.Debug().
				Str("detector", d.Name()).
				Int("found", len(found)).
				Msg("Detector matched")
		}
		perGroup[d.Group()] += len(found)
		results = append(results, found...)
	}

	r.log.Info().
		Int("detectors", len(detectors)-skipped).
		Int("skipped", skipped).
		Int("combinations", len(results)).
		Interface("per_group", perGroup).
		Msg("Detection complete")
	return results
}
