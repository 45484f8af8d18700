package pitch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyName is returned when a TuningRecord has no name.
var ErrEmptyName = errors.New("pitch: tuning name must not be empty")

// TuningRecord is the on-disk schema for a custom temperament. Validation
// here is pure; reading and writing the file itself is the caller's concern.
type TuningRecord struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Ratios      [Octave]float64 `json:"ratios"`
}

// Validate checks the invariants a loader must enforce before handing a
// TuningRecord to a TemperamentRegistry: non-empty name, exactly 12 positive
// finite ratios.
func (r TuningRecord) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	t := Temperament{Name: r.Name, Description: r.Description, Ratios: r.Ratios}
	if err := t.validate(); err != nil {
		return fmt.Errorf("tuning %q: %w", r.Name, err)
	}
	return nil
}

// Temperament converts a validated record into a Temperament value.
func (r TuningRecord) Temperament() Temperament {
	return Temperament{Name: r.Name, Description: r.Description, Ratios: r.Ratios}
}

// Slug generates a filesystem-safe identifier from the record's name:
// lowercase alphanumerics, any run of other characters collapsed to a single
// underscore, leading/trailing underscores trimmed. An empty result falls
// back to "custom_tuning".
func (r TuningRecord) Slug() string {
	var b strings.Builder
	prevUnderscore := false
	for _, c := range strings.ToLower(r.Name) {
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			b.WriteRune(c)
			prevUnderscore = false
		default:
			if !prevUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				prevUnderscore = true
			}
		}
	}
	slug := strings.TrimRight(b.String(), "_")
	if slug == "" {
		return "custom_tuning"
	}
	return slug
}
