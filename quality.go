package sm2

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Quality represents the user's self-assessed recall grade for one review.
type Quality int

const (
	Blackout  Quality = iota // Complete blackout; total failure to recall.
	Incorrect                // Incorrect; the correct answer was recognized once shown.
	Familiar                 // Incorrect; the correct answer felt easy in hindsight.
	Hard                     // Correct, recalled with serious difficulty.
	Good                     // Correct, recalled after hesitation.
	Perfect                  // Perfect, immediate recall.
)

var (
	qualityNames = [...]string{
		Blackout:  "Blackout",
		Incorrect: "Incorrect",
		Familiar:  "Familiar",
		Hard:      "Hard",
		Good:      "Good",
		Perfect:   "Perfect",
	}
	qualityByName = map[string]Quality{
		"Blackout":  Blackout,
		"Incorrect": Incorrect,
		"Familiar":  Familiar,
		"Hard":      Hard,
		"Good":      Good,
		"Perfect":   Perfect,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Quality(0)
	_ json.Marshaler           = Quality(0)
	_ json.Unmarshaler         = (*Quality)(nil)
	_ encoding.TextMarshaler   = Quality(0)
	_ encoding.TextUnmarshaler = (*Quality)(nil)
)

// NewQuality validates raw as a recall grade.
// Returns ErrInvalidQuality, wrapped with the offending value, when raw is
// outside [0, 5].
func NewQuality(raw int) (Quality, error) {
	q := Quality(raw)
	if !q.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidQuality, raw)
	}
	return q, nil
}

// IsValid reports whether q is a valid grade (Blackout through Perfect).
func (q Quality) IsValid() bool {
	return q >= Blackout && q <= Perfect
}

// passed reports whether the review counts as a successful recall.
// Grades 0-2 are failures; 3-5 are successes.
func (q Quality) passed() bool {
	return q >= Hard
}

// String returns the name of the grade ("Blackout" through "Perfect").
// For invalid values it returns "Quality(n)".
func (q Quality) String() string {
	if q.IsValid() {
		return qualityNames[q]
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// MarshalText implements encoding.TextMarshaler.
func (q Quality) MarshalText() ([]byte, error) {
	if !q.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuality, int(q))
	}
	return []byte(qualityNames[q]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Quality) UnmarshalText(text []byte) error {
	v, ok := qualityByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidQuality, text)
	}
	*q = v
	return nil
}

// MarshalJSON implements json.Marshaler. Quality serializes as a JSON string.
func (q Quality) MarshalJSON() ([]byte, error) {
	text, err := q.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (q *Quality) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidQuality, data)
	}
	return q.UnmarshalText([]byte(s))
}
