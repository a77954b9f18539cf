package sm2

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	// DefaultEFactor is the easiness factor assigned to a fresh item.
	DefaultEFactor = 2.5

	// MinEFactor is the floor applied to the easiness factor when an item
	// is reviewed. A stored value may sit below the floor until the next
	// review reads and clamps it; see Review.
	MinEFactor = 1.3
)

// Item holds the SM-2 scheduling state for one learnable item: the count of
// consecutive successful reviews and the easiness factor. Item is a plain
// value; copying it is safe and no synchronization is needed as long as a
// single value is not mutated from multiple goroutines.
type Item struct {
	repetitions int
	efactor     float64
}

// NewItem returns a fresh item with 0 repetitions and the default easiness
// factor of 2.5.
func NewItem() Item {
	return Item{repetitions: 0, efactor: DefaultEFactor}
}

// RestoreItem rebuilds an item from previously computed state, verbatim and
// without validation. The caller is trusted to supply self-consistent
// values; repetitions must be non-negative.
func RestoreItem(repetitions int, efactor float64) Item {
	return Item{repetitions: repetitions, efactor: efactor}
}

// Repetitions returns the count of consecutive successful reviews since the
// last lapse.
func (i Item) Repetitions() int {
	return i.repetitions
}

// EFactor returns the stored easiness factor. The value can be below
// MinEFactor after a run of failed reviews; the floor is applied when the
// item is next reviewed, not here.
func (i Item) EFactor() float64 {
	return i.efactor
}

// Interval returns the number of days after which the item is due for its
// next review. The first two repetitions use the fixed SM-2 onboarding
// intervals; from the third onward the interval grows geometrically with
// the easiness factor, rounded up. The stored easiness factor is used
// verbatim, without the MinEFactor floor.
func (i Item) Interval() int {
	switch i.repetitions {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return 6
	default:
		return int(math.Ceil(6.0 * math.Pow(i.efactor, float64(i.repetitions-2))))
	}
}

// Review applies one recall grade and returns the updated item. The
// receiver is not mutated. A failing grade (Blackout through Familiar)
// resets the repetition count to 1; a passing grade (Hard through Perfect)
// increments it.
//
// The easiness factor used as the base of the update is the stored value
// clamped to MinEFactor, but the result is stored unclamped: the canonical
// SM-2 formula can push it below 1.3, and the floor is only reapplied on
// the following review. Interval sees the unclamped value in the meantime.
//
// Returns ErrInvalidQuality for a Quality forged outside [0, 5] by integer
// conversion; the grades produced by NewQuality always succeed.
func (i Item) Review(q Quality) (Item, error) {
	if !q.IsValid() {
		return Item{}, fmt.Errorf("%w: %d", ErrInvalidQuality, int(q))
	}
	return Item{
		repetitions: i.nextRepetitions(q),
		efactor:     i.nextEFactor(q),
	}, nil
}

// Update applies one recall grade in place. It delegates to Review; on
// error the item is left unchanged.
func (i *Item) Update(q Quality) error {
	next, err := i.Review(q)
	if err != nil {
		return err
	}
	*i = next
	return nil
}

// Replay folds Review over a history of recall grades and returns the
// resulting item. The receiver is not mutated. Returns ErrInvalidQuality
// at the first invalid grade.
func (i Item) Replay(qualities []Quality) (Item, error) {
	out := i
	for _, q := range qualities {
		next, err := out.Review(q)
		if err != nil {
			return Item{}, err
		}
		out = next
	}
	return out, nil
}

// Preview returns the result of reviewing the item with each of the six
// recall grades.
func (i Item) Preview() map[Quality]Item {
	result := make(map[Quality]Item, 6)
	for q := Blackout; q <= Perfect; q++ {
		next, _ := i.Review(q)
		result[q] = next
	}
	return result
}

// nextRepetitions computes the updated repetition count. A lapse resets to
// exactly 1, never 0: the item counts as freshly learned once, so its next
// interval is 1 day.
func (i Item) nextRepetitions(q Quality) int {
	if !q.passed() {
		return 1
	}
	return i.repetitions + 1
}

// nextEFactor computes the updated easiness factor.
// EF' = EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02)), with EF read through the
// MinEFactor floor.
func (i Item) nextEFactor(q Quality) float64 {
	ef := i.efactor
	if ef < MinEFactor {
		ef = MinEFactor
	}
	d := float64(5 - int(q))
	return ef + (0.1 - d*(0.08+d*0.02))
}

// itemJSON is the serialized form of an Item.
type itemJSON struct {
	Repetitions int     `json:"repetitions"`
	EFactor     float64 `json:"efactor"`
}

// MarshalJSON implements json.Marshaler.
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{
		Repetitions: i.repetitions,
		EFactor:     i.efactor,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Like RestoreItem it trusts the
// persisted state and restores it verbatim.
func (i *Item) UnmarshalJSON(data []byte) error {
	var j itemJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	i.repetitions = j.Repetitions
	i.efactor = j.EFactor
	return nil
}
