package sm2

import "errors"

// Sentinel errors for the sm2 package.
// Use errors.Is to check: errors.Is(err, sm2.ErrInvalidQuality)
var (
	ErrInvalidQuality = errors.New("sm2: invalid quality")
)
