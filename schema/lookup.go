package schema

import (
	"errors"
	"fmt"
)

// Sentinel errors for categorical values outside the closed lookup tables.
var (
	ErrUnknownHealth  = errors.New("unknown health label")
	ErrUnknownSteward = errors.New("unknown steward bucket")
	ErrUnknownBorough = errors.New("unknown borough code")
)

// healthLevels maps each health label to its ordinal level.
var healthLevels = map[Health]int{
	PoorHealth: 1,
	FairHealth: 2,
	GoodHealth: 3,
}

// stewardLevels maps each steward bucket to its ordinal level.
var stewardLevels = map[StewardBucket]int{
	StewardNone:      1,
	StewardOneTwo:    2,
	StewardThreeFour: 3,
	StewardFourPlus:  4,
}

// boroughNames maps census borough codes to display names.
var boroughNames = map[int]string{
	1: "Manhattan",
	2: "Bronx",
	3: "Brooklyn",
	4: "Queens",
	5: "Staten Island",
}

// BoroughCodes lists the valid borough codes in ascending order.
var BoroughCodes = []int{1, 2, 3, 4, 5}

// HealthLevel returns the ordinal level (1-3) of a health label.
func HealthLevel(h Health) (int, error) {
	level, ok := healthLevels[h]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHealth, string(h))
	}
	return level, nil
}

// StewardLevel returns the ordinal level (1-4) of a steward bucket.
func StewardLevel(s StewardBucket) (int, error) {
	level, ok := stewardLevels[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSteward, string(s))
	}
	return level, nil
}

// BoroughName returns the display name of a borough code.
func BoroughName(code int) (string, error) {
	name, ok := boroughNames[code]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownBorough, code)
	}
	return name, nil
}

// BoroughNameOrCode returns the display name of a borough code, falling back to
// the numeric code for presentation of unvalidated rows.
func BoroughNameOrCode(code int) string {
	if name, ok := boroughNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Borough %d", code)
}

// HealthRank orders health labels for presentation. Known labels sort by
// level, unknown labels after them.
func HealthRank(h Health) int {
	if level, ok := healthLevels[h]; ok {
		return level
	}
	return len(healthLevels) + 1
}
