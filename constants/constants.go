package constants

import "os"

// GetCopedentPath returns the copedent definition file to load, or "" when
// the built-in E9 layout should be used.
func GetCopedentPath() string {
	return os.Getenv("STEELCHORD_COPEDENT")
}

const DefaultMaxFret = 24

// Positions sounding fewer strings than this are not worth listing.
const DefaultMinStrings = 3

// DefaultMaxResults caps how many search results are shown per page.
const DefaultMaxResults = 20
