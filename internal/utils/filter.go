package utils

import "unicode"

// IsValidQuery checks if a raw query should be processed for search.
// Whitespace-only and control-character inputs never produce useful
// candidates and just burn a remote call.
func IsValidQuery(s string) bool {
	if len(s) == 0 {
		return false
	}

	hasPrintable := false
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
		if !unicode.IsSpace(r) {
			hasPrintable = true
		}
	}
	return hasPrintable
}
