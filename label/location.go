package label

import "strings"

// LocationSlots is the number of printed line-location boxes on a label.
const LocationSlots = 4

// LocationTuple holds the four ordered line-location boxes. Unused slots
// are empty strings, never absent.
type LocationTuple [LocationSlots]string

// SplitLocation decomposes a raw line-location string ("A1_B2_C3_D4") into
// exactly four slots, splitting on underscores. Missing trailing segments
// become empty strings; segments beyond the fourth are discarded. The label
// has exactly four boxes, so the truncation is intentional, not lossy
// handling of bad input. SplitLocation is total: it never fails, and an
// empty input yields four empty slots.
func SplitLocation(raw string) LocationTuple {
	var tuple LocationTuple
	if raw == "" {
		return tuple
	}
	parts := strings.Split(raw, "_")
	for i := 0; i < LocationSlots && i < len(parts); i++ {
		tuple[i] = strings.TrimSpace(parts[i])
	}
	return tuple
}
