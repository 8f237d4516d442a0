package domain

import "time"

// TimestampUnknown marks entries whose close time could not be resolved.
// Views sort these rows last.
const TimestampUnknown = "N/A"

// rippleEpochOffset is the number of seconds between the ledger's epoch
// (2000-01-01T00:00:00Z) and the Unix epoch.
const rippleEpochOffset = 946684800

// RippleTimeToISO converts a ledger-epoch timestamp to ISO-8601 UTC.
func RippleTimeToISO(date int64) string {
	return time.Unix(date+rippleEpochOffset, 0).UTC().Format(time.RFC3339)
}
