package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timestampLayout matches the second-resolution stamp embedded in asset
// filenames.
const timestampLayout = "20060102_150405"

// NewRecordID returns the caller-supplied id when present, otherwise a
// fresh UUID. UUIDs keep record ids collision-free even for repeated
// uploads inside the same clock second.
func NewRecordID(requested string) string {
	if requested != "" {
		return requested
	}
	return uuid.NewString()
}

// AssetFilenames derives the on-disk names for the primary asset and
// its thumbnail copy: {userID}_{id}_{timestamp}.gif and
// {userID}_{id}_{timestamp}_thumb.gif.
func AssetFilenames(userID, id string, now time.Time) (string, string) {
	ts := now.Format(timestampLayout)
	return fmt.Sprintf("%s_%s_%s.gif", userID, id, ts),
		fmt.Sprintf("%s_%s_%s_thumb.gif", userID, id, ts)
}
