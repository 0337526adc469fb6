package hub

import (
	"context"
	"fmt"
)

// Resolution selects the time-bucket granularity of historical stats.
type Resolution string

const (
	Resolution1m   Resolution = "1m"
	Resolution10m  Resolution = "10m"
	Resolution20m  Resolution = "20m"
	Resolution120m Resolution = "120m"
	Resolution480m Resolution = "480m"
)

// resolutionTypes maps each resolution to the stats record type stored by
// the hub. An explicit table rather than string concatenation: an invalid
// resolution is rejected by a lookup miss instead of silently producing a
// malformed request.
var resolutionTypes = map[Resolution]string{
	Resolution1m:   "1m",
	Resolution10m:  "10m",
	Resolution20m:  "20m",
	Resolution120m: "120m",
	Resolution480m: "480m",
}

// Resolutions returns the accepted resolution values, for flag help text.
func Resolutions() []string {
	return []string{"1m", "10m", "20m", "120m", "480m"}
}

// ParseResolution validates a user-supplied resolution string.
func ParseResolution(s string) (Resolution, error) {
	res := Resolution(s)
	if _, ok := resolutionTypes[res]; !ok {
		return "", &ValidationError{Field: "resolution", Reason: fmt.Sprintf("%q is not one of %v", s, Resolutions())}
	}
	return res, nil
}

// defaultStatsLimit is the page size used when the caller does not limit
// a stats history query.
const defaultStatsLimit = 30

// SystemStats returns the stats history of a system at the given
// resolution, newest first. An unrecognized resolution fails with
// ValidationError before touching the network.
func (c *Client) SystemStats(ctx context.Context, systemID string, resolution Resolution, limit int) ([]Record, error) {
	if systemID == "" {
		return nil, &ValidationError{Field: "system", Reason: "id must not be empty"}
	}
	recordType, ok := resolutionTypes[resolution]
	if !ok {
		return nil, &ValidationError{Field: "resolution", Reason: fmt.Sprintf("%q is not one of %v", resolution, Resolutions())}
	}
	if limit <= 0 {
		limit = defaultStatsLimit
	}

	result, err := c.ListRecords(ctx, ListQuery{
		Collection: CollectionSystemStats,
		Filter:     fmt.Sprintf(`system="%s" && type="%s"`, systemID, recordType),
		Sort:       "-created",
		PerPage:    limit,
	})
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}
