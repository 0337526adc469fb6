package hub

import (
	"context"
	"fmt"
)

// Containers returns the container snapshot for a system. Containers are
// not a standalone collection: the newest container stats record embeds a
// per-container array, and this view extracts it. A system with no such
// record, or a record without the embedded array, has no containers and
// yields an empty slice rather than an error.
func (c *Client) Containers(ctx context.Context, systemID string) ([]Record, error) {
	if systemID == "" {
		return nil, &ValidationError{Field: "system", Reason: "id must not be empty"}
	}

	result, err := c.ListRecords(ctx, ListQuery{
		Collection: CollectionContainerStats,
		Filter:     fmt.Sprintf(`system="%s"`, systemID),
		Sort:       "-created",
		PerPage:    1,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Items) == 0 {
		return []Record{}, nil
	}

	embedded, ok := result.Items[0]["stats"].([]interface{})
	if !ok {
		return []Record{}, nil
	}

	containers := make([]Record, 0, len(embedded))
	for _, entry := range embedded {
		if m, ok := entry.(map[string]interface{}); ok {
			containers = append(containers, Record(m))
		}
	}
	return containers, nil
}
