package hub

import (
	"context"
	"fmt"
)

// Alerts lists configured alerts, restricted to one system when systemID
// is non-empty. The related system record is expanded so callers can show
// its name.
func (c *Client) Alerts(ctx context.Context, systemID string) ([]Record, error) {
	filter := ""
	if systemID != "" {
		filter = fmt.Sprintf(`system="%s"`, systemID)
	}

	result, err := c.ListRecords(ctx, ListQuery{
		Collection: CollectionAlerts,
		Filter:     filter,
		PerPage:    defaultListSize,
		Expand:     []string{"system"},
	})
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// Alert fetches a single alert by id, with its system expanded.
func (c *Client) Alert(ctx context.Context, id string) (Record, error) {
	return c.GetRecord(ctx, CollectionAlerts, id, []string{"system"})
}

// CreateAlert creates an alert from the given fields.
func (c *Client) CreateAlert(ctx context.Context, fields map[string]interface{}) (Record, error) {
	return c.CreateRecord(ctx, CollectionAlerts, fields)
}

// UpdateAlert applies a partial update to an alert.
func (c *Client) UpdateAlert(ctx context.Context, id string, fields map[string]interface{}) (Record, error) {
	return c.UpdateRecord(ctx, CollectionAlerts, id, fields)
}

// DeleteAlert removes an alert.
func (c *Client) DeleteAlert(ctx context.Context, id string) error {
	return c.DeleteRecord(ctx, CollectionAlerts, id)
}

// defaultHistoryLimit is the page size used when the caller does not
// limit an alert history query.
const defaultHistoryLimit = 50

// AlertHistory lists triggered-alert history entries, newest first.
func (c *Client) AlertHistory(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	result, err := c.ListRecords(ctx, ListQuery{
		Collection: CollectionAlertsHistory,
		Sort:       "-created",
		PerPage:    limit,
	})
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}
