package hub

import (
	"context"
	"fmt"
)

// Collection names for the well-known hub collections. Arbitrary
// collections remain reachable through the generic record accessors.
const (
	CollectionSystems        = "systems"
	CollectionSystemStats    = "system_stats"
	CollectionContainerStats = "container_stats"
	CollectionAlerts         = "alerts"
	CollectionAlertsHistory  = "alerts_history"
)

// defaultListSize matches the hub's maximum page size, so unfiltered
// domain listings behave like "all records" for realistic deployments.
const defaultListSize = 200

// Systems lists monitored systems, optionally restricted by a backend
// filter expression.
func (c *Client) Systems(ctx context.Context, filter string) ([]Record, error) {
	result, err := c.ListRecords(ctx, ListQuery{
		Collection: CollectionSystems,
		Filter:     filter,
		PerPage:    defaultListSize,
	})
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// System fetches a single system by id.
func (c *Client) System(ctx context.Context, id string) (Record, error) {
	return c.GetRecord(ctx, CollectionSystems, id, nil)
}

// SystemPatch holds the mutable system fields. Nil fields are omitted
// from the update entirely rather than sent as null.
type SystemPatch struct {
	Name *string
	Host *string
	Port *int
}

// Fields converts the patch into the partial update payload.
func (p SystemPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Host != nil {
		fields["host"] = *p.Host
	}
	if p.Port != nil {
		// The hub stores the port as a string field.
		fields["port"] = fmt.Sprintf("%d", *p.Port)
	}
	return fields
}

// UpdateSystem applies a partial update to a system. An empty patch fails
// with ValidationError before any request is issued.
func (c *Client) UpdateSystem(ctx context.Context, id string, patch SystemPatch) (Record, error) {
	return c.UpdateRecord(ctx, CollectionSystems, id, patch.Fields())
}

// DeleteSystem removes a system from the hub.
func (c *Client) DeleteSystem(ctx context.Context, id string) error {
	return c.DeleteRecord(ctx, CollectionSystems, id)
}
