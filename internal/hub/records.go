package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Record is an opaque backend record: a mapping from field name to value
// plus a stable identifier. Different collections have different shapes
// and no local invariant is enforced about them. Relation expansion
// appears as nested records under the "expand" key.
type Record map[string]interface{}

// ID returns the record's stable identifier, or "" when absent.
func (r Record) ID() string {
	return r.GetString("id")
}

// GetString returns the named field as a string, or "" when the field is
// absent or not a string.
func (r Record) GetString(field string) string {
	if v, ok := r[field].(string); ok {
		return v
	}
	return ""
}

// GetFloat returns the named field as a float64, or 0 when absent or not
// numeric. JSON numbers decode as float64.
func (r Record) GetFloat(field string) float64 {
	if v, ok := r[field].(float64); ok {
		return v
	}
	return 0
}

// Expanded returns the expanded relation record under the given relation
// name, or nil when the relation was not expanded.
func (r Record) Expanded(relation string) Record {
	expand, ok := r["expand"].(map[string]interface{})
	if !ok {
		return nil
	}
	if rel, ok := expand[relation].(map[string]interface{}); ok {
		return Record(rel)
	}
	return nil
}

// ListQuery describes a list request against an arbitrary named
// collection. Collection is required; everything else is optional.
// Filter and sort expressions are passed through verbatim - their grammar
// belongs to the backend and is not parsed here.
type ListQuery struct {
	// Collection is the backend collection name. Opaque: it is not
	// validated against any schema so arbitrary collections stay reachable.
	Collection string
	// Filter is a backend filter expression.
	Filter string
	// Sort is a comma-joined field list; a leading '-' means descending.
	Sort string
	// Page is the 1-based page number. Zero means backend default.
	Page int
	// PerPage limits the page size. Zero means backend default.
	PerPage int
	// Expand lists relation names to inline server-side.
	Expand []string
}

// Values encodes the query as wire parameters. Decoding the result
// reproduces the original values unchanged.
func (q ListQuery) Values() url.Values {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		params.Set("perPage", strconv.Itoa(q.PerPage))
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.Filter != "" {
		params.Set("filter", q.Filter)
	}
	if len(q.Expand) > 0 {
		params.Set("expand", strings.Join(q.Expand, ","))
	}
	return params
}

func (q ListQuery) validate() error {
	if q.Collection == "" {
		return &ValidationError{Field: "collection", Reason: "name must not be empty"}
	}
	if q.Page < 0 {
		return &ValidationError{Field: "page", Reason: "must be a positive integer"}
	}
	if q.PerPage < 0 {
		return &ValidationError{Field: "limit", Reason: "must be a positive integer"}
	}
	return nil
}

// ListResult is the backend's list envelope: one page of records in the
// order the backend returned them, plus pagination totals.
type ListResult struct {
	Page       int      `json:"page"`
	PerPage    int      `json:"perPage"`
	TotalItems int      `json:"totalItems"`
	TotalPages int      `json:"totalPages"`
	Items      []Record `json:"items"`
}

// ListRecords lists records from an arbitrary collection. Pagination is
// performed by the backend: limit and page travel as request parameters,
// never as in-memory truncation. Locally detectable bad input fails with
// ValidationError before any request is issued.
func (c *Client) ListRecords(ctx context.Context, query ListQuery) (*ListResult, error) {
	if err := query.validate(); err != nil {
		return nil, err
	}

	path := "/api/collections/" + url.PathEscape(query.Collection) + "/records"
	data, err := c.do(ctx, http.MethodGet, path, query.Values(), nil)
	if err != nil {
		return nil, describeNotFound(err, query.Collection, "")
	}

	var result ListResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode list response for %s: %w", query.Collection, err)
	}
	return &result, nil
}

// GetRecord fetches a single record by id, optionally expanding the named
// relations. A missing id fails with NotFoundError.
func (c *Client) GetRecord(ctx context.Context, collection, id string, expand []string) (Record, error) {
	if collection == "" {
		return nil, &ValidationError{Field: "collection", Reason: "name must not be empty"}
	}
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	params := url.Values{}
	if len(expand) > 0 {
		params.Set("expand", strings.Join(expand, ","))
	}

	path := "/api/collections/" + url.PathEscape(collection) + "/records/" + url.PathEscape(id)
	data, err := c.do(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return nil, describeNotFound(err, collection, id)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode record %s/%s: %w", collection, id, err)
	}
	return record, nil
}

// CreateRecord creates a record with the given fields.
func (c *Client) CreateRecord(ctx context.Context, collection string, fields map[string]interface{}) (Record, error) {
	if collection == "" {
		return nil, &ValidationError{Field: "collection", Reason: "name must not be empty"}
	}
	if len(fields) == 0 {
		return nil, &ValidationError{Field: "fields", Reason: "at least one field is required"}
	}

	path := "/api/collections/" + url.PathEscape(collection) + "/records"
	data, err := c.do(ctx, http.MethodPost, path, nil, fields)
	if err != nil {
		return nil, describeNotFound(err, collection, "")
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode created record in %s: %w", collection, err)
	}
	return record, nil
}

// UpdateRecord merges the partial fields into the record server-side and
// returns the updated record. An empty payload fails with ValidationError
// and issues no request.
func (c *Client) UpdateRecord(ctx context.Context, collection, id string, fields map[string]interface{}) (Record, error) {
	if collection == "" {
		return nil, &ValidationError{Field: "collection", Reason: "name must not be empty"}
	}
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if len(fields) == 0 {
		return nil, &ValidationError{Field: "fields", Reason: "at least one field is required"}
	}

	path := "/api/collections/" + url.PathEscape(collection) + "/records/" + url.PathEscape(id)
	data, err := c.do(ctx, http.MethodPatch, path, nil, fields)
	if err != nil {
		return nil, describeNotFound(err, collection, id)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode updated record %s/%s: %w", collection, id, err)
	}
	return record, nil
}

// DeleteRecord deletes a record by id. Deleting an already-deleted id
// surfaces NotFoundError, never a crash.
func (c *Client) DeleteRecord(ctx context.Context, collection, id string) error {
	if collection == "" {
		return &ValidationError{Field: "collection", Reason: "name must not be empty"}
	}
	if id == "" {
		return &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	path := "/api/collections/" + url.PathEscape(collection) + "/records/" + url.PathEscape(id)
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return describeNotFound(err, collection, id)
}

// describeNotFound fills in the collection and id on NotFoundError coming
// out of the transport layer, which only knows the HTTP status.
func describeNotFound(err error, collection, id string) error {
	if err == nil {
		return nil
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return &NotFoundError{Collection: collection, ID: id}
	}
	return err
}
