package ekdsend

import (
	"net/url"
	"strconv"
	"strings"
)

// defaultListLimit is applied when ListOptions.Limit is unset.
const defaultListLimit = 20

// ListOptions control pagination and filtering for list endpoints.
// A nil *ListOptions uses the defaults (limit 20, offset 0, no filters).
type ListOptions struct {
	// Limit is the number of items to return (max 100).
	Limit int
	// Offset is the pagination offset.
	Offset int
	// Status filters by resource status.
	Status string
	// FromDate filters from date (ISO 8601).
	FromDate string
	// ToDate filters to date (ISO 8601).
	ToDate string
	// Tags filters by tags. Only email listings support tags; other
	// resources ignore this field.
	Tags []string
}

// query builds the query values, omitting unset filters. Tags are
// comma-joined and only included when the endpoint supports them.
func (o *ListOptions) query(withTags bool) url.Values {
	if o == nil {
		o = &ListOptions{}
	}

	limit := o.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	v := url.Values{}
	v.Set("limit", strconv.Itoa(limit))
	v.Set("offset", strconv.Itoa(o.Offset))

	if o.Status != "" {
		v.Set("status", o.Status)
	}
	if o.FromDate != "" {
		v.Set("from_date", o.FromDate)
	}
	if o.ToDate != "" {
		v.Set("to_date", o.ToDate)
	}
	if withTags && len(o.Tags) > 0 {
		v.Set("tags", strings.Join(o.Tags, ","))
	}

	return v
}
