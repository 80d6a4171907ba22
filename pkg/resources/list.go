package resources

import (
	"net/url"
	"strconv"
)

// ListResponse is the envelope every list endpoint returns.
type ListResponse[E any] struct {
	Object  string `json:"object"`
	URL     string `json:"url"`
	HasMore bool   `json:"has_more"`
	Data    []E    `json:"data"`
}

// ListQuery carries the cursor-style pagination parameters shared by
// all list endpoints. Traversal across pages is left to the caller.
type ListQuery struct {
	AccountID     string
	StartingAfter string
	EndingBefore  string
	Limit         int
}

func (q ListQuery) Encode(query url.Values) url.Values {
	if q.AccountID != "" {
		query.Set("account_id", q.AccountID)
	}

	if q.StartingAfter != "" {
		query.Set("starting_after", q.StartingAfter)
	}

	if q.EndingBefore != "" {
		query.Set("ending_before", q.EndingBefore)
	}

	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}

	return query
}
