package server

import (
	"github.com/dreamware/strand/internal/filter"
	"github.com/dreamware/strand/internal/storage"
)

// createStringRequest is the body of POST /strings.
// Value is a pointer so a missing field can be told apart from an empty one.
type createStringRequest struct {
	Value *string `json:"value"`
}

// listResponse is the shape of every listing endpoint: the matching
// entries, their count, and an echo of the criteria that produced them.
// Absent filters serialize as explicit nulls.
type listResponse struct {
	Data           []storage.Entry `json:"data"`
	Count          int             `json:"count"`
	FiltersApplied filter.Criteria `json:"filters_applied"`
}

// interpretedQuery echoes a natural-language query and its translation
type interpretedQuery struct {
	Original      string          `json:"original"`
	ParsedFilters filter.Criteria `json:"parsed_filters"`
}

// naturalLanguageResponse extends the list shape with the interpretation
// that produced the filters
type naturalLanguageResponse struct {
	listResponse
	InterpretedQuery interpretedQuery `json:"interpreted_query"`
}

// welcomeResponse is the body of GET /
type welcomeResponse struct {
	Message string `json:"message"`
}

// healthResponse is the body of GET /healthz
type healthResponse struct {
	Status string `json:"status"`
}
