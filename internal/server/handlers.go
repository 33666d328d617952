package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dreamware/strand/internal/errors"
	"github.com/dreamware/strand/internal/filter"
	"github.com/dreamware/strand/internal/storage"
)

// handleWelcome serves the liveness/welcome message at the root path.
//
// Endpoint: GET /
//
// Response:
//   - 200 OK: {"message": "..."}
func (s *Server) handleWelcome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, welcomeResponse{
		Message: "strand string analyzer running",
	})
}

// handleHealth serves the liveness check for monitoring.
//
// Endpoint: GET /healthz
//
// Response:
//   - 200 OK: {"status": "ok"}
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// handleStats returns store operation statistics.
//
// Endpoint: GET /stats
//
// Response body:
//
//	{
//	  "gets": 1234,
//	  "inserts": 567,
//	  "deletes": 89,
//	  "keys": 478
//	}
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Stats())
}

// handleCreateString analyzes the submitted value and stores the resulting
// entry under its content fingerprint.
//
// Endpoint: POST /strings
//
// Request body:
//
//	{"value": "racecar"}
//
// Response:
//   - 201 Created: the stored entry, including its analyzed properties
//   - 400 Bad Request: body undecodable, or value missing/empty/non-string
//   - 409 Conflict: an entry with the same trimmed-value fingerprint exists
//
// The duplicate check and the insert are one atomic store operation, so
// two concurrent posts of the same value yield exactly one 201.
func (s *Server) handleCreateString(w http.ResponseWriter, r *http.Request) {
	var req createStringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Value == nil || *req.Value == "" {
		writeError(w, http.StatusBadRequest, "invalid or missing 'value' field")
		return
	}

	entry := storage.NewEntry(*req.Value)
	if err := s.store.Insert(entry); err != nil {
		respondError(w, err)
		return
	}

	s.log.Debugw("string created", "id", entry.ID, "length", entry.Properties.Length)
	writeJSON(w, http.StatusCreated, entry)
}

// handleGetString fetches one entry by value.
//
// Endpoint: GET /strings/{value}
//
// The path value is trimmed and fingerprinted before lookup; it is not a
// literal match against the stored value, so "/strings/%20hello%20" finds
// the entry created from "hello".
//
// Response:
//   - 200 OK: the entry
//   - 404 Not Found: no entry with that fingerprint
func (s *Server) handleGetString(w http.ResponseWriter, r *http.Request) {
	entry, err := s.store.GetByValue(r.PathValue("value"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// handleDeleteString removes one entry by value.
//
// Endpoint: DELETE /strings/{value}
//
// Response:
//   - 204 No Content: entry removed
//   - 404 Not Found: no entry with that fingerprint; a second delete of
//     the same value lands here
func (s *Server) handleDeleteString(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteByValue(r.PathValue("value")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListStrings lists entries, optionally narrowed by filter criteria
// from the query string.
//
// Endpoint: GET /strings
//
// Query parameters (all optional, AND-combined):
//   - is_palindrome: bool
//   - min_length, max_length, word_count: int
//   - contains_character: single character, matched case-sensitively
//     against the original untrimmed value
//
// Response:
//   - 200 OK: {"data": [...], "count": n, "filters_applied": {...}}
//   - 400 Bad Request: a parameter value does not parse
//
// filters_applied echoes every recognized filter, absent ones as nulls.
func (s *Server) handleListStrings(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		respondError(w, err)
		return
	}

	results := filter.Apply(s.store.ListAll(), criteria)
	writeJSON(w, http.StatusOK, listResponse{
		Data:           results,
		Count:          len(results),
		FiltersApplied: criteria,
	})
}

// handleFilterByNaturalLanguage translates a constrained English query
// into filter criteria and applies them.
//
// Endpoint: GET /strings/filter-by-natural-language?query=...
//
// Response:
//   - 200 OK: the list shape plus interpreted_query with the original
//     text and the parsed filters
//   - 400 Bad Request: query missing, no trigger recognized, or a
//     "longer than"/"contain" argument could not be extracted
//
// A failed translation applies no filters at all; there is no partial
// application.
func (s *Server) handleFilterByNaturalLanguage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing 'query' parameter")
		return
	}

	criteria, err := filter.Translate(query)
	if err != nil {
		respondError(w, err)
		return
	}

	results := filter.Apply(s.store.ListAll(), criteria)
	writeJSON(w, http.StatusOK, naturalLanguageResponse{
		listResponse: listResponse{
			Data:           results,
			Count:          len(results),
			FiltersApplied: criteria,
		},
		InterpretedQuery: interpretedQuery{
			Original:      query,
			ParsedFilters: criteria,
		},
	})
}

// parseCriteria builds filter criteria from list query parameters.
// Unknown parameters are ignored; malformed values for known parameters
// are invalid-request errors.
func parseCriteria(q url.Values) (filter.Criteria, error) {
	var criteria filter.Criteria

	if raw := q.Get("is_palindrome"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter.Criteria{}, errors.NewInvalidRequestf("invalid is_palindrome value %q", raw)
		}
		criteria.IsPalindrome = &v
	}
	if raw := q.Get("min_length"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter.Criteria{}, errors.NewInvalidRequestf("invalid min_length value %q", raw)
		}
		criteria.MinLength = &v
	}
	if raw := q.Get("max_length"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter.Criteria{}, errors.NewInvalidRequestf("invalid max_length value %q", raw)
		}
		criteria.MaxLength = &v
	}
	if raw := q.Get("word_count"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter.Criteria{}, errors.NewInvalidRequestf("invalid word_count value %q", raw)
		}
		criteria.WordCount = &v
	}
	if raw := q.Get("contains_character"); raw != "" {
		if len([]rune(raw)) != 1 {
			return filter.Criteria{}, errors.NewInvalidRequestf("contains_character must be a single character")
		}
		criteria.ContainsCharacter = &raw
	}

	return criteria, nil
}
