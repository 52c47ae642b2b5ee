// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/agecalc/internal/domain/age"
)

// AgeResponse represents a computed age in HTTP responses.
type AgeResponse struct {
	Years  int    `json:"years"`
	Months int    `json:"months"`
	Days   int    `json:"days"`
	AsOf   string `json:"as_of"`
}

// ToAgeResponse converts a successful submission to an HTTP response DTO.
// The boolean is false when the submission carries no result.
func ToAgeResponse(sub age.Submission) (AgeResponse, bool) {
	e, ok := sub.Result()
	if !ok {
		return AgeResponse{}, false
	}
	return AgeResponse{
		Years:  e.Years,
		Months: e.Months,
		Days:   e.Days,
		AsOf:   sub.At().Format(time.RFC3339),
	}, true
}

// AgeBatchResponse represents the result of a batch submission. It includes
// one entry per input item, in input order.
type AgeBatchResponse struct {
	Results   []AgeBatchItem `json:"results"`
	Total     int            `json:"total"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
}

// AgeBatchItem is the outcome of one batch entry: either Age or Errors is set.
type AgeBatchItem struct {
	Index  int            `json:"index"`
	Age    *AgeResponse   `json:"age,omitempty"`
	Errors []FieldProblem `json:"errors,omitempty"`
}

// ToAgeBatchResponse converts submissions to an HTTP response DTO.
func ToAgeBatchResponse(subs []age.Submission) AgeBatchResponse {
	resp := AgeBatchResponse{
		Results: make([]AgeBatchItem, len(subs)),
		Total:   len(subs),
	}
	for i, sub := range subs {
		item := AgeBatchItem{Index: i}
		if a, ok := ToAgeResponse(sub); ok {
			item.Age = &a
			resp.Succeeded++
		} else {
			item.Errors = FieldProblems(sub.Err())
			resp.Failed++
		}
		resp.Results[i] = item
	}
	return resp
}
