package server

import "github.com/google/uuid"

// Algorithm names accepted in CrossingRequest.Algorithm.
const (
	AlgorithmDynProg    = "dynprog"
	AlgorithmExhaustive = "exhaustive"
	AlgorithmBoth       = "both"
)

// CrossingRequest asks for the number of paths across a grid.
// Rows use the text format: '.' open water, 'X' iceberg.
type CrossingRequest struct {
	Rows      []string `json:"rows" binding:"required"`
	Algorithm string   `json:"algorithm"`
}

// CrossingResponse reports the count for a CrossingRequest.
// Exhaustive and DynProg are set only for AlgorithmBoth.
type CrossingResponse struct {
	ID         uuid.UUID `json:"id"`
	Rows       int       `json:"rows"`
	Columns    int       `json:"columns"`
	Steps      int       `json:"steps"`
	Icebergs   int       `json:"icebergs"`
	Algorithm  string    `json:"algorithm"`
	Count      uint64    `json:"count"`
	Exhaustive *uint64   `json:"exhaustive,omitempty"`
	DynProg    *uint64   `json:"dyn_prog,omitempty"`
}

// ErrorResponse is the body of every non-2xx reply.
// BigCount holds the exact decimal count when it overflowed uint64.
type ErrorResponse struct {
	ID       uuid.UUID `json:"id"`
	Error    string    `json:"error"`
	BigCount string    `json:"big_count,omitempty"`
}
