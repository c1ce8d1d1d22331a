package server

import "github.com/sig-0/policyrates/storage/types"

type RatesResponse struct {
	Results []*types.Record `json:"results"`
	Total   int64           `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
