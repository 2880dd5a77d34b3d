package dto

import (
	"maps"
	"slices"
)

// Values of HealthResponse.Status and of each entry in Checks.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the health endpoints. Checks maps a
// component name to "ok" or its failure message; Failing lists the failed
// components in name order.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
	Failing []string          `json:"failing,omitempty"`
}

// NewReadinessResponse summarises registry results. Ready is false when any
// component reported an error.
func NewReadinessResponse(results map[string]error) (resp HealthResponse, ready bool) {
	resp = HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	for _, name := range slices.Sorted(maps.Keys(results)) {
		if err := results[name]; err != nil {
			resp.Checks[name] = err.Error()
			resp.Failing = append(resp.Failing, name)
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if len(resp.Failing) > 0 {
		resp.Status = HealthNotReady
	}
	return resp, len(resp.Failing) == 0
}
