package controlplane

import "errors"

var (
	// ErrProviderUnavailable indicates the provider could not be reached or used.
	ErrProviderUnavailable = errors.New("rerun: plan provider unavailable")
	// ErrPlanNotFound indicates the provider has no plan for the requested key.
	ErrPlanNotFound = errors.New("rerun: plan not found")
)
