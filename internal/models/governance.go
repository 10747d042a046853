package models

// EnableDAORequest represents the JSON body for the DAO handoff
// swagger:model EnableDAORequest
type EnableDAORequest struct {
	// Governance authority address
	// required: true
	Authority string `json:"authority"`
}

// TrustParametersRequest updates the trust increments
// swagger:model TrustParametersRequest
type TrustParametersRequest struct {
	// example: 50
	Increase uint64 `json:"increase"`
	// example: 100
	Decrease uint64 `json:"decrease"`
}

// InterestRatesRequest updates the rate bounds in basis points
// swagger:model InterestRatesRequest
type InterestRatesRequest struct {
	// example: 500
	Base uint64 `json:"base"`
	// example: 3000
	Max uint64 `json:"max"`
}

// BorrowingLimitsRequest updates the per-tier base limits, decimal strings
// swagger:model BorrowingLimitsRequest
type BorrowingLimitsRequest struct {
	Low    string `json:"low"`
	Medium string `json:"medium"`
	High   string `json:"high"`
}

// DurationLimitsRequest updates the loan term range in seconds
// swagger:model DurationLimitsRequest
type DurationLimitsRequest struct {
	// example: 86400
	MinSeconds int64 `json:"min_seconds"`
	// example: 7776000
	MaxSeconds int64 `json:"max_seconds"`
}

// CooldownRequest updates the post-default cooldown in seconds
// swagger:model CooldownRequest
type CooldownRequest struct {
	// example: 2592000
	PeriodSeconds int64 `json:"period_seconds"`
}
