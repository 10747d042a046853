package models

// ErrorResponse is returned by every handler on failure.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error code
	// example: InsufficientLiquidity
	Error string `json:"error"`
}

// AmountRequest represents the JSON body of deposit and withdraw calls
// swagger:model AmountRequest
type AmountRequest struct {
	// Amount in base units, decimal string
	// required: true
	// example: 1000000000000000000
	Amount string `json:"amount"`
}

// LenderResponse represents a successful deposit or withdrawal
// swagger:model LenderResponse
type LenderResponse struct {
	// Success message
	// example: Deposit accepted
	Message string `json:"message"`

	// Lender position after the operation
	Lender LenderView `json:"lender"`
}

// ClaimResponse represents a successful interest claim
// swagger:model ClaimResponse
type ClaimResponse struct {
	// Success message
	// example: Interest claimed
	Message string `json:"message"`

	// Claimed amount, decimal string
	// example: 1000
	Amount string `json:"amount"`
}

// LoanRequest represents the JSON body of a loan request
// swagger:model LoanRequest
type LoanRequest struct {
	// Principal in base units, decimal string
	// required: true
	// example: 100000000000000000
	Amount string `json:"amount"`

	// Loan term in seconds
	// required: true
	// example: 2592000
	DurationSeconds int64 `json:"duration_seconds"`
}

// LoanResponse represents a successful loan operation
// swagger:model LoanResponse
type LoanResponse struct {
	// Success message
	// example: Loan issued
	Message string `json:"message"`

	// Loan after the operation
	Loan LoanView `json:"loan"`
}

// VouchRequest represents the JSON body of a vouch call
// swagger:model VouchRequest
type VouchRequest struct {
	// Address being vouched for
	// required: true
	// example: 0x00000000000000000000000000000000000000b0
	Vouchee string `json:"vouchee"`
}

// MessageResponse represents a successful operation without payload
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: OK
	Message string `json:"message"`
}
