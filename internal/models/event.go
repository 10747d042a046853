package models

// Event kinds published for every committed ledger operation.
const (
	EventDeposit          = "deposit"
	EventWithdraw         = "withdraw"
	EventInterestClaimed  = "interest_claimed"
	EventLoanIssued       = "loan_issued"
	EventLoanRepaid       = "loan_repaid"
	EventLoanDefaulted    = "loan_defaulted"
	EventVouched          = "vouched"
	EventDAOEnabled       = "dao_enabled"
	EventParameterUpdated = "parameter_updated"
	EventPaused           = "paused"
	EventUnpaused         = "unpaused"
)

// Event is a single record on the ledger notification stream.
type Event struct {
	EventID      string            `json:"event_id"`               // EventID is a unique identifier for the event.
	LedgerID     string            `json:"ledger_id"`              // LedgerID identifies the ledger instance that committed the event.
	Sequence     uint64            `json:"sequence"`               // Sequence is the commit version; consumers order events by it.
	Kind         string            `json:"kind"`                   // Kind is one of the Event* constants.
	Timestamp    int64             `json:"timestamp"`              // Timestamp is the Unix time (seconds) of the commit.
	Subject      string            `json:"subject"`                // Subject is the address whose state changed.
	Counterparty string            `json:"counterparty,omitempty"` // Counterparty is the other party, e.g. the voucher or the default caller.
	Amount       string            `json:"amount,omitempty"`       // Amount is the decimal value moved by the operation.
	Attributes   map[string]string `json:"attributes,omitempty"`   // Attributes carries the resulting state.
}
