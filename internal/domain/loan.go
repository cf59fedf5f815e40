package domain

type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "pending"
	LoanStatusApproved LoanStatus = "approved"
	LoanStatusRejected LoanStatus = "rejected"
	LoanStatusActive   LoanStatus = "active"
	LoanStatusReturned LoanStatus = "returned"
)

// loanTransitions is the full lifecycle table. rejected and returned are
// terminal: nothing leaves them.
var loanTransitions = map[LoanStatus][]LoanStatus{
	LoanStatusPending:  {LoanStatusApproved, LoanStatusRejected},
	LoanStatusApproved: {LoanStatusActive, LoanStatusRejected},
	LoanStatusActive:   {LoanStatusReturned},
}

// CanTransitionTo reports whether the lifecycle permits moving from s to next.
func (s LoanStatus) CanTransitionTo(next LoanStatus) bool {
	for _, allowed := range loanTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s LoanStatus) IsTerminal() bool {
	return len(loanTransitions[s]) == 0
}

// Valid reports whether s is one of the known lifecycle states.
func (s LoanStatus) Valid() bool {
	switch s {
	case LoanStatusPending, LoanStatusApproved, LoanStatusRejected, LoanStatusActive, LoanStatusReturned:
		return true
	}
	return false
}

type Loan struct {
	ID          int32      `json:"id"`
	ToolID      int32      `json:"tool_id"`
	Tool        *Tool      `json:"tool,omitempty"` // populated on lifecycle reads
	OwnerID     int32      `json:"owner_id"`
	RequesterID int32      `json:"requester_id"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	Status      LoanStatus `json:"status"`
	CreatedOn   string     `json:"created_on"`
	UpdatedOn   string     `json:"updated_on"`
}

// OtherParty returns the loan participant that is not userID, or false when
// userID is not a participant at all.
func (l *Loan) OtherParty(userID int32) (int32, bool) {
	switch userID {
	case l.OwnerID:
		return l.RequesterID, true
	case l.RequesterID:
		return l.OwnerID, true
	}
	return 0, false
}
