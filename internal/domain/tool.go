package domain

// ToolStatus is the admin moderation gate on catalog visibility. It is
// orthogonal to Available, which tracks whether the tool is currently out
// on a loan or sold.
type ToolStatus string

const (
	ToolStatusPending  ToolStatus = "pending"
	ToolStatusApproved ToolStatus = "approved"
	ToolStatusRejected ToolStatus = "rejected"
)

// ToolType tags a listing as loanable or for sale. The two kinds differ in
// how a loan reaching its terminal state affects availability: loaned tools
// come back, sold tools do not.
type ToolType string

const (
	ToolTypeLoan ToolType = "loan"
	ToolTypeSale ToolType = "sale"
)

// ReturnRestoresAvailability reports whether completing a loan on a tool of
// this kind frees the tool for new requests.
func (t ToolType) ReturnRestoresAvailability() bool {
	return t == ToolTypeLoan
}

type Tool struct {
	ID          int32      `json:"id"`
	OwnerID     int32      `json:"owner_id"`
	Owner       *User      `json:"owner,omitempty"` // populated on catalog reads
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Status      ToolStatus `json:"status"`
	Type        ToolType   `json:"type"`
	PriceCents  *int32     `json:"price_cents,omitempty"` // sale listings only
	Available   bool       `json:"available"`
	CreatedOn   string     `json:"created_on"`
}
