package domain

type Review struct {
	ID         int32  `json:"id"`
	LoanID     int32  `json:"loan_id"`
	Rating     int32  `json:"rating"` // 1..5
	Comment    string `json:"comment,omitempty"`
	ReviewerID int32  `json:"reviewer_id"`
	Reviewer   *User  `json:"reviewer,omitempty"`
	RevieweeID int32  `json:"reviewee_id"`
	CreatedOn  string `json:"created_on"`
}

// RatingSummary is the aggregate shown on profile pages: mean of received
// ratings rounded to one decimal, plus the sample size.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int32   `json:"count"`
}
