package domain

import "time"

// Applicant is the identity the pipeline verifies and onboards. DateOfBirth
// carries date precision only; the time-of-day component is ignored.
type Applicant struct {
	ID          ApplicantID `json:"id"`
	FullName    string      `json:"full_name,omitempty"`
	DateOfBirth time.Time   `json:"date_of_birth"`
}

// BankAccount is the funding account for an application's payment.
type BankAccount struct {
	SortCode      string `json:"sort_code"`
	AccountNumber string `json:"account_number"`
}

// Payment is the funding instruction attached to an application.
type Payment struct {
	Account BankAccount `json:"account"`
	Amount  Money       `json:"amount"`
}
