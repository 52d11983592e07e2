package models

// AdministratorCode identifies which back-end ultimately serviced an
// application.
type AdministratorCode string

const (
	AdministratorOne AdministratorCode = "administrator_one"
	AdministratorTwo AdministratorCode = "administrator_two"
)

// InvestorAccount is the success payload of the pipeline.
type InvestorAccount struct {
	Administrator AdministratorCode `json:"administrator"`
}

// Error is the failure payload. The three fields are an external contract:
// stable strings, not freeform text.
type Error struct {
	System      string `json:"system"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ProcessingResult is the uniform envelope every Process call returns.
// Exactly one of Value and Error is set.
type ProcessingResult struct {
	Success bool             `json:"success"`
	Value   *InvestorAccount `json:"value,omitempty"`
	Error   *Error           `json:"error,omitempty"`
}

// Succeed builds a successful result.
func Succeed(account InvestorAccount) ProcessingResult {
	return ProcessingResult{Success: true, Value: &account}
}

// Fail builds a failed result.
func Fail(err Error) ProcessingResult {
	return ProcessingResult{Success: false, Error: &err}
}

// IsSuccess reports whether the pipeline completed fully.
func (r ProcessingResult) IsSuccess() bool {
	return r.Success
}
