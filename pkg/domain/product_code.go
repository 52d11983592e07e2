package domain

import dErrors "onboard/pkg/domain-errors"

// ProductCode is a closed enumeration selecting which administrator back-end
// and which validation rule set apply to an application.
//
// Usage: construct via ParseProductCode at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type ProductCode string

const (
	ProductOne ProductCode = "product_one"
	ProductTwo ProductCode = "product_two"
)

// validProductCodes is the single source of truth for supported products.
var validProductCodes = map[ProductCode]bool{
	ProductOne: true,
	ProductTwo: true,
}

// ParseProductCode constructs a ProductCode from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseProductCode(s string) (ProductCode, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "product code cannot be empty")
	}
	p := ProductCode(s)
	if !p.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unsupported product code")
	}
	return p, nil
}

// IsValid checks if the product code is one of the supported enum values.
func (p ProductCode) IsValid() bool {
	return validProductCodes[p]
}

// String returns the string representation of the product code.
func (p ProductCode) String() string {
	return string(p)
}
