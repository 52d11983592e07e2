// Package models holds the aggregate and result types of the onboarding
// pipeline. Application is immutable once submitted; the pipeline only reads
// it.
package models

import "onboard/pkg/domain"

// Application is one onboarding attempt. Created by the external caller and
// never mutated here.
type Application struct {
	ID          domain.ApplicationID `json:"id"`
	ProductCode domain.ProductCode   `json:"product_code"`
	Applicant   domain.Applicant     `json:"applicant"`
	Payment     domain.Payment       `json:"payment"`
}
