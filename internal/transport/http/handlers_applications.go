package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"onboard/internal/processing/models"
	"onboard/pkg/domain"
	dErrors "onboard/pkg/domain-errors"
)

// Processor is the slice of the pipeline the transport needs.
type Processor interface {
	Process(ctx context.Context, app models.Application) models.ProcessingResult
}

// Handler holds the transport's collaborators.
type Handler struct {
	processor Processor
	logger    *slog.Logger
}

func NewHandler(processor Processor, logger *slog.Logger) *Handler {
	return &Handler{processor: processor, logger: logger}
}

type applicationRequest struct {
	ID          string `json:"id,omitempty"`
	ProductCode string `json:"product_code"`
	Applicant   struct {
		ID          string `json:"id"`
		FullName    string `json:"full_name,omitempty"`
		DateOfBirth string `json:"date_of_birth"`
	} `json:"applicant"`
	Payment struct {
		SortCode      string `json:"sort_code"`
		AccountNumber string `json:"account_number"`
		Amount        string `json:"amount"`
		Currency      string `json:"currency"`
	} `json:"payment"`
}

func (h *Handler) handleProcessApplication(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeInvalidInput, "request body is not valid JSON"))
		return
	}

	app, err := req.toApplication()
	if err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()
	result := h.processor.Process(ctx, app)

	h.logger.InfoContext(ctx, "application processed",
		"application_id", app.ID.String(),
		"product_code", app.ProductCode.String(),
		"success", result.IsSuccess(),
	)

	writeJSON(w, http.StatusOK, result)
}

func (r applicationRequest) toApplication() (models.Application, error) {
	var app models.Application

	// The caller may omit the application id; one is minted here so the
	// completion event always has an aggregate to point at.
	if r.ID == "" {
		app.ID = domain.ApplicationID(uuid.New())
	} else {
		id, err := domain.ParseApplicationID(r.ID)
		if err != nil {
			return models.Application{}, err
		}
		app.ID = id
	}

	productCode, err := domain.ParseProductCode(r.ProductCode)
	if err != nil {
		return models.Application{}, err
	}
	app.ProductCode = productCode

	applicantID, err := domain.ParseApplicantID(r.Applicant.ID)
	if err != nil {
		return models.Application{}, err
	}

	dob, err := time.Parse("2006-01-02", r.Applicant.DateOfBirth)
	if err != nil {
		return models.Application{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "date_of_birth must be YYYY-MM-DD")
	}

	app.Applicant = domain.Applicant{
		ID:          applicantID,
		FullName:    r.Applicant.FullName,
		DateOfBirth: dob,
	}

	minorUnits, err := domain.ParseAmount(r.Payment.Amount)
	if err != nil {
		return models.Application{}, err
	}
	amount, err := domain.NewMoney(minorUnits, r.Payment.Currency)
	if err != nil {
		return models.Application{}, err
	}

	app.Payment = domain.Payment{
		Account: domain.BankAccount{
			SortCode:      r.Payment.SortCode,
			AccountNumber: r.Payment.AccountNumber,
		},
		Amount: amount,
	}

	return app, nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError centralizes domain error translation to HTTP responses, keeping
// a consistent JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := string(dErrors.CodeInternal)

	var de *dErrors.Error
	if errors.As(err, &de) {
		status = dErrors.ToHTTPStatus(de.Code)
		code = string(de.Code)
	}

	writeJSON(w, status, map[string]string{
		"code":    code,
		"message": err.Error(),
	})
}
