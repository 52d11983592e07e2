package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboard/internal/processing/models"
	"onboard/pkg/requestcontext"
)

type stubProcessor struct {
	result models.ProcessingResult
	apps   []models.Application
	sawNow bool
}

func (s *stubProcessor) Process(ctx context.Context, app models.Application) models.ProcessingResult {
	s.apps = append(s.apps, app)
	_, s.sawNow = ctx.Value(requestcontext.ContextKeyRequestTime).(time.Time)
	return s.result
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validBody(productCode string) string {
	return fmt.Sprintf(`{
		"product_code": %q,
		"applicant": {
			"id": %q,
			"full_name": "Avery Example",
			"date_of_birth": "1999-04-12"
		},
		"payment": {
			"sort_code": "12-34-56",
			"account_number": "12345678",
			"amount": "100.00",
			"currency": "GBP"
		}
	}`, productCode, uuid.NewString())
}

func postApplication(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/applications", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProcessApplication_Success(t *testing.T) {
	processor := &stubProcessor{
		result: models.Succeed(models.InvestorAccount{Administrator: models.AdministratorOne}),
	}
	router := NewRouter(NewHandler(processor, discardLogger()))

	rec := postApplication(t, router, validBody("product_one"))

	require.Equal(t, http.StatusOK, rec.Code)
	var result models.ProcessingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	require.NotNil(t, result.Value)
	assert.Equal(t, models.AdministratorOne, result.Value.Administrator)
	assert.Nil(t, result.Error)

	require.Len(t, processor.apps, 1)
	app := processor.apps[0]
	assert.False(t, app.ID.IsZero(), "a missing application id is minted")
	assert.Equal(t, "Avery Example", app.Applicant.FullName)
	assert.Equal(t, int64(10000), app.Payment.Amount.MinorUnits)
	assert.True(t, processor.sawNow, "the processing time must be pinned on the context")
}

func TestProcessApplication_PipelineFailureStillHTTP200(t *testing.T) {
	processor := &stubProcessor{
		result: models.Fail(models.NewError(models.CodeKycNotVerified, models.DescriptionKycNotVerified)),
	}
	router := NewRouter(NewHandler(processor, discardLogger()))

	rec := postApplication(t, router, validBody("product_one"))

	// A completed pipeline run is a successful HTTP exchange; the outcome
	// lives in the envelope.
	require.Equal(t, http.StatusOK, rec.Code)
	var result models.ProcessingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Equal(t, models.SystemName, result.Error.System)
	assert.Equal(t, models.CodeKycNotVerified, result.Error.Code)
}

func TestProcessApplication_MalformedJSON(t *testing.T) {
	processor := &stubProcessor{}
	router := NewRouter(NewHandler(processor, discardLogger()))

	rec := postApplication(t, router, "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, processor.apps)
}

func TestProcessApplication_InvalidFields(t *testing.T) {
	cases := map[string]string{
		"unknown product code": validBody("product_three"),
		"bad applicant id": `{
			"product_code": "product_one",
			"applicant": {"id": "not-a-uuid", "date_of_birth": "1999-04-12"},
			"payment": {"sort_code": "12-34-56", "account_number": "12345678", "amount": "100.00", "currency": "GBP"}
		}`,
		"bad date of birth": fmt.Sprintf(`{
			"product_code": "product_one",
			"applicant": {"id": %q, "date_of_birth": "12/04/1999"},
			"payment": {"sort_code": "12-34-56", "account_number": "12345678", "amount": "100.00", "currency": "GBP"}
		}`, uuid.NewString()),
		"bad amount": fmt.Sprintf(`{
			"product_code": "product_one",
			"applicant": {"id": %q, "date_of_birth": "1999-04-12"},
			"payment": {"sort_code": "12-34-56", "account_number": "12345678", "amount": "ten", "currency": "GBP"}
		}`, uuid.NewString()),
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			processor := &stubProcessor{}
			router := NewRouter(NewHandler(processor, discardLogger()))

			rec := postApplication(t, router, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, processor.apps, "invalid input must not reach the pipeline")
		})
	}
}

func TestHealthz(t *testing.T) {
	router := NewRouter(NewHandler(&stubProcessor{}, discardLogger()))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
