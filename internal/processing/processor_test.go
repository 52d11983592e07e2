package processing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboard/internal/events"
	"onboard/internal/kyc"
	"onboard/internal/processing/models"
	"onboard/pkg/domain"
)

func TestProcess_NotVerified_BlocksAdministrators(t *testing.T) {
	h := newHarness(t)
	reportID := domain.ReportID(uuid.New())
	h.checker.result = kyc.NotVerified(reportID)

	app := testApplication(domain.ProductOne, 20, 10000)
	result := h.processor.Process(fixedCtx(), app)

	require.False(t, result.IsSuccess())
	assert.Equal(t, models.SystemName, result.Error.System)
	assert.Equal(t, models.CodeKycNotVerified, result.Error.Code)
	assert.Equal(t, models.DescriptionKycNotVerified, result.Error.Description)

	assert.Zero(t, h.adminOne.calls, "administrator must not be invoked for unverified users")
	assert.Zero(t, h.adminTwo.investorCalls)

	published := h.bus.Events()
	require.Len(t, published, 1)
	failed, ok := published[0].(events.VerificationFailed)
	require.True(t, ok)
	assert.Equal(t, app.ID, failed.ApplicationID)
	assert.Equal(t, app.Applicant.ID, failed.ApplicantID)
	assert.Equal(t, reportID, failed.ReportID)
}

func TestProcess_CheckerError_FailsWithoutEvents(t *testing.T) {
	h := newHarness(t)
	h.checker.err = errBackend

	result := h.processor.Process(fixedCtx(), testApplication(domain.ProductOne, 20, 10000))

	require.False(t, result.IsSuccess())
	assert.Equal(t, models.CodeKycCheckFailed, result.Error.Code)
	assert.Empty(t, h.bus.Events())
	assert.Zero(t, h.adminOne.calls)
}

func TestProcess_Success_PublishesCompletionLast(t *testing.T) {
	h := newHarness(t)

	result := h.processor.Process(fixedCtx(), testApplication(domain.ProductOne, 20, 10000))

	require.True(t, result.IsSuccess())
	assert.Equal(t, []string{
		"investor.created",
		"account.created",
		"application.completed",
	}, h.bus.Names())
}

func TestProcess_Failure_NoCompletionEvent(t *testing.T) {
	h := newHarness(t)

	result := h.processor.Process(fixedCtx(), testApplication(domain.ProductOne, 17, 10000))

	require.False(t, result.IsSuccess())
	assert.Empty(t, h.bus.Events())
}

// Processing the same application twice creates two independent sets of
// external state and events. There is no deduplication key; this documents
// the current behavior rather than an aspiration.
func TestProcess_SameApplicationTwice_NotIdempotent(t *testing.T) {
	h := newHarness(t)
	app := testApplication(domain.ProductTwo, 20, 10000)

	first := h.processor.Process(fixedCtx(), app)
	second := h.processor.Process(fixedCtx(), app)

	require.True(t, first.IsSuccess())
	require.True(t, second.IsSuccess())
	assert.Equal(t, 2, h.adminTwo.investorCalls)
	assert.Equal(t, 2, h.adminTwo.accountCalls)
	assert.Equal(t, 2, h.adminTwo.paymentCalls)
	assert.Len(t, h.bus.Events(), 6)
}

func TestProcess_CancelledContext_StopsBeforeStrategy(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(fixedCtx())
	h.checker.cancel = cancel

	result := h.processor.Process(ctx, testApplication(domain.ProductTwo, 20, 10000))

	require.False(t, result.IsSuccess())
	assert.Equal(t, models.CodeProcessingCancelled, result.Error.Code)
	assert.Zero(t, h.adminTwo.investorCalls, "no external call after cancellation")
	assert.Empty(t, h.bus.Events())
}

func TestProcess_UnknownProductCode_Panics(t *testing.T) {
	h := newHarness(t)
	app := testApplication(domain.ProductCode("product_three"), 20, 10000)

	assert.Panics(t, func() {
		h.processor.Process(fixedCtx(), app)
	}, "missing strategy wiring is a configuration defect, not a business outcome")
}

func TestProcess_PublishFailureDoesNotFlipResult(t *testing.T) {
	h := newHarness(t)
	h.bus.PublishErr = errBackend

	result := h.processor.Process(fixedCtx(), testApplication(domain.ProductOne, 20, 10000))

	require.True(t, result.IsSuccess(), "bus failures are logged, not escalated")
}

func TestProcessingResult_Envelope(t *testing.T) {
	t.Run("success carries value only", func(t *testing.T) {
		r := models.Succeed(models.InvestorAccount{Administrator: models.AdministratorOne})
		assert.True(t, r.IsSuccess())
		assert.NotNil(t, r.Value)
		assert.Nil(t, r.Error)
	})

	t.Run("failure carries error only", func(t *testing.T) {
		r := models.Fail(models.NewError(models.CodeKycNotVerified, models.DescriptionKycNotVerified))
		assert.False(t, r.IsSuccess())
		assert.Nil(t, r.Value)
		require.NotNil(t, r.Error)
		assert.Equal(t, models.SystemName, r.Error.System)
	})
}
