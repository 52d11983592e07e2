package processing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"onboard/internal/administrator/one"
	"onboard/internal/administrator/two"
	eventsmemory "onboard/internal/events/memory"
	"onboard/internal/kyc"
	"onboard/internal/processing/models"
	"onboard/internal/processing/validation"
	"onboard/pkg/domain"
	"onboard/pkg/requestcontext"
)

// today pins the processing date across the pipeline tests.
var today = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

var errBackend = errors.New("backend unavailable")

func fixedCtx() context.Context {
	return requestcontext.WithTime(context.Background(), today)
}

func testApplication(product domain.ProductCode, yearsOld int, paymentMinorUnits int64) models.Application {
	return models.Application{
		ID:          domain.ApplicationID(uuid.New()),
		ProductCode: product,
		Applicant: domain.Applicant{
			ID:          domain.ApplicantID(uuid.New()),
			FullName:    "Avery Example",
			DateOfBirth: today.AddDate(-yearsOld, 0, 0),
		},
		Payment: domain.Payment{
			Account: domain.BankAccount{SortCode: "12-34-56", AccountNumber: "12345678"},
			Amount:  domain.Money{MinorUnits: paymentMinorUnits, Currency: "GBP"},
		},
	}
}

// fakeChecker returns a canned verification result and counts invocations.
type fakeChecker struct {
	result kyc.Result
	err    error
	calls  int

	// cancel, when set, is invoked during the check to simulate the calling
	// context being cancelled mid-pipeline.
	cancel context.CancelFunc
}

func (f *fakeChecker) PerformCheck(_ context.Context, _ domain.Applicant) (kyc.Result, error) {
	f.calls++
	if f.cancel != nil {
		f.cancel()
	}
	return f.result, f.err
}

// fakeAdminOne counts calls and returns fixed identifiers.
type fakeAdminOne struct {
	calls int
	resp  one.CreateInvestorResponse
	err   error
}

func (f *fakeAdminOne) CreateInvestor(_ context.Context, _ one.CreateInvestorRequest) (one.CreateInvestorResponse, error) {
	f.calls++
	if f.err != nil {
		return one.CreateInvestorResponse{}, f.err
	}
	return f.resp, nil
}

// fakeAdminTwo counts each step and fails whichever step is configured to.
type fakeAdminTwo struct {
	investorCalls int
	accountCalls  int
	paymentCalls  int

	investorErr error
	accountErr  error
	paymentErr  error

	investorID domain.InvestorID
	accountID  domain.AccountID
}

func (f *fakeAdminTwo) CreateInvestor(_ context.Context, _ domain.Applicant) (domain.InvestorID, error) {
	f.investorCalls++
	if f.investorErr != nil {
		return domain.InvestorID{}, f.investorErr
	}
	return f.investorID, nil
}

func (f *fakeAdminTwo) CreateAccount(_ context.Context, _ domain.InvestorID, _ domain.ProductCode) (domain.AccountID, error) {
	f.accountCalls++
	if f.accountErr != nil {
		return domain.AccountID{}, f.accountErr
	}
	return f.accountID, nil
}

func (f *fakeAdminTwo) ProcessPayment(_ context.Context, _ domain.AccountID, _ domain.Payment) (two.PaymentReceipt, error) {
	f.paymentCalls++
	if f.paymentErr != nil {
		return two.PaymentReceipt{}, f.paymentErr
	}
	return two.PaymentReceipt{PaymentRef: "PAY-TEST", ProcessedAt: today}, nil
}

func newFakeAdminOne() *fakeAdminOne {
	return &fakeAdminOne{
		resp: one.CreateInvestorResponse{
			InvestorID: domain.InvestorID(uuid.New()),
			AccountID:  domain.AccountID(uuid.New()),
			Reference:  "ADM1-TEST",
		},
	}
}

func newFakeAdminTwo() *fakeAdminTwo {
	return &fakeAdminTwo{
		investorID: domain.InvestorID(uuid.New()),
		accountID:  domain.AccountID(uuid.New()),
	}
}

type harness struct {
	processor *Processor
	bus       *eventsmemory.Bus
	checker   *fakeChecker
	adminOne  *fakeAdminOne
	adminTwo  *fakeAdminTwo
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	bus := eventsmemory.NewBus()
	checker := &fakeChecker{result: kyc.Verified()}
	adminOne := newFakeAdminOne()
	adminTwo := newFakeAdminTwo()

	selector := NewSelector(
		NewProductOneStrategy(adminOne, validation.NewProductOneValidator(), bus),
		NewProductTwoStrategy(adminTwo, validation.NewProductTwoValidator(), bus),
	)

	return &harness{
		processor: NewProcessor(checker, selector, bus),
		bus:       bus,
		checker:   checker,
		adminOne:  adminOne,
		adminTwo:  adminTwo,
	}
}
