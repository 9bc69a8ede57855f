package contractform

import (
	"testing"
	"time"

	"github.com/seongmin-dev/adcenter/cmd/adcenter/api"
	"github.com/seongmin-dev/adcenter/pkg/fp"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(api.Product{ID: 7, Name: "배너 광고"}, testNow)
}

func completeForm(t *testing.T) *Engine {
	t.Helper()
	e := newTestEngine(t)
	e.SelectCompany(api.Company{ID: 3, Name: "한빛 미디어"})
	e.SetStartDate("2024-06-10")
	e.SetEndDate("2024-07-08")
	e.SetAmountText("500000")
	return e
}

func TestMountDefaults(t *testing.T) {
	e := newTestEngine(t)
	if got := e.StartDate(); got != "2024-06-01" {
		t.Errorf("StartDate() = %q, want today %q", got, "2024-06-01")
	}
	if got := e.EndDate(); got != "2024-06-29" {
		t.Errorf("EndDate() = %q, want today+28d %q", got, "2024-06-29")
	}
	if len(e.FieldErrors()) != 0 {
		t.Errorf("defaults show errors: %v", e.FieldErrors())
	}
}

func TestClearedEndDateRaisedOnStartChange(t *testing.T) {
	e := newTestEngine(t)
	e.SetEndDate("")
	e.SetStartDate("2024-06-10")
	if got := e.EndDate(); got != "2024-07-08" {
		t.Errorf("EndDate() = %q, want floor %q", got, "2024-07-08")
	}
}

func TestEndDateRaisedToFloor(t *testing.T) {
	e := newTestEngine(t)
	e.SetEndDate("2024-07-01")
	e.SetStartDate("2024-06-10")
	if got := e.EndDate(); got != "2024-07-08" {
		t.Errorf("EndDate() = %q, want raised to %q", got, "2024-07-08")
	}
}

func TestEndDateBeyondFloorKept(t *testing.T) {
	e := newTestEngine(t)
	e.SetEndDate("2024-08-20")
	e.SetStartDate("2024-06-10")
	if got := e.EndDate(); got != "2024-08-20" {
		t.Errorf("EndDate() = %q, want unchanged %q", got, "2024-08-20")
	}
}

func TestEndDateTooEarlyError(t *testing.T) {
	e := newTestEngine(t)
	e.SetStartDate("2024-06-10")
	e.SetEndDate("2024-06-30") // only 20 days out
	if got := e.FieldErrors()[FieldEndDate]; got != MsgEndDateTooEarly {
		t.Errorf("endDate error = %q, want %q", got, MsgEndDateTooEarly)
	}
	e.SetEndDate("2024-07-08") // exactly 28 days
	if got, ok := e.FieldErrors()[FieldEndDate]; ok {
		t.Errorf("endDate error = %q, want none at exactly 28 days", got)
	}
}

func TestStartDateBeforeToday(t *testing.T) {
	e := newTestEngine(t)
	e.SetStartDate("2024-05-31")
	if got := e.FieldErrors()[FieldStartDate]; got != MsgStartDateTooEarly {
		t.Errorf("startDate error = %q, want %q", got, MsgStartDateTooEarly)
	}
	e.SetStartDate("2024-06-01") // today is allowed
	if got, ok := e.FieldErrors()[FieldStartDate]; ok {
		t.Errorf("startDate error = %q, want none for today", got)
	}
}

func TestMalformedDateRejected(t *testing.T) {
	e := completeForm(t)
	e.SetStartDate("2024/06/10")
	if got := e.FieldErrors()[FieldStartDate]; got != MsgDateFormat {
		t.Errorf("startDate error = %q, want %q", got, MsgDateFormat)
	}
	if e.CanSubmit() {
		t.Error("CanSubmit() = true with malformed start date")
	}
}

func TestAmountFormatting(t *testing.T) {
	e := newTestEngine(t)
	e.SetAmountText("1000000")
	if got := e.AmountText(); got != "1,000,000" {
		t.Errorf("AmountText() = %q, want %q", got, "1,000,000")
	}
	if got := e.Amount(); got != 1000000 {
		t.Errorf("Amount() = %d, want 1000000", got)
	}
	// separators in the input survive a round trip
	e.SetAmountText("1,000,000")
	if got := e.Amount(); got != 1000000 {
		t.Errorf("Amount() after reformatted input = %d, want 1000000", got)
	}
}

func TestAmountRejectsNonDigits(t *testing.T) {
	e := newTestEngine(t)
	e.SetAmountText("12345")
	e.SetAmountText("12a45")
	if got := e.AmountText(); got != "12,345" {
		t.Errorf("AmountText() = %q, want prior value kept", got)
	}
	e.SetAmountText("")
	if got := e.AmountText(); got != "" {
		t.Errorf("AmountText() = %q, want cleared", got)
	}
}

func TestAmountBounds(t *testing.T) {
	cases := []struct {
		input   string
		wantErr bool
	}{
		{"9999", true},
		{"10000", false},
		{"1000000", false},
		{"1000001", true},
	}
	for _, tc := range cases {
		e := newTestEngine(t)
		e.SetAmountText(tc.input)
		msg, gotErr := e.FieldErrors()[FieldAmount]
		if gotErr != tc.wantErr {
			t.Errorf("amount %q: error shown = %v, want %v", tc.input, gotErr, tc.wantErr)
		}
		if gotErr && msg != MsgAmountOutOfRange {
			t.Errorf("amount %q: message = %q, want %q", tc.input, msg, MsgAmountOutOfRange)
		}
	}
}

func TestCompanySelectionDesync(t *testing.T) {
	e := newTestEngine(t)
	e.SelectCompany(api.Company{ID: 1, Name: "A"})
	if fp.IsNone(e.Company()) {
		t.Fatal("expected committed selection after SelectCompany")
	}
	if got := e.CompanyText(); got != "A" {
		t.Errorf("CompanyText() = %q, want synced to %q", got, "A")
	}
	e.SetCompanyText("AB")
	if fp.IsSome(e.Company()) {
		t.Error("edited text must drop the committed selection")
	}
}

func TestCompanyTextMatchingNameKeepsSelection(t *testing.T) {
	e := newTestEngine(t)
	e.SelectCompany(api.Company{ID: 1, Name: "A"})
	e.SetCompanyText("A")
	if fp.IsNone(e.Company()) {
		t.Error("text identical to the selected name must keep the selection")
	}
}

func TestRequiredErrorsOnlyAfterSubmit(t *testing.T) {
	e := newTestEngine(t)
	e.SetStartDate("")
	e.SetEndDate("")
	if len(e.FieldErrors()) != 0 {
		t.Errorf("untouched fields show errors: %v", e.FieldErrors())
	}
	if _, ok := e.BeginSubmit(); ok {
		t.Fatal("empty form must not submit")
	}
	errs := e.FieldErrors()
	want := map[string]string{
		FieldCompany:   MsgCompanyRequired,
		FieldStartDate: MsgStartDateRequired,
		FieldEndDate:   MsgEndDateRequired,
		FieldAmount:    MsgAmountRequired,
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("errors[%q] = %q, want %q", field, errs[field], msg)
		}
	}
}

func TestCanSubmit(t *testing.T) {
	e := completeForm(t)
	if !e.CanSubmit() {
		t.Fatalf("complete form: CanSubmit() = false, errors = %v", e.FieldErrors())
	}

	e.SetCompanyText("한빛") // drops the selection
	if e.CanSubmit() {
		t.Error("CanSubmit() = true without a committed company")
	}
	e.SelectCompany(api.Company{ID: 3, Name: "한빛 미디어"})

	e.SetAmountText("9999")
	if e.CanSubmit() {
		t.Error("CanSubmit() = true with out-of-range amount")
	}
}

func TestSubmitLifecycle(t *testing.T) {
	e := completeForm(t)
	req, ok := e.BeginSubmit()
	if !ok {
		t.Fatalf("BeginSubmit() refused a valid form, errors = %v", e.FieldErrors())
	}
	want := api.ContractRequest{CompanyID: 3, ProductID: 7, StartDate: "2024-06-10", EndDate: "2024-07-08", Amount: 500000}
	if *req != want {
		t.Errorf("request = %+v, want %+v", *req, want)
	}

	if _, ok := e.BeginSubmit(); ok {
		t.Error("second BeginSubmit() succeeded while a submission is pending")
	}
	if !e.Pending() {
		t.Error("Pending() = false during submission")
	}

	e.FinishSubmit(nil)
	if e.Pending() {
		t.Error("Pending() = true after FinishSubmit")
	}
}

func TestServerFieldErrorsMerged(t *testing.T) {
	e := completeForm(t)
	if _, ok := e.BeginSubmit(); !ok {
		t.Fatal("BeginSubmit() refused a valid form")
	}
	e.FinishSubmit(&api.APIError{Response: api.ErrorResponse{
		Code:    api.CodeValidationError,
		Message: "입력값을 확인해주세요.",
		Details: map[string]api.FieldDetail{
			FieldAmount: {"이미 동일한 계약이 존재합니다."},
		},
		Status: 400,
	}})
	if got := e.FieldErrors()[FieldAmount]; got != "이미 동일한 계약이 존재합니다." {
		t.Errorf("server error not surfaced, got %q", got)
	}
	// editing the field clears the server error
	e.SetAmountText("600000")
	if got, ok := e.FieldErrors()[FieldAmount]; ok {
		t.Errorf("server error survived an edit: %q", got)
	}
}
