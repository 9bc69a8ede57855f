// Package contractform implements the contract creation form state machine:
// field editing, date-range derivation, amount normalization, company
// selection tracking and cross-field validation gating submission.
package contractform

import (
	"time"

	"github.com/seongmin-dev/adcenter/cmd/adcenter/api"
	"github.com/seongmin-dev/adcenter/pkg/fp"
)

// Form field identifiers, matching the API's error detail keys.
const (
	FieldCompany   = "companyId"
	FieldStartDate = "startDate"
	FieldEndDate   = "endDate"
	FieldAmount    = "amount"
)

// User-facing validation messages.
const (
	MsgCompanyRequired   = "업체를 선택해주세요."
	MsgStartDateRequired = "계약 시작일을 선택해주세요."
	MsgEndDateRequired   = "계약 종료일을 선택해주세요."
	MsgAmountRequired    = "계약 금액을 입력해주세요."
	MsgDateFormat        = "날짜는 YYYY-MM-DD 형식으로 입력해주세요."
	MsgStartDateTooEarly = "계약 시작일은 오늘 이후여야 합니다."
	MsgEndDateTooEarly   = "계약 종료일은 계약 시작일로부터 최소 28일 이후여야 합니다."
	MsgAmountOutOfRange  = "계약 금액은 10,000원 이상 1,000,000원 이하여야 합니다."
)

// Engine holds the state of one contract creation form.
type Engine struct {
	product api.Product
	today   string

	companyText string
	company     fp.Option[api.Company]
	startDate   string
	endDate     string
	amountText  string
	amount      int64
	hasAmount   bool

	serverErrors map[string]string
	submitted    bool
	pending      bool
}

// NewEngine creates a form for the given product. The current date is
// captured once so validation stays stable across midnight. The draft
// opens with startDate set to today and endDate at the minimum-duration
// floor, startDate + 28 days.
func NewEngine(product api.Product, now time.Time) *Engine {
	today := FormatDate(now)
	return &Engine{
		product:      product,
		today:        today,
		company:      fp.None[api.Company](),
		startDate:    today,
		endDate:      MinEndDate(today),
		serverErrors: map[string]string{},
	}
}

// Product returns the product this contract is for.
func (e *Engine) Product() api.Product { return e.product }

// Today returns the reference date captured when the form opened.
func (e *Engine) Today() string { return e.today }

// CompanyText returns the current company search input.
func (e *Engine) CompanyText() string { return e.companyText }

// Company returns the committed company selection, if any.
func (e *Engine) Company() fp.Option[api.Company] { return e.company }

// StartDate returns the current start date input.
func (e *Engine) StartDate() string { return e.startDate }

// EndDate returns the current end date input.
func (e *Engine) EndDate() string { return e.endDate }

// AmountText returns the formatted amount input.
func (e *Engine) AmountText() string { return e.amountText }

// Pending reports whether a submission is in flight.
func (e *Engine) Pending() bool { return e.pending }

// SetCompanyText records company search input. Any committed selection
// whose name no longer matches the text is dropped, so a stale selection
// can never ride along with edited text.
func (e *Engine) SetCompanyText(text string) {
	e.companyText = text
	if committed := fp.ToPointer(e.company); committed != nil && committed.Name != text {
		e.company = fp.None[api.Company]()
	}
	delete(e.serverErrors, FieldCompany)
}

// SelectCompany commits an autocomplete selection and syncs the input text.
func (e *Engine) SelectCompany(company api.Company) {
	e.company = fp.Some(company)
	e.companyText = company.Name
	delete(e.serverErrors, FieldCompany)
}

// SetStartDate records the start date. A cleared end date, or one inside
// the minimum duration window, is raised to the floor; an end date
// already far enough out is left alone.
func (e *Engine) SetStartDate(date string) {
	e.startDate = date
	if validDate(date) {
		floor := MinEndDate(date)
		if e.endDate == "" || (validDate(e.endDate) && dateBefore(e.endDate, floor)) {
			e.endDate = floor
			delete(e.serverErrors, FieldEndDate)
		}
	}
	delete(e.serverErrors, FieldStartDate)
}

// SetEndDate records the end date.
func (e *Engine) SetEndDate(date string) {
	e.endDate = date
	delete(e.serverErrors, FieldEndDate)
}

// SetAmountText records amount input, normalizing thousands separators.
// Input with other non-digit characters is rejected and the previous
// value kept. Clearing the input is always allowed.
func (e *Engine) SetAmountText(text string) {
	delete(e.serverErrors, FieldAmount)
	if text == "" {
		e.amountText = ""
		e.amount = 0
		e.hasAmount = false
		return
	}
	amount, err := ParseAmount(text)
	if err != nil {
		return
	}
	e.amount = amount
	e.hasAmount = true
	e.amountText = FormatAmount(amount)
}

// Amount returns the parsed amount in won, valid only when input exists.
func (e *Engine) Amount() int64 { return e.amount }

// validate runs cross-field validation. Required-field errors are only
// collected when includeRequired is set, so untouched fields stay quiet
// until a submit attempt.
func (e *Engine) validate(includeRequired bool) fp.ValidationErrors {
	var errs fp.ValidationErrors

	collect := func(err error) {
		if ve, ok := err.(fp.ValidationErrors); ok {
			errs = append(errs, ve...)
		}
	}

	if includeRequired {
		collect(fp.GetError(fp.Validate(e.company,
			fp.Custom(FieldCompany, fp.IsSome[api.Company], MsgCompanyRequired))))
		collect(fp.GetError(fp.Validate(e.startDate,
			fp.Required(FieldStartDate, MsgStartDateRequired))))
		collect(fp.GetError(fp.Validate(e.endDate,
			fp.Required(FieldEndDate, MsgEndDateRequired))))
		if !e.hasAmount {
			errs = append(errs, fp.ValidationError{Field: FieldAmount, Message: MsgAmountRequired})
		}
	}

	startOK := validDate(e.startDate)
	endOK := validDate(e.endDate)
	if e.startDate != "" && !startOK {
		errs = append(errs, fp.ValidationError{Field: FieldStartDate, Message: MsgDateFormat})
	}
	if e.endDate != "" && !endOK {
		errs = append(errs, fp.ValidationError{Field: FieldEndDate, Message: MsgDateFormat})
	}
	if startOK && dateBefore(e.startDate, e.today) {
		errs = append(errs, fp.ValidationError{Field: FieldStartDate, Message: MsgStartDateTooEarly})
	}
	if startOK && endOK && dateBefore(e.endDate, MinEndDate(e.startDate)) {
		errs = append(errs, fp.ValidationError{Field: FieldEndDate, Message: MsgEndDateTooEarly})
	}
	if e.hasAmount {
		collect(fp.GetError(fp.Validate(e.amount,
			fp.Custom(FieldAmount, amountInRange, MsgAmountOutOfRange))))
	}
	return errs
}

// FieldErrors returns the errors to display per field. Value errors show
// as the user types; required-field errors only after a submit attempt.
// Server-reported errors take precedence until the field is edited.
func (e *Engine) FieldErrors() map[string]string {
	out := e.validate(e.submitted).ByField()
	for field, msg := range e.serverErrors {
		out[field] = msg
	}
	return out
}

// CanSubmit reports whether the form is complete, valid and idle.
func (e *Engine) CanSubmit() bool {
	return !e.pending && !e.validate(true).HasErrors()
}

// BeginSubmit arms a submission. It returns the request to send and true,
// or nil and false when the form is invalid or a submission is already in
// flight. A submit attempt makes required-field errors visible.
func (e *Engine) BeginSubmit() (*api.ContractRequest, bool) {
	e.submitted = true
	if e.pending || e.validate(true).HasErrors() {
		return nil, false
	}
	company := fp.GetOrElseOpt(api.Company{})(e.company)
	e.pending = true
	return &api.ContractRequest{
		CompanyID: company.ID,
		ProductID: e.product.ID,
		StartDate: e.startDate,
		EndDate:   e.endDate,
		Amount:    e.amount,
	}, true
}

// FinishSubmit records the outcome of a submission. Field-level errors
// reported by the server are merged into the form.
func (e *Engine) FinishSubmit(err error) {
	e.pending = false
	if err == nil {
		return
	}
	if apiErr := api.AsAPIError(err); apiErr != nil {
		for field, msg := range apiErr.FieldErrors() {
			e.serverErrors[field] = msg
		}
	}
}
