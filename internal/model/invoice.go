// Package model defines the typed request and response records for the
// Cetustek e-invoice service, plus the error types the SDK surfaces.
//
// All records are plain values constructed for a single call; nothing in this
// package is mutated after creation.
package model

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	dec "github.com/rezonia/cetustek-go/internal/decimal"
)

// DonateMark indicates how the consumer receives the invoice:
// kept as issued, donated to charity, or stored on a carrier.
type DonateMark string

const (
	DonateMarkNone    DonateMark = "0"
	DonateMarkDonate  DonateMark = "1"
	DonateMarkCarrier DonateMark = "2"
)

// InvoiceType is the government invoice category code.
type InvoiceType string

const (
	InvoiceTypeGeneral InvoiceType = "07" // general tax invoice
	InvoiceTypeSpecial InvoiceType = "08" // special tax invoice
)

// TaxType is the tax treatment code from the vendor's tax table.
type TaxType string

const (
	TaxTypeTaxable     TaxType = "1"
	TaxTypeZeroRate    TaxType = "2"
	TaxTypeExempt      TaxType = "3"
	TaxTypeSpecial     TaxType = "4"
	TaxTypeSpecialFree TaxType = "5"
	TaxTypeMixed       TaxType = "9"
)

// DefaultTaxRate is Taiwan's standard business tax rate.
var DefaultTaxRate = decimal.RequireFromString("0.05")

var (
	orderDateRe     = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)
	invoiceNumberRe = regexp.MustCompile(`^[A-Za-z]{2}\d{8}$`)
	invoiceYearRe   = regexp.MustCompile(`^\d{4}$`)
)

func validDonateMark(m DonateMark) bool {
	switch m {
	case DonateMarkNone, DonateMarkDonate, DonateMarkCarrier:
		return true
	}
	return false
}

func validInvoiceType(t InvoiceType) bool {
	return t == InvoiceTypeGeneral || t == InvoiceTypeSpecial
}

func validTaxType(t TaxType) bool {
	switch t {
	case TaxTypeTaxable, TaxTypeZeroRate, TaxTypeExempt, TaxTypeSpecial, TaxTypeSpecialFree, TaxTypeMixed:
		return true
	}
	return false
}

// InvoiceItem is one line of an invoice.
type InvoiceItem struct {
	ProductionCode string
	Description    string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	Unit           string // optional
}

// Validate checks the line item invariants.
func (i InvoiceItem) Validate() error {
	if i.ProductionCode == "" {
		return NewValidationError("production_code", nil, "required", "production code must not be empty")
	}
	if i.Description == "" {
		return NewValidationError("description", nil, "required", "description must not be empty")
	}
	if !dec.IsNonNegative(i.Quantity) {
		return NewValidationError("quantity", i.Quantity.String(), "non_negative", "quantity must not be negative")
	}
	if !dec.IsNonNegative(i.UnitPrice) {
		return NewValidationError("unit_price", i.UnitPrice.String(), "non_negative", "unit price must not be negative")
	}
	return nil
}

// Amount is quantity times unit price.
func (i InvoiceItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// CreateInvoiceInput is the request to issue a new e-invoice.
type CreateInvoiceInput struct {
	OrderID     string
	OrderDate   string // yyyy/MM/dd
	DonateMark  DonateMark
	InvoiceType InvoiceType
	PayWay      string // vendor payment table code
	TaxType     TaxType

	Items []InvoiceItem

	// Optional buyer fields
	BuyerIdentifier     string
	BuyerName           string
	BuyerAddress        string
	BuyerEmail          string
	BuyerPersonInCharge string
	BuyerTel            string
	BuyerFax            string
	BuyerCustomerNumber string

	// Carrier / donation
	CarrierType string
	CarrierID1  string
	CarrierID2  string
	NPOBAN      string

	// TaxRate of zero means DefaultTaxRate for taxable invoices.
	TaxRate decimal.Decimal
	Remark  string
}

// Validate checks required fields and enumerated domains.
// It returns a *ValidationError for the first violated rule.
func (in CreateInvoiceInput) Validate() error {
	if in.OrderID == "" {
		return NewValidationError("order_id", nil, "required", "order id must not be empty")
	}
	if !orderDateRe.MatchString(in.OrderDate) {
		return NewValidationError("order_date", in.OrderDate, "format", "order date must be yyyy/MM/dd")
	}
	if !validDonateMark(in.DonateMark) {
		return NewValidationError("donate_mark", string(in.DonateMark), "enum", "donate mark must be 0, 1 or 2")
	}
	if !validInvoiceType(in.InvoiceType) {
		return NewValidationError("invoice_type", string(in.InvoiceType), "enum", "invoice type must be 07 or 08")
	}
	if !validTaxType(in.TaxType) {
		return NewValidationError("tax_type", string(in.TaxType), "enum", "tax type must be one of 1-5 or 9")
	}
	if in.PayWay == "" {
		return NewValidationError("pay_way", nil, "required", "pay way must not be empty")
	}
	if len(in.Items) == 0 {
		return NewValidationError("items", nil, "non_empty", "at least one invoice item is required")
	}
	for _, item := range in.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if in.TaxRate.IsNegative() {
		return NewValidationError("tax_rate", in.TaxRate.String(), "non_negative", "tax rate must not be negative")
	}
	return nil
}

// EffectiveTaxRate resolves the rate used for amount computation:
// zero-rate and exempt invoices carry no tax, otherwise an unset rate
// falls back to DefaultTaxRate.
func (in CreateInvoiceInput) EffectiveTaxRate() decimal.Decimal {
	if in.TaxType == TaxTypeZeroRate || in.TaxType == TaxTypeExempt {
		return dec.Zero
	}
	if in.TaxRate.IsZero() {
		return DefaultTaxRate
	}
	return in.TaxRate
}

// Totals computes sales, tax and total amounts from the items and tax rate,
// rounded to whole TWD.
func (in CreateInvoiceInput) Totals() (sales, tax, total decimal.Decimal) {
	for _, item := range in.Items {
		sales = sales.Add(item.Amount())
	}
	sales = dec.RoundTWD(sales)
	tax = dec.CalculateTax(sales, in.EffectiveTaxRate())
	total = sales.Add(tax)
	return sales, tax, total
}

// QueryInvoiceInput looks up an issued invoice.
type QueryInvoiceInput struct {
	InvoiceNumber string // e.g. WP20260002
	InvoiceYear   string // yyyy
}

// Validate checks the lookup key formats.
func (in QueryInvoiceInput) Validate() error {
	if !invoiceNumberRe.MatchString(in.InvoiceNumber) {
		return NewValidationError("invoice_number", in.InvoiceNumber, "format", "invoice number must be two letters followed by eight digits")
	}
	if !invoiceYearRe.MatchString(in.InvoiceYear) {
		return NewValidationError("invoice_year", in.InvoiceYear, "format", "invoice year must be four digits")
	}
	return nil
}

// CancelInvoiceInput voids an issued invoice.
type CancelInvoiceInput struct {
	InvoiceNumber           string
	InvoiceYear             string
	Remark                  string // cancellation reason
	ReturnTaxDocumentNumber string // optional
}

// Validate checks the cancellation key formats.
func (in CancelInvoiceInput) Validate() error {
	if !invoiceNumberRe.MatchString(in.InvoiceNumber) {
		return NewValidationError("invoice_number", in.InvoiceNumber, "format", "invoice number must be two letters followed by eight digits")
	}
	if !invoiceYearRe.MatchString(in.InvoiceYear) {
		return NewValidationError("invoice_year", in.InvoiceYear, "format", "invoice year must be four digits")
	}
	return nil
}

// CreateInvoiceResponse is the result of a successful CreateInvoice call.
type CreateInvoiceResponse struct {
	InvoiceNumber string // 10 characters, e.g. "WP20260002"
	RandomCode    string // 4-digit verification code
}

// InvoiceYear extracts the year embedded in the invoice number
// (positions 2-5 of the 10-character number).
func (r CreateInvoiceResponse) InvoiceYear() string {
	if len(r.InvoiceNumber) < 6 {
		return ""
	}
	return r.InvoiceNumber[2:6]
}

// QueryInvoiceResponse is the parsed result of a QueryInvoice call.
// Fields absent from the vendor payload are left empty (or nil for amounts);
// RawXML always holds the full unescaped vendor payload for callers that need
// fields this SDK does not map.
type QueryInvoiceResponse struct {
	InvoiceNumber    string
	InvoiceDate      string
	InvoiceTime      string
	OrderID          string
	RandomCode       string
	BuyerIdentifier  string
	BuyerName        string
	SellerIdentifier string
	SellerName       string
	InvoiceStatus    string
	DonateMark       string
	CarrierType      string
	CarrierID        string
	NPOBAN           string
	TaxType          string
	SalesAmount      *decimal.Decimal
	TaxAmount        *decimal.Decimal
	TotalAmount      *decimal.Decimal
	RawXML           string
}

// CancelSuccessCode is the single vendor code meaning a cancellation went
// through; every other code is a reject.
const CancelSuccessCode = "C0"

// CancelInvoiceResponse is the result of a CancelInvoice call.
// A vendor reject is returned as data, not as an error.
type CancelInvoiceResponse struct {
	Success bool
	Code    string
	Message string
}

// NewCancelInvoiceResponse builds the response from the vendor return code.
func NewCancelInvoiceResponse(code string) CancelInvoiceResponse {
	code = strings.TrimSpace(code)
	if code == CancelSuccessCode {
		return CancelInvoiceResponse{Success: true, Code: code}
	}
	return CancelInvoiceResponse{Success: false, Code: code, Message: code}
}
