// Package cetustek provides a typed client for Taiwan's Cetustek e-invoice
// web service: issue, query and cancel invoices over the vendor's SOAP API.
//
// Example usage:
//
//	c, err := cetustek.New(cetustek.Config{
//	    Endpoint:    "https://invoice.cetustek.com.tw/InvoiceMultiWeb/InvoiceAPI",
//	    RentID:      os.Getenv("CETUSTEK_RENT_ID"),
//	    SiteCode:    os.Getenv("CETUSTEK_SITE_CODE"),
//	    APIPassword: os.Getenv("CETUSTEK_API_PASSWORD"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := c.CreateInvoice(ctx, input)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.InvoiceNumber, resp.RandomCode)
package cetustek

import (
	"github.com/rezonia/cetustek-go/internal/client"
	"github.com/rezonia/cetustek-go/internal/model"
)

// Re-export core types for public API
type (
	Client                = client.Client
	Config                = client.Config
	Option                = client.Option
	CancelOption          = client.CancelOption
	InvoiceItem           = model.InvoiceItem
	CreateInvoiceInput    = model.CreateInvoiceInput
	QueryInvoiceInput     = model.QueryInvoiceInput
	CancelInvoiceInput    = model.CancelInvoiceInput
	CreateInvoiceResponse = model.CreateInvoiceResponse
	QueryInvoiceResponse  = model.QueryInvoiceResponse
	CancelInvoiceResponse = model.CancelInvoiceResponse
	DonateMark            = model.DonateMark
	InvoiceType           = model.InvoiceType
	TaxType               = model.TaxType
)

// Re-export donate marks
const (
	DonateMarkNone    = model.DonateMarkNone
	DonateMarkDonate  = model.DonateMarkDonate
	DonateMarkCarrier = model.DonateMarkCarrier
)

// Re-export invoice types
const (
	InvoiceTypeGeneral = model.InvoiceTypeGeneral
	InvoiceTypeSpecial = model.InvoiceTypeSpecial
)

// Re-export tax types
const (
	TaxTypeTaxable     = model.TaxTypeTaxable
	TaxTypeZeroRate    = model.TaxTypeZeroRate
	TaxTypeExempt      = model.TaxTypeExempt
	TaxTypeSpecial     = model.TaxTypeSpecial
	TaxTypeSpecialFree = model.TaxTypeSpecialFree
	TaxTypeMixed       = model.TaxTypeMixed
)

// CancelSuccessCode is the vendor code for a successful cancellation.
const CancelSuccessCode = model.CancelSuccessCode

// Re-export error types
type (
	ValidationError = model.ValidationError
	APIError        = model.APIError
	TransportError  = model.TransportError
)

// New creates a client for the given tenant configuration.
var New = client.New

// Client options
var (
	WithHTTPClient = client.WithHTTPClient
	WithTimeout    = client.WithTimeout
	WithUserAgent  = client.WithUserAgent
	WithLogger     = client.WithLogger
	WithNoCheck    = client.WithNoCheck
)
