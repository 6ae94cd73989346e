package client

import (
	"context"
	"strings"

	"github.com/rezonia/cetustek-go/internal/model"
	"github.com/rezonia/cetustek-go/internal/soap"
)

// Vendor SOAP actions.
const (
	actionCreateInvoice       = "CreateInvoiceV3"
	actionQueryInvoice        = "QueryInvoice"
	actionCancelInvoice       = "CancelInvoice"
	actionCancelInvoiceNoCheck = "CancelInvoiceNoCheck"
)

// CreateInvoice issues a new e-invoice.
//
// The input is validated locally before anything is sent; a *ValidationError
// means no request was made. A vendor reject comes back as *APIError with the
// vendor's code verbatim.
func (c *Client) CreateInvoice(ctx context.Context, in model.CreateInvoiceInput) (*model.CreateInvoiceResponse, error) {
	const op = "createInvoice"

	if err := in.Validate(); err != nil {
		return nil, err
	}

	invoiceXML, err := createInvoiceXML(in)
	if err != nil {
		return nil, model.NewTransportError(op, "failed to serialize invoice", err)
	}

	params := append([]soap.Param{
		{Name: "invoicexml", Value: invoiceXML, CDATA: true},
	}, c.authParams()...)

	value, err := c.call(ctx, op, actionCreateInvoice, params)
	if err != nil {
		return nil, err
	}

	return parseCreateReturn(op, value)
}

// QueryInvoice looks up an issued invoice by number and year.
// The response keeps the vendor's full XML payload in RawXML regardless of
// which fields were mapped.
func (c *Client) QueryInvoice(ctx context.Context, in model.QueryInvoiceInput) (*model.QueryInvoiceResponse, error) {
	const op = "queryInvoice"

	if err := in.Validate(); err != nil {
		return nil, err
	}

	params := append([]soap.Param{
		{Name: "invoicenumber", Value: in.InvoiceNumber},
		{Name: "invoiceyear", Value: in.InvoiceYear},
	}, c.authParams()...)

	value, err := c.call(ctx, op, actionQueryInvoice, params)
	if err != nil {
		return nil, err
	}

	// A bare code instead of an XML document is a vendor error.
	if !soap.IsXML(value) {
		return nil, model.NewAPIError(op, strings.TrimSpace(value), "")
	}

	return parseQueryReturn(in.InvoiceNumber, value), nil
}

// CancelOption configures a cancellation call.
type CancelOption func(*cancelOptions)

type cancelOptions struct {
	noCheck bool
}

// WithNoCheck skips the vendor's pre-cancellation checks
// (the CancelInvoiceNoCheck action).
func WithNoCheck() CancelOption {
	return func(o *cancelOptions) {
		o.noCheck = true
	}
}

// CancelInvoice voids an issued invoice. A vendor reject is not an error:
// the response carries Success=false with the vendor's code and message.
func (c *Client) CancelInvoice(ctx context.Context, in model.CancelInvoiceInput, opts ...CancelOption) (*model.CancelInvoiceResponse, error) {
	const op = "cancelInvoice"

	var options cancelOptions
	for _, opt := range opts {
		opt(&options)
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	invoiceXML, err := cancelInvoiceXML(in)
	if err != nil {
		return nil, model.NewTransportError(op, "failed to serialize cancellation", err)
	}

	action := actionCancelInvoice
	if options.noCheck {
		action = actionCancelInvoiceNoCheck
	}

	params := append([]soap.Param{
		{Name: "invoicexml", Value: invoiceXML, CDATA: true},
	}, c.authParams()...)

	value, err := c.call(ctx, op, action, params)
	if err != nil {
		return nil, err
	}

	resp := model.NewCancelInvoiceResponse(value)
	return &resp, nil
}
