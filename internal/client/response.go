package client

import (
	"strings"

	"github.com/shopspring/decimal"

	dec "github.com/rezonia/cetustek-go/internal/decimal"
	"github.com/rezonia/cetustek-go/internal/model"
	"github.com/rezonia/cetustek-go/internal/soap"
)

// parseCreateReturn decodes the CreateInvoiceV3 return payload:
// "NUMBER;RANDOM" on success, a bare vendor code otherwise.
func parseCreateReturn(op, value string) (*model.CreateInvoiceResponse, error) {
	if !strings.Contains(value, ";") {
		return nil, model.NewAPIError(op, value, "")
	}

	parts := strings.Split(value, ";")
	if len(parts) != 2 {
		return nil, model.NewAPIError(op, value, "unexpected response format")
	}

	return &model.CreateInvoiceResponse{
		InvoiceNumber: strings.TrimSpace(parts[0]),
		RandomCode:    strings.TrimSpace(parts[1]),
	}, nil
}

// parseQueryReturn maps the vendor's invoice XML into the typed response.
// Unknown or absent fields stay zero; the raw payload is always retained.
func parseQueryReturn(invoiceNumber, payload string) *model.QueryInvoiceResponse {
	field := func(tag string) string {
		value, _ := soap.FieldValue(payload, tag)
		return value
	}
	amount := func(tag string) *decimal.Decimal {
		value, ok := soap.FieldValue(payload, tag)
		if !ok {
			return nil
		}
		d, err := dec.FromString(value)
		if err != nil {
			return nil
		}
		return &d
	}

	return &model.QueryInvoiceResponse{
		InvoiceNumber:    invoiceNumber,
		InvoiceDate:      field("InvoiceDate"),
		InvoiceTime:      field("InvoiceTime"),
		OrderID:          field("OrderID"),
		RandomCode:       field("RandomNumber"),
		BuyerIdentifier:  field("BuyerIdentifier"),
		BuyerName:        field("BuyerName"),
		SellerIdentifier: field("SellerIdentifier"),
		SellerName:       field("SellerName"),
		InvoiceStatus:    field("InvoiceStatus"),
		DonateMark:       field("DonateMark"),
		CarrierType:      field("CarrierType"),
		CarrierID:        field("CarrierId1"),
		NPOBAN:           field("NPOBAN"),
		TaxType:          field("TaxType"),
		SalesAmount:      amount("SalesAmount"),
		TaxAmount:        amount("TaxAmount"),
		TotalAmount:      amount("TotalAmount"),
		RawXML:           payload,
	}
}
