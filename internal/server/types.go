package server

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/cetustek-go/internal/model"
)

// CreateInvoiceRequest is the JSON body for POST /api/v1/invoices.
// Quantity, unit price and tax rate accept JSON numbers or numeric strings.
type CreateInvoiceRequest struct {
	OrderID     string `json:"order_id"`
	OrderDate   string `json:"order_date"`
	DonateMark  string `json:"donate_mark"`
	InvoiceType string `json:"invoice_type"`
	TaxType     string `json:"tax_type"`
	PayWay      string `json:"pay_way"`

	Items []CreateInvoiceItem `json:"items"`

	BuyerIdentifier     string `json:"buyer_identifier,omitempty"`
	BuyerName           string `json:"buyer_name,omitempty"`
	BuyerAddress        string `json:"buyer_address,omitempty"`
	BuyerEmail          string `json:"buyer_email,omitempty"`
	BuyerPersonInCharge string `json:"buyer_person_in_charge,omitempty"`
	BuyerTel            string `json:"buyer_tel,omitempty"`
	BuyerFax            string `json:"buyer_fax,omitempty"`
	BuyerCustomerNumber string `json:"buyer_customer_number,omitempty"`

	CarrierType string `json:"carrier_type,omitempty"`
	CarrierID1  string `json:"carrier_id1,omitempty"`
	CarrierID2  string `json:"carrier_id2,omitempty"`
	NPOBAN      string `json:"npoban,omitempty"`

	TaxRate decimal.Decimal `json:"tax_rate,omitempty"`
	Remark  string          `json:"remark,omitempty"`
}

// CreateInvoiceItem is one invoice line in the request body.
type CreateInvoiceItem struct {
	ProductionCode string          `json:"production_code"`
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Unit           string          `json:"unit,omitempty"`
}

// ToModel converts the JSON request into the SDK input record.
func (r CreateInvoiceRequest) ToModel() model.CreateInvoiceInput {
	items := make([]model.InvoiceItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, model.InvoiceItem{
			ProductionCode: item.ProductionCode,
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			Unit:           item.Unit,
		})
	}

	return model.CreateInvoiceInput{
		OrderID:             r.OrderID,
		OrderDate:           r.OrderDate,
		DonateMark:          model.DonateMark(r.DonateMark),
		InvoiceType:         model.InvoiceType(r.InvoiceType),
		TaxType:             model.TaxType(r.TaxType),
		PayWay:              r.PayWay,
		Items:               items,
		BuyerIdentifier:     r.BuyerIdentifier,
		BuyerName:           r.BuyerName,
		BuyerAddress:        r.BuyerAddress,
		BuyerEmail:          r.BuyerEmail,
		BuyerPersonInCharge: r.BuyerPersonInCharge,
		BuyerTel:            r.BuyerTel,
		BuyerFax:            r.BuyerFax,
		BuyerCustomerNumber: r.BuyerCustomerNumber,
		CarrierType:         r.CarrierType,
		CarrierID1:          r.CarrierID1,
		CarrierID2:          r.CarrierID2,
		NPOBAN:              r.NPOBAN,
		TaxRate:             r.TaxRate,
		Remark:              r.Remark,
	}
}

// CreateInvoiceReply is the JSON response for a created invoice, including
// the amounts computed from the submitted items and tax rate.
type CreateInvoiceReply struct {
	InvoiceNumber string          `json:"invoice_number"`
	RandomCode    string          `json:"random_code"`
	InvoiceYear   string          `json:"invoice_year"`
	SalesAmount   decimal.Decimal `json:"sales_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// QueryInvoiceReply is the JSON response for an invoice lookup.
type QueryInvoiceReply struct {
	InvoiceNumber    string           `json:"invoice_number"`
	InvoiceDate      string           `json:"invoice_date,omitempty"`
	InvoiceTime      string           `json:"invoice_time,omitempty"`
	OrderID          string           `json:"order_id,omitempty"`
	RandomCode       string           `json:"random_code,omitempty"`
	BuyerIdentifier  string           `json:"buyer_identifier,omitempty"`
	BuyerName        string           `json:"buyer_name,omitempty"`
	SellerIdentifier string           `json:"seller_identifier,omitempty"`
	SellerName       string           `json:"seller_name,omitempty"`
	InvoiceStatus    string           `json:"invoice_status,omitempty"`
	DonateMark       string           `json:"donate_mark,omitempty"`
	CarrierType      string           `json:"carrier_type,omitempty"`
	CarrierID        string           `json:"carrier_id,omitempty"`
	NPOBAN           string           `json:"npoban,omitempty"`
	TaxType          string           `json:"tax_type,omitempty"`
	SalesAmount      *decimal.Decimal `json:"sales_amount,omitempty"`
	TaxAmount        *decimal.Decimal `json:"tax_amount,omitempty"`
	TotalAmount      *decimal.Decimal `json:"total_amount,omitempty"`
	RawXML           string           `json:"raw_xml"`
}

func newQueryInvoiceReply(resp *model.QueryInvoiceResponse) QueryInvoiceReply {
	return QueryInvoiceReply{
		InvoiceNumber:    resp.InvoiceNumber,
		InvoiceDate:      resp.InvoiceDate,
		InvoiceTime:      resp.InvoiceTime,
		OrderID:          resp.OrderID,
		RandomCode:       resp.RandomCode,
		BuyerIdentifier:  resp.BuyerIdentifier,
		BuyerName:        resp.BuyerName,
		SellerIdentifier: resp.SellerIdentifier,
		SellerName:       resp.SellerName,
		InvoiceStatus:    resp.InvoiceStatus,
		DonateMark:       resp.DonateMark,
		CarrierType:      resp.CarrierType,
		CarrierID:        resp.CarrierID,
		NPOBAN:           resp.NPOBAN,
		TaxType:          resp.TaxType,
		SalesAmount:      resp.SalesAmount,
		TaxAmount:        resp.TaxAmount,
		TotalAmount:      resp.TotalAmount,
		RawXML:           resp.RawXML,
	}
}

// CancelInvoiceRequest is the JSON body for a cancellation.
type CancelInvoiceRequest struct {
	Remark                  string `json:"remark"`
	ReturnTaxDocumentNumber string `json:"return_tax_document_number,omitempty"`
	NoCheck                 bool   `json:"no_check,omitempty"`
}

// CancelInvoiceReply is the JSON response for a cancellation.
type CancelInvoiceReply struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}
