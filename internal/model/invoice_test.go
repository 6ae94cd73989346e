package model_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/cetustek-go/internal/model"
)

func validCreateInput() model.CreateInvoiceInput {
	return model.CreateInvoiceInput{
		OrderID:         "10293847",
		OrderDate:       "2026/08/30",
		DonateMark:      model.DonateMarkNone,
		InvoiceType:     model.InvoiceTypeGeneral,
		TaxType:         model.TaxTypeTaxable,
		PayWay:          "1",
		BuyerIdentifier: "53118823",
		BuyerName:       "鯨躍科技有限公司",
		BuyerEmail:      "test@cetustek.com.tw",
		Items: []model.InvoiceItem{
			{
				ProductionCode: "AA783456",
				Description:    "DESCAA7890123456",
				Quantity:       decimal.NewFromInt(1),
				Unit:           "月",
				UnitPrice:      decimal.NewFromInt(50000),
			},
		},
	}
}

func TestCreateInvoiceInput_Validate(t *testing.T) {
	require.NoError(t, validCreateInput().Validate())

	tests := []struct {
		name   string
		mutate func(*model.CreateInvoiceInput)
		field  string
	}{
		{
			name:   "missing order id",
			mutate: func(in *model.CreateInvoiceInput) { in.OrderID = "" },
			field:  "order_id",
		},
		{
			name:   "bad order date format",
			mutate: func(in *model.CreateInvoiceInput) { in.OrderDate = "2026-08-30" },
			field:  "order_date",
		},
		{
			name:   "donate mark outside enum",
			mutate: func(in *model.CreateInvoiceInput) { in.DonateMark = "3" },
			field:  "donate_mark",
		},
		{
			name:   "invoice type outside enum",
			mutate: func(in *model.CreateInvoiceInput) { in.InvoiceType = "09" },
			field:  "invoice_type",
		},
		{
			name:   "tax type outside enum",
			mutate: func(in *model.CreateInvoiceInput) { in.TaxType = "6" },
			field:  "tax_type",
		},
		{
			name:   "missing pay way",
			mutate: func(in *model.CreateInvoiceInput) { in.PayWay = "" },
			field:  "pay_way",
		},
		{
			name:   "empty items",
			mutate: func(in *model.CreateInvoiceInput) { in.Items = nil },
			field:  "items",
		},
		{
			name: "negative quantity",
			mutate: func(in *model.CreateInvoiceInput) {
				in.Items[0].Quantity = decimal.NewFromInt(-1)
			},
			field: "quantity",
		},
		{
			name: "negative unit price",
			mutate: func(in *model.CreateInvoiceInput) {
				in.Items[0].UnitPrice = decimal.NewFromInt(-50)
			},
			field: "unit_price",
		},
		{
			name: "negative tax rate",
			mutate: func(in *model.CreateInvoiceInput) {
				in.TaxRate = decimal.RequireFromString("-0.05")
			},
			field: "tax_rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput()
			tt.mutate(&in)

			err := in.Validate()
			require.Error(t, err)

			var verr *model.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCreateInvoiceInput_Totals(t *testing.T) {
	in := validCreateInput()
	in.Items = []model.InvoiceItem{
		{
			ProductionCode: "AA783456",
			Description:    "subscription",
			Quantity:       decimal.NewFromInt(2),
			UnitPrice:      decimal.NewFromInt(10000),
		},
		{
			ProductionCode: "BB112233",
			Description:    "setup fee",
			Quantity:       decimal.NewFromInt(1),
			UnitPrice:      decimal.NewFromInt(3000),
		},
	}

	sales, tax, total := in.Totals()

	// Sales = 2*10000 + 3000 = 23000, tax at default 5% = 1150
	assert.True(t, sales.Equal(decimal.NewFromInt(23000)), "sales = %s", sales)
	assert.True(t, tax.Equal(decimal.NewFromInt(1150)), "tax = %s", tax)
	assert.True(t, total.Equal(decimal.NewFromInt(24150)), "total = %s", total)
}

func TestCreateInvoiceInput_TotalsZeroRate(t *testing.T) {
	for _, taxType := range []model.TaxType{model.TaxTypeZeroRate, model.TaxTypeExempt} {
		in := validCreateInput()
		in.TaxType = taxType

		sales, tax, total := in.Totals()
		assert.True(t, sales.Equal(decimal.NewFromInt(50000)))
		assert.True(t, tax.IsZero(), "tax type %s should carry no tax", taxType)
		assert.True(t, total.Equal(sales))
	}
}

func TestCreateInvoiceInput_TotalsExplicitRate(t *testing.T) {
	in := validCreateInput()
	in.TaxRate = decimal.RequireFromString("0.10")

	_, tax, _ := in.Totals()
	assert.True(t, tax.Equal(decimal.NewFromInt(5000)))
}

func TestCreateInvoiceResponse_InvoiceYear(t *testing.T) {
	resp := model.CreateInvoiceResponse{InvoiceNumber: "WP20260002", RandomCode: "6827"}
	assert.Equal(t, "2026", resp.InvoiceYear())

	// Too short to carry a year
	assert.Equal(t, "", model.CreateInvoiceResponse{InvoiceNumber: "WP26"}.InvoiceYear())
}

func TestQueryInvoiceInput_Validate(t *testing.T) {
	in := model.QueryInvoiceInput{InvoiceNumber: "WP20260002", InvoiceYear: "2026"}
	require.NoError(t, in.Validate())

	in.InvoiceNumber = "12345678AB"
	err := in.Validate()
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "invoice_number", verr.Field)

	in = model.QueryInvoiceInput{InvoiceNumber: "WP20260002", InvoiceYear: "26"}
	err = in.Validate()
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "invoice_year", verr.Field)
}

func TestCancelInvoiceInput_Validate(t *testing.T) {
	in := model.CancelInvoiceInput{
		InvoiceNumber: "WP20260002",
		InvoiceYear:   "2026",
		Remark:        "測試作廢",
	}
	require.NoError(t, in.Validate())

	in.InvoiceYear = "20266"
	require.Error(t, in.Validate())
}

func TestNewCancelInvoiceResponse(t *testing.T) {
	ok := model.NewCancelInvoiceResponse("C0")
	assert.True(t, ok.Success)
	assert.Equal(t, "C0", ok.Code)
	assert.Empty(t, ok.Message)

	rejected := model.NewCancelInvoiceResponse("E99")
	assert.False(t, rejected.Success)
	assert.Equal(t, "E99", rejected.Code)
	assert.Equal(t, "E99", rejected.Message)
}

func TestErrorFormatting(t *testing.T) {
	verr := model.NewValidationError("invoice_type", "09", "enum", "invoice type must be 07 or 08")
	assert.Contains(t, verr.Error(), "invoice_type")
	assert.Contains(t, verr.Error(), "09")

	aerr := model.NewAPIError("createInvoice", "E01", "rent id not found")
	assert.Contains(t, aerr.Error(), "E01")
	assert.Contains(t, aerr.Error(), "rent id not found")

	cause := errors.New("connection refused")
	terr := model.NewTransportError("queryInvoice", "request failed", cause)
	assert.Contains(t, terr.Error(), "request failed")
	assert.ErrorIs(t, terr, cause)
}
