package client

import (
	"github.com/beevik/etree"

	"github.com/rezonia/cetustek-go/internal/model"
)

// invoiceXSDVersion is pinned by the vendor's interface document.
const invoiceXSDVersion = "2.8"

func addText(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).CreateText(value)
}

// createInvoiceXML serializes the invoice document embedded in a
// CreateInvoiceV3 request. Field order follows the vendor's XSD; optional
// fields are sent as empty elements, except Unit which is omitted entirely.
func createInvoiceXML(in model.CreateInvoiceInput) (string, error) {
	doc := etree.NewDocument()
	inv := doc.CreateElement("Invoice")
	inv.CreateAttr("XSDVersion", invoiceXSDVersion)

	addText(inv, "OrderId", in.OrderID)
	addText(inv, "OrderDate", in.OrderDate)
	addText(inv, "BuyerIdentifier", in.BuyerIdentifier)
	addText(inv, "BuyerName", in.BuyerName)
	addText(inv, "BuyerAddress", in.BuyerAddress)
	addText(inv, "BuyerEmailAddress", in.BuyerEmail)
	addText(inv, "DonateMark", string(in.DonateMark))
	addText(inv, "InvoiceType", string(in.InvoiceType))
	addText(inv, "CarrierType", in.CarrierType)
	addText(inv, "CarrierId1", in.CarrierID1)
	addText(inv, "CarrierId2", in.CarrierID2)
	addText(inv, "NPOBAN", in.NPOBAN)
	addText(inv, "PayWay", in.PayWay)
	addText(inv, "TaxType", string(in.TaxType))
	addText(inv, "TaxRate", in.EffectiveTaxRate().String())
	addText(inv, "Remark", in.Remark)

	details := inv.CreateElement("Details")
	for _, item := range in.Items {
		p := details.CreateElement("ProductItem")
		addText(p, "ProductionCode", item.ProductionCode)
		addText(p, "Description", item.Description)
		addText(p, "Quantity", item.Quantity.String())
		if item.Unit != "" {
			addText(p, "Unit", item.Unit)
		}
		addText(p, "UnitPrice", item.UnitPrice.String())
	}

	return doc.WriteToString()
}

// cancelInvoiceXML serializes the invoice document embedded in a
// CancelInvoice request.
func cancelInvoiceXML(in model.CancelInvoiceInput) (string, error) {
	doc := etree.NewDocument()
	inv := doc.CreateElement("Invoice")
	inv.CreateAttr("XSDVersion", invoiceXSDVersion)

	addText(inv, "InvoiceNumber", in.InvoiceNumber)
	addText(inv, "InvoiceYear", in.InvoiceYear)
	addText(inv, "ReturnTaxDocumentNumber", in.ReturnTaxDocumentNumber)
	addText(inv, "Remark", in.Remark)

	return doc.WriteToString()
}
