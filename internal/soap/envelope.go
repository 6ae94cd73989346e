// Package soap builds and decodes the SOAP 1.1 envelopes the Cetustek
// invoice web service speaks. The vendor's payloads are not schema-clean,
// so decoding is deliberately loose: element lookup ignores namespaces and
// tag case.
package soap

import (
	"github.com/beevik/etree"
)

const (
	envelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	vendorNamespace   = "http://webservice.cetustek.com/"
)

// Param is one parameter element inside the SOAP operation body.
type Param struct {
	Name  string
	Value string
	// CDATA wraps the value in a CDATA section. The vendor requires this
	// for embedded invoice documents.
	CDATA bool
}

// Envelope serializes a request envelope for the given vendor action.
func Envelope(action string, params []Param) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	env := doc.CreateElement("soap:Envelope")
	env.CreateAttr("xmlns:soap", envelopeNamespace)
	env.CreateAttr("xmlns:tns", vendorNamespace)

	body := env.CreateElement("soap:Body")
	op := body.CreateElement("tns:" + action)

	for _, p := range params {
		el := op.CreateElement(p.Name)
		if p.CDATA {
			el.CreateCData(p.Value)
		} else {
			el.CreateText(p.Value)
		}
	}

	return doc.WriteToBytes()
}
