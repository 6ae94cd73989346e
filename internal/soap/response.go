package soap

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

func permissiveDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	return doc
}

// ReturnValue extracts the payload of the <return> element from a response
// envelope. Namespace prefixes and tag case are ignored. Entity references
// are resolved during parsing, so the result of a query call is the plain
// invoice XML the vendor escaped into the element.
func ReturnValue(body []byte) (string, error) {
	doc := permissiveDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return "", fmt.Errorf("failed to parse response envelope: %w", err)
	}

	el := findElement(doc.Root(), "return")
	if el == nil {
		return "", fmt.Errorf("invalid response: missing return element")
	}
	return strings.TrimSpace(el.Text()), nil
}

// FieldValue looks up a single element value inside a vendor XML document.
// The second return reports whether the element was present with a
// non-empty value.
func FieldValue(xmlDoc, tag string) (string, bool) {
	doc := permissiveDocument()
	if err := doc.ReadFromString(xmlDoc); err != nil {
		return "", false
	}

	el := findElement(doc.Root(), tag)
	if el == nil {
		return "", false
	}
	value := strings.TrimSpace(el.Text())
	return value, value != ""
}

// IsXML reports whether a return payload looks like an XML document rather
// than a bare vendor error code.
func IsXML(payload string) bool {
	return strings.HasPrefix(strings.TrimSpace(payload), "<")
}

// findElement walks the tree depth-first for the first element whose local
// tag matches, ignoring case.
func findElement(el *etree.Element, tag string) *etree.Element {
	if el == nil {
		return nil
	}
	if strings.EqualFold(el.Tag, tag) {
		return el
	}
	for _, child := range el.ChildElements() {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}
