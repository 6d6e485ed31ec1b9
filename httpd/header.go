package httpd

import "strings"

type HeaderField struct {
	Name  string
	Value string
}

// Header is the ordered list of fields of a request. ReadRequest stores
// them last-received first. Duplicates are kept.
type Header []HeaderField

// Lookup returns the value of the first field whose name equals name,
// ignoring case.
func (h Header) Lookup(name string) (string, bool) {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

func (h Header) Get(name string) string {
	v, _ := h.Lookup(name)
	return v
}
