package httpd

import "testing"

func TestHeaderLookup(t *testing.T) {
	h := Header{
		{Name: "X-Foo", Value: "b"},
		{Name: "content-length", Value: "5"},
		{Name: "x-foo", Value: "a"},
	}
	if v, ok := h.Lookup("X-FOO"); !ok || v != "b" {
		t.Fatalf("Lookup X-FOO = %q, %v; want first match b", v, ok)
	}
	if got := h.Get("Content-Length"); got != "5" {
		t.Fatalf("Get Content-Length = %q", got)
	}
	if _, ok := h.Lookup("Host"); ok {
		t.Fatal("Lookup Host should miss")
	}
	if _, ok := Header(nil).Lookup("Host"); ok {
		t.Fatal("nil header should miss")
	}
}
