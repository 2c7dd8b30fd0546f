// Package fqdn provides the borrowed key type the trie indexes on: a
// dot-separated, case-insensitive Fully Qualified Domain Name.
package fqdn

import "strings"

// FQDN is a dot-separated domain name, stored without a leading or trailing
// dot and without any nul terminator. The zero value is the root domain ".",
// the universal ancestor of every FQDN.
type FQDN struct {
	content []byte
}

// HasFQDN is implemented by anything the trie can store: a payload that can
// report the key it is filed under. The returned FQDN must be stable for
// the lifetime of the leaf.
type HasFQDN interface {
	FQDN() FQDN
}

// Root is the empty domain ".", the universal ancestor.
func Root() FQDN { return FQDN{} }

// New builds an FQDN from a dotted string such as "mail.orange.com" or
// "mail.orange.com.". A single trailing dot is stripped; "." and "" both
// denote the root.
func New(s string) FQDN {
	if s == "." {
		return Root()
	}

	s = strings.TrimSuffix(s, ".")

	return FQDN{content: []byte(s)}
}

// Bytes returns the raw label content, with no leading/trailing dot and no
// nul terminator. Callers must not mutate the returned slice.
func (f FQDN) Bytes() []byte { return f.content }

// Len is the number of content bytes (0 for the root).
func (f FQDN) Len() int { return len(f.content) }

// IsRoot reports whether f is the empty domain ".".
func (f FQDN) IsRoot() bool { return len(f.content) == 0 }

// String renders f as a dotted string, "." for the root.
func (f FQDN) String() string {
	if f.IsRoot() {
		return "."
	}

	return string(f.content)
}

// Equal reports whether f and other denote the same domain, ignoring ASCII
// letter case.
func (f FQDN) Equal(other FQDN) bool {
	return len(f.content) == len(other.content) && asciiEqualFold(f.content, other.content)
}

// IsSubdomainOf reports whether ancestor is a (possibly improper) ancestor
// of f in the domain-label hierarchy: f == ancestor, or f ends with
// "."+ancestor at a label boundary. The root is an ancestor of everything.
func (f FQDN) IsSubdomainOf(ancestor FQDN) bool {
	if ancestor.IsRoot() {
		return true
	}

	m, n := len(f.content), len(ancestor.content)

	switch {
	case m < n:
		return false
	case m == n:
		return asciiEqualFold(f.content, ancestor.content)
	default:
		return f.content[m-n-1] == '.' && asciiEqualFold(f.content[m-n:], ancestor.content)
	}
}

func asciiEqualFold(a, b []byte) bool {
	for i := range a {
		if foldByte(a[i]) != foldByte(b[i]) {
			return false
		}
	}

	return true
}

func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}

	return b
}
