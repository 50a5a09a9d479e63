// Package address provides the in-process shareable address the filter
// machine syncs with.
package address

import (
	"net/url"
	"sync"

	"github.com/techstore/techstore-cli/internal/ports"
)

// Bar holds the current query parameters of the shareable address. A
// malformed initial query degrades to an empty one; decoding never fails.
type Bar struct {
	mu     sync.Mutex
	values url.Values
}

var _ ports.AddressBar = (*Bar)(nil)

func NewBar(rawQuery string) *Bar {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		values = url.Values{}
	}
	return &Bar{values: values}
}

// NewBarFromLink extracts the query from a full shareable link. Anything
// unparseable degrades to an empty query.
func NewBarFromLink(link string) *Bar {
	parsed, err := url.Parse(link)
	if err != nil {
		return &Bar{values: url.Values{}}
	}
	return NewBar(parsed.RawQuery)
}

func (b *Bar) Query() url.Values {
	b.mu.Lock()
	defer b.mu.Unlock()
	return copyValues(b.values)
}

func (b *Bar) Replace(values url.Values) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values = copyValues(values)
}

// Encode renders the query in canonical form (keys sorted, values escaped).
func (b *Bar) Encode() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.values.Encode()
}

// Link renders a full shareable address for the storefront root.
func (b *Bar) Link(base string) string {
	encoded := b.Encode()
	if encoded == "" {
		return base
	}
	return base + "?" + encoded
}

func copyValues(values url.Values) url.Values {
	out := url.Values{}
	for key, vals := range values {
		out[key] = append([]string(nil), vals...)
	}
	return out
}
