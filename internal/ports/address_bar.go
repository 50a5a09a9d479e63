package ports

import "net/url"

// AddressBar is the shareable address the filter machine syncs with. Query
// returns a copy of the current query parameters; Replace swaps them
// wholesale. The filter machine reads the query exactly once at startup and
// only writes afterwards.
type AddressBar interface {
	Query() url.Values
	Replace(values url.Values)
}
