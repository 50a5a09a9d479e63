package address

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarQueryReturnsCopy(t *testing.T) {
	t.Parallel()

	bar := NewBar("search=iphone")

	values := bar.Query()
	values.Set("search", "tampered")

	assert.Equal(t, "iphone", bar.Query().Get("search"))
}

func TestBarReplace(t *testing.T) {
	t.Parallel()

	bar := NewBar("")
	values := url.Values{}
	values.Set("category", "phones")

	bar.Replace(values)
	values.Set("category", "tampered")

	assert.Equal(t, "phones", bar.Query().Get("category"))
}

func TestBarMalformedQueryDegradesToEmpty(t *testing.T) {
	t.Parallel()

	bar := NewBar("%zz=broken")
	assert.Empty(t, bar.Query())
}

func TestBarLink(t *testing.T) {
	t.Parallel()

	bar := NewBar("")
	assert.Equal(t, "https://store.example/products", bar.Link("https://store.example/products"))

	values := url.Values{}
	values.Set("search", "pro max")
	values.Set("category", "phones")
	bar.Replace(values)

	assert.Equal(t, "https://store.example/products?category=phones&search=pro+max", bar.Link("https://store.example/products"))
}

func TestNewBarFromLink(t *testing.T) {
	t.Parallel()

	bar := NewBarFromLink("https://store.example/products?search=iphone&minPrice=100")
	require.Equal(t, "iphone", bar.Query().Get("search"))
	assert.Equal(t, "100", bar.Query().Get("minPrice"))

	broken := NewBarFromLink("://not-a-link")
	assert.Empty(t, broken.Query())
}
