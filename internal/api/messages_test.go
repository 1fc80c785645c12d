package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemKey_StringOrNumber(t *testing.T) {
	tests := []struct {
		body string
		want ItemKey
	}{
		{`{"itemId":"42"}`, "42"},
		{`{"itemId":42}`, "42"},
		{`{"itemId": 7 }`, "7"},
		{`{"itemId":null}`, ""},
		{`{}`, ""},
	}
	for _, tt := range tests {
		var req CartItemRequest
		require.NoError(t, json.Unmarshal([]byte(tt.body), &req), tt.body)
		assert.Equal(t, tt.want, req.ItemID, tt.body)
	}

	var req CartItemRequest
	assert.Error(t, json.Unmarshal([]byte(`{"itemId":true}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"itemId":{}}`), &req))
}

func TestItemKey_EncodesAsString(t *testing.T) {
	b, err := json.Marshal(CartItemRequest{ItemID: "42"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"itemId":"42"}`, string(b))
}

func TestProductConversion(t *testing.T) {
	date := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	p := ProductFromModel(&models.Product{ID: 3, Name: "n", Image: "i", Category: "c", NewPrice: 1.5, OldPrice: 2, Date: date, Available: true})

	assert.Equal(t, Product{ID: 3, Name: "n", Image: "i", Category: "c", NewPrice: 1.5, OldPrice: 2, Date: date, Available: true}, p)

	m := AddProductRequest{Name: "n", Image: "i", Category: "c", NewPrice: 1, OldPrice: 2}.Model()
	assert.Equal(t, "n", m.Name)
	assert.InDelta(t, 2.0, m.OldPrice, 0)

	assert.Empty(t, ProductsFromModels(nil))
}
