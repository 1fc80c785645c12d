// Package api defines the messages exchanged by the storefront transports.
// The same types are carried as JSON by the gRPC service and the HTTP
// gateway, so field names follow the storefront web client.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ItemKey identifies a catalog item in a cart. It decodes from a JSON string
// or a JSON number; 42 and "42" name the same item.
type ItemKey string

func (k *ItemKey) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*k = ItemKey(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("item key must be a string or a number: %w", err)
	}
	*k = ItemKey(n.String())
	return nil
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type CartRequest struct{}

type CartItemRequest struct {
	ItemID ItemKey `json:"itemId"`
}

type CartResponse struct {
	Success  bool           `json:"success"`
	CartData map[string]int `json:"cartData"`
}

type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	NewPrice  float64   `json:"new_price"`
	OldPrice  float64   `json:"old_price"`
	Date      time.Time `json:"date"`
	Available bool      `json:"available"`
}

type AddProductRequest struct {
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	NewPrice float64 `json:"new_price"`
	OldPrice float64 `json:"old_price"`
}

type AddProductResponse struct {
	Success bool    `json:"success"`
	Name    string  `json:"name"`
	Product Product `json:"product"`
}

type RemoveProductRequest struct {
	ID int64 `json:"id"`
}

type RemoveProductResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type ProductsRequest struct{}

type ProductsResponse struct {
	Products []Product `json:"products"`
}

type PresignImageUploadRequest struct {
	FileName string `json:"file_name"`
}

type PresignImageUploadResponse struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	ImageURL string `json:"image_url"`
}

type UploadImageRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

type UploadImageResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"image_url"`
}

type PingRequest struct{}

type PingResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
