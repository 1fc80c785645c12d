// Package models defines server-side data models persisted in the store.
package models

import "time"

// Cart maps a catalog item key to its quantity. Quantities are never
// negative; an absent key and a zero quantity both mean "not in cart".
type Cart map[string]int

// Quantity returns the quantity for key, 0 when absent.
func (c Cart) Quantity(key string) int {
	return c[key]
}

// Clone returns an independent copy. A nil cart clones to an empty one.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Equal compares carts treating zero quantities as absent keys.
func (c Cart) Equal(other Cart) bool {
	for k, v := range c {
		if other[k] != v {
			return false
		}
	}
	for k, v := range other {
		if c[k] != v {
			return false
		}
	}
	return true
}

// User is a registered shopper.
type User struct {
	ID           string
	DisplayName  string
	Email        string
	PasswordHash string
	Cart         Cart
	CreatedAt    time.Time
}

// Clone returns a copy that shares no mutable state with u.
func (u *User) Clone() *User {
	c := *u
	c.Cart = u.Cart.Clone()
	return &c
}
