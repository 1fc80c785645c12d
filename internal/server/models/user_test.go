package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_EqualTreatsZeroAsAbsent(t *testing.T) {
	assert.True(t, Cart{"42": 1, "7": 0}.Equal(Cart{"42": 1}))
	assert.True(t, Cart{}.Equal(Cart{"1": 0, "2": 0}))
	assert.True(t, Cart(nil).Equal(Cart{}))
	assert.False(t, Cart{"42": 1}.Equal(Cart{"42": 2}))
	assert.False(t, Cart{"42": 1}.Equal(Cart{}))
}

func TestCart_Quantity(t *testing.T) {
	c := Cart{"42": 3}
	assert.Equal(t, 3, c.Quantity("42"))
	assert.Equal(t, 0, c.Quantity("missing"))
	assert.Equal(t, 0, Cart(nil).Quantity("x"))
}

func TestUser_CloneIsIndependent(t *testing.T) {
	u := &User{ID: "u-1", Email: "a@x.com", Cart: Cart{"42": 1}}
	c := u.Clone()
	c.Cart["42"] = 5
	c.Email = "b@x.com"

	assert.Equal(t, 1, u.Cart["42"])
	assert.Equal(t, "a@x.com", u.Email)
}

func TestCart_CloneOfNilIsEmptyMap(t *testing.T) {
	c := Cart(nil).Clone()
	assert.NotNil(t, c)
	assert.Empty(t, c)
}
