package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeMargin(t *testing.T) {
	p := Product{
		UnitCost:  decimal.NewFromInt(5000),
		UnitPrice: decimal.NewFromInt(10000),
	}
	p.ComputeMargin()
	assert.True(t, p.MarginPct.Equal(decimal.NewFromInt(50)), "margin %s", p.MarginPct)
}

func TestComputeMarginZeroPrice(t *testing.T) {
	p := Product{UnitCost: decimal.NewFromInt(5000)}
	p.ComputeMargin()
	assert.True(t, p.MarginPct.IsZero())
}

func TestIsGuestRef(t *testing.T) {
	assert.True(t, IsGuestRef(""))
	assert.True(t, IsGuestRef(GuestPhone))
	assert.False(t, IsGuestRef("0812000111"))
}
