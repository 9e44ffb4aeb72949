package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"facturier/internal/core/types"
	"facturier/internal/domain/invoice"
)

func TestFromInvoice(t *testing.T) {
	now := time.Now()
	inv := &invoice.Invoice{ID: 5, CustomerID: 7, CreatedAt: now}
	inv.AddLine(100, 2, types.MustMoney("49.90"))
	inv.AddLine(200, 1, types.MustMoney("189.00"))

	resp := FromInvoice(inv)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, int64(7), resp.CustomerID)
	assert.Len(t, resp.Lines, 2)

	assert.Equal(t, 1, resp.Lines[0].LineNo)
	assert.True(t, resp.Lines[0].Amount.Equal(types.MustMoney("99.80")))
	assert.Equal(t, 2, resp.Lines[1].LineNo)
	assert.True(t, resp.Total.Equal(types.MustMoney("288.80")))
}

func TestFromInvoice_NoLines(t *testing.T) {
	inv := &invoice.Invoice{ID: 1, CustomerID: 2}

	resp := FromInvoice(inv)

	assert.Empty(t, resp.Lines)
	assert.True(t, resp.Total.IsZero())
}
