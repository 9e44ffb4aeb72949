package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"facturier/internal/core/types"
)

func TestAddLine_SequentialNumbering(t *testing.T) {
	inv := &Invoice{ID: 10}

	inv.AddLine(100, 2, types.MustMoney("49.90"))
	inv.AddLine(200, 1, types.MustMoney("189.00"))
	inv.AddLine(300, 5, types.MustMoney("19.90"))

	assert.Len(t, inv.Lines, 3)
	for i, line := range inv.Lines {
		assert.Equal(t, i+1, line.LineNo)
		assert.Equal(t, int64(10), line.InvoiceID)
	}
}

func TestLineAmount(t *testing.T) {
	line := Line{Quantity: 3, Price: types.MustMoney("19.90")}
	assert.True(t, line.Amount().Equal(types.MustMoney("59.70")))
}

func TestInvoiceTotal(t *testing.T) {
	inv := &Invoice{}
	inv.AddLine(100, 2, types.MustMoney("49.90")) // 99.80
	inv.AddLine(200, 1, types.MustMoney("189.00"))

	assert.True(t, inv.Total().Equal(types.MustMoney("288.80")))
}

func TestInvoiceTotal_NoLines(t *testing.T) {
	inv := &Invoice{}
	assert.True(t, inv.Total().IsZero())
}
