package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/order-intake-service/internal/model"
)

func TestConsoleReport(t *testing.T) {
	var items model.ItemList
	require.NoError(t, json.Unmarshal([]byte(`[{"name": "Pizza", "quantity": 2, "price": 300}, "Coke"]`), &items))

	order := &model.Order{
		Timestamp:   "2026-08-29 12:30:00",
		TableNumber: model.NewTableNumber("5"),
		Items:       items,
		TotalCost:   model.NewTotalCost(640),
		Note:        "extra cheese",
	}

	var buf bytes.Buffer
	NewConsole(&buf).Report(order)

	want := "\n✅ NEW ORDER RECEIVED\n" +
		"🕒 Time: 2026-08-29 12:30:00\n" +
		"🪑 Table Number: 5\n" +
		"🍽️  Items Ordered:\n" +
		"   - Pizza (2) - ₹300\n" +
		"   - Coke\n" +
		"💰 Total Cost: ₹640\n" +
		"📝 Notes: extra cheese\n"
	assert.Equal(t, want, buf.String())
}

func TestConsoleReportEmptyOrder(t *testing.T) {
	order := &model.Order{
		Timestamp: "2026-08-29 12:30:00",
		Items:     model.ItemList{},
	}

	var buf bytes.Buffer
	NewConsole(&buf).Report(order)

	assert.Contains(t, buf.String(), "🍽️  Items Ordered:\n💰 Total Cost: ₹\n")
}
