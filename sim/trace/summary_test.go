package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_EmptyAndNilLogs(t *testing.T) {
	assert.Equal(t, LogStats{}, Summarize(nil))
	assert.Equal(t, LogStats{}, Summarize(Log{}))
}

func TestSummarize_CountsAllEventKinds(t *testing.T) {
	log := Log{
		{Kind: KindInit, OnHand: 40},
		{Kind: KindPurchase, Delta: -2},
		{Kind: KindPurchaseReorder, Delta: -3, ReorderPlaced: true},
		{Kind: KindPurchaseStockout, Delta: -1,
			Stockout: &Stockout{Requested: 4, Fulfilled: 1, Lost: 3}},
		{Kind: KindOrderArrival, Delta: 10},
		// A stockout that also placed a reorder keeps the stockout
		// label but still counts as an order placement.
		{Kind: KindPurchaseStockout, Delta: -2, ReorderPlaced: true,
			Stockout: &Stockout{Requested: 5, Fulfilled: 2, Lost: 3}},
	}

	stats := Summarize(log)

	assert.Equal(t, 6, stats.Entries)
	assert.Equal(t, 4, stats.Purchases)
	assert.Equal(t, 2, stats.Stockouts)
	assert.Equal(t, 2, stats.OrdersPlaced)
	assert.Equal(t, 1, stats.OrdersReceived)
	assert.Equal(t, 8, stats.UnitsSold)
	assert.Equal(t, 6, stats.UnitsLost)
}
