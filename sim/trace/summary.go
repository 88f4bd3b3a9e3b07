package trace

// Summary holds the four scalar outcomes of a run, all measured as of
// the end of the horizon (the tail holding-cost interval included).
type Summary struct {
	FinalProfit       float64 `json:"final_profit"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalOrderingCost float64 `json:"total_ordering_cost"`
	TotalHoldingCost  float64 `json:"total_holding_cost"`
}

// LogStats aggregates event counts from a Log.
type LogStats struct {
	Entries        int
	Purchases      int // customer arrivals of any classification
	Stockouts      int // entries carrying lost demand
	OrdersPlaced   int // entries with ReorderPlaced set
	OrdersReceived int
	UnitsSold      int
	UnitsLost      int
}

// Summarize computes aggregate statistics from a Log.
// Safe for nil or empty logs (returns zero-value fields).
func Summarize(log Log) LogStats {
	var stats LogStats
	stats.Entries = len(log)
	for _, e := range log {
		switch e.Kind {
		case KindPurchase, KindPurchaseStockout, KindPurchaseReorder:
			stats.Purchases++
			stats.UnitsSold += -e.Delta
		case KindOrderArrival:
			stats.OrdersReceived++
		}
		if e.ReorderPlaced {
			stats.OrdersPlaced++
		}
		if e.Stockout != nil {
			stats.Stockouts++
			stats.UnitsLost += e.Stockout.Lost
		}
	}
	return stats
}
