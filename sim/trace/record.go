// Package trace provides the event log and summary types for inventory
// simulation runs. This package has no dependency on sim/ — it stores
// pure data types handed to callers by value.
package trace

// Kind classifies a logged state transition. It is a closed enumeration;
// free-form event labels are not used.
type Kind string

const (
	// KindInit is the initial state entry appended before any event fires.
	KindInit Kind = "init"
	// KindPurchase is a customer arrival fully served from on-hand stock.
	KindPurchase Kind = "purchase"
	// KindPurchaseStockout is a customer arrival whose demand exceeded
	// on-hand stock; the excess is lost, never backordered.
	KindPurchaseStockout Kind = "purchase-stockout"
	// KindPurchaseReorder is a customer arrival that dropped on-hand
	// inventory below the reorder point and placed a replenishment order.
	KindPurchaseReorder Kind = "purchase-reorder"
	// KindOrderArrival is the delivery of an outstanding order.
	KindOrderArrival Kind = "order-arrival"
)

// Stockout carries the structured detail of a lost-sales event.
type Stockout struct {
	Requested int `json:"requested"` // demand drawn for this customer
	Fulfilled int `json:"fulfilled"` // units actually sold
	Lost      int `json:"lost"`      // demand forfeited
}

// Entry is one immutable event-log record. One entry is appended per
// state transition, including the initial state; insertion order is
// chronological order.
//
// A simultaneous stockout and reorder is labeled as the stockout only;
// ReorderPlaced and Stockout record both facts regardless of the label.
type Entry struct {
	Time          float64   `json:"time"`
	Kind          Kind      `json:"kind"`
	OnHand        int       `json:"on_hand"`
	InTransit     int       `json:"in_transit"`
	Profit        float64   `json:"profit"` // running R − C − H as of this entry
	Delta         int       `json:"delta"`  // net on-hand change (negative for sales)
	ReorderPlaced bool      `json:"reorder_placed,omitempty"`
	Stockout      *Stockout `json:"stockout,omitempty"`
}

// Log is the ordered sequence of entries produced by one run.
type Log []Entry
