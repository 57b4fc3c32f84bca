// Package models defines the core data structures for items, sales, costs,
// places and reports.
package models

import (
	"encoding/json"
	"time"
)

// Item is a schemaless document: whatever object the caller posted,
// stored verbatim alongside a server-generated identifier.
type Item struct {
	// ID is the server-generated identifier of the item.
	ID string
	// Fields holds the caller-supplied object as submitted.
	Fields map[string]any
}

// MarshalJSON renders the item as its original object with the
// generated id merged in.
func (i Item) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(i.Fields)+1)
	for k, v := range i.Fields {
		out[k] = v
	}
	out["id"] = i.ID
	return json.Marshal(out)
}

// Sale is one recorded transaction of a food item at a place.
type Sale struct {
	// ID is the server-generated identifier of the sale.
	ID string `json:"id"`
	// FoodID references the sold item as supplied by the caller.
	FoodID string `json:"foodId"`
	// FoodName is the display name of the sold item.
	FoodName string `json:"foodName"`
	// Place is the vendor location the sale is attributed to.
	Place string `json:"place"`
	// Quantity is the number of units sold.
	Quantity int64 `json:"quantity"`
	// UnitPrice is the price of a single unit.
	UnitPrice float64 `json:"unitPrice"`
	// Total is the caller-reported total for the transaction.
	Total float64 `json:"total"`
	// Date is the insertion time, always assigned by the server.
	Date time.Time `json:"date"`
}

// Cost is one recorded expenditure at a place.
type Cost struct {
	// ID is the server-generated identifier of the cost.
	ID string `json:"id"`
	// Place is the vendor location the cost is attributed to.
	Place string `json:"place"`
	// Type categorizes the cost (see CostType).
	Type string `json:"type"`
	// Amount is the expenditure amount.
	Amount float64 `json:"amount"`
	// Date is the expenditure date as supplied by the caller.
	Date time.Time `json:"date"`
}

// Place is a vendor/stall location tracked for sales and cost attribution.
type Place struct {
	// ID is the server-generated identifier of the place.
	ID string `json:"id"`
	// Name is the unique display name of the place.
	Name string `json:"name"`
	// CreatedAt is the insertion time, always assigned by the server.
	CreatedAt time.Time `json:"createdAt"`
}

// Report holds aggregated totals over an optional place/date filter.
type Report struct {
	TotalSales float64 `json:"totalSales"`
	TotalCost  float64 `json:"totalCost"`
	Profit     float64 `json:"profit"`
}

// InsertResult is the acknowledgement returned by create operations.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// ListFilter narrows sale/cost queries. The date range applies only
// when ByDate is set; From is inclusive and To is exclusive, so a
// whole-day upper bound is expressed as midnight of the following day.
type ListFilter struct {
	Place  string
	From   time.Time
	To     time.Time
	ByDate bool
}

// CostType names the documented cost categories. The type field is
// free-form and the convention is not enforced at write time.
type CostType string

const (
	// CostFood covers ingredient and stock purchases.
	CostFood CostType = "food"
	// CostTransport covers delivery and travel expenses.
	CostTransport CostType = "transport"
	// CostRent covers stall or venue rent.
	CostRent CostType = "rent"
	// CostHelper covers hired-help wages.
	CostHelper CostType = "helper"
	// CostMisc covers anything that fits no other category.
	CostMisc CostType = "misc"
)
