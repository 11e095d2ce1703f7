package entities

// UnitRepairCounter is the per-(customer, unit) monotonic repair count. Count
// is the number of repairs ever created for the unit; the next repair uses
// Count as its 0-based tier index. Version guards concurrent increments: a
// commit carries the version it read, and a mismatch means another submission
// won the race.
//
// Storage model (DynamoDB):
//   - PK: key = "C#<customer_id>#U#<unit_number>"
type UnitRepairCounter struct {
	CustomerID string `json:"customer_id"`
	UnitNumber string `json:"unit_number"`
	Count      int    `json:"count"`
	Version    int64  `json:"version"`
}

// CustomerRepairTotal is the customer's lifetime repair count across all
// units, used for the volume-discount threshold check. Maintained in the same
// transaction as the per-unit counter.
//
// Storage model (DynamoDB):
//   - PK: key = "C#<customer_id>#TOTAL"
type CustomerRepairTotal struct {
	CustomerID string `json:"customer_id"`
	Count      int    `json:"count"`
	Version    int64  `json:"version"`
}
