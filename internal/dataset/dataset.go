// Package dataset provides the synthetic wildfire cost dataset.
package dataset

import "firecost/internal/core"

// DefaultYear is used when a caller does not ask for a specific year.
const DefaultYear = 2024

// Source yields cost records for a year.
type Source interface {
	Load(year int) []core.CostRecord
}

// Fixture is the in-memory Source backed by a fixed synthetic dataset.
// Loading never fails and involves no I/O; the requested year is stamped
// onto each record.
type Fixture struct{}

// NewFixture returns the fixture-backed record source.
func NewFixture() Fixture {
	return Fixture{}
}

// baseRecords is the synthetic suppression cost table: four regions, three
// categories, hours tracked for aircraft only. Order is fixed.
var baseRecords = []core.CostRecord{
	{Region: "South", Category: "aircraft", Cost: 176870.51, Hours: 116.9},
	{Region: "Central", Category: "aircraft", Cost: 161923.60, Hours: 102.7},
	{Region: "Northwest", Category: "aircraft", Cost: 154527.82, Hours: 94.8},
	{Region: "Northeast", Category: "aircraft", Cost: 131905.83, Hours: 123.2},
	{Region: "Central", Category: "personnel", Cost: 97266.43, Hours: 0},
	{Region: "Northeast", Category: "personnel", Cost: 84489.65, Hours: 0},
	{Region: "Northwest", Category: "personnel", Cost: 76568.23, Hours: 0},
	{Region: "South", Category: "personnel", Cost: 74011.79, Hours: 0},
	{Region: "Central", Category: "equipment", Cost: 66877.06, Hours: 0},
	{Region: "Northeast", Category: "equipment", Cost: 61460.99, Hours: 0},
	{Region: "Northwest", Category: "equipment", Cost: 58812.48, Hours: 0},
	{Region: "South", Category: "equipment", Cost: 49164.94, Hours: 0},
}

// Load returns the fixed dataset for the given year in insertion order.
// A non-positive year falls back to DefaultYear.
func (Fixture) Load(year int) []core.CostRecord {
	if year <= 0 {
		year = DefaultYear
	}
	records := make([]core.CostRecord, len(baseRecords))
	copy(records, baseRecords)
	for i := range records {
		records[i].Year = year
	}
	return records
}
