package dataset

import "testing"

func TestFixtureLoad(t *testing.T) {
	src := NewFixture()
	records := src.Load(2024)

	if len(records) != 12 {
		t.Fatalf("expected 12 records, got %d", len(records))
	}

	for i, r := range records {
		if err := r.Validate(); err != nil {
			t.Fatalf("record %d invalid: %v", i, err)
		}
		if r.Year != 2024 {
			t.Fatalf("record %d year = %d, want 2024", i, r.Year)
		}
	}

	// Insertion order is part of the contract.
	if records[0].Region != "South" || records[0].Category != "aircraft" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[11].Region != "South" || records[11].Category != "equipment" {
		t.Fatalf("unexpected last record: %+v", records[11])
	}
}

func TestFixtureLoadDefaultsYear(t *testing.T) {
	src := NewFixture()
	for _, year := range []int{0, -3} {
		records := src.Load(year)
		if records[0].Year != DefaultYear {
			t.Fatalf("Load(%d) year = %d, want %d", year, records[0].Year, DefaultYear)
		}
	}
}

func TestFixtureLoadStampsRequestedYear(t *testing.T) {
	src := NewFixture()
	records := src.Load(2019)
	for i, r := range records {
		if r.Year != 2019 {
			t.Fatalf("record %d year = %d, want 2019", i, r.Year)
		}
	}
}

func TestFixtureLoadReturnsFreshSlice(t *testing.T) {
	src := NewFixture()
	a := src.Load(2024)
	a[0].Cost = -1
	b := src.Load(2024)
	if b[0].Cost == -1 {
		t.Fatal("Load must not share backing storage between calls")
	}
}

func TestFixtureLoadCategoriesAndRegions(t *testing.T) {
	src := NewFixture()
	records := src.Load(2024)

	regions := map[string]int{}
	categories := map[string]int{}
	for _, r := range records {
		regions[r.Region]++
		categories[r.Category]++
	}

	for _, region := range []string{"Northwest", "Northeast", "Central", "South"} {
		if regions[region] != 3 {
			t.Fatalf("region %s has %d records, want 3", region, regions[region])
		}
	}
	for _, cat := range []string{"aircraft", "personnel", "equipment"} {
		if categories[cat] != 4 {
			t.Fatalf("category %s has %d records, want 4", cat, categories[cat])
		}
	}
}
