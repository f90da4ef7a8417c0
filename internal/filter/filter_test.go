package filter

import (
	"testing"

	"paygap/domain/compensation"
)

func sampleTable() compensation.Table {
	return compensation.Table{
		{Name: "A", Industry: "Tech", Salary: 100, PayLevel: compensation.ParsePayLevel(compensation.LevelExtreme)},
		{Name: "B", Industry: "Tech", Salary: 90, PayLevel: compensation.ParsePayLevel(compensation.LevelHigh)},
		{Name: "C", Industry: "Retail", Salary: 50, PayLevel: compensation.ParsePayLevel(compensation.LevelLow)},
		{Name: "D", Industry: "", Salary: 40, PayLevel: compensation.ParsePayLevel(compensation.LevelMinimal)},
		{Name: "E", Industry: "Aviation", Salary: 30, PayLevel: compensation.ParsePayLevel("Weird")},
	}
}

// TestApplyDefaultIsIdentity verifies the default selection filters nothing
func TestApplyDefaultIsIdentity(t *testing.T) {
	table := sampleTable()
	got := All().Apply(table)
	if len(got) != len(table) {
		t.Fatalf("Default selection should keep all %d rows, kept %d", len(table), len(got))
	}
}

// TestApplyFullSetsRoundTrip verifies that selecting every industry and every
// present pay level reproduces the canonical table row for row
func TestApplyFullSetsRoundTrip(t *testing.T) {
	table := sampleTable()
	sel := Selection{
		Industries: table.Industries(),
		PayLevels:  table.PayLevels(),
	}

	got := sel.Apply(table)
	if len(got) != len(table) {
		t.Fatalf("Full selection should round-trip %d rows, kept %d", len(table), len(got))
	}
	for i := range table {
		if got[i].Name != table[i].Name {
			t.Errorf("Row %d: got %s, want %s", i, got[i].Name, table[i].Name)
		}
	}
	if !sel.IsAll(table) {
		t.Error("Full selection should report IsAll")
	}
}

// TestApplyIndustrySubset verifies AND intersection with a proper subset
func TestApplyIndustrySubset(t *testing.T) {
	table := sampleTable()
	sel := Selection{Industries: []string{"Tech"}}

	got := sel.Apply(table)
	if len(got) != 2 {
		t.Fatalf("Expected 2 Tech rows, got %d", len(got))
	}
	for _, rec := range got {
		if rec.Industry != "Tech" {
			t.Errorf("Unexpected industry %q", rec.Industry)
		}
	}
}

// TestApplyCombinesByIntersection verifies both criteria must hold
func TestApplyCombinesByIntersection(t *testing.T) {
	table := sampleTable()
	sel := Selection{
		Industries: []string{"Tech"},
		PayLevels:  []string{compensation.LevelHigh},
	}

	got := sel.Apply(table)
	if len(got) != 1 || got[0].Name != "B" {
		t.Fatalf("Expected only record B, got %v", got)
	}
}

// TestApplyCanProduceEmptySet verifies zero matching rows is legal
func TestApplyCanProduceEmptySet(t *testing.T) {
	table := sampleTable()
	sel := Selection{
		Industries: []string{"Retail"},
		PayLevels:  []string{compensation.LevelExtreme},
	}

	got := sel.Apply(table)
	if len(got) != 0 {
		t.Fatalf("Expected empty result, got %d rows", len(got))
	}
}

// TestApplyDoesNotMutateInput verifies the canonical table is read-only
func TestApplyDoesNotMutateInput(t *testing.T) {
	table := sampleTable()
	sel := Selection{Industries: []string{"Tech"}}
	_ = sel.Apply(table)

	if len(table) != 5 || table[2].Name != "C" {
		t.Error("Apply mutated the input table")
	}
}

// TestDetailNarrowsToOneIndustry verifies the top-N detail selection
func TestDetailNarrowsToOneIndustry(t *testing.T) {
	table := sampleTable()
	sel := Selection{DetailIndustry: "Retail"}

	got := sel.Detail(table)
	if len(got) != 1 || got[0].Name != "C" {
		t.Fatalf("Expected only the Retail record, got %v", got)
	}

	// No detail industry selected passes the view through.
	if n := len(Selection{}.Detail(table)); n != len(table) {
		t.Errorf("Empty detail should pass through, got %d rows", n)
	}
}
