package compensation

import (
	"sort"
	"testing"
)

// TestPayLevelOrdering verifies the five-value domain keeps its total order
func TestPayLevelOrdering(t *testing.T) {
	domain := PayLevelDomain()
	if len(domain) != 5 {
		t.Fatalf("Expected 5 domain levels, got %d", len(domain))
	}

	for i := 1; i < len(domain); i++ {
		lower := ParsePayLevel(domain[i-1])
		higher := ParsePayLevel(domain[i])
		if !lower.Less(higher) {
			t.Errorf("Expected %s < %s", lower, higher)
		}
		if higher.Less(lower) {
			t.Errorf("Expected %s not < %s", higher, lower)
		}
	}
}

// TestPayLevelOutOfDomain verifies unknown labels are retained without rank
func TestPayLevelOutOfDomain(t *testing.T) {
	level := ParsePayLevel("Stratospheric")
	if level.Known() {
		t.Error("Out-of-domain label should not be known")
	}
	if level.Rank() != 0 {
		t.Errorf("Out-of-domain rank should be 0, got %d", level.Rank())
	}
	if level.String() != "Stratospheric" {
		t.Errorf("Raw label should be preserved, got %q", level.String())
	}
	// Unknown levels sort below every known level.
	if !level.Less(ParsePayLevel(LevelMinimal)) {
		t.Error("Unknown level should sort below Minimal")
	}
}

// TestPayLevelSortStability verifies sorting a mixed set follows domain order
func TestPayLevelSortStability(t *testing.T) {
	labels := []string{LevelExtreme, LevelLow, "Weird", LevelMinimal, LevelHigh, LevelMedium}
	levels := make([]PayLevel, len(labels))
	for i, l := range labels {
		levels[i] = ParsePayLevel(l)
	}

	sort.Slice(levels, func(i, j int) bool { return levels[i].Less(levels[j]) })

	want := []string{"Weird", LevelMinimal, LevelLow, LevelMedium, LevelHigh, LevelExtreme}
	for i, l := range levels {
		if l.String() != want[i] {
			t.Errorf("Position %d: got %s, want %s", i, l, want[i])
		}
	}
}

// TestTableIndustries verifies distinct sorted industries, unknown excluded
func TestTableIndustries(t *testing.T) {
	table := Table{
		{Name: "A", Industry: "Tech"},
		{Name: "B", Industry: "Retail"},
		{Name: "C", Industry: "Tech"},
		{Name: "D", Industry: ""},
	}

	got := table.Industries()
	want := []string{"Retail", "Tech"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

// TestTablePayLevels verifies present levels come back in domain order
func TestTablePayLevels(t *testing.T) {
	table := Table{
		{Name: "A", PayLevel: ParsePayLevel(LevelExtreme)},
		{Name: "B", PayLevel: ParsePayLevel(LevelLow)},
		{Name: "C", PayLevel: ParsePayLevel("Weird")},
	}

	got := table.PayLevels()
	want := []string{LevelLow, LevelExtreme}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

// TestSortBySalaryDescDoesNotMutate verifies sorting derives a new table
func TestSortBySalaryDescDoesNotMutate(t *testing.T) {
	table := Table{
		{Name: "Low", Salary: 1},
		{Name: "High", Salary: 3},
		{Name: "Mid", Salary: 2},
	}

	sorted := table.SortBySalaryDesc()
	if sorted[0].Name != "High" || sorted[2].Name != "Low" {
		t.Errorf("Unexpected sort order: %v", sorted)
	}
	if table[0].Name != "Low" {
		t.Error("Original table was mutated by sort")
	}
}

// TestMissingValue verifies the NaN missing convention round-trips
func TestMissingValue(t *testing.T) {
	if !Missing(MissingValue()) {
		t.Error("MissingValue should be missing")
	}
	if Missing(0) {
		t.Error("Zero is a legitimate value, not missing")
	}
}
