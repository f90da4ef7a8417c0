package compensation

import "encoding/json"

// PayLevel is an ordered severity category summarizing relative compensation.
// The five-value domain Minimal < Low < Medium < High < Extreme is semantically
// ordered: charts sort and color by it. Values outside the domain are retained
// with their raw label but rank below every known level.
type PayLevel struct {
	raw string
}

// Ordered domain labels.
const (
	LevelMinimal = "Minimal"
	LevelLow     = "Low"
	LevelMedium  = "Medium"
	LevelHigh    = "High"
	LevelExtreme = "Extreme"
)

// payLevelOrder maps known labels to their rank within the domain.
var payLevelOrder = map[string]int{
	LevelMinimal: 1,
	LevelLow:     2,
	LevelMedium:  3,
	LevelHigh:    4,
	LevelExtreme: 5,
}

// PayLevelDomain returns the five-value domain in ascending order.
func PayLevelDomain() []string {
	return []string{LevelMinimal, LevelLow, LevelMedium, LevelHigh, LevelExtreme}
}

// ParsePayLevel wraps a raw label. Out-of-domain labels are not rejected;
// they simply carry no ordering rank.
func ParsePayLevel(raw string) PayLevel {
	return PayLevel{raw: raw}
}

// String returns the raw label, empty for a missing level.
func (p PayLevel) String() string {
	return p.raw
}

// IsZero reports whether no level was present in the source at all.
func (p PayLevel) IsZero() bool {
	return p.raw == ""
}

// Known reports whether the label belongs to the ordered five-value domain.
func (p PayLevel) Known() bool {
	_, ok := payLevelOrder[p.raw]
	return ok
}

// Rank returns the position within the ordered domain, 1-based.
// Unknown and missing levels return 0, sorting below every known level.
func (p PayLevel) Rank() int {
	return payLevelOrder[p.raw]
}

// Less orders levels by domain rank; ties fall back to the raw label so
// out-of-domain values still sort deterministically.
func (p PayLevel) Less(other PayLevel) bool {
	if p.Rank() != other.Rank() {
		return p.Rank() < other.Rank()
	}
	return p.raw < other.raw
}

// MarshalJSON renders the level as its raw label.
func (p PayLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.raw)
}

// UnmarshalJSON accepts any label; out-of-domain values stay unranked.
func (p *PayLevel) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &p.raw)
}
