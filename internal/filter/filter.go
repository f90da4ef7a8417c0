package filter

import (
	"paygap/domain/compensation"
)

// Selection holds the user's filter choices. Empty slices mean "everything",
// which is also the default the UI renders with. Criteria combine by
// intersection: a record must satisfy every populated criterion.
type Selection struct {
	Industries     []string `json:"industries"`
	PayLevels      []string `json:"pay_levels"`
	DetailIndustry string   `json:"detail_industry,omitempty"`
}

// All is the default selection: no filtering at all.
func All() Selection {
	return Selection{}
}

// Apply derives a filtered view of the table. The input is never mutated;
// the result shares record values but not slice storage.
//
// A selection listing every value present in the table behaves exactly like
// an empty one, so selecting the full industry and pay-level sets reproduces
// the canonical table, including rows with unknown industry or level.
func (s Selection) Apply(table compensation.Table) compensation.Table {
	industrySet := subsetOf(s.Industries, table.Industries())
	levelSet := subsetOf(s.PayLevels, table.PayLevels())

	out := make(compensation.Table, 0, len(table))
	for _, rec := range table {
		if industrySet != nil && !industrySet[rec.Industry] {
			continue
		}
		if levelSet != nil && !levelSet[rec.PayLevel.String()] {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Detail narrows the filtered view to the single-industry detail selection,
// or returns it unchanged when no detail industry is chosen.
func (s Selection) Detail(filtered compensation.Table) compensation.Table {
	if s.DetailIndustry == "" {
		return filtered
	}
	out := make(compensation.Table, 0)
	for _, rec := range filtered {
		if rec.Industry == s.DetailIndustry {
			out = append(out, rec)
		}
	}
	return out
}

// IsAll reports whether the selection filters nothing for the given table.
func (s Selection) IsAll(table compensation.Table) bool {
	return subsetOf(s.Industries, table.Industries()) == nil &&
		subsetOf(s.PayLevels, table.PayLevels()) == nil
}

// subsetOf returns a membership set when selected is a proper restriction of
// the domain, or nil when the selection is empty or covers the whole domain
// (no filtering needed either way).
func subsetOf(selected, domain []string) map[string]bool {
	if len(selected) == 0 {
		return nil
	}
	set := make(map[string]bool, len(selected))
	for _, v := range selected {
		set[v] = true
	}
	covers := true
	for _, v := range domain {
		if !set[v] {
			covers = false
			break
		}
	}
	if covers {
		return nil
	}
	return set
}
