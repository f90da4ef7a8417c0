package compensation

import (
	"encoding/json"
	"math"
	"sort"
)

// Record is one row of the canonical table: one executive at one company.
// Numeric fields use NaN for missing values so partially coerced rows survive
// without sentinel zeros polluting the statistics.
type Record struct {
	Name              string   `json:"name"`
	Company           string   `json:"company"`
	Ticker            string   `json:"ticker,omitempty"`
	Industry          string   `json:"industry,omitempty"`
	Salary            float64  `json:"salary"`
	PayRatio          float64  `json:"pay_ratio"`
	MedianWorkerPay   float64  `json:"median_worker_pay"`
	MarketCapBillions float64  `json:"market_cap_billions"`
	CEOTenureYears    float64  `json:"ceo_tenure_years"`
	Employees         float64  `json:"employees"`
	PayLevel          PayLevel `json:"pay_level"`
}

// recordJSON is the wire shape: missing numeric cells serialize as null,
// since NaN is not representable in JSON.
type recordJSON struct {
	Name              string   `json:"name"`
	Company           string   `json:"company"`
	Ticker            string   `json:"ticker,omitempty"`
	Industry          string   `json:"industry,omitempty"`
	Salary            *float64 `json:"salary"`
	PayRatio          *float64 `json:"pay_ratio"`
	MedianWorkerPay   *float64 `json:"median_worker_pay"`
	MarketCapBillions *float64 `json:"market_cap_billions"`
	CEOTenureYears    *float64 `json:"ceo_tenure_years"`
	Employees         *float64 `json:"employees"`
	PayLevel          PayLevel `json:"pay_level"`
}

func optional(v float64) *float64 {
	if Missing(v) {
		return nil
	}
	return &v
}

func required(p *float64) float64 {
	if p == nil {
		return MissingValue()
	}
	return *p
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Name:              r.Name,
		Company:           r.Company,
		Ticker:            r.Ticker,
		Industry:          r.Industry,
		Salary:            optional(r.Salary),
		PayRatio:          optional(r.PayRatio),
		MedianWorkerPay:   optional(r.MedianWorkerPay),
		MarketCapBillions: optional(r.MarketCapBillions),
		CEOTenureYears:    optional(r.CEOTenureYears),
		Employees:         optional(r.Employees),
		PayLevel:          r.PayLevel,
	})
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var w recordJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = Record{
		Name:              w.Name,
		Company:           w.Company,
		Ticker:            w.Ticker,
		Industry:          w.Industry,
		Salary:            required(w.Salary),
		PayRatio:          required(w.PayRatio),
		MedianWorkerPay:   required(w.MedianWorkerPay),
		MarketCapBillions: required(w.MarketCapBillions),
		CEOTenureYears:    required(w.CEOTenureYears),
		Employees:         required(w.Employees),
		PayLevel:          w.PayLevel,
	}
	return nil
}

// Missing reports whether a numeric cell failed coercion or was absent.
func Missing(v float64) bool {
	return math.IsNaN(v)
}

// MissingValue is the canonical missing numeric cell.
func MissingValue() float64 {
	return math.NaN()
}

// HasIndustry reports whether the record carries a usable industry label.
// Empty and literal "nan" labels from the source are treated as unknown.
func (r Record) HasIndustry() bool {
	return r.Industry != ""
}

// Table is the canonical record set produced by the loader. It is read-only
// by convention: filtering and metric computation derive new slices and never
// mutate rows in place, so one table can back every view in a render pass.
type Table []Record

// Len returns the number of records.
func (t Table) Len() int {
	return len(t)
}

// Industries returns the distinct known industry labels, sorted.
func (t Table) Industries() []string {
	seen := make(map[string]bool)
	for _, rec := range t {
		if rec.HasIndustry() {
			seen[rec.Industry] = true
		}
	}
	out := make([]string, 0, len(seen))
	for ind := range seen {
		out = append(out, ind)
	}
	sort.Strings(out)
	return out
}

// PayLevels returns the domain labels that actually occur in the table,
// in domain order. Out-of-domain labels are excluded: they cannot be offered
// as an ordered filter choice.
func (t Table) PayLevels() []string {
	present := make(map[string]bool)
	for _, rec := range t {
		if rec.PayLevel.Known() {
			present[rec.PayLevel.String()] = true
		}
	}
	out := make([]string, 0, len(present))
	for _, label := range PayLevelDomain() {
		if present[label] {
			out = append(out, label)
		}
	}
	return out
}

// SortBySalaryDesc returns a new table sorted by salary, highest first.
// Ties keep the original order.
func (t Table) SortBySalaryDesc() Table {
	out := make(Table, len(t))
	copy(out, t)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Salary > out[j].Salary
	})
	return out
}
