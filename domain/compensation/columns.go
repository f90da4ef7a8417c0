package compensation

// FieldKind selects the coercion rule applied to a mapped column.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldCurrency
	FieldRatio
	FieldNumeric
	FieldLevel
)

// Column binds a canonical field name to its coercion rule.
type Column struct {
	Field string
	Kind  FieldKind
}

// Canonical field names.
const (
	FieldName              = "name"
	FieldCompany           = "company"
	FieldTicker            = "ticker"
	FieldIndustry          = "industry"
	FieldSalary            = "salary"
	FieldPayRatio          = "pay_ratio"
	FieldMedianWorkerPay   = "median_worker_pay"
	FieldMarketCapBillions = "market_cap_billions"
	FieldCEOTenureYears    = "ceo_tenure_years"
	FieldEmployees         = "employees"
	FieldPayLevel          = "pay_level"
)

// ColumnMapping is the fixed dictionary from source spreadsheet headers
// (whitespace-trimmed) to canonical columns. Headers absent from the source
// are simply not populated; source columns absent from this map are ignored.
var ColumnMapping = map[string]Column{
	"CEO Name":              {FieldName, FieldString},
	"Company":               {FieldCompany, FieldString},
	"Ticker":                {FieldTicker, FieldString},
	"Industry":              {FieldIndustry, FieldString},
	"Salary":                {FieldSalary, FieldCurrency},
	"Pay Ratio":             {FieldPayRatio, FieldRatio},
	"Median Worker Pay":     {FieldMedianWorkerPay, FieldCurrency},
	"Market Cap (Billions)": {FieldMarketCapBillions, FieldNumeric},
	"CEO Tenure (Years)":    {FieldCEOTenureYears, FieldNumeric},
	"Employees":             {FieldEmployees, FieldNumeric},
	"Pay Level":             {FieldPayLevel, FieldLevel},
}

// NumericFields lists the canonical numeric fields in stable presentation
// order, used by the correlation matrix and the coercion report.
var NumericFields = []string{
	FieldSalary,
	FieldPayRatio,
	FieldMedianWorkerPay,
	FieldMarketCapBillions,
	FieldCEOTenureYears,
	FieldEmployees,
}
