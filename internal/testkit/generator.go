package testkit

import (
	"fmt"
	"math"
	"math/rand"

	"paygap/domain/compensation"
)

// GeneratorConfig configures the synthetic compensation data generator
type GeneratorConfig struct {
	RecordCount     int     `json:"record_count"`
	MissingRatioPct float64 `json:"missing_ratio_pct"`
	MissingFieldPct float64 `json:"missing_field_pct"`
	Seed            int64   `json:"seed"`
}

// DefaultGeneratorConfig returns sensible defaults for demo-sized data
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RecordCount:     120,
		MissingRatioPct: 0.08,
		MissingFieldPct: 0.05,
		Seed:            42,
	}
}

// CompensationGenerator generates realistic executive compensation records
type CompensationGenerator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewCompensationGenerator creates a new generator
func NewCompensationGenerator(config GeneratorConfig) *CompensationGenerator {
	return &CompensationGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var industries = []string{
	"Technology", "Financial Services", "Healthcare", "Retail",
	"Energy", "Industrials", "Media", "Consumer Goods",
}

var companySuffixes = []string{
	"Holdings", "Group", "Industries", "Corp", "Partners", "Systems",
}

var firstNames = []string{
	"Alex", "Blair", "Casey", "Drew", "Emerson", "Finley", "Gray",
	"Harper", "Indira", "Jordan", "Kai", "Lennox", "Morgan", "Noor",
	"Oakley", "Parker", "Quinn", "Reese", "Sasha", "Taylor",
}

var lastNames = []string{
	"Abbott", "Barnes", "Calloway", "Delgado", "Ellison", "Faulkner",
	"Grantham", "Holloway", "Iverson", "Jablonski", "Kowalski",
	"Lindqvist", "Mercado", "Novak", "Okafor", "Pemberton", "Quintero",
	"Rutherford", "Sorensen", "Takahashi",
}

// Generate builds the full synthetic table. Deterministic for a given seed.
func (g *CompensationGenerator) Generate() compensation.Table {
	table := make(compensation.Table, 0, g.config.RecordCount)
	for i := 0; i < g.config.RecordCount; i++ {
		table = append(table, g.record())
	}
	return table
}

// record generates one executive. Salary follows a log-normal-ish spread so
// the pay gap story has shape; the pay level tracks the salary band the way
// the source data labels it.
func (g *CompensationGenerator) record() compensation.Record {
	industry := industries[g.rng.Intn(len(industries))]
	company := fmt.Sprintf("%s %s", lastNames[g.rng.Intn(len(lastNames))],
		companySuffixes[g.rng.Intn(len(companySuffixes))])

	// Log-normal salary, ~$400k floor to tens of millions, skewed low but
	// with enough tail to populate every pay level band.
	salary := math.Exp(14.0 + g.rng.NormFloat64()*1.5)
	if salary < 400000 {
		salary = 400000 + g.rng.Float64()*200000
	}

	medianPay := 28000 + g.rng.Float64()*90000
	ratio := salary / medianPay

	rec := compensation.Record{
		Name:              fmt.Sprintf("%s %s", firstNames[g.rng.Intn(len(firstNames))], lastNames[g.rng.Intn(len(lastNames))]),
		Company:           company,
		Ticker:            fmt.Sprintf("%c%c%c", 'A'+g.rng.Intn(26), 'A'+g.rng.Intn(26), 'A'+g.rng.Intn(26)),
		Industry:          industry,
		Salary:            math.Round(salary),
		PayRatio:          math.Round(ratio),
		MedianWorkerPay:   math.Round(medianPay),
		MarketCapBillions: math.Round((0.5+g.rng.Float64()*400)*10) / 10,
		CEOTenureYears:    float64(1 + g.rng.Intn(25)),
		Employees:         float64(500 + g.rng.Intn(400000)),
		PayLevel:          compensation.ParsePayLevel(levelForSalary(salary)),
	}

	// Sprinkle realistic gaps so missing-value paths stay exercised.
	if g.rng.Float64() < g.config.MissingRatioPct {
		rec.PayRatio = compensation.MissingValue()
	}
	if g.rng.Float64() < g.config.MissingFieldPct {
		rec.MarketCapBillions = compensation.MissingValue()
	}
	if g.rng.Float64() < g.config.MissingFieldPct {
		rec.Employees = compensation.MissingValue()
	}
	if g.rng.Float64() < g.config.MissingFieldPct {
		rec.Industry = ""
	}
	return rec
}

// levelForSalary assigns the ordered severity band the source labels pay with.
func levelForSalary(salary float64) string {
	switch {
	case salary < 1e6:
		return compensation.LevelMinimal
	case salary < 5e6:
		return compensation.LevelLow
	case salary < 15e6:
		return compensation.LevelMedium
	case salary < 40e6:
		return compensation.LevelHigh
	default:
		return compensation.LevelExtreme
	}
}
