package analytics

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
)

// Summary holds the aggregated totals for a bucket of records. Counts maps
// a categorical field value (collection time, payment status) to its number
// of occurrences, used to render presence badges.
type Summary struct {
	TotalQuantity float64         `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Counts        map[string]int  `json:"counts"`
}

// FieldSet tells the aggregator how to read a record kind. Quantity and
// Value return already-coerced numbers; Category is optional and returns
// the categorical field value, empty when not applicable.
type FieldSet[R any] struct {
	Quantity func(R) float64
	Value    func(R) decimal.Decimal
	Category func(R) string
}

// Summarize reduces records into a Summary with a single linear scan.
// Totals are plain sums, so the result does not depend on input order.
func Summarize[R any](records []R, fields FieldSet[R]) Summary {
	summary := Summary{
		TotalValue: decimal.Zero,
		Counts:     make(map[string]int),
	}

	for _, rec := range records {
		if fields.Quantity != nil {
			summary.TotalQuantity += fields.Quantity(rec)
		}
		if fields.Value != nil {
			summary.TotalValue = summary.TotalValue.Add(fields.Value(rec))
		}
		if fields.Category != nil {
			if cat := fields.Category(rec); cat != "" {
				summary.Counts[cat]++
			}
		}
	}

	return summary
}

// Quantity parses a numeric form value, treating anything unparsable as
// zero. The entry forms never validated numerics, so bad input must degrade
// instead of failing a whole view.
func Quantity(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}

// Money parses a monetary form value, treating anything unparsable as zero.
func Money(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return value
}

// MilkFields reads milk collections: litres collected, litres times the
// per-litre cost, and the morning/night collection slot.
func MilkFields() FieldSet[models.MilkCollection] {
	return FieldSet[models.MilkCollection]{
		Quantity: func(m models.MilkCollection) float64 { return Quantity(m.QuantityLtr) },
		Value: func(m models.MilkCollection) decimal.Decimal {
			return Money(m.QuantityLtr).Mul(Money(m.CostPerLitre))
		},
		Category: func(m models.MilkCollection) string { return m.CollectionTime },
	}
}

// SaleFields reads sales: units sold, the stored client-computed total, and
// the payment status.
func SaleFields() FieldSet[models.Sale] {
	return FieldSet[models.Sale]{
		Quantity: func(s models.Sale) float64 { return Quantity(s.Quantity) },
		Value:    func(s models.Sale) decimal.Decimal { return Money(s.Total) },
		Category: func(s models.Sale) string { return s.PaymentStatus },
	}
}
