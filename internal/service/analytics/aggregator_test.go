package analytics

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
)

func TestSummarizeMilkCollections(t *testing.T) {
	records := []models.MilkCollection{
		{Date: "2024-05-01", QuantityLtr: "10", CostPerLitre: "40", CollectionTime: "morning"},
		{Date: "2024-05-01", QuantityLtr: "5", CostPerLitre: "42", CollectionTime: "night"},
	}

	summary := Summarize(records, MilkFields())

	assert.InDelta(t, 15, summary.TotalQuantity, 1e-6)
	assert.True(t, summary.TotalValue.Equal(decimal.RequireFromString("610")),
		"want 610, got %s", summary.TotalValue)
	assert.Equal(t, map[string]int{"morning": 1, "night": 1}, summary.Counts)
}

func TestSummarizeCoercesMalformedNumbers(t *testing.T) {
	records := []models.MilkCollection{
		{QuantityLtr: "abc", CostPerLitre: "40"},
		{QuantityLtr: "7", CostPerLitre: ""},
		{QuantityLtr: " 3 ", CostPerLitre: "10"},
	}

	summary := Summarize(records, MilkFields())

	assert.InDelta(t, 10, summary.TotalQuantity, 1e-6)
	assert.True(t, summary.TotalValue.Equal(decimal.RequireFromString("30")))
}

func TestSummarizeIsOrderIndependent(t *testing.T) {
	records := []models.MilkCollection{
		{QuantityLtr: "10.5", CostPerLitre: "39.25", CollectionTime: "morning"},
		{QuantityLtr: "0.1", CostPerLitre: "41", CollectionTime: "morning"},
		{QuantityLtr: "7.33", CostPerLitre: "38.5", CollectionTime: "night"},
		{QuantityLtr: "12", CostPerLitre: "40", CollectionTime: "night"},
	}
	want := Summarize(records, MilkFields())

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.MilkCollection, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Summarize(shuffled, MilkFields())
		assert.InDelta(t, want.TotalQuantity, got.TotalQuantity, 1e-6)
		assert.True(t, want.TotalValue.Equal(got.TotalValue))
		assert.Equal(t, want.Counts, got.Counts)
	}
}

func TestSummarizeSalesUsesStoredTotal(t *testing.T) {
	records := []models.Sale{
		{Quantity: "2", Rate: "60", Total: "120.00", PaymentStatus: "paid"},
		{Quantity: "1", Rate: "45", Total: "45.00", PaymentStatus: "unpaid"},
		{Quantity: "3", Rate: "20", Total: "60.00", PaymentStatus: "paid"},
	}

	summary := Summarize(records, SaleFields())

	assert.InDelta(t, 6, summary.TotalQuantity, 1e-6)
	assert.True(t, summary.TotalValue.Equal(decimal.RequireFromString("225")))
	assert.Equal(t, map[string]int{"paid": 2, "unpaid": 1}, summary.Counts)
}

func TestSummarizeEmptyInput(t *testing.T) {
	summary := Summarize(nil, MilkFields())

	require.NotNil(t, summary.Counts)
	assert.Zero(t, summary.TotalQuantity)
	assert.True(t, summary.TotalValue.IsZero())
	assert.Empty(t, summary.Counts)
}
