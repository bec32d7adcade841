package reportgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
)

func TestPeriodLabelDay(t *testing.T) {
	now := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)

	cases := map[string]string{
		"2024-05-01": "1st May 2024",
		"2024-05-02": "2nd May 2024",
		"2024-05-03": "3rd May 2024",
		"2024-05-04": "4th May 2024",
		"2024-05-11": "11th May 2024",
		"2024-05-12": "12th May 2024",
		"2024-05-13": "13th May 2024",
		"2024-05-21": "21st May 2024",
		"2024-05-22": "22nd May 2024",
		"2024-05-23": "23rd May 2024",
	}
	for date, want := range cases {
		label, err := PeriodLabel(models.Period{Kind: models.PeriodDay, Date: date}, now)
		require.NoError(t, err, date)
		assert.Equal(t, want, label)
	}
}

func TestPeriodLabelWeek(t *testing.T) {
	now := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)

	// 2024-05-01 is a Wednesday; the containing Monday week is Apr 29 - May 5.
	label, err := PeriodLabel(models.Period{Kind: models.PeriodWeek, Date: "2024-05-01"}, now)
	require.NoError(t, err)
	assert.Equal(t, "29th Apr – 5th May 2024", label)

	// A Monday is its own week start.
	label, err = PeriodLabel(models.Period{Kind: models.PeriodWeek, Date: "2024-05-06"}, now)
	require.NoError(t, err)
	assert.Equal(t, "6th May – 12th May 2024", label)

	// A Sunday closes out the preceding Monday's week.
	label, err = PeriodLabel(models.Period{Kind: models.PeriodWeek, Date: "2024-05-05"}, now)
	require.NoError(t, err)
	assert.Equal(t, "29th Apr – 5th May 2024", label)
}

func TestPeriodLabelMonth(t *testing.T) {
	now := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)

	label, err := PeriodLabel(models.Period{Kind: models.PeriodMonth, Date: "jan"}, now)
	require.NoError(t, err)
	assert.Equal(t, "January 2024", label)

	// Keys are case-insensitive and whitespace-tolerant.
	label, err = PeriodLabel(models.Period{Kind: models.PeriodMonth, Date: " DEC "}, now)
	require.NoError(t, err)
	assert.Equal(t, "December 2024", label)

	_, err = PeriodLabel(models.Period{Kind: models.PeriodMonth, Date: "smarch"}, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown month key")
}

func TestPeriodLabelRejectsBadInput(t *testing.T) {
	now := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)

	_, err := PeriodLabel(models.Period{Kind: models.PeriodDay, Date: "01-05-2024"}, now)
	assert.Error(t, err)

	_, err = PeriodLabel(models.Period{Kind: "quarter", Date: "2024-05-01"}, now)
	assert.Error(t, err)
}

func TestOrdinal(t *testing.T) {
	assert.Equal(t, "1st", ordinal(1))
	assert.Equal(t, "2nd", ordinal(2))
	assert.Equal(t, "3rd", ordinal(3))
	assert.Equal(t, "11th", ordinal(11))
	assert.Equal(t, "12th", ordinal(12))
	assert.Equal(t, "13th", ordinal(13))
	assert.Equal(t, "21st", ordinal(21))
	assert.Equal(t, "31st", ordinal(31))
}
