package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMonthlySeries_EmptyHasTwelveZeroBuckets(t *testing.T) {
	series := GenerateMonthlySeries(nil, nil, SeriesOptions{})

	require.Len(t, series, 12)
	for i, point := range series {
		assert.Equal(t, DefaultMonthLabels[i], point.Month)
		assert.True(t, point.Income.IsZero())
		assert.True(t, point.Expenses.IsZero())
	}
}

func TestGenerateMonthlySeries_SeasonalMergesYears(t *testing.T) {
	txs := []Transaction{
		income("100", day(2024, time.March, 1), "Salary"),
		income("200", day(2025, time.March, 1), "Salary"),
		expense("40", day(2025, time.December, 31), "Food"),
	}

	series := GenerateMonthlySeries(txs, nil, SeriesOptions{})

	assert.True(t, series[2].Income.Equal(dec("300")))
	assert.True(t, series[11].Expenses.Equal(dec("40")))
	assert.True(t, series[0].Income.IsZero())
}

func TestGenerateMonthlySeries_YearFilter(t *testing.T) {
	txs := []Transaction{
		income("100", day(2024, time.March, 1), "Salary"),
		income("200", day(2025, time.March, 1), "Salary"),
	}

	series := GenerateMonthlySeries(txs, nil, SeriesOptions{Year: 2025})

	assert.True(t, series[2].Income.Equal(dec("200")))
}

func TestGenerateMonthlySeries_CustomLabels(t *testing.T) {
	labels := []string{"Januari", "Februari", "Maret"}

	series := GenerateMonthlySeries(nil, labels, SeriesOptions{})

	assert.Equal(t, "Januari", series[0].Month)
	assert.Equal(t, "Maret", series[2].Month)
	assert.Equal(t, "Apr", series[3].Month)
}
