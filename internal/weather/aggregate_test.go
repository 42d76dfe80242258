package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	require.NoError(t, err)
	return d
}

func ptr(v float64) *float64 { return &v }

func TestAggregateForecast_DailyStats(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	samples := []sample{
		{At: day.Add(3 * time.Hour), Temp: 10, Humidity: 60, WindSpeed: 3, Pop: 0.1, Condition: "light rain"},
		{At: day.Add(6 * time.Hour), Temp: 14, Humidity: 70, WindSpeed: 4, Pop: 0.456, Condition: "clear sky"},
		{At: day.Add(9 * time.Hour), Temp: 12.5, Humidity: 65, WindSpeed: 5, Pop: 0.2, Condition: "light rain"},
	}

	days := aggregateForecast(samples, date(t, "2024-06-01"), date(t, "2024-06-01"))
	require.Len(t, days, 1)

	d := days[0]
	assert.Equal(t, "2024-06-01", d.Date)
	assert.Equal(t, "Saturday", d.Day)
	assert.Equal(t, 14.0, d.TempMax)
	assert.Equal(t, 10.0, d.TempMin)
	assert.Equal(t, 12.2, d.TempAvg)
	assert.Equal(t, "light rain", d.Condition)
	assert.Equal(t, 46, d.RainChance)
	assert.Equal(t, 65, d.Humidity)
	assert.Equal(t, 4.0, d.WindSpeed)
}

func TestAggregateForecast_FiltersToRangeAndSorts(t *testing.T) {
	base := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	var samples []sample
	// Newest first to prove output ordering does not depend on input ordering.
	for h := 5*24 - 3; h >= 0; h -= 3 {
		samples = append(samples, sample{At: base.Add(time.Duration(h) * time.Hour), Temp: float64(h), Condition: "clouds"})
	}

	days := aggregateForecast(samples, date(t, "2024-06-01"), date(t, "2024-06-03"))
	require.Len(t, days, 3)
	assert.Equal(t, "2024-06-01", days[0].Date)
	assert.Equal(t, "2024-06-02", days[1].Date)
	assert.Equal(t, "2024-06-03", days[2].Date)
	// 2024-06-01 spans hours 24..45 from base.
	assert.Equal(t, 24.0, days[0].TempMin)
	assert.Equal(t, 45.0, days[0].TempMax)
}

func TestAggregateForecast_UsesSampleLocation(t *testing.T) {
	loc := time.FixedZone("", 2*3600)
	// 23:00 UTC on June 1st is already June 2nd at UTC+2.
	at := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC).In(loc)

	days := aggregateForecast([]sample{{At: at, Temp: 20, Condition: "clear sky"}}, date(t, "2024-06-01"), date(t, "2024-06-02"))
	require.Len(t, days, 1)
	assert.Equal(t, "2024-06-02", days[0].Date)
}

func TestAggregateForecast_NoSamplesInRange(t *testing.T) {
	at := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	days := aggregateForecast([]sample{{At: at, Temp: 20}}, date(t, "2024-06-01"), date(t, "2024-06-03"))
	assert.Empty(t, days)
	assert.NotNil(t, days)
}

func TestEstimateCondition_Boundaries(t *testing.T) {
	cases := []struct {
		precip    float64
		condition string
		rain      int
	}{
		{5.1, "rainy", 70},
		{5, "partly cloudy with showers", 50},
		{2, "mostly cloudy", 30},
		{0.5, "mostly sunny", 10},
		{0, "mostly sunny", 10},
	}
	for _, tc := range cases {
		condition, rain := estimateCondition(tc.precip)
		assert.Equal(t, tc.condition, condition, "precip %v", tc.precip)
		assert.Equal(t, tc.rain, rain, "precip %v", tc.precip)
	}
}

func TestClimateDays(t *testing.T) {
	var resp climateResponse
	resp.Daily.Time = []string{"2024-08-01", "2024-08-02", "2024-08-03"}
	resp.Daily.TempMean = []*float64{ptr(21.04), nil, ptr(19)}
	resp.Daily.TempMax = []*float64{ptr(26.26), ptr(25), ptr(24)}
	resp.Daily.TempMin = []*float64{ptr(15.96), ptr(15), ptr(14)}
	resp.Daily.Precipitation = []*float64{ptr(6.2), ptr(0), nil}

	days := climateDays(&resp)
	require.Len(t, days, 2, "day with a null mean temperature is skipped")

	assert.Equal(t, "2024-08-01", days[0].Date)
	assert.Equal(t, "Thursday", days[0].Day)
	assert.Equal(t, 26.3, days[0].TempMax)
	assert.Equal(t, 16.0, days[0].TempMin)
	assert.Equal(t, 21.0, days[0].TempAvg)
	assert.Equal(t, "rainy", days[0].Condition)
	assert.Equal(t, 70, days[0].RainChance)
	assert.Equal(t, 65, days[0].Humidity)
	assert.Equal(t, 3.5, days[0].WindSpeed)

	assert.Equal(t, "2024-08-03", days[1].Date)
	assert.Equal(t, "mostly sunny", days[1].Condition, "null precipitation counts as dry")
}

func TestSummarize(t *testing.T) {
	days := []DailyForecast{
		{TempAvg: 20, TempMax: 27, TempMin: 16, RainChance: 70},
		{TempAvg: 22, TempMax: 25, TempMin: 15, RainChance: 60},
	}
	assert.Equal(t,
		"Average temperature: 21.0°C (Range: 15.0°C to 27.0°C). High chance of rain - pack an umbrella!",
		Summarize(days, DataForecast))

	days[0].RainChance, days[1].RainChance = 40, 30
	assert.Equal(t,
		"Typical weather for this time of year: Average temperature: 21.0°C (Range: 15.0°C to 27.0°C). Some rain possible - bring a light rain jacket.",
		Summarize(days, DataClimate))

	days[0].RainChance, days[1].RainChance = 30, 30
	assert.Contains(t, Summarize(days, DataForecast), "Mostly dry weather expected.")
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, "Weather forecast not available", Summarize(nil, DataForecast))
}

func TestMode_TieGoesToFirst(t *testing.T) {
	assert.Equal(t, "clouds", mode([]string{"clouds", "rain", "rain", "clouds"}))
	assert.Equal(t, "", mode(nil))
}
