package weather

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const (
	dateLayout = "2006-01-02"

	// Open-Meteo climate data carries neither humidity nor wind.
	climateHumidity  = 65
	climateWindSpeed = 3.5
)

// sample is one 3-hourly forecast point, with At in the destination's offset.
type sample struct {
	At        time.Time
	Temp      float64
	Humidity  float64
	WindSpeed float64
	Pop       float64
	Condition string
}

type dayBucket struct {
	temps      []float64
	humidity   []float64
	wind       []float64
	conditions []string
	maxPop     float64
}

// aggregateForecast groups samples into one DailyForecast per calendar day in
// [start, end]. start and end are civil dates; samples are compared in their
// own location.
func aggregateForecast(samples []sample, start, end time.Time) []DailyForecast {
	buckets := map[string]*dayBucket{}

	for _, s := range samples {
		loc := s.At.Location()
		from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		until := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
		if s.At.Before(from) || !s.At.Before(until) {
			continue
		}

		key := s.At.Format(dateLayout)
		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{}
			buckets[key] = b
		}
		b.temps = append(b.temps, s.Temp)
		b.humidity = append(b.humidity, s.Humidity)
		b.wind = append(b.wind, s.WindSpeed)
		b.conditions = append(b.conditions, s.Condition)
		if s.Pop > b.maxPop {
			b.maxPop = s.Pop
		}
	}

	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	days := make([]DailyForecast, 0, len(dates))
	for _, d := range dates {
		b := buckets[d]
		maxT, minT := minMax(b.temps)
		days = append(days, DailyForecast{
			Date:       d,
			Day:        weekday(d),
			TempMax:    round1(maxT),
			TempMin:    round1(minT),
			TempAvg:    round1(mean(b.temps)),
			Condition:  mode(b.conditions),
			RainChance: int(math.Round(b.maxPop * 100)),
			Humidity:   int(math.Round(mean(b.humidity))),
			WindSpeed:  round1(mean(b.wind)),
		})
	}
	return days
}

// climateDays converts Open-Meteo daily arrays into DailyForecasts. Days whose
// temperatures are null are skipped; a null precipitation sum counts as dry.
func climateDays(resp *climateResponse) []DailyForecast {
	d := resp.Daily
	days := make([]DailyForecast, 0, len(d.Time))

	for i, date := range d.Time {
		avg, okAvg := at(d.TempMean, i)
		maxT, okMax := at(d.TempMax, i)
		minT, okMin := at(d.TempMin, i)
		if !okAvg || !okMax || !okMin {
			continue
		}
		precip, _ := at(d.Precipitation, i)
		condition, rain := estimateCondition(precip)

		days = append(days, DailyForecast{
			Date:       date,
			Day:        weekday(date),
			TempMax:    round1(maxT),
			TempMin:    round1(minT),
			TempAvg:    round1(avg),
			Condition:  condition,
			RainChance: rain,
			Humidity:   climateHumidity,
			WindSpeed:  climateWindSpeed,
		})
	}
	return days
}

// estimateCondition maps a daily precipitation sum (mm) to a condition label
// and rain-chance bucket.
func estimateCondition(precipMM float64) (string, int) {
	switch {
	case precipMM > 5:
		return "rainy", 70
	case precipMM > 2:
		return "partly cloudy with showers", 50
	case precipMM > 0.5:
		return "mostly cloudy", 30
	default:
		return "mostly sunny", 10
	}
}

// Summarize renders the one-sentence weather summary.
func Summarize(days []DailyForecast, dataType DataType) string {
	if len(days) == 0 {
		return "Weather forecast not available"
	}

	var sumAvg, sumRain float64
	maxT, minT := days[0].TempMax, days[0].TempMin
	for _, d := range days {
		sumAvg += d.TempAvg
		sumRain += float64(d.RainChance)
		maxT = math.Max(maxT, d.TempMax)
		minT = math.Min(minT, d.TempMin)
	}
	n := float64(len(days))
	avgTemp := round1(sumAvg / n)
	avgRain := math.Round(sumRain / n)

	prefix := ""
	if dataType == DataClimate {
		prefix = "Typical weather for this time of year: "
	}

	summary := fmt.Sprintf("%sAverage temperature: %.1f°C (Range: %.1f°C to %.1f°C). ", prefix, avgTemp, minT, maxT)
	switch {
	case avgRain > 60:
		summary += "High chance of rain - pack an umbrella!"
	case avgRain > 30:
		summary += "Some rain possible - bring a light rain jacket."
	default:
		summary += "Mostly dry weather expected."
	}
	return summary
}

// mode returns the most frequent value; ties go to the earliest occurrence.
func mode(values []string) string {
	counts := make(map[string]int, len(values))
	best, bestCount := "", 0
	for _, v := range values {
		counts[v]++
	}
	for _, v := range values {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

func minMax(values []float64) (float64, float64) {
	maxV, minV := values[0], values[0]
	for _, v := range values[1:] {
		maxV = math.Max(maxV, v)
		minV = math.Min(minV, v)
	}
	return maxV, minV
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func weekday(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

func at(values []*float64, i int) (float64, bool) {
	if i >= len(values) || values[i] == nil {
		return 0, false
	}
	return *values[i], true
}
