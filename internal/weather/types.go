package weather

// DataType tags which upstream produced a Result.
type DataType string

const (
	// DataForecast marks short-range forecast data (trip starts within the horizon).
	DataForecast DataType = "forecast"
	// DataClimate marks climate-normal estimates for trips further out.
	DataClimate DataType = "climate"
)

// Coordinates is the first geocoding match for a destination.
type Coordinates struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

// DailyForecast is one calendar day of aggregated weather.
type DailyForecast struct {
	Date       string  `json:"date"`
	Day        string  `json:"day"`
	TempMax    float64 `json:"temp_max"`
	TempMin    float64 `json:"temp_min"`
	TempAvg    float64 `json:"temp_avg"`
	Condition  string  `json:"condition"`
	RainChance int     `json:"rain_chance"`
	Humidity   int     `json:"humidity"`
	WindSpeed  float64 `json:"wind_speed"`
}

// Result is the weather section of a travel plan.
type Result struct {
	Destination string          `json:"destination"`
	Coordinates Coordinates     `json:"coordinates"`
	Forecast    []DailyForecast `json:"forecast"`
	Summary     string          `json:"summary"`
	DataType    DataType        `json:"data_type"`
}

// ---- upstream shapes ----

type geocodeEntry struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Pop float64 `json:"pop"`
	} `json:"list"`
	City struct {
		Timezone int `json:"timezone"` // seconds east of UTC
	} `json:"city"`
}

// climateResponse holds Open-Meteo's parallel daily arrays. Entries may be null.
type climateResponse struct {
	Daily struct {
		Time          []string   `json:"time"`
		TempMean      []*float64 `json:"temperature_2m_mean"`
		TempMax       []*float64 `json:"temperature_2m_max"`
		TempMin       []*float64 `json:"temperature_2m_min"`
		Precipitation []*float64 `json:"precipitation_sum"`
	} `json:"daily"`
}
