package country

// Currency is one entry of the upstream currency map.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Info is the normalized country record.
type Info struct {
	Name          string              `json:"name"`
	OfficialName  string              `json:"official_name"`
	Capital       string              `json:"capital"`
	Region        string              `json:"region"`
	Subregion     string              `json:"subregion"`
	Population    int64               `json:"population"`
	Area          float64             `json:"area"`
	Currency      string              `json:"currency"`
	CurrenciesRaw map[string]Currency `json:"currencies_raw"`
	Languages     []string            `json:"languages"`
	Timezone      string              `json:"timezone"`
	TimezonesAll  []string            `json:"timezones_all"`
	CallingCode   string              `json:"calling_code"`
	TLD           string              `json:"tld"`
	Borders       []string            `json:"borders"`
	Flag          string              `json:"flag"`
	Maps          string              `json:"maps"`
	DrivingSide   string              `json:"driving_side"`
	StartOfWeek   string              `json:"start_of_week"`
}

// restCountry mirrors the subset of a RestCountries v3.1 record we read.
type restCountry struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	Capital    []string            `json:"capital"`
	Region     string              `json:"region"`
	Subregion  string              `json:"subregion"`
	Population int64               `json:"population"`
	Area       float64             `json:"area"`
	Currencies map[string]Currency `json:"currencies"`
	Languages  map[string]string   `json:"languages"`
	Timezones  []string            `json:"timezones"`
	IDD        struct {
		Root     string   `json:"root"`
		Suffixes []string `json:"suffixes"`
	} `json:"idd"`
	TLD     []string `json:"tld"`
	Borders []string `json:"borders"`
	Flags   struct {
		PNG string `json:"png"`
	} `json:"flags"`
	Maps struct {
		GoogleMaps string `json:"googleMaps"`
	} `json:"maps"`
	Car struct {
		Side string `json:"side"`
	} `json:"car"`
	StartOfWeek string `json:"startOfWeek"`
}
