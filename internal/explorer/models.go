package explorer

// LocationRecord is a resolved location. SearchQuery is the raw user input and
// the cache key; ID is assigned by the store on insert.
type LocationRecord struct {
	ID             int64   `json:"id,omitempty" db:"id"`
	SearchQuery    string  `json:"search_query" db:"search_query"`
	FormattedQuery string  `json:"formatted_query" db:"formatted_query"`
	Latitude       float64 `json:"latitude" db:"latitude"`
	Longitude      float64 `json:"longitude" db:"longitude"`
}

// ForecastDay is one normalized daily forecast entry.
type ForecastDay struct {
	Forecast string `json:"forecast"`
	Time     string `json:"time"`
}

// MeetupEvent is one normalized upcoming local event.
type MeetupEvent struct {
	Link         string `json:"link"`
	Name         string `json:"name"`
	CreationDate string `json:"creation_date"`
	Host         string `json:"host"`
}

// GeocodeResult is a single entry of a geocoding provider response.
type GeocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// DailyForecast is a single daily entry of a forecast provider response.
// Time is in epoch seconds.
type DailyForecast struct {
	Summary string `json:"summary"`
	Time    int64  `json:"time"`
}

// Event is a single entry of an events provider response.
// Time is in epoch milliseconds.
type Event struct {
	Link  string `json:"link"`
	Name  string `json:"name"`
	Time  int64  `json:"time"`
	Group struct {
		Name string `json:"name"`
	} `json:"group"`
}
