package explorer

import (
	"time"

	"github.com/i474232898/city-explorer/internal/common"
)

// displayDateLayout renders like the leading part of a JavaScript
// Date.toString(): weekday, month, day of month and year.
const (
	displayDateLayout = "Mon Jan 02 2006"
	displayDateLength = 15
)

// NewLocation builds a LocationRecord from a geocoding result. The ID is left
// unset; the store assigns it.
func NewLocation(searchQuery string, r GeocodeResult) LocationRecord {
	return LocationRecord{
		SearchQuery:    searchQuery,
		FormattedQuery: r.FormattedAddress,
		Latitude:       r.Geometry.Location.Lat,
		Longitude:      r.Geometry.Location.Lng,
	}
}

// NewForecastDay normalizes a provider daily entry.
func NewForecastDay(d DailyForecast) ForecastDay {
	return ForecastDay{
		Forecast: d.Summary,
		Time:     displayDate(time.Unix(d.Time, 0)),
	}
}

// NewMeetupEvent normalizes a provider event.
func NewMeetupEvent(e Event) MeetupEvent {
	return MeetupEvent{
		Link:         e.Link,
		Name:         e.Name,
		CreationDate: displayDate(time.UnixMilli(e.Time)),
		Host:         e.Group.Name,
	}
}

// displayDate cuts to 15 runes so years past 9999 keep the fixed width
// ("Sat Jan 01 1000" for 10000-01-01).
func displayDate(t time.Time) string {
	return common.Prefix(t.UTC().Format(displayDateLayout), displayDateLength)
}
