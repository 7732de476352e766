package providers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/i474232898/city-explorer/internal/explorer"
)

// MeetupProvider implements the explorer.EventsProvider interface for the Meetup API.
type MeetupProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *resty.Client
	circuit *gobreaker.CircuitBreaker
}

func NewMeetupProvider(client *resty.Client, apiKey string) *MeetupProvider {
	return &MeetupProvider{
		name:    "meetup",
		apiKey:  apiKey,
		baseURL: "https://api.meetup.com/find/upcoming_events",
		client:  client,
		circuit: newCircuitBreaker("meetup"),
	}
}

func (p *MeetupProvider) Name() string {
	return p.name
}

func (p *MeetupProvider) UpcomingEvents(ctx context.Context, lat, lng float64, pageSize int) ([]explorer.Event, error) {
	if p.apiKey == "" {
		return nil, wrap(p.name, errMissingAPIKey)
	}
	if p.client == nil {
		return nil, wrap(p.name, errNoHTTPClient)
	}

	req := p.client.R().SetQueryParams(map[string]string{
		"lat":  formatCoordinate(lat),
		"lon":  formatCoordinate(lng),
		"sign": "true",
		"key":  p.apiKey,
		"page": strconv.Itoa(pageSize),
	})

	var payload struct {
		Events *[]meetupEvent `json:"events"`
	}
	if err := getJSON(ctx, p.circuit, req, p.baseURL, &payload); err != nil {
		return nil, wrap(p.name, err)
	}
	if payload.Events == nil {
		return nil, wrap(p.name, fmt.Errorf("%w: no events list", errMalformedBody))
	}

	events := make([]explorer.Event, 0, len(*payload.Events))
	for i, e := range *payload.Events {
		if e.Group == nil {
			return nil, wrap(p.name, fmt.Errorf("%w: event %d has no group", errMalformedBody, i))
		}
		ev := e.Event
		ev.Group.Name = e.Group.Name
		events = append(events, ev)
	}
	return events, nil
}

// meetupEvent shadows Event.Group so a missing group can be told apart from an empty one.
type meetupEvent struct {
	explorer.Event
	Group *struct {
		Name string `json:"name"`
	} `json:"group"`
}
