package crm

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
)

// CalendarGateway wraps the remote /calendar/ collection.
type CalendarGateway struct {
	rest *restClient
}

// ListEventsParams are the calendar list filters. Zero-valued fields are
// never sent.
type ListEventsParams struct {
	Type      EventType
	Search    string
	ClientID  int64
	TaskID    int64
	StartDate string
	EndDate   string
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
}

// EventList is the result of a list call.
type EventList struct {
	Success    bool            `json:"success"`
	Data       []CalendarEvent `json:"data"`
	Pagination Pagination      `json:"pagination"`
	Error      string          `json:"error,omitempty"`
}

// EventResult is the result of a single-record call.
type EventResult struct {
	Success bool
	Data    *CalendarEvent
	Error   string
}

func (g *CalendarGateway) List(ctx context.Context, token string, params ListEventsParams) EventList {
	if token == "" {
		return EventList{Error: errAuthRequired, Pagination: stubPagination()}
	}

	query := url.Values{}
	if params.Type != "" {
		query.Set("type", string(params.Type))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.ClientID > 0 {
		query.Set("client_id", strconv.FormatInt(params.ClientID, 10))
	}
	if params.TaskID > 0 {
		query.Set("task_id", strconv.FormatInt(params.TaskID, 10))
	}
	if params.StartDate != "" {
		query.Set("start_date", params.StartDate)
	}
	if params.EndDate != "" {
		query.Set("end_date", params.EndDate)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(params.PerPage))
	}
	if params.SortBy != "" {
		query.Set("sort_by", params.SortBy)
	}
	if params.SortOrder != "" {
		query.Set("sort_order", params.SortOrder)
	}

	var list EventList
	if err := g.rest.do(ctx, "calendar.list", http.MethodGet, "/calendar/", token, query, nil, &list); err != nil {
		return EventList{Error: RemoteMessage(err, "Failed to fetch calendar events"), Pagination: stubPagination()}
	}
	return list
}

func (g *CalendarGateway) Get(ctx context.Context, token string, id int64) EventResult {
	if token == "" {
		return EventResult{Error: errAuthRequired}
	}

	var event CalendarEvent
	err := g.rest.do(ctx, "calendar.get", http.MethodGet, "/calendar/"+strconv.FormatInt(id, 10), token, nil, nil, &event)
	if err != nil {
		return EventResult{Error: RemoteMessage(err, "Failed to fetch calendar event")}
	}
	return EventResult{Success: true, Data: &event}
}

// Create posts a new event. The endpoint sometimes nests the created
// record as {success, data}; both shapes are accepted.
func (g *CalendarGateway) Create(ctx context.Context, token string, payload CreateEventPayload) EventResult {
	if token == "" {
		return EventResult{Error: errAuthRequired}
	}

	var raw json.RawMessage
	err := g.rest.do(ctx, "calendar.create", http.MethodPost, "/calendar/", token, nil, payload, &raw)
	if err != nil {
		return EventResult{Error: RemoteMessage(err, "Failed to create calendar event")}
	}
	var event CalendarEvent
	if err := unwrapRecord(raw, &event); err != nil {
		return EventResult{Error: "Failed to create calendar event"}
	}
	return EventResult{Success: true, Data: &event}
}

// Update puts the event; the response may be enveloped like Create's.
func (g *CalendarGateway) Update(ctx context.Context, token string, id int64, payload UpdateEventPayload) EventResult {
	if token == "" {
		return EventResult{Error: errAuthRequired}
	}

	var raw json.RawMessage
	err := g.rest.do(ctx, "calendar.update", http.MethodPut, "/calendar/"+strconv.FormatInt(id, 10), token, nil, payload, &raw)
	if err != nil {
		return EventResult{Error: RemoteMessage(err, "Failed to update calendar event")}
	}
	var event CalendarEvent
	if err := unwrapRecord(raw, &event); err != nil {
		return EventResult{Error: "Failed to update calendar event"}
	}
	return EventResult{Success: true, Data: &event}
}

func (g *CalendarGateway) Delete(ctx context.Context, token string, id int64) DeleteResult {
	if token == "" {
		return DeleteResult{Error: errAuthRequired}
	}

	err := g.rest.do(ctx, "calendar.delete", http.MethodDelete, "/calendar/"+strconv.FormatInt(id, 10), token, nil, nil, nil)
	if err != nil {
		return DeleteResult{Error: RemoteMessage(err, "Failed to delete calendar event")}
	}
	return DeleteResult{Success: true}
}
