// Package state holds the request-scoped mirrors of server-loaded list
// data. Each list state is built at the start of a page render from one
// gateway response and discarded with the response; nothing here outlives
// a request. Filtering is a pure projection over the held slice,
// recomputed on demand.
package state

import (
	"strings"

	"github.com/jw6ventures/leaddesk/internal/crm"
)

// ClientFilters is the active filter set on the clients list.
type ClientFilters struct {
	Search string
	Lead   crm.LeadStatus
}

// ClientListState mirrors one fetched page of clients.
type ClientListState struct {
	Clients    []crm.Client
	Pagination crm.Pagination
	Filters    ClientFilters
}

// Filtered re-applies the current filters to the held list. Lead matches
// exactly; the search term matches company, first/last name, or email,
// case-insensitively.
func (s *ClientListState) Filtered() []crm.Client {
	if s.Filters.Search == "" && s.Filters.Lead == "" {
		return s.Clients
	}

	term := strings.ToLower(s.Filters.Search)
	var out []crm.Client
	for _, c := range s.Clients {
		if s.Filters.Lead != "" && c.Lead != s.Filters.Lead {
			continue
		}
		if term != "" && !containsFold(term, c.CompanyName, c.FirstName, c.LastName, c.Email) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// TaskFilters is the active filter set on the tasks list.
type TaskFilters struct {
	Search   string
	Status   crm.TaskStatus
	ClientID int64
}

// TaskListState mirrors one fetched page of tasks.
type TaskListState struct {
	Tasks      []crm.Task
	Pagination crm.Pagination
	Filters    TaskFilters
}

// Filtered re-applies the current filters to the held list. Status and
// client linkage match exactly; the search term matches title or
// description, case-insensitively.
func (s *TaskListState) Filtered() []crm.Task {
	if s.Filters.Search == "" && s.Filters.Status == "" && s.Filters.ClientID == 0 {
		return s.Tasks
	}

	term := strings.ToLower(s.Filters.Search)
	var out []crm.Task
	for _, t := range s.Tasks {
		if s.Filters.Status != "" && t.Status != s.Filters.Status {
			continue
		}
		if s.Filters.ClientID != 0 && (t.ClientID == nil || *t.ClientID != s.Filters.ClientID) {
			continue
		}
		if term != "" && !containsFold(term, t.Title, t.Description) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// EventFilters is the active filter set on the calendar.
type EventFilters struct {
	Search    string
	Type      crm.EventType
	Status    crm.EventStatus
	ClientID  int64
	StartDate string
	EndDate   string
}

// CalendarView is the calendar layout the user is looking at.
type CalendarView string

const (
	ViewMonth CalendarView = "month"
	ViewWeek  CalendarView = "week"
)

// CalendarState mirrors one fetched page of events plus the view state
// carried in the URL.
type CalendarState struct {
	Events     []crm.CalendarEvent
	Pagination crm.Pagination
	Filters    EventFilters

	View CalendarView
	Date string
}

// Filtered re-applies the current filters to the held list. Type, status
// and client linkage match exactly; the search term matches title or
// description, case-insensitively. Date bounds are applied by the remote
// API, not re-checked here.
func (s *CalendarState) Filtered() []crm.CalendarEvent {
	if s.Filters.Search == "" && s.Filters.Type == "" && s.Filters.Status == "" && s.Filters.ClientID == 0 {
		return s.Events
	}

	term := strings.ToLower(s.Filters.Search)
	var out []crm.CalendarEvent
	for _, e := range s.Events {
		if s.Filters.Type != "" && e.Type != s.Filters.Type {
			continue
		}
		if s.Filters.Status != "" && e.Status != s.Filters.Status {
			continue
		}
		if s.Filters.ClientID != 0 && (e.ClientID == nil || *e.ClientID != s.Filters.ClientID) {
			continue
		}
		if term != "" && !containsFold(term, e.Title, e.Description) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func containsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
