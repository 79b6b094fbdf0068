package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jw6ventures/leaddesk/internal/crm"
)

func ptr(v int64) *int64 { return &v }

func sampleClients() []crm.Client {
	return []crm.Client{
		{ID: 1, CompanyName: "Initech", FirstName: "Peter", LastName: "Gibbons", Email: "peter@initech.com", Lead: crm.LeadCold},
		{ID: 2, CompanyName: "Hooli", FirstName: "Gavin", LastName: "Belson", Email: "gavin@hooli.com", Lead: crm.LeadHot},
		{ID: 3, CompanyName: "Pied Piper", FirstName: "Richard", LastName: "Hendricks", Email: "richard@piedpiper.com", Lead: crm.LeadWarm},
	}
}

func TestClientFilteredNoFiltersReturnsAll(t *testing.T) {
	s := ClientListState{Clients: sampleClients()}

	if diff := cmp.Diff(sampleClients(), s.Filtered()); diff != "" {
		t.Errorf("Filtered mismatch (-want +got):\n%s", diff)
	}
}

func TestClientFilteredByLead(t *testing.T) {
	s := ClientListState{
		Clients: sampleClients(),
		Filters: ClientFilters{Lead: crm.LeadHot},
	}

	got := s.Filtered()
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Filtered = %+v, want only client 2", got)
	}
}

func TestClientFilteredSearchIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		name   string
		search string
		wantID int64
	}{
		{"company match", "INITECH", 1},
		{"first name match", "gavin", 2},
		{"last name match", "hendricks", 3},
		{"email match", "Peter@Initech", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ClientListState{
				Clients: sampleClients(),
				Filters: ClientFilters{Search: tt.search},
			}
			got := s.Filtered()
			if len(got) != 1 || got[0].ID != tt.wantID {
				t.Errorf("Filtered = %+v, want only client %d", got, tt.wantID)
			}
		})
	}
}

func TestClientFilteredIsIdempotent(t *testing.T) {
	s := ClientListState{
		Clients: sampleClients(),
		Filters: ClientFilters{Search: "hooli", Lead: crm.LeadHot},
	}

	first := s.Filtered()
	second := s.Filtered()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Filtered calls differ (-first +second):\n%s", diff)
	}
	if len(s.Clients) != 3 {
		t.Error("Filtered must not mutate the held list")
	}
}

func TestTaskFilteredByStatusAndClient(t *testing.T) {
	s := TaskListState{
		Tasks: []crm.Task{
			{ID: 1, Title: "Call Peter", Status: crm.TaskTodo, ClientID: ptr(1)},
			{ID: 2, Title: "Send deck", Status: crm.TaskTodo, ClientID: ptr(2)},
			{ID: 3, Title: "Archive notes", Status: crm.TaskCompleted, ClientID: ptr(1)},
			{ID: 4, Title: "Untracked chore", Status: crm.TaskTodo},
		},
		Filters: TaskFilters{Status: crm.TaskTodo, ClientID: 1},
	}

	got := s.Filtered()
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Filtered = %+v, want only task 1", got)
	}
}

func TestTaskFilteredSearchesTitleAndDescription(t *testing.T) {
	s := TaskListState{
		Tasks: []crm.Task{
			{ID: 1, Title: "Quarterly review", Description: "prepare slides"},
			{ID: 2, Title: "Cleanup", Description: "archive old SLIDES"},
		},
		Filters: TaskFilters{Search: "slides"},
	}

	if got := s.Filtered(); len(got) != 2 {
		t.Errorf("Filtered = %+v, want both tasks", got)
	}
}

func TestCalendarFilteredByTypeAndStatus(t *testing.T) {
	s := CalendarState{
		Events: []crm.CalendarEvent{
			{ID: 1, Title: "Kickoff", Type: crm.EventMeeting, Status: crm.EventScheduled},
			{ID: 2, Title: "Retro", Type: crm.EventMeeting, Status: crm.EventCancelled},
			{ID: 3, Title: "Check-in", Type: crm.EventCall, Status: crm.EventScheduled},
		},
		Filters: EventFilters{Type: crm.EventMeeting, Status: crm.EventScheduled},
	}

	got := s.Filtered()
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Filtered = %+v, want only event 1", got)
	}
}

func TestEventModalCloseResetsEverything(t *testing.T) {
	var m EventModal
	m.OpenEdit(&crm.CalendarEvent{ID: 5, Title: "Kickoff"})
	m.Close()

	if diff := cmp.Diff(EventModal{}, m); diff != "" {
		t.Errorf("Close left state behind (-want +got):\n%s", diff)
	}
}

func TestEventModalOpenCreateSeedsSlot(t *testing.T) {
	var m EventModal
	m.OpenCreate("2026-09-15", "14:00")

	if !m.Open || m.Mode != ModalCreate {
		t.Fatalf("modal = %+v, want open create", m)
	}
	if m.SeedDate != "2026-09-15" || m.SeedTime != "14:00" {
		t.Errorf("seed = %q %q, want 2026-09-15 14:00", m.SeedDate, m.SeedTime)
	}
	if m.Selected != nil {
		t.Error("create mode must not carry a selected event")
	}
}

func TestDeleteModalLifecycle(t *testing.T) {
	var m DeleteModal
	ev := &crm.CalendarEvent{ID: 9}

	m.OpenFor(ev)
	if !m.Open || m.Pending != ev {
		t.Fatalf("modal = %+v, want open for event 9", m)
	}

	m.Close()
	if m.Open || m.Pending != nil {
		t.Errorf("modal = %+v, want zeroed", m)
	}
}
