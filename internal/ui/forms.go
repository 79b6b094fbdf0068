package ui

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jw6ventures/leaddesk/internal/crm"
)

// Form decoding is a strict schema per route: required fields are
// checked, enum values validated, and numbers parsed before any gateway
// call. Unset enums take the documented defaults; unrecognized values are
// rejected rather than silently coerced.

func formValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}

// checkboxOn reports a checked HTML checkbox, which submits the value
// "on".
func checkboxOn(r *http.Request, name string) bool {
	return r.FormValue(name) == "on"
}

// optionalID parses an optional numeric reference field.
func optionalID(v string) (*int64, error) {
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid id %q", v)
	}
	return &id, nil
}

// localDateTime converts an HTML datetime-local value to an RFC 3339 UTC
// instant. Empty stays empty.
func localDateTime(v string) (string, error) {
	if v == "" {
		return "", nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04", v, time.Local)
	if err != nil {
		// Accept an already-ISO value unchanged.
		if parsed, rfcErr := time.Parse(time.RFC3339, v); rfcErr == nil {
			return parsed.UTC().Format(time.RFC3339), nil
		}
		return "", fmt.Errorf("invalid date/time %q", v)
	}
	return t.UTC().Format(time.RFC3339), nil
}

func parseLead(v string) (crm.LeadStatus, error) {
	switch crm.LeadStatus(v) {
	case "":
		return crm.LeadCold, nil
	case crm.LeadCold, crm.LeadWarm, crm.LeadHot:
		return crm.LeadStatus(v), nil
	}
	return "", fmt.Errorf("invalid lead status %q", v)
}

func parseTaskStatus(v string) (crm.TaskStatus, error) {
	switch crm.TaskStatus(v) {
	case "":
		return crm.TaskTodo, nil
	case crm.TaskTodo, crm.TaskInProgress, crm.TaskCompleted:
		return crm.TaskStatus(v), nil
	}
	return "", fmt.Errorf("invalid task status %q", v)
}

func parseTaskPriority(v string) (crm.TaskPriority, error) {
	switch crm.TaskPriority(v) {
	case "", crm.PriorityLow, crm.PriorityMedium, crm.PriorityHigh:
		return crm.TaskPriority(v), nil
	}
	return "", fmt.Errorf("invalid task priority %q", v)
}

func parseTaskType(v string) (crm.TaskType, error) {
	switch crm.TaskType(v) {
	case "", crm.TaskFollowUp, crm.TaskMeeting, crm.TaskCall, crm.TaskEmail, crm.TaskOther:
		return crm.TaskType(v), nil
	}
	return "", fmt.Errorf("invalid task type %q", v)
}

func parseEventType(v string) (crm.EventType, error) {
	switch crm.EventType(v) {
	case "":
		return crm.EventMeeting, nil
	case crm.EventMeeting, crm.EventCall, crm.EventFollowUp, crm.EventDeadline, crm.EventPersonal, crm.EventOther:
		return crm.EventType(v), nil
	}
	return "", fmt.Errorf("invalid event type %q", v)
}

func parseEventStatus(v string) (crm.EventStatus, error) {
	switch crm.EventStatus(v) {
	case "":
		return crm.EventScheduled, nil
	case crm.EventScheduled, crm.EventCompleted, crm.EventCancelled, crm.EventRescheduled:
		return crm.EventStatus(v), nil
	}
	return "", fmt.Errorf("invalid event status %q", v)
}

func parseRecurrence(v string) (crm.Recurrence, error) {
	switch crm.Recurrence(v) {
	case "":
		return crm.RecurNone, nil
	case crm.RecurNone, crm.RecurDaily, crm.RecurWeekly, crm.RecurMonthly, crm.RecurYearly:
		return crm.Recurrence(v), nil
	}
	return "", fmt.Errorf("invalid recurrence %q", v)
}

// decodeClientForm builds a client payload from submitted form fields.
func decodeClientForm(r *http.Request) (crm.CreateClientPayload, error) {
	var payload crm.CreateClientPayload

	lead, err := parseLead(formValue(r, "lead"))
	if err != nil {
		return payload, err
	}

	payload = crm.CreateClientPayload{
		CompanyName:            formValue(r, "company_name"),
		FirstName:              formValue(r, "first_name"),
		LastName:               formValue(r, "last_name"),
		Position:               formValue(r, "position"),
		Phone:                  formValue(r, "phone"),
		Email:                  formValue(r, "email"),
		Website:                formValue(r, "website"),
		Address:                formValue(r, "address"),
		City:                   formValue(r, "city"),
		State:                  formValue(r, "state"),
		Zipcode:                formValue(r, "zipcode"),
		Lead:                   lead,
		RelatedName:            formValue(r, "related_name"),
		LinkedinConnection:     formValue(r, "linkedin_connection"),
		Comments:               formValue(r, "comments"),
		FirstContact:           formValue(r, "first_contact"),
		DescriptionContact:     formValue(r, "description_contact"),
		DescriptionContactMore: formValue(r, "description_contact_more"),
		FollowUpAction:         formValue(r, "follow_up_action"),
		NewBusiness:            formValue(r, "new_business"),
		Recommendation:         formValue(r, "recommendation"),
	}

	if payload.FirstName == "" && payload.LastName == "" && payload.CompanyName == "" {
		return payload, fmt.Errorf("a name or company is required")
	}
	return payload, nil
}

// decodeTaskForm builds a task payload from submitted form fields.
func decodeTaskForm(r *http.Request) (crm.CreateTaskPayload, error) {
	var payload crm.CreateTaskPayload

	title := formValue(r, "title")
	if title == "" {
		return payload, fmt.Errorf("title is required")
	}

	status, err := parseTaskStatus(formValue(r, "status"))
	if err != nil {
		return payload, err
	}
	priority, err := parseTaskPriority(formValue(r, "priority"))
	if err != nil {
		return payload, err
	}
	taskType, err := parseTaskType(formValue(r, "type"))
	if err != nil {
		return payload, err
	}
	clientID, err := optionalID(formValue(r, "client_id"))
	if err != nil {
		return payload, err
	}
	dueDate, err := localDateTime(formValue(r, "due_date"))
	if err != nil {
		return payload, err
	}

	return crm.CreateTaskPayload{
		Title:       title,
		Description: formValue(r, "description"),
		Status:      status,
		ClientID:    clientID,
		DueDate:     dueDate,
		Priority:    priority,
		Type:        taskType,
	}, nil
}

// decodeEventForm builds a calendar event payload from submitted form
// fields.
func decodeEventForm(r *http.Request) (crm.CreateEventPayload, error) {
	var payload crm.CreateEventPayload

	title := formValue(r, "title")
	if title == "" {
		return payload, fmt.Errorf("title is required")
	}

	startDate, err := localDateTime(formValue(r, "start_date"))
	if err != nil {
		return payload, err
	}
	endDate, err := localDateTime(formValue(r, "end_date"))
	if err != nil {
		return payload, err
	}
	eventType, err := parseEventType(formValue(r, "type"))
	if err != nil {
		return payload, err
	}
	status, err := parseEventStatus(formValue(r, "status"))
	if err != nil {
		return payload, err
	}
	recurrence, err := parseRecurrence(formValue(r, "recurrence"))
	if err != nil {
		return payload, err
	}
	clientID, err := optionalID(formValue(r, "client_id"))
	if err != nil {
		return payload, err
	}
	taskID, err := optionalID(formValue(r, "task_id"))
	if err != nil {
		return payload, err
	}

	return crm.CreateEventPayload{
		Title:         title,
		Description:   formValue(r, "description"),
		StartDate:     startDate,
		EndDate:       endDate,
		AllDay:        checkboxOn(r, "all_day"),
		Type:          eventType,
		Status:        status,
		ClientID:      clientID,
		TaskID:        taskID,
		Location:      formValue(r, "location"),
		Recurrence:    recurrence,
		RecurrenceEnd: formValue(r, "recurrence_end"),
	}, nil
}
