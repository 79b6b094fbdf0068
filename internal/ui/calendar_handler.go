package ui

import (
	"net/http"
	"strconv"

	"github.com/jw6ventures/leaddesk/internal/crm"
	"github.com/jw6ventures/leaddesk/internal/http/errors"
	"github.com/jw6ventures/leaddesk/internal/ui/state"
)

// Calendar renders the event list for the selected view window. The
// status filter is applied only to the mirrored state; the remote API
// does not accept it.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authService.RequireAuth(w, r, "/login")
	if !ok {
		return
	}

	q := r.URL.Query()
	var eventType crm.EventType
	if v := q.Get("type"); v != "" {
		parsed, err := parseEventType(v)
		if err != nil {
			errors.BadRequestError(w, r, err, "invalid type filter")
			return
		}
		eventType = parsed
	}
	var eventStatus crm.EventStatus
	if v := q.Get("status"); v != "" {
		parsed, err := parseEventStatus(v)
		if err != nil {
			errors.BadRequestError(w, r, err, "invalid status filter")
			return
		}
		eventStatus = parsed
	}
	var clientID int64
	if v := q.Get("client_id"); v != "" {
		clientID, _ = strconv.ParseInt(v, 10, 64)
	}

	view := state.ViewMonth
	if q.Get("view") == string(state.ViewWeek) {
		view = state.ViewWeek
	}

	params := crm.ListEventsParams{
		Type:      eventType,
		Search:    q.Get("search"),
		ClientID:  clientID,
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Page:      h.parsePage(r),
		PerPage:   calendarPageSize,
	}
	list := h.api.Calendar.List(r.Context(), h.token(r), params)

	calState := state.CalendarState{
		Events:     list.Data,
		Pagination: list.Pagination,
		Filters: state.EventFilters{
			Search:    params.Search,
			Type:      eventType,
			Status:    eventStatus,
			ClientID:  clientID,
			StartDate: params.StartDate,
			EndDate:   params.EndDate,
		},
		View: view,
		Date: q.Get("date"),
	}

	var modal state.EventModal
	var deleteModal state.DeleteModal
	if v := q.Get("delete"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			if ev := findEvent(calState.Events, id); ev != nil {
				deleteModal.OpenFor(ev)
			}
		}
	} else if v := q.Get("event"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			if ev := findEvent(calState.Events, id); ev != nil {
				if q.Get("mode") == "edit" {
					modal.OpenEdit(ev)
				} else {
					modal.OpenView(ev)
				}
			} else {
				// Not on the loaded page; fetch it directly.
				result := h.api.Calendar.Get(r.Context(), h.token(r), id)
				if result.Success {
					if q.Get("mode") == "edit" {
						modal.OpenEdit(result.Data)
					} else {
						modal.OpenView(result.Data)
					}
				}
			}
		}
	} else if q.Get("new") != "" {
		modal.OpenCreate(q.Get("seed_date"), q.Get("seed_time"))
	}

	data := h.pageData(r, "Calendar", user)
	data["State"] = &calState
	data["Modal"] = &modal
	data["DeleteModal"] = &deleteModal
	data["FormError"] = q.Get("form_error")
	if list.Error != "" {
		data["FlashError"] = list.Error
	}
	h.render(w, r, "calendar.html", data)
}

func findEvent(events []crm.CalendarEvent, id int64) *crm.CalendarEvent {
	for i := range events {
		if events[i].ID == id {
			return &events[i]
		}
	}
	return nil
}

// calendarReturn rebuilds the calendar URL the form came from.
func calendarReturn(r *http.Request) (string, map[string]string) {
	params := map[string]string{}
	if v := formValue(r, "view"); v != "" {
		params["view"] = v
	}
	if v := formValue(r, "date"); v != "" {
		params["date"] = v
	}
	return "/calendar", params
}

// CreateEvent submits the event form to the remote API.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authService.RequireAuth(w, r, "/login"); !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		errors.BadRequestError(w, r, err, "bad form")
		return
	}

	path, params := calendarReturn(r)
	payload, err := decodeEventForm(r)
	if err != nil {
		params["new"] = "1"
		params["form_error"] = err.Error()
		h.redirect(w, r, path, params)
		return
	}

	result := h.api.Calendar.Create(r.Context(), h.token(r), payload)
	if !result.Success {
		params["new"] = "1"
		params["form_error"] = result.Error
		h.redirect(w, r, path, params)
		return
	}

	params["status"] = "Event created"
	h.redirect(w, r, path, params)
}

// UpdateEvent submits the event edit form to the remote API.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authService.RequireAuth(w, r, "/login"); !ok {
		return
	}
	id, err := urlID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		errors.BadRequestError(w, r, err, "bad form")
		return
	}

	path, params := calendarReturn(r)
	payload, err := decodeEventForm(r)
	if err != nil {
		params["event"] = strconv.FormatInt(id, 10)
		params["mode"] = "edit"
		params["form_error"] = err.Error()
		h.redirect(w, r, path, params)
		return
	}

	result := h.api.Calendar.Update(r.Context(), h.token(r), id, crm.UpdateEventPayload{
		ID:                 id,
		CreateEventPayload: payload,
	})
	if !result.Success {
		params["event"] = strconv.FormatInt(id, 10)
		params["mode"] = "edit"
		params["form_error"] = result.Error
		h.redirect(w, r, path, params)
		return
	}

	params["status"] = "Event updated"
	h.redirect(w, r, path, params)
}

// DeleteEvent removes an event and returns to the calendar with a flash.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authService.RequireAuth(w, r, "/login"); !ok {
		return
	}
	id, err := urlID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		errors.BadRequestError(w, r, err, "bad form")
		return
	}

	path, params := calendarReturn(r)
	result := h.api.Calendar.Delete(r.Context(), h.token(r), id)
	if !result.Success {
		params["error"] = result.Error
		h.redirect(w, r, path, params)
		return
	}

	params["status"] = "Event deleted"
	h.redirect(w, r, path, params)
}
