package ui

import (
	"net/http"
	"strconv"

	"github.com/jw6ventures/leaddesk/internal/crm"
	"github.com/jw6ventures/leaddesk/internal/http/errors"
	"github.com/jw6ventures/leaddesk/internal/ui/state"
)

// Clients renders the client list with the lead and search filters
// applied both remotely and in the mirrored state.
func (h *Handler) Clients(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authService.RequireAuth(w, r, "/login")
	if !ok {
		return
	}

	q := r.URL.Query()
	var lead crm.LeadStatus
	if v := q.Get("lead"); v != "" {
		parsed, err := parseLead(v)
		if err != nil {
			errors.BadRequestError(w, r, err, "invalid lead filter")
			return
		}
		lead = parsed
	}

	params := crm.ListClientsParams{
		Lead:    lead,
		Search:  q.Get("search"),
		Page:    h.parsePage(r),
		PerPage: defaultPageSize,
	}
	list := h.api.Clients.List(r.Context(), h.token(r), params)

	listState := state.ClientListState{
		Clients:    list.Data,
		Pagination: list.Pagination,
		Filters: state.ClientFilters{
			Search: params.Search,
			Lead:   lead,
		},
	}

	data := h.pageData(r, "Clients", user)
	data["State"] = &listState
	if list.Error != "" {
		data["FlashError"] = list.Error
	}
	h.render(w, r, "clients.html", data)
}

// NewClientPage renders the empty client form.
func (h *Handler) NewClientPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authService.RequireAuth(w, r, "/login")
	if !ok {
		return
	}
	data := h.pageData(r, "New client", user)
	data["FormError"] = ""
	h.render(w, r, "client_new.html", data)
}

// CreateClient submits the client form to the remote API.
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authService.RequireAuth(w, r, "/login")
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		errors.BadRequestError(w, r, err, "bad form")
		return
	}

	payload, err := decodeClientForm(r)
	if err != nil {
		data := h.pageData(r, "New client", user)
		data["FormError"] = err.Error()
		h.render(w, r, "client_new.html", data)
		return
	}

	result := h.api.Clients.Create(r.Context(), h.token(r), payload)
	if !result.Success {
		data := h.pageData(r, "New client", user)
		data["FormError"] = result.Error
		h.render(w, r, "client_new.html", data)
		return
	}

	h.redirect(w, r, "/clients/"+strconv.FormatInt(result.Data.ID, 10), map[string]string{"status": "Client created"})
}

// ViewClient renders one client record; a failed fetch is a 404.
func (h *Handler) ViewClient(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authService.RequireAuth(w, r, "/login")
	if !ok {
		return
	}
	id, err := urlID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	result := h.api.Clients.Get(r.Context(), h.token(r), id)
	if !result.Success {
		http.NotFound(w, r)
		return
	}

	data := h.pageData(r, "Client", user)
	data["Client"] = result.Data
	h.render(w, r, "client_detail.html", data)
}

// DeleteClientPage handles a stray GET on the delete route by bouncing
// back to the list without touching anything.
func (h *Handler) DeleteClientPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

// DeleteClient removes a client and returns to the list with a flash.
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authService.RequireAuth(w, r, "/login"); !ok {
		return
	}
	id, err := urlID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	result := h.api.Clients.Delete(r.Context(), h.token(r), id)
	if !result.Success {
		h.redirect(w, r, "/clients", map[string]string{"error": result.Error})
		return
	}
	h.redirect(w, r, "/clients", map[string]string{"status": "Client deleted"})
}
