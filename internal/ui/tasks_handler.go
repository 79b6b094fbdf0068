package ui

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/jw6ventures/leaddesk/internal/crm"
	"github.com/jw6ventures/leaddesk/internal/http/errors"
	"github.com/jw6ventures/leaddesk/internal/ui/state"
)

// Tasks renders the task list. Status, search and client filters are
// sent to the remote API and mirrored locally.
func (h *Handler) Tasks(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authService.RequireAuth(w, r, "/login")
	if !ok {
		return
	}

	q := r.URL.Query()
	var status crm.TaskStatus
	if v := q.Get("status"); v != "" {
		parsed, err := parseTaskStatus(v)
		if err != nil {
			errors.BadRequestError(w, r, err, "invalid status filter")
			return
		}
		status = parsed
	}
	var clientID int64
	if v := q.Get("client_id"); v != "" {
		clientID, _ = strconv.ParseInt(v, 10, 64)
	}

	params := crm.ListTasksParams{
		Status:   status,
		Search:   q.Get("search"),
		ClientID: clientID,
		Page:     h.parsePage(r),
		PerPage:  defaultPageSize,
	}
	list := h.api.Tasks.List(r.Context(), h.token(r), params)

	listState := state.TaskListState{
		Tasks:      list.Data,
		Pagination: list.Pagination,
		Filters: state.TaskFilters{
			Search:   params.Search,
			Status:   status,
			ClientID: clientID,
		},
	}

	data := h.pageData(r, "Tasks", user)
	data["State"] = &listState
	if list.Error != "" {
		data["FlashError"] = list.Error
	}
	h.render(w, r, "tasks.html", data)
}

// referenceClients fetches the client list used to populate the task
// form's client dropdown.
func (h *Handler) referenceClients(r *http.Request) []crm.Client {
	list := h.api.Clients.List(r.Context(), h.token(r), crm.ListClientsParams{
		Page:    1,
		PerPage: referencePageSize,
	})
	return list.Data
}

// NewTaskPage renders the empty task form with the client dropdown.
func (h *Handler) NewTaskPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authService.RequireAuth(w, r, "/login")
	if !ok {
		return
	}
	data := h.pageData(r, "New task", user)
	data["Clients"] = h.referenceClients(r)
	data["FormError"] = ""
	h.render(w, r, "task_new.html", data)
}

// CreateTask submits the task form to the remote API.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authService.RequireAuth(w, r, "/login")
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		errors.BadRequestError(w, r, err, "bad form")
		return
	}

	payload, err := decodeTaskForm(r)
	if err != nil {
		data := h.pageData(r, "New task", user)
		data["Clients"] = h.referenceClients(r)
		data["FormError"] = err.Error()
		h.render(w, r, "task_new.html", data)
		return
	}

	result := h.api.Tasks.Create(r.Context(), h.token(r), payload)
	if !result.Success {
		data := h.pageData(r, "New task", user)
		data["Clients"] = h.referenceClients(r)
		data["FormError"] = result.Error
		h.render(w, r, "task_new.html", data)
		return
	}

	h.redirect(w, r, "/tasks", map[string]string{"status": "Task created"})
}

// ViewTask renders one task record; a failed fetch is a 404.
func (h *Handler) ViewTask(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authService.RequireAuth(w, r, "/login")
	if !ok {
		return
	}
	id, err := urlID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	result := h.api.Tasks.Get(r.Context(), h.token(r), id)
	if !result.Success {
		http.NotFound(w, r)
		return
	}

	data := h.pageData(r, "Task", user)
	data["Task"] = result.Data
	h.render(w, r, "task_detail.html", data)
}

// EditTaskPage loads the task and the client reference list in parallel
// and renders the edit form.
func (h *Handler) EditTaskPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authService.RequireAuth(w, r, "/login")
	if !ok {
		return
	}
	id, err := urlID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	token := h.token(r)
	var (
		wg      sync.WaitGroup
		task    crm.TaskResult
		clients crm.ClientList
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		task = h.api.Tasks.Get(r.Context(), token, id)
	}()
	go func() {
		defer wg.Done()
		clients = h.api.Clients.List(r.Context(), token, crm.ListClientsParams{
			Page:    1,
			PerPage: referencePageSize,
		})
	}()
	wg.Wait()

	if !task.Success {
		http.NotFound(w, r)
		return
	}

	data := h.pageData(r, "Edit task", user)
	data["Task"] = task.Data
	data["Clients"] = clients.Data
	data["FormError"] = ""
	h.render(w, r, "task_edit.html", data)
}

// UpdateTask submits the edit form to the remote API.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authService.RequireAuth(w, r, "/login")
	if !ok {
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

	payload, err := decodeTaskForm(r)
	if err != nil {
		result := h.api.Tasks.Get(r.Context(), h.token(r), id)
		if !result.Success {
			http.NotFound(w, r)
			return
		}
		data := h.pageData(r, "Edit task", user)
		data["Task"] = result.Data
		data["Clients"] = h.referenceClients(r)
		data["FormError"] = err.Error()
		h.render(w, r, "task_edit.html", data)
		return
	}

	result := h.api.Tasks.Update(r.Context(), h.token(r), id, crm.UpdateTaskPayload{
		ID:                id,
		CreateTaskPayload: payload,
	})
	if !result.Success {
		h.redirect(w, r, "/tasks/"+strconv.FormatInt(id, 10)+"/edit", map[string]string{"error": result.Error})
		return
	}

	h.redirect(w, r, "/tasks/"+strconv.FormatInt(id, 10), map[string]string{"status": "Task updated"})
}

// DeleteTaskPage handles a stray GET on the delete route by bouncing
// back to the list without touching anything.
func (h *Handler) DeleteTaskPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// DeleteTask removes a task and returns to the list with a flash.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.authService.RequireAuth(w, r, "/login"); !ok {
		return
	}
	id, err := urlID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	result := h.api.Tasks.Delete(r.Context(), h.token(r), id)
	if !result.Success {
		h.redirect(w, r, "/tasks", map[string]string{"error": result.Error})
		return
	}
	h.redirect(w, r, "/tasks", map[string]string{"status": "Task deleted"})
}
