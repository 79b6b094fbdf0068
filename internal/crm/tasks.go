package crm

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// TaskGateway wraps the remote /tasks/ collection.
type TaskGateway struct {
	rest *restClient
}

// ListTasksParams are the task list filters. Zero-valued fields are never
// sent.
type ListTasksParams struct {
	Status    TaskStatus
	Search    string
	ClientID  int64
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
}

// TaskList is the result of a list call.
type TaskList struct {
	Success    bool       `json:"success"`
	Data       []Task     `json:"data"`
	Pagination Pagination `json:"pagination"`
	Error      string     `json:"error,omitempty"`
}

// TaskResult is the result of a single-record call.
type TaskResult struct {
	Success bool
	Data    *Task
	Error   string
}

func (g *TaskGateway) List(ctx context.Context, token string, params ListTasksParams) TaskList {
	if token == "" {
		return TaskList{Error: errAuthRequired, Pagination: stubPagination()}
	}

	query := url.Values{}
	if params.Status != "" {
		query.Set("status", string(params.Status))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.ClientID > 0 {
		query.Set("client_id", strconv.FormatInt(params.ClientID, 10))
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

	var list TaskList
	if err := g.rest.do(ctx, "tasks.list", http.MethodGet, "/tasks/", token, query, nil, &list); err != nil {
		return TaskList{Error: RemoteMessage(err, "Failed to fetch tasks"), Pagination: stubPagination()}
	}
	return list
}

func (g *TaskGateway) Get(ctx context.Context, token string, id int64) TaskResult {
	if token == "" {
		return TaskResult{Error: errAuthRequired}
	}

	var task Task
	err := g.rest.do(ctx, "tasks.get", http.MethodGet, "/tasks/"+strconv.FormatInt(id, 10), token, nil, nil, &task)
	if err != nil {
		return TaskResult{Error: RemoteMessage(err, "Failed to fetch task")}
	}
	return TaskResult{Success: true, Data: &task}
}

func (g *TaskGateway) Create(ctx context.Context, token string, payload CreateTaskPayload) TaskResult {
	if token == "" {
		return TaskResult{Error: errAuthRequired}
	}

	var task Task
	err := g.rest.do(ctx, "tasks.create", http.MethodPost, "/tasks/", token, nil, payload, &task)
	if err != nil {
		return TaskResult{Error: RemoteMessage(err, "Failed to create task")}
	}
	return TaskResult{Success: true, Data: &task}
}

func (g *TaskGateway) Update(ctx context.Context, token string, id int64, payload UpdateTaskPayload) TaskResult {
	if token == "" {
		return TaskResult{Error: errAuthRequired}
	}

	var task Task
	err := g.rest.do(ctx, "tasks.update", http.MethodPut, "/tasks/"+strconv.FormatInt(id, 10), token, nil, payload, &task)
	if err != nil {
		return TaskResult{Error: RemoteMessage(err, "Failed to update task")}
	}
	return TaskResult{Success: true, Data: &task}
}

func (g *TaskGateway) Delete(ctx context.Context, token string, id int64) DeleteResult {
	if token == "" {
		return DeleteResult{Error: errAuthRequired}
	}

	err := g.rest.do(ctx, "tasks.delete", http.MethodDelete, "/tasks/"+strconv.FormatInt(id, 10), token, nil, nil, nil)
	if err != nil {
		return DeleteResult{Error: RemoteMessage(err, "Failed to delete task")}
	}
	return DeleteResult{Success: true}
}
