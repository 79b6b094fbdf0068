package crm

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasksQuery(t *testing.T) {
	var gotQuery, gotPath string
	api, _ := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true,"data":[{"id":1,"title":"Call Ada","status":"todo"}],"pagination":{"currentPage":2,"totalPages":3,"totalItems":21,"itemsPerPage":10}}`))
	})

	list := api.Tasks.List(context.Background(), "tok", ListTasksParams{
		Status: TaskTodo,
		Page:   2,
	})

	require.Empty(t, list.Error)
	assert.Equal(t, "/tasks/", gotPath)
	assert.Equal(t, "page=2&status=todo", gotQuery)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Call Ada", list.Data[0].Title)
}

func TestListTasksClientFilter(t *testing.T) {
	var gotQuery string
	api, _ := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"data":[],"pagination":{"currentPage":1,"totalPages":1,"totalItems":0,"itemsPerPage":10}}`))
	})

	api.Tasks.List(context.Background(), "tok", ListTasksParams{ClientID: 14})

	assert.Equal(t, "client_id=14", gotQuery)
}

// Task creation never uses the nested envelope; a wrapped body would be a
// remote contract change and should surface as-is.
func TestCreateTaskDecodesFlatRecordOnly(t *testing.T) {
	api, _ := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":3,"title":"Send deck","status":"todo"}`))
	})

	result := api.Tasks.Create(context.Background(), "tok", CreateTaskPayload{Title: "Send deck", Status: TaskTodo})

	require.True(t, result.Success)
	assert.Equal(t, int64(3), result.Data.ID)
	assert.Equal(t, "Send deck", result.Data.Title)
}

func TestUpdateTaskRejection(t *testing.T) {
	api, _ := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Task not found"}`, http.StatusNotFound)
	})

	result := api.Tasks.Update(context.Background(), "tok", 99, UpdateTaskPayload{ID: 99})

	assert.False(t, result.Success)
	assert.Equal(t, "Task not found", result.Error)
}

func TestTaskGatewayWithoutToken(t *testing.T) {
	api, calls := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("remote API should not be contacted")
	})

	assert.Equal(t, "Authentication required", api.Tasks.List(context.Background(), "", ListTasksParams{}).Error)
	assert.Equal(t, "Authentication required", api.Tasks.Get(context.Background(), "", 1).Error)
	assert.Equal(t, "Authentication required", api.Tasks.Create(context.Background(), "", CreateTaskPayload{}).Error)
	assert.Equal(t, "Authentication required", api.Tasks.Update(context.Background(), "", 1, UpdateTaskPayload{}).Error)
	assert.Equal(t, "Authentication required", api.Tasks.Delete(context.Background(), "", 1).Error)
	assert.Equal(t, int64(0), calls.Load())
}
