package crm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAPI(t *testing.T, handler http.HandlerFunc) (*API, *atomic.Int64) {
	t.Helper()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return New(srv.URL, 2*time.Second), &calls
}

func TestListClientsWithoutToken(t *testing.T) {
	api, calls := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("remote API should not be contacted")
	})

	list := api.Clients.List(context.Background(), "", ListClientsParams{})

	assert.False(t, list.Success)
	assert.Equal(t, "Authentication required", list.Error)
	assert.Equal(t, Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 0, ItemsPerPage: 10}, list.Pagination)
	assert.Equal(t, int64(0), calls.Load())
}

func TestListClientsQueryContainsOnlyPresentFilters(t *testing.T) {
	var gotQuery string
	var gotAuth string
	api, _ := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[],"pagination":{"currentPage":2,"totalPages":5,"totalItems":42,"itemsPerPage":10}}`))
	})

	list := api.Clients.List(context.Background(), "tok", ListClientsParams{
		Lead: LeadHot,
		Page: 2,
	})

	require.Empty(t, list.Error)
	assert.Equal(t, "lead=hot&page=2", gotQuery)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, 2, list.Pagination.CurrentPage)
	assert.Equal(t, 42, list.Pagination.TotalItems)
}

func TestListClientsRemoteFailureFallsBackToStub(t *testing.T) {
	api, _ := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"database down"}`, http.StatusInternalServerError)
	})

	list := api.Clients.List(context.Background(), "tok", ListClientsParams{})

	assert.Equal(t, "database down", list.Error)
	assert.Empty(t, list.Data)
	assert.Equal(t, Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 0, ItemsPerPage: 10}, list.Pagination)
}

func TestListClientsRemoteFailureWithoutMessage(t *testing.T) {
	api, _ := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	list := api.Clients.List(context.Background(), "tok", ListClientsParams{})

	assert.Equal(t, "API request failed", list.Error)
}

func TestCreateClientUnwrapsEnvelope(t *testing.T) {
	api, _ := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/clients/", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"id":7,"first_name":"Ada"}}`))
	})

	result := api.Clients.Create(context.Background(), "tok", CreateClientPayload{FirstName: "Ada"})

	require.True(t, result.Success)
	assert.Equal(t, int64(7), result.Data.ID)
	assert.Equal(t, "Ada", result.Data.FirstName)
}

func TestCreateClientAcceptsFlatRecord(t *testing.T) {
	api, _ := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":9,"company_name":"Initech"}`))
	})

	result := api.Clients.Create(context.Background(), "tok", CreateClientPayload{CompanyName: "Initech"})

	require.True(t, result.Success)
	assert.Equal(t, int64(9), result.Data.ID)
	assert.Equal(t, "Initech", result.Data.CompanyName)
}

func TestGetClientNotFound(t *testing.T) {
	api, _ := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Client not found"}`, http.StatusNotFound)
	})

	result := api.Clients.Get(context.Background(), "tok", 404)

	assert.False(t, result.Success)
	assert.Equal(t, "Client not found", result.Error)
	assert.Nil(t, result.Data)
}

func TestDeleteClient(t *testing.T) {
	var gotMethod, gotPath string
	api, _ := testAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	result := api.Clients.Delete(context.Background(), "tok", 12)

	require.True(t, result.Success)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/clients/12", gotPath)
}
