package crm

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
)

// ClientGateway wraps the remote /clients/ collection.
type ClientGateway struct {
	rest *restClient
}

// ListClientsParams are the client list filters. Zero-valued fields are
// never sent.
type ListClientsParams struct {
	Lead      LeadStatus
	Search    string
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
}

// ClientList is the result of a list call. On failure Data is empty and
// Pagination is the zeroed stub.
type ClientList struct {
	Success    bool       `json:"success"`
	Data       []Client   `json:"data"`
	Pagination Pagination `json:"pagination"`
	Error      string     `json:"error,omitempty"`
}

// ClientResult is the result of a single-record call.
type ClientResult struct {
	Success bool
	Data    *Client
	Error   string
}

// DeleteResult is the result of a delete call; no data payload.
type DeleteResult struct {
	Success bool
	Error   string
}

func (g *ClientGateway) List(ctx context.Context, token string, params ListClientsParams) ClientList {
	if token == "" {
		return ClientList{Error: errAuthRequired, Pagination: stubPagination()}
	}

	query := url.Values{}
	if params.Lead != "" {
		query.Set("lead", string(params.Lead))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
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

	var list ClientList
	if err := g.rest.do(ctx, "clients.list", http.MethodGet, "/clients/", token, query, nil, &list); err != nil {
		return ClientList{Error: RemoteMessage(err, "Failed to fetch clients"), Pagination: stubPagination()}
	}
	return list
}

func (g *ClientGateway) Get(ctx context.Context, token string, id int64) ClientResult {
	if token == "" {
		return ClientResult{Error: errAuthRequired}
	}

	var client Client
	err := g.rest.do(ctx, "clients.get", http.MethodGet, "/clients/"+strconv.FormatInt(id, 10), token, nil, nil, &client)
	if err != nil {
		return ClientResult{Error: RemoteMessage(err, "Failed to fetch client")}
	}
	return ClientResult{Success: true, Data: &client}
}

// Create posts a new client. The endpoint sometimes nests the created
// record as {success, data}; both shapes are accepted.
func (g *ClientGateway) Create(ctx context.Context, token string, payload CreateClientPayload) ClientResult {
	if token == "" {
		return ClientResult{Error: errAuthRequired}
	}

	var raw json.RawMessage
	err := g.rest.do(ctx, "clients.create", http.MethodPost, "/clients/", token, nil, payload, &raw)
	if err != nil {
		return ClientResult{Error: RemoteMessage(err, "Failed to create client")}
	}
	var client Client
	if err := unwrapRecord(raw, &client); err != nil {
		return ClientResult{Error: "Failed to create client"}
	}
	return ClientResult{Success: true, Data: &client}
}

func (g *ClientGateway) Update(ctx context.Context, token string, id int64, payload UpdateClientPayload) ClientResult {
	if token == "" {
		return ClientResult{Error: errAuthRequired}
	}

	var client Client
	err := g.rest.do(ctx, "clients.update", http.MethodPut, "/clients/"+strconv.FormatInt(id, 10), token, nil, payload, &client)
	if err != nil {
		return ClientResult{Error: RemoteMessage(err, "Failed to update client")}
	}
	return ClientResult{Success: true, Data: &client}
}

func (g *ClientGateway) Delete(ctx context.Context, token string, id int64) DeleteResult {
	if token == "" {
		return DeleteResult{Error: errAuthRequired}
	}

	err := g.rest.do(ctx, "clients.delete", http.MethodDelete, "/clients/"+strconv.FormatInt(id, 10), token, nil, nil, nil)
	if err != nil {
		return DeleteResult{Error: RemoteMessage(err, "Failed to delete client")}
	}
	return DeleteResult{Success: true}
}
