package crm

import "time"

// API aggregates one gateway per remote resource collection, all sharing a
// single REST transport. It is the only path to the system of record.
type API struct {
	rest *restClient

	Auth     *AuthGateway
	Clients  *ClientGateway
	Tasks    *TaskGateway
	Calendar *CalendarGateway
}

// New wires the gateways against the remote API base URL.
func New(baseURL string, timeout time.Duration) *API {
	rest := newRESTClient(baseURL, timeout)
	return &API{
		rest:     rest,
		Auth:     &AuthGateway{rest: rest},
		Clients:  &ClientGateway{rest: rest},
		Tasks:    &TaskGateway{rest: rest},
		Calendar: &CalendarGateway{rest: rest},
	}
}
