package crm

// User is the identity resolved by presenting the session token to the
// remote identity endpoint. It is never cached beyond one request.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Credentials are exchanged for a session token at login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LeadStatus classifies a client lead.
type LeadStatus string

const (
	LeadCold LeadStatus = "cold"
	LeadWarm LeadStatus = "warm"
	LeadHot  LeadStatus = "hot"
)

// Client is a CRM client record. Ids and timestamps are assigned by the
// remote API; this layer never fills them in.
type Client struct {
	ID                     int64      `json:"id"`
	CreatedAt              string     `json:"created_at"`
	CompanyName            string     `json:"company_name"`
	FirstName              string     `json:"first_name"`
	LastName               string     `json:"last_name"`
	Position               string     `json:"position"`
	Phone                  string     `json:"phone"`
	Email                  string     `json:"email"`
	Website                string     `json:"website"`
	Address                string     `json:"address"`
	City                   string     `json:"city"`
	State                  string     `json:"state"`
	Zipcode                string     `json:"zipcode"`
	Lead                   LeadStatus `json:"lead"`
	RelatedName            string     `json:"related_name"`
	LinkedinConnection     string     `json:"linkedin_connection"`
	Comments               string     `json:"comments"`
	FirstContact           string     `json:"first_contact,omitempty"`
	DescriptionContact     string     `json:"description_contact"`
	DateOfLastContact      string     `json:"date_of_last_contact"`
	DescriptionContactMore string     `json:"description_contact_more"`
	FollowUpAction         string     `json:"follow_up_action"`
	DateOfNextContact      string     `json:"date_of_next_contact"`
	NewBusiness            string     `json:"new_business"`
	Recommendation         string     `json:"recommendation"`
	OwnerID                int64      `json:"owner_id"`
	LatestTaskID           *int64     `json:"latest_task_id,omitempty"`
	TaskCount              *int       `json:"task_count,omitempty"`
}

// CreateClientPayload holds the client-writable fields for create calls.
type CreateClientPayload struct {
	CompanyName            string     `json:"company_name"`
	FirstName              string     `json:"first_name"`
	LastName               string     `json:"last_name"`
	Position               string     `json:"position"`
	Phone                  string     `json:"phone"`
	Email                  string     `json:"email"`
	Website                string     `json:"website"`
	Address                string     `json:"address"`
	City                   string     `json:"city"`
	State                  string     `json:"state"`
	Zipcode                string     `json:"zipcode"`
	Lead                   LeadStatus `json:"lead"`
	RelatedName            string     `json:"related_name"`
	LinkedinConnection     string     `json:"linkedin_connection"`
	Comments               string     `json:"comments"`
	FirstContact           string     `json:"first_contact,omitempty"`
	DescriptionContact     string     `json:"description_contact"`
	DescriptionContactMore string     `json:"description_contact_more"`
	FollowUpAction         string     `json:"follow_up_action"`
	NewBusiness            string     `json:"new_business"`
	Recommendation         string     `json:"recommendation"`
}

// UpdateClientPayload is the full writable record plus its id.
type UpdateClientPayload struct {
	ID int64 `json:"id"`
	CreateClientPayload
}

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// TaskPriority ranks a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TaskType categorizes a task.
type TaskType string

const (
	TaskFollowUp TaskType = "follow-up"
	TaskMeeting  TaskType = "meeting"
	TaskCall     TaskType = "call"
	TaskEmail    TaskType = "email"
	TaskOther    TaskType = "other"
)

// Task is a CRM task. ClientID is a weak reference with no ownership
// semantics at this layer.
type Task struct {
	ID          int64        `json:"id"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	CompletedAt string       `json:"completed_at,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	ClientID    *int64       `json:"client_id,omitempty"`
	DueDate     string       `json:"due_date,omitempty"`
	Priority    TaskPriority `json:"priority,omitempty"`
	Type        TaskType     `json:"type,omitempty"`
	OwnerID     int64        `json:"owner_id"`
}

// CreateTaskPayload holds the client-writable task fields.
type CreateTaskPayload struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	ClientID    *int64       `json:"client_id,omitempty"`
	DueDate     string       `json:"due_date,omitempty"`
	Priority    TaskPriority `json:"priority,omitempty"`
	Type        TaskType     `json:"type,omitempty"`
}

// UpdateTaskPayload is the full record minus server-owned timestamps.
type UpdateTaskPayload struct {
	ID int64 `json:"id"`
	CreateTaskPayload
}

// EventType categorizes a calendar event.
type EventType string

const (
	EventMeeting  EventType = "meeting"
	EventCall     EventType = "call"
	EventFollowUp EventType = "follow-up"
	EventDeadline EventType = "deadline"
	EventPersonal EventType = "personal"
	EventOther    EventType = "other"
)

// EventStatus is the scheduling state of a calendar event.
type EventStatus string

const (
	EventScheduled   EventStatus = "scheduled"
	EventCompleted   EventStatus = "completed"
	EventCancelled   EventStatus = "cancelled"
	EventRescheduled EventStatus = "rescheduled"
)

// Recurrence is the repeat rule of a calendar event.
type Recurrence string

const (
	RecurNone    Recurrence = "none"
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
	RecurYearly  Recurrence = "yearly"
)

// CalendarEvent is a scheduled event, optionally linked to a client or a
// task by weak reference.
type CalendarEvent struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	StartDate     string      `json:"start_date"`
	EndDate       string      `json:"end_date"`
	AllDay        bool        `json:"all_day"`
	Type          EventType   `json:"type"`
	Status        EventStatus `json:"status"`
	ClientID      *int64      `json:"client_id,omitempty"`
	TaskID        *int64      `json:"task_id,omitempty"`
	Location      string      `json:"location,omitempty"`
	Recurrence    Recurrence  `json:"recurrence"`
	RecurrenceEnd string      `json:"recurrence_end,omitempty"`
	CreatedAt     string      `json:"created_at"`
	UpdatedAt     string      `json:"updated_at"`
	OwnerID       int64       `json:"owner_id"`
}

// CreateEventPayload holds the client-writable event fields.
type CreateEventPayload struct {
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	StartDate     string      `json:"start_date"`
	EndDate       string      `json:"end_date"`
	AllDay        bool        `json:"all_day"`
	Type          EventType   `json:"type"`
	Status        EventStatus `json:"status"`
	ClientID      *int64      `json:"client_id,omitempty"`
	TaskID        *int64      `json:"task_id,omitempty"`
	Location      string      `json:"location"`
	Recurrence    Recurrence  `json:"recurrence"`
	RecurrenceEnd string      `json:"recurrence_end,omitempty"`
}

// UpdateEventPayload carries the event id plus any subset of the create
// fields. Fields left at their zero value are still sent; the remote API
// treats the update as a full replace of the writable fields.
type UpdateEventPayload struct {
	ID int64 `json:"id"`
	CreateEventPayload
}

// Pagination is recomputed by the remote API on every list call. This
// layer only displays it.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// stubPagination is the zeroed pagination returned when a list call fails
// before reaching the remote API.
func stubPagination() Pagination {
	return Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 0, ItemsPerPage: 10}
}
