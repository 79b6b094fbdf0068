package state

import "github.com/jw6ventures/leaddesk/internal/crm"

// ModalMode is what the event modal is being used for.
type ModalMode string

const (
	ModalCreate ModalMode = "create"
	ModalEdit   ModalMode = "edit"
	ModalView   ModalMode = "view"
)

// EventModal is transient UI state with no server counterpart. All fields
// reset when the modal closes.
type EventModal struct {
	Open     bool
	Mode     ModalMode
	Selected *crm.CalendarEvent
	SeedDate string
	SeedTime string
}

// OpenView shows an existing event read-only.
func (m *EventModal) OpenView(event *crm.CalendarEvent) {
	m.Selected = event
	m.Mode = ModalView
	m.Open = true
}

// OpenEdit shows an existing event for editing.
func (m *EventModal) OpenEdit(event *crm.CalendarEvent) {
	m.Selected = event
	m.Mode = ModalEdit
	m.Open = true
}

// OpenCreate shows an empty form, optionally seeded with a slot the user
// clicked on.
func (m *EventModal) OpenCreate(date, timeOfDay string) {
	m.Selected = nil
	m.SeedDate = date
	m.SeedTime = timeOfDay
	m.Mode = ModalCreate
	m.Open = true
}

func (m *EventModal) Close() {
	*m = EventModal{}
}

// DeleteModal tracks the pending-delete confirmation.
type DeleteModal struct {
	Open    bool
	Pending *crm.CalendarEvent
}

func (m *DeleteModal) OpenFor(event *crm.CalendarEvent) {
	m.Pending = event
	m.Open = true
}

func (m *DeleteModal) Close() {
	*m = DeleteModal{}
}
