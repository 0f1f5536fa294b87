package domain

// EventType selects a slice of the agenda. The zero value (or "all") means
// no type filter.
type EventType string

const (
	EventTypeAll      EventType = "all"
	EventTypeOnline   EventType = "online"
	EventTypeInPerson EventType = "in-person"
)

// Address is the venue of an in-person event, stored as a JSON document.
// The field names match the frontend payload exactly.
type Address struct {
	CEP          string `json:"cep,omitempty"`
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
}

// Event is a studio gathering, either at a venue or by video link. Date is
// kept as text in YYYY-MM-DD form, the same representation the frontend
// submits and sorts by.
type Event struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Hour        string   `json:"hour"`
	MeetingLink *string  `json:"meeting_link"`
	Description string   `json:"description"`
	Address     *Address `json:"address"`
}

// IsOnline reports whether the event happens by video link rather than at a
// venue. The link's presence is the single source of truth.
func (e *Event) IsOnline() bool {
	return e.MeetingLink != nil && *e.MeetingLink != ""
}

// EventFilters narrows a listing. Empty fields are inactive; values are
// passed to storage uninterpreted.
type EventFilters struct {
	Date     string
	Location string
	Type     EventType
}
