package contract

// Action is the closed request tag selecting an operation.
type Action string

const (
	ActionCheckAvailability    Action = "check_availability"
	ActionSearchBooks          Action = "search_books"
	ActionGetProfile           Action = "get_profile"
	ActionStartRegistration    Action = "start_registration"
	ActionContinueRegistration Action = "continue_registration"
)

// Request is the JSON envelope carried by every invocation. Which fields are
// meaningful depends on Action; the rest stay empty.
type Request struct {
	Action Action `json:"action"`

	// check_availability
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`

	// search_books
	Query    string `json:"query,omitempty"`
	Criteria string `json:"criteria,omitempty"`

	// get_profile
	UserID string `json:"user_id,omitempty"`

	// continue_registration
	ConversationID string `json:"conversation_id,omitempty"`
	UserMessage    string `json:"user_message,omitempty"`
}
