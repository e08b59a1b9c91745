package contract

// Error reasons carried in ErrorPayload.Reason. All are recoverable by the
// caller; none terminate the service.
const (
	ReasonInvalidJSON           = "invalid_json"
	ReasonMissingTitle          = "missing_title"
	ReasonMissingQuery          = "missing_query"
	ReasonMissingUserID         = "missing_user_id"
	ReasonMissingAction         = "missing_action"
	ReasonMissingConversationID = "missing_conversation_id"
	ReasonConversationNotFound  = "conversation_not_found"
	ReasonMissingName           = "missing_name"
	ReasonSaveFailed            = "save_failed"
	ReasonUnknownAction         = "unknown_action"
	ReasonUnknownStage          = "unknown_stage"
	ReasonException             = "exception"
)
