package contract

import (
	profilex "github.com/tanpawarit/Libria-Library-Backend/agent/profile"
)

// ResponseType is the closed discriminator for response payloads.
type ResponseType string

const (
	TypeBookAvailable        ResponseType = "book_available"
	TypeBookNotAvailable     ResponseType = "book_not_available"
	TypeBookNotFound         ResponseType = "book_not_found"
	TypeMultipleResults      ResponseType = "multiple_results"
	TypeSearchResults        ResponseType = "search_results"
	TypeProfileFound         ResponseType = "profile_found"
	TypeProfileNotFound      ResponseType = "profile_not_found"
	TypeRegistrationStarted  ResponseType = "registration_started"
	TypeAskUserData          ResponseType = "ask_user_data"
	TypeConfirmData          ResponseType = "confirm_data"
	TypeRegistrationComplete ResponseType = "registration_complete"
	TypeInfo                 ResponseType = "info"
	TypeError                ResponseType = "error"
)

// Response is the wire envelope: a type tag plus one payload struct matching
// that tag. Use the constructors below so tag and payload cannot drift.
type Response struct {
	Type    ResponseType `json:"type"`
	Payload any          `json:"payload,omitempty"`
}

type BookAvailablePayload struct {
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	AvailableCopies int      `json:"available_copies"`
	Location        string   `json:"location"`
	LoanDays        int      `json:"loan_days"`
	AppliedRule     string   `json:"applied_rule"`
	ReturnDate      string   `json:"return_date"`
	Conditions      []string `json:"conditions"`
}

type BookNotAvailablePayload struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Reason      string `json:"reason"`
	Borrowed    int    `json:"borrowed"`
	UnderRepair int    `json:"under_repair"`
	Message     string `json:"message"`
}

type BookNotFoundPayload struct {
	SearchTitle string `json:"search_title"`
	Message     string `json:"message"`
	Suggestion  string `json:"suggestion"`
}

type BookOption struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

type MultipleResultsPayload struct {
	SearchTitle string       `json:"search_title"`
	Options     []BookOption `json:"options"`
}

type BookSummary struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Available       bool   `json:"available"`
	AvailableCopies int    `json:"available_copies"`
	Location        string `json:"location"`
	LoanDays        int    `json:"loan_days"`
}

type SearchResultsPayload struct {
	Query        string        `json:"query"`
	Criteria     string        `json:"criteria"`
	TotalResults int           `json:"total_results"`
	Books        []BookSummary `json:"books"`
}

type ProfileFoundPayload struct {
	Profile profilex.Profile `json:"profile"`
}

type RegistrationStartedPayload struct {
	ConversationID string `json:"conversation_id"`
	Prompt         string `json:"prompt"`
}

type AskUserDataPayload struct {
	ConversationID string `json:"conversation_id"`
	Field          string `json:"field"`
	Prompt         string `json:"prompt"`
}

type ConfirmDataPayload struct {
	ConversationID string `json:"conversation_id"`
	Summary        string `json:"summary"`
	Prompt         string `json:"prompt"`
}

type RegistrationCompletePayload struct {
	ConversationID string           `json:"conversation_id"`
	UserID         string           `json:"user_id"`
	Profile        profilex.Profile `json:"profile"`
}

type InfoPayload struct {
	Message string `json:"message"`
}

type ErrorPayload struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func BookAvailable(p BookAvailablePayload) Response {
	return Response{Type: TypeBookAvailable, Payload: p}
}

func BookNotAvailable(p BookNotAvailablePayload) Response {
	return Response{Type: TypeBookNotAvailable, Payload: p}
}

func BookNotFound(p BookNotFoundPayload) Response {
	return Response{Type: TypeBookNotFound, Payload: p}
}

func MultipleResults(p MultipleResultsPayload) Response {
	return Response{Type: TypeMultipleResults, Payload: p}
}

func SearchResults(p SearchResultsPayload) Response {
	return Response{Type: TypeSearchResults, Payload: p}
}

func ProfileFound(profile profilex.Profile) Response {
	return Response{Type: TypeProfileFound, Payload: ProfileFoundPayload{Profile: profile}}
}

func ProfileNotFound() Response {
	return Response{Type: TypeProfileNotFound}
}

func RegistrationStarted(conversationID, prompt string) Response {
	return Response{Type: TypeRegistrationStarted, Payload: RegistrationStartedPayload{
		ConversationID: conversationID,
		Prompt:         prompt,
	}}
}

func AskUserData(conversationID, field, prompt string) Response {
	return Response{Type: TypeAskUserData, Payload: AskUserDataPayload{
		ConversationID: conversationID,
		Field:          field,
		Prompt:         prompt,
	}}
}

func ConfirmData(conversationID, summary, prompt string) Response {
	return Response{Type: TypeConfirmData, Payload: ConfirmDataPayload{
		ConversationID: conversationID,
		Summary:        summary,
		Prompt:         prompt,
	}}
}

func RegistrationComplete(conversationID, userID string, profile profilex.Profile) Response {
	return Response{Type: TypeRegistrationComplete, Payload: RegistrationCompletePayload{
		ConversationID: conversationID,
		UserID:         userID,
		Profile:        profile,
	}}
}

func Info(message string) Response {
	return Response{Type: TypeInfo, Payload: InfoPayload{Message: message}}
}

func Error(reason, message string) Response {
	return Response{Type: TypeError, Payload: ErrorPayload{Reason: reason, Message: message}}
}
