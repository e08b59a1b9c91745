// Package dispatch routes action-tagged JSON requests to the catalog and
// registration engines. Every failure, including a panic in an engine,
// becomes an in-band error response; nothing propagates past Handle.
package dispatch

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	catalogx "github.com/tanpawarit/Libria-Library-Backend/agent/catalog"
	contractx "github.com/tanpawarit/Libria-Library-Backend/agent/contract"
	registrationx "github.com/tanpawarit/Libria-Library-Backend/agent/registration"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Dispatcher struct {
	catalog      *catalogx.Service
	registration *registrationx.Service
}

func New(catalog *catalogx.Service, registration *registrationx.Service) *Dispatcher {
	return &Dispatcher{
		catalog:      catalog,
		registration: registration,
	}
}

// Handle decodes the envelope and dispatches on its action tag.
func (d *Dispatcher) Handle(ctx context.Context, raw []byte) (resp contractx.Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("request handler panicked")
			resp = contractx.Error(contractx.ReasonException, fmt.Sprint(r))
		}
	}()

	var req contractx.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return contractx.Error(contractx.ReasonInvalidJSON, "The request body must be valid JSON")
	}

	return d.HandleRequest(ctx, req)
}

// HandleRequest dispatches an already-decoded request.
func (d *Dispatcher) HandleRequest(ctx context.Context, req contractx.Request) (resp contractx.Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("request handler panicked")
			resp = contractx.Error(contractx.ReasonException, fmt.Sprint(r))
		}
	}()

	switch req.Action {
	case contractx.ActionCheckAvailability:
		return d.catalog.CheckAvailability(req.Title, req.Author)
	case contractx.ActionSearchBooks:
		return d.catalog.SearchBooks(req.Query, req.Criteria)
	case contractx.ActionGetProfile:
		return d.registration.GetProfile(ctx, req.UserID)
	case contractx.ActionStartRegistration:
		return d.registration.StartRegistration(ctx)
	case contractx.ActionContinueRegistration:
		return d.registration.ContinueRegistration(ctx, req.ConversationID, req.UserMessage)
	case "":
		return contractx.Error(contractx.ReasonMissingAction, "The 'action' field is required")
	default:
		return contractx.Error(contractx.ReasonUnknownAction,
			fmt.Sprintf("Action not recognized: %s", req.Action))
	}
}
