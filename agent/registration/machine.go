package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/Libria-Library-Backend/agent/contract"
	profilex "github.com/tanpawarit/Libria-Library-Backend/agent/profile"
)

const (
	startPrompt      = "Hi, I'm the registration desk. To register you I need some information. What's your full name?"
	retryNamePrompt  = "I couldn't understand your name well. Please type your full name (e.g: John Smith)."
	restartPrompt    = "Perfect, let's start over. What is your full name?"
	alreadyDoneReply = "This registration was already completed previously."
)

// Service runs the registration conversation: it owns the session store and
// identifier generator, and hands finished profiles to the persistence
// gateway.
type Service struct {
	store    *Store
	profiles profilex.Store
	ids      *Generator
}

func NewService(store *Store, profiles profilex.Store, ids *Generator) *Service {
	return &Service{
		store:    store,
		profiles: profiles,
		ids:      ids,
	}
}

// GetProfile looks up a confirmed profile by id. Stale sessions are swept
// opportunistically before the lookup.
func (s *Service) GetProfile(ctx context.Context, userID string) contractx.Response {
	if removed := s.store.Sweep(); removed > 0 {
		log.Info().Int("removed", removed).Msg("stale registrations swept")
	}

	if strings.TrimSpace(userID) == "" {
		return contractx.Error(contractx.ReasonMissingUserID, "user_id is required")
	}

	log.Info().Str("user_id", userID).Msg("get_profile")

	p, exists, err := s.profiles.Get(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("profile lookup failed")
		return contractx.Error(contractx.ReasonException, err.Error())
	}
	if !exists {
		log.Info().Str("user_id", userID).Msg("profile_not_found")
		return contractx.ProfileNotFound()
	}

	log.Info().Str("user_id", userID).Str("name", p.Name).Msg("profile_found")
	return contractx.ProfileFound(p)
}

// StartRegistration opens a fresh conversation and asks for the name.
func (s *Service) StartRegistration(_ context.Context) contractx.Response {
	conversationID := s.ids.ConversationID()
	s.store.Create(conversationID)

	log.Info().Str("conversation_id", conversationID).Msg("registration_started")
	return contractx.RegistrationStarted(conversationID, startPrompt)
}

// ContinueRegistration advances the conversation by one user turn.
func (s *Service) ContinueRegistration(ctx context.Context, conversationID, userMessage string) contractx.Response {
	if strings.TrimSpace(conversationID) == "" {
		return contractx.Error(contractx.ReasonMissingConversationID, "conversation_id is required to continue")
	}

	log.Info().
		Str("conversation_id", conversationID).
		Str("message", userMessage).
		Msg("continue_registration")

	var resp contractx.Response
	found := s.store.Step(conversationID, func(session *Session) (remove bool) {
		resp, remove = s.step(ctx, session, userMessage)
		return remove
	})
	if !found {
		log.Warn().Str("conversation_id", conversationID).Msg("conversation not found")
		return contractx.Error(contractx.ReasonConversationNotFound,
			"Conversation not found or expired. Please start registration again.")
	}
	return resp
}

// step runs one turn of the stage machine against the locked session.
func (s *Service) step(ctx context.Context, session *Session, userMessage string) (contractx.Response, bool) {
	stage := session.Stage

	// A just-started session falls through to name handling on its first
	// turn.
	if stage == StageStarted {
		session.Stage = StageAwaitingName
		stage = StageAwaitingName
	}

	switch stage {
	case StageAwaitingName:
		return s.handleName(session, userMessage), false

	case StageAwaitingPhone:
		return s.handlePhone(session, userMessage), false

	case StageConfirm:
		return s.handleConfirm(ctx, session, userMessage)

	case StageDone:
		return contractx.Info(alreadyDoneReply), false

	default:
		log.Error().Str("stage", string(stage)).Msg("unknown stage")
		return contractx.Error(contractx.ReasonUnknownStage,
			fmt.Sprintf("Invalid conversation state: %s", stage)), false
	}
}

func (s *Service) handleName(session *Session, userMessage string) contractx.Response {
	name, ok := ValidateName(userMessage)
	if !ok {
		log.Warn().Str("input", userMessage).Msg("invalid name")
		return contractx.AskUserData(session.ConversationID, "name", retryNamePrompt)
	}

	session.Collected.Name = name
	session.Stage = StageAwaitingPhone

	prompt := fmt.Sprintf(
		"Perfect, %s. Can you give me your phone number? (or type 'skip' if you prefer not to share it)",
		name)
	return contractx.AskUserData(session.ConversationID, "phone", prompt)
}

// handlePhone never blocks progress: a skipped or unparseable phone is
// stored as absent and the conversation moves on to confirmation.
func (s *Service) handlePhone(session *Session, userMessage string) contractx.Response {
	if IsSkipRequest(userMessage) {
		session.Collected.Phone = nil
		log.Info().Msg("phone skipped")
	} else if phone, ok := ValidatePhone(userMessage); ok {
		session.Collected.Phone = &phone
	} else {
		session.Collected.Phone = nil
		if userMessage != "" {
			log.Warn().Str("input", userMessage).Msg("invalid phone")
		}
	}

	session.Stage = StageConfirm

	phoneLine := "(skipped)"
	if session.Collected.Phone != nil {
		phoneLine = *session.Collected.Phone
	}
	summary := fmt.Sprintf("Confirm your data:\n\n- Name: %s\n- Phone: %s",
		session.Collected.Name, phoneLine)

	return contractx.ConfirmData(session.ConversationID, summary,
		summary+"\n\nAll correct? (yes / no)")
}

func (s *Service) handleConfirm(ctx context.Context, session *Session, userMessage string) (contractx.Response, bool) {
	if !IsAffirmative(userMessage) {
		log.Info().Msg("confirmation rejected, restarting")
		session.Stage = StageAwaitingName
		session.Collected = Collected{}
		return contractx.AskUserData(session.ConversationID, "name", restartPrompt), false
	}

	userID := s.ids.UserID()
	p := profilex.New(session.Collected.Name, session.Collected.Phone)

	if err := s.profiles.Save(ctx, userID, p); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("profile save failed")
		if errors.Is(err, profilex.ErrMissingName) {
			return contractx.Error(contractx.ReasonMissingName,
				"Cannot save a profile without a name."), false
		}
		return contractx.Error(contractx.ReasonSaveFailed,
			"There was an error saving your profile. Please try again."), false
	}

	log.Info().Str("user_id", userID).Str("name", p.Name).Msg("registration_complete")
	return contractx.RegistrationComplete(session.ConversationID, userID, p), true
}
