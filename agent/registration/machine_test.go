package registration

import (
	"context"
	"errors"
	"strings"
	"testing"

	contractx "github.com/tanpawarit/Libria-Library-Backend/agent/contract"
	profilex "github.com/tanpawarit/Libria-Library-Backend/agent/profile"
)

func newTestService(profiles profilex.Store) *Service {
	if profiles == nil {
		profiles = profilex.NewMemoryStore()
	}
	return NewService(NewStore(), profiles, NewGenerator())
}

func startConversation(t *testing.T, svc *Service) string {
	t.Helper()
	resp := svc.StartRegistration(context.Background())
	if resp.Type != contractx.TypeRegistrationStarted {
		t.Fatalf("expected %q, got %q", contractx.TypeRegistrationStarted, resp.Type)
	}
	payload, ok := resp.Payload.(contractx.RegistrationStartedPayload)
	if !ok {
		t.Fatalf("unexpected payload type %T", resp.Payload)
	}
	if payload.ConversationID == "" {
		t.Fatal("expected a conversation id")
	}
	if !strings.Contains(payload.Prompt, "full name") {
		t.Fatalf("expected name prompt, got %q", payload.Prompt)
	}
	return payload.ConversationID
}

func TestRegistrationHappyPathWithSkippedPhone(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	profiles := profilex.NewMemoryStore()
	svc := newTestService(profiles)
	convID := startConversation(t, svc)

	resp := svc.ContinueRegistration(ctx, convID, "Maria Lopez")
	if resp.Type != contractx.TypeAskUserData {
		t.Fatalf("expected %q after name, got %q", contractx.TypeAskUserData, resp.Type)
	}
	ask := resp.Payload.(contractx.AskUserDataPayload)
	if ask.Field != "phone" {
		t.Fatalf("expected phone request, got field %q", ask.Field)
	}
	if !strings.Contains(ask.Prompt, "Maria Lopez") {
		t.Fatalf("expected prompt to greet by name, got %q", ask.Prompt)
	}

	resp = svc.ContinueRegistration(ctx, convID, "skip")
	if resp.Type != contractx.TypeConfirmData {
		t.Fatalf("expected %q after phone, got %q", contractx.TypeConfirmData, resp.Type)
	}
	confirm := resp.Payload.(contractx.ConfirmDataPayload)
	if !strings.Contains(confirm.Summary, "Name: Maria Lopez") {
		t.Fatalf("expected summary with name, got %q", confirm.Summary)
	}
	if !strings.Contains(confirm.Summary, "Phone: (skipped)") {
		t.Fatalf("expected skipped phone in summary, got %q", confirm.Summary)
	}

	resp = svc.ContinueRegistration(ctx, convID, "yes")
	if resp.Type != contractx.TypeRegistrationComplete {
		t.Fatalf("expected %q after confirmation, got %q", contractx.TypeRegistrationComplete, resp.Type)
	}
	complete := resp.Payload.(contractx.RegistrationCompletePayload)
	if complete.Profile.Name != "Maria Lopez" {
		t.Fatalf("unexpected profile name %q", complete.Profile.Name)
	}
	if complete.Profile.Phone != nil {
		t.Fatalf("expected nil phone, got %q", *complete.Profile.Phone)
	}
	if complete.Profile.Preferences.Accessibility.LanguagePreference != "en" {
		t.Fatal("expected default preferences on the saved profile")
	}
	if len(complete.UserID) != 5 {
		t.Fatalf("expected 5-digit user id, got %q", complete.UserID)
	}

	// The profile is persisted and retrievable.
	resp = svc.GetProfile(ctx, complete.UserID)
	if resp.Type != contractx.TypeProfileFound {
		t.Fatalf("expected %q, got %q", contractx.TypeProfileFound, resp.Type)
	}
	found := resp.Payload.(contractx.ProfileFoundPayload)
	if found.Profile.Name != "Maria Lopez" {
		t.Fatalf("unexpected persisted name %q", found.Profile.Name)
	}

	// The session is gone; the conversation cannot continue.
	resp = svc.ContinueRegistration(ctx, convID, "hello?")
	assertErrorReason(t, resp, contractx.ReasonConversationNotFound)
}

func TestRegistrationWithPhone(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(nil)
	convID := startConversation(t, svc)

	svc.ContinueRegistration(ctx, convID, "Ernesto Sabato")
	resp := svc.ContinueRegistration(ctx, convID, "(381) 555-1234")
	confirm := resp.Payload.(contractx.ConfirmDataPayload)
	if !strings.Contains(confirm.Summary, "Phone: 3815551234") {
		t.Fatalf("expected normalized phone in summary, got %q", confirm.Summary)
	}

	resp = svc.ContinueRegistration(ctx, convID, "perfect")
	complete := resp.Payload.(contractx.RegistrationCompletePayload)
	if complete.Profile.Phone == nil || *complete.Profile.Phone != "3815551234" {
		t.Fatalf("expected saved phone 3815551234, got %v", complete.Profile.Phone)
	}
}

func TestRegistrationInvalidNameReprompts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(nil)
	convID := startConversation(t, svc)

	resp := svc.ContinueRegistration(ctx, convID, "12345")
	if resp.Type != contractx.TypeAskUserData {
		t.Fatalf("expected re-prompt, got %q", resp.Type)
	}
	ask := resp.Payload.(contractx.AskUserDataPayload)
	if ask.Field != "name" {
		t.Fatalf("expected name re-prompt, got field %q", ask.Field)
	}

	// A valid name afterwards still advances.
	resp = svc.ContinueRegistration(ctx, convID, "Julio Cortazar")
	ask = resp.Payload.(contractx.AskUserDataPayload)
	if ask.Field != "phone" {
		t.Fatalf("expected phone request after retry, got field %q", ask.Field)
	}
}

func TestRegistrationRejectionRestarts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(nil)
	convID := startConversation(t, svc)

	svc.ContinueRegistration(ctx, convID, "Maria Lopez")
	svc.ContinueRegistration(ctx, convID, "3815551234")
	resp := svc.ContinueRegistration(ctx, convID, "no, that's wrong")
	if resp.Type != contractx.TypeAskUserData {
		t.Fatalf("expected restart prompt, got %q", resp.Type)
	}
	ask := resp.Payload.(contractx.AskUserDataPayload)
	if ask.Field != "name" {
		t.Fatalf("expected restart at name, got field %q", ask.Field)
	}

	// Previously collected data is discarded.
	svc.ContinueRegistration(ctx, convID, "Adolfo Bioy Casares")
	resp = svc.ContinueRegistration(ctx, convID, "skip")
	confirm := resp.Payload.(contractx.ConfirmDataPayload)
	if !strings.Contains(confirm.Summary, "Name: Adolfo Bioy Casares") {
		t.Fatalf("expected fresh name in summary, got %q", confirm.Summary)
	}
	if strings.Contains(confirm.Summary, "3815551234") {
		t.Fatalf("expected old phone to be discarded, got %q", confirm.Summary)
	}
}

func TestContinueRegistrationErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(nil)

	assertErrorReason(t, svc.ContinueRegistration(ctx, "", "hi"), contractx.ReasonMissingConversationID)
	assertErrorReason(t, svc.ContinueRegistration(ctx, "   ", "hi"), contractx.ReasonMissingConversationID)
	assertErrorReason(t, svc.ContinueRegistration(ctx, "nope12345678", "hi"), contractx.ReasonConversationNotFound)
}

func TestGetProfileErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(nil)

	assertErrorReason(t, svc.GetProfile(ctx, ""), contractx.ReasonMissingUserID)
	assertErrorReason(t, svc.GetProfile(ctx, "  "), contractx.ReasonMissingUserID)

	resp := svc.GetProfile(ctx, "99999")
	if resp.Type != contractx.TypeProfileNotFound {
		t.Fatalf("expected %q, got %q", contractx.TypeProfileNotFound, resp.Type)
	}
}

func TestContinueRegistrationDoneStage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	svc := NewService(store, profilex.NewMemoryStore(), NewGenerator())
	convID := startConversation(t, svc)

	store.Step(convID, func(s *Session) bool {
		s.Stage = StageDone
		return false
	})

	resp := svc.ContinueRegistration(ctx, convID, "hello again")
	if resp.Type != contractx.TypeInfo {
		t.Fatalf("expected %q for a finished conversation, got %q", contractx.TypeInfo, resp.Type)
	}
	info := resp.Payload.(contractx.InfoPayload)
	if !strings.Contains(info.Message, "already completed") {
		t.Fatalf("unexpected message %q", info.Message)
	}
}

func TestContinueRegistrationUnknownStage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	svc := NewService(store, profilex.NewMemoryStore(), NewGenerator())
	convID := startConversation(t, svc)

	store.Step(convID, func(s *Session) bool {
		s.Stage = Stage("corrupted")
		return false
	})

	resp := svc.ContinueRegistration(ctx, convID, "hello?")
	assertErrorReason(t, resp, contractx.ReasonUnknownStage)

	// The session is not torn down; the stage error repeats until expiry.
	resp = svc.ContinueRegistration(ctx, convID, "still here")
	assertErrorReason(t, resp, contractx.ReasonUnknownStage)
}

type failingStore struct {
	err error
}

func (f *failingStore) Get(ctx context.Context, userID string) (profilex.Profile, bool, error) {
	return profilex.Profile{}, false, f.err
}

func (f *failingStore) Save(ctx context.Context, userID string, p profilex.Profile) error {
	return f.err
}

func TestRegistrationSaveFailureKeepsSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(&failingStore{err: errors.New("disk on fire")})
	convID := startConversation(t, svc)

	svc.ContinueRegistration(ctx, convID, "Maria Lopez")
	svc.ContinueRegistration(ctx, convID, "skip")
	resp := svc.ContinueRegistration(ctx, convID, "yes")
	assertErrorReason(t, resp, contractx.ReasonSaveFailed)

	// The session survives a save failure so the user can retry.
	resp = svc.ContinueRegistration(ctx, convID, "yes")
	assertErrorReason(t, resp, contractx.ReasonSaveFailed)
}

func TestRegistrationMissingNameSave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(&failingStore{err: profilex.ErrMissingName})
	convID := startConversation(t, svc)

	svc.ContinueRegistration(ctx, convID, "Maria Lopez")
	svc.ContinueRegistration(ctx, convID, "skip")
	resp := svc.ContinueRegistration(ctx, convID, "yes")
	assertErrorReason(t, resp, contractx.ReasonMissingName)
}

func TestGetProfileStoreError(t *testing.T) {
	t.Parallel()

	svc := newTestService(&failingStore{err: errors.New("connection lost")})
	resp := svc.GetProfile(context.Background(), "12345")
	assertErrorReason(t, resp, contractx.ReasonException)
}

func assertErrorReason(t *testing.T, resp contractx.Response, reason string) {
	t.Helper()
	if resp.Type != contractx.TypeError {
		t.Fatalf("expected error response, got %q", resp.Type)
	}
	payload, ok := resp.Payload.(contractx.ErrorPayload)
	if !ok {
		t.Fatalf("unexpected payload type %T", resp.Payload)
	}
	if payload.Reason != reason {
		t.Fatalf("expected reason %q, got %q (message %q)", reason, payload.Reason, payload.Message)
	}
}
