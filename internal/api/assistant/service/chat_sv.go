package assistantService

import (
	"context"

	"github.com/sirupsen/logrus"

	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
	"AquaBackend/pkg/conversation"
	"AquaBackend/pkg/nlp"
)

const (
	cancelledReply = "De acuerdo, he cancelado la operación. ¿Algo más en lo que pueda ayudarte?"
	unclearReply   = "No entendí tu respuesta, así que he cancelado la operación pendiente. Vuelve a pedírmelo cuando quieras."
	techErrorReply = "Lo siento, tuve un problema técnico al consultar tu infraestructura. Inténtalo de nuevo en un momento."
)

// HandleMessage runs one conversational turn. Every path returns a reply
// string; errors inside the turn are absorbed into user-facing text.
func (s *assistantService) HandleMessage(ctx context.Context, user entity.UserLoginData, message string) string {
	convCtx := s.store.Get(ctx, user.ID)

	if convCtx.State == conversation.StateAwaitingConfirmation && convCtx.Pending != nil {
		return s.handleConfirmationReply(ctx, user, convCtx.Pending, message)
	}

	return s.handleNewRequest(ctx, user, message)
}

// handleConfirmationReply resolves a yes/no round-trip. State is cleared
// before the dispatcher runs, so a repeated "sí" in the same conversation
// can never re-execute the action.
func (s *assistantService) handleConfirmationReply(ctx context.Context, user entity.UserLoginData, pending *nlp.PendingAction, message string) string {
	switch {
	case nlp.IsNegative(message):
		s.store.Clear(ctx, user.ID)
		return cancelledReply
	case nlp.IsAffirmative(message):
		s.store.Clear(ctx, user.ID)
		return s.execute(ctx, user, pending)
	default:
		s.store.Clear(ctx, user.ID)
		return unclearReply
	}
}

func (s *assistantService) handleNewRequest(ctx context.Context, user entity.UserLoginData, message string) string {
	repo, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return techErrorReply
	}

	snapshot, err := repo.Infrastructure.GetUserInfrastructure(ctx, user.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"user_id":    user.ID,
			"error":      err.Error(),
		}).Error("Infrastructure snapshot fetch failed")
		return techErrorReply
	}

	intent := nlp.Classify(message)
	if intent == nil {
		return s.fallbackReply(ctx, message)
	}

	outcome := s.buildConfirmation(intent, snapshot)
	if outcome.Terminal {
		return outcome.Message
	}

	s.store.Await(ctx, user.ID, outcome.Resolved)
	return outcome.Message
}

// fallbackReply covers messages no rule matched. With a configured language
// model the message becomes free-form Q&A; otherwise the static help menu
// tells the user what the assistant can do.
func (s *assistantService) fallbackReply(ctx context.Context, message string) string {
	if s.gemini != nil {
		answer, err := s.gemini.Chat(ctx, message)
		if err == nil && answer != "" {
			return answer
		}
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
		}).Warn("Language model fallback failed, serving help menu")
	}

	return helpMessage()
}
