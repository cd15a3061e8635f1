package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"support-widget/internal/domain/conversation"
	"support-widget/internal/domain/dto"
	"support-widget/internal/domain/entities"
	"support-widget/internal/domain/interfaces/repository"
	repocontants "support-widget/internal/domain/interfaces/repository/contants"
	"support-widget/internal/infra/api"
	"support-widget/internal/infra/logger"

	"github.com/google/uuid"
)

const WelcomeText = "How can I help you with furniture today?"

var ErrEmptyMessage = errors.New("message is empty")

// SessionKey tags transcript snapshots with the session that wrote them.
const SessionKey = "sessionId"

type SessionOptions struct {
	// TypingDelay returns the pause before a reply is shown. Defaults to 500-1500ms.
	TypingDelay func() time.Duration
	Now         func() time.Time
}

// SessionService drives one chat session: it tracks the transcript and the
// derived context, asks the façade for answers and classifies them.
type SessionService struct {
	Logger *logger.Logger
	Client *api.Client
	Store  repository.CollectionStore
	ID     string

	typingDelay func() time.Duration
	now         func() time.Time

	mu       sync.Mutex
	messages []entities.Message
	context  entities.ConversationContext
}

func NewSessionService(logger *logger.Logger, client *api.Client, store repository.CollectionStore, opts SessionOptions) *SessionService {
	delay := opts.TypingDelay
	if delay == nil {
		delay = randomTypingDelay
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &SessionService{
		Logger:      logger,
		Client:      client,
		Store:       store,
		ID:          uuid.NewString(),
		typingDelay: delay,
		now:         now,
		context:     entities.NewConversationContext(),
	}
}

// Open seeds the welcome message on a fresh session and returns it.
func (ss *SessionService) Open() entities.Message {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if len(ss.messages) > 0 {
		return ss.messages[0]
	}
	welcome := ss.newMessage(WelcomeText, entities.SenderBot)
	ss.messages = append(ss.messages, welcome)
	return welcome
}

// Send runs one turn and returns the bot reply. Failures to reach any answer
// source are reported in the reply itself rather than as an error. A context
// cancelled before the reply lands rolls the turn back, leaving the transcript
// as it was.
func (ss *SessionService) Send(ctx context.Context, text string) (entities.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Message{}, ErrEmptyMessage
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()

	prior := append([]entities.Message(nil), ss.messages...)
	priorContext := ss.context

	ss.messages = append(ss.messages, ss.newMessage(text, entities.SenderUser))
	ss.context = conversation.Update(ss.messages, priorContext)

	query := conversation.BuildQuery(text, priorContext, prior)
	res, err := api.Post[dto.ChatAnswer](ctx, ss.Client, api.ResourceChat, dto.ChatRequest{Query: query})

	if waitErr := ss.wait(ctx); waitErr != nil {
		ss.messages = prior
		ss.context = priorContext
		ss.Logger.Warn(fmt.Sprintf("Chat turn abandoned: %v", waitErr))
		return entities.Message{}, waitErr
	}

	var reply entities.Message
	answer := strings.TrimSpace(res.Data.Text())
	switch {
	case err != nil:
		ss.Logger.Error(fmt.Sprintf("Chat turn failed: %v", err))
		reply = ss.classified(conversation.ErrorClassification(), conversation.ConnectionErrorText)
	case answer == "":
		ss.Logger.Warn("Chat turn returned an empty answer")
		reply = ss.classified(conversation.ErrorClassification(), conversation.ConnectionErrorText)
	default:
		cleaned := conversation.CleanMarkdown(answer)
		reply = ss.classified(conversation.Classify(cleaned), cleaned)
	}

	ss.messages = append(ss.messages, reply)
	ss.context = conversation.Update(ss.messages, ss.context)
	ss.snapshot()

	return reply, nil
}

func (ss *SessionService) Messages() []entities.Message {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return append([]entities.Message(nil), ss.messages...)
}

func (ss *SessionService) Context() entities.ConversationContext {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.context
}

func (ss *SessionService) classified(c conversation.Classification, text string) entities.Message {
	m := ss.newMessage(text, entities.SenderBot)
	m.ResponseType = c.Type
	m.Details = c.Details
	return m
}

func (ss *SessionService) newMessage(text string, sender entities.Sender) entities.Message {
	return entities.Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: ss.now(),
	}
}

func (ss *SessionService) wait(ctx context.Context) error {
	d := ss.typingDelay()
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// snapshot overwrites this session's messages in the local store, leaving other sessions untouched.
func (ss *SessionService) snapshot() {
	if ss.Store == nil {
		return
	}

	existing := ss.Store.Load(repocontants.LOCAL_MESSAGES_COLLECTION)
	docs := make([]entities.Document, 0, len(existing)+len(ss.messages))
	for _, doc := range existing {
		if doc[SessionKey] != ss.ID {
			docs = append(docs, doc)
		}
	}

	for _, m := range ss.messages {
		doc, err := entities.ToDocument(m)
		if err != nil {
			ss.Logger.Warn(fmt.Sprintf("Skipping message %s in snapshot: %v", m.ID, err))
			continue
		}
		doc[SessionKey] = ss.ID
		docs = append(docs, doc)
	}

	if err := ss.Store.Save(repocontants.LOCAL_MESSAGES_COLLECTION, docs); err != nil {
		ss.Logger.Warn(fmt.Sprintf("Failed to snapshot session %s: %v", ss.ID, err))
	}
}

func randomTypingDelay() time.Duration {
	return 500*time.Millisecond + rand.N(1000*time.Millisecond)
}
