package service

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/store"
	appErrors "github.com/alnajat-edu/portal-api/pkg/errors"
)

// MessageService backs the chat feature: direct messages, conversation
// threads, contact lists and unread aggregation.
type MessageService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMessageService constructs the message service.
func NewMessageService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *MessageService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{store: st, validator: validate, logger: logger}
}

// SendMessageRequest is a direct message payload. Blank content is
// rejected here the way the portal's send button ignored it.
type SendMessageRequest struct {
	SenderID   string `json:"sender_id" validate:"required"`
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

// Send delivers a message. The stored message is always unread.
func (s *MessageService) Send(req SendMessageRequest) (models.Message, error) {
	req.Content = strings.TrimSpace(req.Content)
	if err := s.validator.Struct(req); err != nil {
		return models.Message{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid message payload")
	}

	return s.store.SendMessage(models.Message{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}), nil
}

// Conversation returns both directions of a thread, oldest first.
func (s *MessageService) Conversation(userID, otherID string) []models.Message {
	var out []models.Message
	for _, m := range s.store.Messages() {
		if (m.SenderID == userID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == userID) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// MarkRead flips the unread messages of the (sender → receiver) pair.
// Safe to repeat; it never un-reads.
func (s *MessageService) MarkRead(senderID, receiverID string) int {
	return s.store.MarkMessagesRead(senderID, receiverID)
}

// UnreadTotal counts unread messages addressed to the user.
func (s *MessageService) UnreadTotal(userID string) int {
	total := 0
	for _, m := range s.store.Messages() {
		if m.ReceiverID == userID && !m.Read {
			total++
		}
	}
	return total
}

// Contact is one entry of a user's chat list.
type Contact struct {
	User        models.User `json:"user"`
	LastMessage string      `json:"last_message,omitempty"`
	LastAt      int64       `json:"last_at,omitempty"`
	Unread      int         `json:"unread"`
}

// Contacts builds the chat list for a user: the counterpart roles allowed
// for their own role, ordered by most recent thread activity, each with
// its unread count.
func (s *MessageService) Contacts(userID string) ([]Contact, error) {
	account, ok := s.store.AccountByID(userID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}

	var base []models.User
	switch account.(type) {
	case models.Admin:
		base = concatUsers(teacherUsers(s.store), parentUsers(s.store))
	case models.Teacher:
		base = concatUsers(parentUsers(s.store), adminUsers(s.store))
	case models.Parent:
		base = concatUsers(teacherUsers(s.store), adminUsers(s.store))
	case models.Student:
		base = teacherUsers(s.store)
	}

	messages := s.store.Messages()
	contacts := make([]Contact, 0, len(base))
	for _, u := range base {
		if u.ID == userID {
			continue
		}
		c := Contact{User: u}
		for _, m := range messages {
			inThread := (m.SenderID == userID && m.ReceiverID == u.ID) ||
				(m.SenderID == u.ID && m.ReceiverID == userID)
			if !inThread {
				continue
			}
			if ts := m.Timestamp.UnixMilli(); ts >= c.LastAt {
				c.LastAt = ts
				c.LastMessage = m.Content
			}
			if m.SenderID == u.ID && m.ReceiverID == userID && !m.Read {
				c.Unread++
			}
		}
		contacts = append(contacts, c)
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].LastAt > contacts[j].LastAt
	})
	return contacts, nil
}

func concatUsers(groups ...[]models.User) []models.User {
	var out []models.User
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func teacherUsers(st *store.Store) []models.User {
	teachers := st.Teachers()
	out := make([]models.User, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, t.Base())
	}
	return out
}

func parentUsers(st *store.Store) []models.User {
	parents := st.Parents()
	out := make([]models.User, 0, len(parents))
	for _, p := range parents {
		out = append(out, p.Base())
	}
	return out
}

func adminUsers(st *store.Store) []models.User {
	admins := st.Admins()
	out := make([]models.User, 0, len(admins))
	for _, a := range admins {
		out = append(out, a.Base())
	}
	return out
}
