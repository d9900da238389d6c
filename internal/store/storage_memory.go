package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-messenger/models"
)

type memoryStorage struct {
	mu         sync.RWMutex
	users      map[int64]models.User
	messages   map[int64]models.Message
	nextUserID int64
	nextMsgID  int64
}

// NewMemoryStorage returns a process-local [MessageStorage]. Its contents
// are lost on restart.
func NewMemoryStorage() MessageStorage {
	return &memoryStorage{
		users:      make(map[int64]models.User),
		messages:   make(map[int64]models.Message),
		nextUserID: 1,
		nextMsgID:  1,
	}
}

func (s *memoryStorage) CreateUser(_ context.Context, name string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{ID: s.nextUserID, Name: name}
	s.nextUserID++
	s.users[user.ID] = user

	return user, nil
}

func (s *memoryStorage) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	slices.SortFunc(users, func(a, b models.User) int { return cmp.Compare(a.ID, b.ID) })

	return users, nil
}

func (s *memoryStorage) GetUser(_ context.Context, userID int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

func (s *memoryStorage) CreateMessage(_ context.Context, msg models.Message) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[msg.FromID]; !ok {
		return models.Message{}, ErrUserNotFound
	}
	if _, ok := s.users[msg.ToID]; !ok {
		return models.Message{}, ErrUserNotFound
	}

	msg.ID = s.nextMsgID
	s.nextMsgID++
	msg = msg.WithTimestamp()
	s.messages[msg.ID] = msg

	return msg, nil
}

func (s *memoryStorage) ListMessages(_ context.Context) ([]models.Message, error) {
	return s.filterMessages(func(models.Message) bool { return true }), nil
}

func (s *memoryStorage) ListInbox(_ context.Context, userID int64) ([]models.Message, error) {
	return s.filterMessages(func(m models.Message) bool { return m.ToID == userID }), nil
}

func (s *memoryStorage) filterMessages(keep func(models.Message) bool) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]models.Message, 0)
	for _, m := range s.messages {
		if keep(m) {
			messages = append(messages, m)
		}
	}
	slices.SortFunc(messages, func(a, b models.Message) int { return cmp.Compare(a.ID, b.ID) })

	return messages
}

func (s *memoryStorage) GetMessage(_ context.Context, messageID int64) (models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[messageID]
	if !ok {
		return models.Message{}, ErrMessageNotFound
	}

	return msg, nil
}

func (s *memoryStorage) UpdateMessage(_ context.Context, req models.UpdateMessageRequest) (models.Message, error) {
	return s.modifyMessage(req.ID, func(m *models.Message) {
		if req.Text != "" {
			m.Text = req.Text
		}
		m.IsRead = req.IsRead
	})
}

func (s *memoryStorage) MarkRead(_ context.Context, messageID int64) (models.Message, error) {
	return s.modifyMessage(messageID, func(m *models.Message) { m.IsRead = true })
}

func (s *memoryStorage) modifyMessage(messageID int64, apply func(*models.Message)) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[messageID]
	if !ok {
		return models.Message{}, ErrMessageNotFound
	}
	apply(&msg)
	s.messages[messageID] = msg

	return msg, nil
}

func (s *memoryStorage) DeleteMessage(_ context.Context, messageID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[messageID]; !ok {
		return ErrMessageNotFound
	}
	delete(s.messages, messageID)

	return nil
}

func (s *memoryStorage) Counts(_ context.Context) (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users), len(s.messages), nil
}

func (s *memoryStorage) Close() error {
	return nil
}
