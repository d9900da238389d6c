package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-messenger/internal/service"
	servicemock "github.com/MKhiriev/go-messenger/internal/service/mock"
	"github.com/MKhiriev/go-messenger/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	alice = models.User{ID: 1, Name: "Alice"}
	bob   = models.User{ID: 2, Name: "Bob"}
)

// newTestModel — модель с моком контроллера и заданной сессией
func newTestModel(t *testing.T, session models.Session) (messengerModel, *servicemock.MockClientMessengerService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockClientMessengerService(ctrl)

	svc.EXPECT().Session().Return(session).AnyTimes()
	svc.EXPECT().Changes().Return(make(<-chan struct{})).AnyTimes()
	svc.EXPECT().PollInterval().Return(5 * time.Second).AnyTimes()

	m := newMessengerModel(context.Background(), svc, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"))
	m.pending = 0
	return m, svc
}

func press(m messengerModel, k tea.KeyMsg) (messengerModel, tea.Cmd) {
	updated, cmd := m.Update(k)
	return updated.(messengerModel), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func TestModel_TabCyclesPanels(t *testing.T) {
	m, _ := newTestModel(t, models.Session{})

	for want := panelNewUser; want < panelCount; want++ {
		m, _ = press(m, keyTab)
		assert.Equal(t, want, m.focus)
	}

	m, _ = press(m, keyTab)
	assert.Equal(t, panelUsers, m.focus, "после последней панели — снова первая")

	m, _ = press(m, keyShiftTab)
	assert.Equal(t, panelInbox, m.focus)
}

func TestModel_EnterOnUser_ActivatesInCommand(t *testing.T) {
	m, svc := newTestModel(t, models.Session{Users: []models.User{alice, bob}, ActiveUserID: alice.ID})

	m, _ = press(m, keyDown)
	m, cmd := press(m, keyEnter)
	require.NotNil(t, cmd, "смена пользователя должна выполняться в команде")
	assert.Equal(t, 1, m.pending)

	svc.EXPECT().SetActiveUser(bob.ID)
	msg := cmd()
	assert.Equal(t, opDoneMsg{op: service.OpActivateUser}, msg)

	updated, _ := m.Update(msg)
	assert.Equal(t, 0, updated.(messengerModel).pending)
}

func TestModel_EnterOnActiveUser_Noop(t *testing.T) {
	m, _ := newTestModel(t, models.Session{Users: []models.User{alice}, ActiveUserID: alice.ID})

	_, cmd := press(m, keyEnter)
	assert.Nil(t, cmd)
}

func TestModel_CreateUser(t *testing.T) {
	m, svc := newTestModel(t, models.Session{})
	m, _ = press(m, keyTab)

	svc.EXPECT().SetDraftName("C")
	svc.EXPECT().SetDraftName("Ca")
	m, _ = press(m, runes("C"))
	m, _ = press(m, runes("a"))

	m, cmd := press(m, keyEnter)
	require.NotNil(t, cmd)

	svc.EXPECT().CreateUser(gomock.Any(), "Ca").Return(nil)
	done := cmd()
	assert.Equal(t, opDoneMsg{op: service.OpCreateUser}, done)

	updated, _ := m.Update(done)
	assert.Equal(t, "Пользователь добавлен", updated.(messengerModel).status)
}

func TestModel_CreateUser_BlankName(t *testing.T) {
	m, _ := newTestModel(t, models.Session{})
	m, _ = press(m, keyTab)

	m, cmd := press(m, keyEnter)
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errMsg)
}

func TestModel_SendMessage(t *testing.T) {
	session := models.Session{
		Users:             []models.User{alice, bob},
		ActiveUserID:      alice.ID,
		SelectedRecipient: &bob,
	}
	m, svc := newTestModel(t, session)
	m.setFocus(panelCompose)

	svc.EXPECT().SetDraftText("h")
	svc.EXPECT().SetDraftText("hi")
	m, _ = press(m, runes("h"))
	m, _ = press(m, runes("i"))

	_, cmd := press(m, keyEnter)
	require.NotNil(t, cmd)

	svc.EXPECT().SendMessage(gomock.Any(), "hi").Return(nil)
	assert.Equal(t, opDoneMsg{op: service.OpSendMessage}, cmd())
}

func TestModel_SendMessage_NoRecipient(t *testing.T) {
	m, svc := newTestModel(t, models.Session{Users: []models.User{alice}, ActiveUserID: alice.ID})
	m.setFocus(panelCompose)

	svc.EXPECT().SetDraftText("x")
	m, _ = press(m, runes("x"))

	m, cmd := press(m, keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, "Выберите получателя", m.errMsg)
}

func TestModel_SelectRecipient(t *testing.T) {
	m, svc := newTestModel(t, models.Session{Users: []models.User{alice, bob}, ActiveUserID: alice.ID})
	m.setFocus(panelRecipient)

	// Alice активна, поэтому единственный получатель — Bob
	svc.EXPECT().SelectRecipient(bob.ID).Return(true)
	m, cmd := press(m, keyEnter)

	assert.Nil(t, cmd, "выбор получателя — локальная операция")
	assert.Empty(t, m.errMsg)
}

func TestModel_InboxHotkeys(t *testing.T) {
	session := models.Session{
		Users:        []models.User{alice, bob},
		ActiveUserID: alice.ID,
		Messages: []models.Message{
			{ID: 42, Text: "hello", FromID: bob.ID, ToID: alice.ID, FromName: "Bob", Timestamp: "10:00:00"},
		},
	}
	m, svc := newTestModel(t, session)
	m.setFocus(panelInbox)

	t.Run("mark read", func(t *testing.T) {
		_, cmd := press(m, runes("r"))
		require.NotNil(t, cmd)

		svc.EXPECT().MarkRead(gomock.Any(), int64(42)).Return(nil)
		assert.Equal(t, opDoneMsg{op: service.OpMarkRead}, cmd())
	})

	t.Run("copy", func(t *testing.T) {
		var copied string
		old := clipboardWrite
		clipboardWrite = func(text string) error { copied = text; return nil }
		defer func() { clipboardWrite = old }()

		_, cmd := press(m, runes("c"))
		require.NotNil(t, cmd)
		assert.Equal(t, copiedMsg{}, cmd())
		assert.Equal(t, "hello", copied)
	})

	t.Run("copy error", func(t *testing.T) {
		old := clipboardWrite
		clipboardWrite = func(string) error { return errors.New("no clipboard") }
		defer func() { clipboardWrite = old }()

		_, cmd := press(m, runes("c"))
		updated, _ := m.Update(cmd())
		assert.Contains(t, updated.(messengerModel).errMsg, "Ошибка копирования")
	})
}

func TestModel_SessionChanged_RendersInbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockClientMessengerService(ctrl)
	changes := make(chan struct{}, 1)

	svc.EXPECT().Session().Return(models.Session{})
	svc.EXPECT().Changes().Return((<-chan struct{})(changes)).AnyTimes()
	svc.EXPECT().PollInterval().Return(5 * time.Second).AnyTimes()
	m := newMessengerModel(context.Background(), svc, models.AppBuildInfo{})

	session := models.Session{
		Users:        []models.User{alice, bob},
		ActiveUserID: alice.ID,
		DraftText:    "",
		Messages: []models.Message{
			{ID: 1, Text: "unread one", FromName: "Bob", Timestamp: "10:00:00"},
			{ID: 2, Text: "read one", FromName: "Bob", Timestamp: "10:00:01", IsRead: true},
		},
	}
	svc.EXPECT().Session().Return(session)

	updated, cmd := m.Update(sessionChangedMsg{})
	require.NotNil(t, cmd, "после изменения ждём следующее")
	m = updated.(messengerModel)

	view := m.View()
	assert.Contains(t, view, "unread one")
	assert.Contains(t, view, "NEW")
	assert.Contains(t, view, "Входящие сообщения для Alice")
	assert.Contains(t, view, "Пользователей: 2  Сообщений: 2  Новых: 1  Опрос: каждые 5s")

	changes <- struct{}{}
	assert.Equal(t, sessionChangedMsg{}, cmd())
}

func TestModel_SessionChanged_ClearsSentDraft(t *testing.T) {
	m, _ := newTestModel(t, models.Session{})
	m.textInput.SetValue("hello")

	m.applySession(models.Session{DraftText: ""})
	assert.Empty(t, m.textInput.Value(), "после отправки поле ввода очищается")
}

func TestModel_FailureShown(t *testing.T) {
	m, _ := newTestModel(t, models.Session{})

	updated, _ := m.Update(failureMsg{failure: service.Failure{
		Op:  service.OpRefreshUsers,
		Err: fmt.Errorf("%w: dial tcp", service.ErrServerUnavailable),
	}})

	assert.Equal(t, "Не удалось загрузить пользователей: Отсутствует сеть или Сервер недоступен",
		updated.(messengerModel).errMsg)
}

func TestModel_BuildInfo(t *testing.T) {
	m, svc := newTestModel(t, models.Session{})

	m, _ = press(m, runes("v"))
	require.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "Версия: 1.0.0")
	assert.Contains(t, m.View(), "Коммит: abc123")

	m, _ = press(m, keyEsc)
	assert.False(t, m.showBuildInfo)

	// в поле ввода "v" — обычный символ
	m.setFocus(panelCompose)
	svc.EXPECT().SetDraftText("v")
	m, _ = press(m, runes("v"))
	assert.False(t, m.showBuildInfo)
}

func TestModel_CtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, models.Session{})

	m, cmd := press(m, keyCtrlC)
	require.NotNil(t, cmd)
	assert.True(t, m.quitByUser)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHumanizeError(t *testing.T) {
	assert.Equal(t, "", humanizeError(nil))
	assert.Equal(t, "имя не может быть пустым", humanizeError(service.ErrEmptyName))
	assert.Equal(t, "сообщение не найдено", humanizeError(fmt.Errorf("x: %w", service.ErrMessageNotFound)))
	assert.Equal(t, "Отсутствует сеть или Сервер недоступен", humanizeError(errors.New("dial tcp 127.0.0.1:8080: connection refused")))
	assert.Equal(t, "boom", humanizeError(errors.New("boom")))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcd...", fitText("abcdefghij", 7))
	assert.Equal(t, "при...", fitText("привет мир", 6))
}
