package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-messenger/internal/service"
	"github.com/MKhiriev/go-messenger/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type panel int

const (
	panelUsers panel = iota
	panelNewUser
	panelRecipient
	panelCompose
	panelInbox

	panelCount
)

const (
	maxNameLength    = 64
	maxMessageLength = 500
	textPreviewWidth = 60
	statusLifetime   = 2 * time.Second
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

type messengerModel struct {
	ctx       context.Context
	messenger service.ClientMessengerService
	buildInfo models.AppBuildInfo

	session models.Session
	focus   panel

	userIdx      int
	recipientIdx int
	inboxIdx     int

	nameInput textinput.Model
	textInput textinput.Model
	spinner   spinner.Model

	// pending counts controller calls still in flight
	pending int
	status  string
	errMsg  string

	showBuildInfo bool
	quitByUser    bool
}

func newMessengerModel(ctx context.Context, messenger service.ClientMessengerService, buildInfo models.AppBuildInfo) messengerModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "Имя пользователя"
	nameInput.CharLimit = maxNameLength

	textInput := textinput.New()
	textInput.Placeholder = "Введите сообщение..."
	textInput.CharLimit = maxMessageLength

	return messengerModel{
		ctx:       ctx,
		messenger: messenger,
		buildInfo: buildInfo,
		session:   messenger.Session(),
		nameInput: nameInput,
		textInput: textInput,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		pending:   1,
	}
}

func (m messengerModel) Init() tea.Cmd {
	return tea.Batch(
		waitForChange(m.messenger.Changes()),
		m.spinner.Tick,
		m.cmdRun(service.OpRefreshUsers, m.messenger.RefreshUsers),
	)
}

func (m messengerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionChangedMsg:
		m.applySession(m.messenger.Session())
		return m, waitForChange(m.messenger.Changes())
	case failureMsg:
		m.errMsg = failureMessage(msg.failure)
		m.status = ""
		return m, nil
	case opDoneMsg:
		if m.pending > 0 {
			m.pending--
		}
		if msg.err == nil {
			if text, ok := opStatus[msg.op]; ok {
				m.status = text
				m.errMsg = ""
				return m, cmdClearStatus()
			}
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		m.status = "Скопировано"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

var opStatus = map[string]string{
	service.OpCreateUser:  "Пользователь добавлен",
	service.OpSendMessage: "Сообщение отправлено",
	service.OpMarkRead:    "Отмечено как прочитанное",
}

func (m messengerModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % panelCount)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus + panelCount - 1) % panelCount)
		return m, nil
	}

	switch m.focus {
	case panelNewUser:
		return m.updateNameInput(msg)
	case panelCompose:
		return m.updateTextInput(msg)
	}

	// hotkeys that would otherwise be typed into an input
	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, keys.down):
		m.moveCursor(1)
		return m, nil
	}

	switch m.focus {
	case panelUsers:
		if key.Matches(msg, keys.enter) {
			return m.activateHighlightedUser()
		}
	case panelRecipient:
		if key.Matches(msg, keys.enter) {
			m.selectHighlightedRecipient()
		}
	case panelInbox:
		msgItem, ok := m.highlightedMessage()
		if !ok {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.markRead):
			id := msgItem.ID
			return m.start(service.OpMarkRead, func(ctx context.Context) error {
				return m.messenger.MarkRead(ctx, id)
			})
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(msgItem.Text)
		}
	}

	return m, nil
}

func (m messengerModel) updateNameInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.enter) {
		name := m.nameInput.Value()
		if strings.TrimSpace(name) == "" {
			m.errMsg = "Введите имя пользователя"
			return m, nil
		}
		return m.start(service.OpCreateUser, func(ctx context.Context) error {
			return m.messenger.CreateUser(ctx, name)
		})
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	if m.nameInput.Value() != m.session.DraftName {
		m.session.DraftName = m.nameInput.Value()
		m.messenger.SetDraftName(m.session.DraftName)
	}
	return m, cmd
}

func (m messengerModel) updateTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.enter) {
		if m.session.SelectedRecipient == nil {
			m.errMsg = "Выберите получателя"
			return m, nil
		}
		text := m.textInput.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		return m.start(service.OpSendMessage, func(ctx context.Context) error {
			return m.messenger.SendMessage(ctx, text)
		})
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != m.session.DraftText {
		m.session.DraftText = m.textInput.Value()
		m.messenger.SetDraftText(m.session.DraftText)
	}
	return m, cmd
}

func (m messengerModel) activateHighlightedUser() (tea.Model, tea.Cmd) {
	if m.userIdx < 0 || m.userIdx >= len(m.session.Users) {
		return m, nil
	}
	userID := m.session.Users[m.userIdx].ID
	if userID == m.session.ActiveUserID {
		return m, nil
	}

	// switching restarts polling, which refreshes the inbox over the network
	m.pending++
	m.errMsg = ""
	messenger := m.messenger
	return m, func() tea.Msg {
		messenger.SetActiveUser(userID)
		return opDoneMsg{op: service.OpActivateUser}
	}
}

func (m *messengerModel) selectHighlightedRecipient() {
	recipients := m.session.Recipients()
	if m.recipientIdx < 0 || m.recipientIdx >= len(recipients) {
		return
	}
	if !m.messenger.SelectRecipient(recipients[m.recipientIdx].ID) {
		m.errMsg = "Нельзя выбрать этого получателя"
		return
	}
	m.errMsg = ""
}

func (m messengerModel) highlightedMessage() (models.Message, bool) {
	if m.inboxIdx < 0 || m.inboxIdx >= len(m.session.Messages) {
		return models.Message{}, false
	}
	return m.session.Messages[m.inboxIdx], true
}

func (m *messengerModel) moveCursor(delta int) {
	switch m.focus {
	case panelUsers:
		m.userIdx = clamp(m.userIdx+delta, len(m.session.Users))
	case panelRecipient:
		m.recipientIdx = clamp(m.recipientIdx+delta, len(m.session.Recipients()))
	case panelInbox:
		m.inboxIdx = clamp(m.inboxIdx+delta, len(m.session.Messages))
	}
}

func (m *messengerModel) setFocus(p panel) {
	m.focus = p
	m.nameInput.Blur()
	m.textInput.Blur()
	switch p {
	case panelNewUser:
		m.nameInput.Focus()
	case panelCompose:
		m.textInput.Focus()
	}
}

func (m *messengerModel) applySession(s models.Session) {
	m.session = s

	if m.nameInput.Value() != s.DraftName {
		m.nameInput.SetValue(s.DraftName)
	}
	if m.textInput.Value() != s.DraftText {
		m.textInput.SetValue(s.DraftText)
	}

	m.userIdx = clamp(m.userIdx, len(s.Users))
	m.recipientIdx = clamp(m.recipientIdx, len(s.Recipients()))
	m.inboxIdx = clamp(m.inboxIdx, len(s.Messages))
}

// start runs a controller call in a command and counts it as pending.
func (m messengerModel) start(op string, call func(ctx context.Context) error) (tea.Model, tea.Cmd) {
	m.pending++
	m.errMsg = ""
	return m, m.cmdRun(op, call)
}

func (m messengerModel) cmdRun(op string, call func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, err: call(ctx)}
	}
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return sessionChangedMsg{}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func clamp(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (m messengerModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(m.viewUsers())
	b.WriteString("\n")
	b.WriteString(m.panelTitle(panelNewUser, "Новый пользователь"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewRecipients())
	b.WriteString("\n")
	b.WriteString(m.panelTitle(panelCompose, "Сообщение"))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewInbox())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	hotKeys := "tab: панель  enter: выбрать/отправить  r: прочитано  c: копировать  v: о программе"
	return appStyle.Render(renderPage("МЕССЕНДЖЕР", b.String(), hotKeys))
}

func (m messengerModel) panelTitle(p panel, title string) string {
	if m.focus == p {
		return focusedTitleStyle.Render(title)
	}
	return titleStyle.Render(title)
}

func (m messengerModel) viewUsers() string {
	var b strings.Builder
	b.WriteString(m.panelTitle(panelUsers, "Войти как"))
	b.WriteString("\n")

	if len(m.session.Users) == 0 {
		b.WriteString("  Пользователей пока нет\n")
		return b.String()
	}

	for i, u := range m.session.Users {
		b.WriteString(cursor(i == m.userIdx, m.focus == panelUsers))
		marker := " "
		if u.ID == m.session.ActiveUserID {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s (ID: %d)\n", marker, u.Name, u.ID)
	}
	return b.String()
}

func (m messengerModel) viewRecipients() string {
	var b strings.Builder
	b.WriteString(m.panelTitle(panelRecipient, "Получатель"))
	if m.session.SelectedRecipient != nil {
		fmt.Fprintf(&b, ": %s", m.session.SelectedRecipient.Name)
	}
	b.WriteString("\n")

	recipients := m.session.Recipients()
	if len(recipients) == 0 {
		b.WriteString("  Некому писать\n")
		return b.String()
	}

	for i, u := range recipients {
		b.WriteString(cursor(i == m.recipientIdx, m.focus == panelRecipient))
		fmt.Fprintf(&b, "%s (ID: %d)\n", u.Name, u.ID)
	}
	return b.String()
}

func (m messengerModel) viewInbox() string {
	var b strings.Builder

	title := "Входящие сообщения"
	if active, ok := m.session.ActiveUser(); ok {
		title += " для " + active.Name
	}
	b.WriteString(m.panelTitle(panelInbox, title))
	b.WriteString("\n")

	if !m.session.HasActiveUser() {
		b.WriteString("  Выберите пользователя\n")
		return b.String()
	}
	if len(m.session.Messages) == 0 {
		b.WriteString("  Нет сообщений\n")
		return b.String()
	}

	for i, msg := range m.session.Messages {
		b.WriteString(cursor(i == m.inboxIdx, m.focus == panelInbox))
		mark := "   "
		if !msg.IsRead {
			mark = newMarkStyle.Render("NEW")
		}
		fmt.Fprintf(&b, "%s %s От: %s  %s\n", mark, msg.Timestamp, msg.FromName, fitText(msg.Text, textPreviewWidth))
	}
	return b.String()
}

func (m messengerModel) viewFooter() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Пользователей: %d  Сообщений: %d  Новых: %d  Опрос: каждые %s",
		len(m.session.Users), len(m.session.Messages), m.session.UnreadCount(), m.messenger.PollInterval())

	if m.pending > 0 {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	return b.String()
}
