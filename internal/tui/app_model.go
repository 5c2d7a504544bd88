package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hwalton/snapcram/internal/service"
	"github.com/hwalton/snapcram/models"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenNetworkIssue
	screenDeckList
	screenCreate
	screenReview
	screenEdit
	screenSettings
)

type appMode int

const (
	modeAuth appMode = iota
	modeOffline
	modeMain
)

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteDeck
	confirmDeleteAccount
)

type appModel struct {
	ctx           context.Context
	services      *service.Services
	mode          appMode
	currentScreen screen

	theme  models.Theme
	styles styleSet

	welcome  welcomeModel
	login    loginModel
	register registerModel
	network  networkIssueModel
	deckList deckListModel
	create   createDeckModel
	review   reviewModel
	edit     editModel
	settings settingsModel

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingAction confirmAction
	pendingDeckID int64

	// loadGen invalidates in-flight deck loads; only the newest response
	// is applied.
	loadGen int

	authenticated bool
	retry         bool
	logout        bool
}

func newAuthAppModel(ctx context.Context, services *service.Services) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeAuth,
		currentScreen: screenWelcome,
		theme:         models.ThemeLight,
		styles:        stylesFor(models.ThemeLight),
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
	}
}

func newOfflineAppModel(ctx context.Context, services *service.Services) appModel {
	m := newAuthAppModel(ctx, services)
	m.mode = modeOffline
	m.currentScreen = screenNetworkIssue
	return m
}

func newMainAppModel(ctx context.Context, services *service.Services, info models.AppBuildInfo, theme models.Theme) appModel {
	m := newAuthAppModel(ctx, services)
	m.mode = modeMain
	m.currentScreen = screenDeckList
	m.theme = theme
	m.styles = stylesFor(theme)
	m.deckList = newDeckListModel()
	m.settings = settingsModel{theme: theme, info: info}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return m.cmdLoadDecks()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				switch m.pendingAction {
				case confirmDeleteDeck:
					return m, m.cmdDeleteDeck(m.pendingDeckID)
				case confirmDeleteAccount:
					return m, m.cmdDeleteAccount()
				}
				return m, nil
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingAction = confirmNone
				m.pendingDeckID = 0
			}
			return m, nil
		}
	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.authenticated = true
		return m, tea.Quit
	case decksLoadedMsg:
		if msg.gen != m.loadGen {
			return m, nil
		}
		m.deckList.loading = false
		m.deckList.refreshing = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrUnauthenticated) {
				m.logout = true
				return m, tea.Quit
			}
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.deckList.decks = msg.decks
		m.deckList.stale = msg.stale
		if m.deckList.idx >= len(m.deckList.decks) {
			m.deckList.idx = len(m.deckList.decks) - 1
		}
		if m.deckList.idx < 0 {
			m.deckList.idx = 0
		}
		return m, nil
	case imagesUploadedMsg:
		if m.currentScreen != screenCreate || m.create.stage != stageUploading {
			return m, nil
		}
		if msg.err != nil {
			m.create.stage = stageError
			m.create.errText = humanizeError(msg.err)
			return m, nil
		}
		m.create.stage = stageGenerating
		return m, m.cmdGenerateDeck(m.create.pending, msg.fileIDs)
	case deckCreatedMsg:
		if m.currentScreen != screenCreate || m.create.stage != stageGenerating {
			return m, nil
		}
		if msg.err != nil {
			m.create.stage = stageError
			m.create.errText = humanizeError(msg.err)
			return m, nil
		}
		m.create = newCreateDeckModel()
		m.currentScreen = screenDeckList
		m.deckList.loading = true
		m.deckList.status = fmt.Sprintf("Created %q", msg.deck.Name)
		m.loadGen++
		return m, tea.Batch(m.cmdLoadDecks(), cmdClearStatus())
	case deckDeletedMsg:
		m.pendingDeckID = 0
		m.pendingAction = confirmNone
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.deckList.loading = true
		m.loadGen++
		return m, m.cmdLoadDecks()
	case answerRecordedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil
	case editsSavedMsg:
		m.edit.saving = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenDeckList
		m.deckList.loading = true
		m.loadGen++
		return m, m.cmdLoadDecks()
	case themeSavedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.theme = msg.theme
		m.styles = stylesFor(msg.theme)
		m.settings.theme = msg.theme
		return m, nil
	case loggedOutMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	case accountDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	case copiedMsg:
		m.review.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.review.status = ""
		m.deckList.status = ""
		m.settings.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenNetworkIssue:
		return m.updateNetworkIssue(msg)
	case screenDeckList:
		return m.updateDeckList(msg)
	case screenCreate:
		return m.updateCreate(msg)
	case screenReview:
		return m.updateReview(msg)
	case screenEdit:
		return m.updateEdit(msg)
	case screenSettings:
		return m.updateSettings(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View(m.styles)
	case screenLogin:
		body = m.login.View(m.styles)
	case screenRegister:
		body = m.register.View(m.styles)
	case screenNetworkIssue:
		body = m.network.View(m.styles)
	case screenDeckList:
		body = m.deckList.View(m.styles)
	case screenCreate:
		body = m.create.View(m.styles)
	case screenReview:
		body = m.review.View(m.styles)
	case screenEdit:
		body = m.edit.View(m.styles)
	case screenSettings:
		body = m.settings.View(m.styles)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View(m.styles)
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View(m.styles)
	}

	return m.styles.app.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email := trimmed(m.login.inputs[0])
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.showErrorf("Email and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdAuthenticate(models.Credentials{Email: email, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			email := trimmed(m.register.inputs[0])
			pass := m.register.inputs[1].Value()
			repeat := m.register.inputs[2].Value()
			if email == "" || pass == "" {
				m.showErrorf("Email and password are required")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdCreateUser(models.Credentials{Email: email, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateNetworkIssue(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.retry):
		m.retry = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateDeckList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.deckList.idx > 0 {
				m.deckList.idx--
			}
		case key.Matches(msg, keys.down):
			if m.deckList.idx < len(m.deckList.decks)-1 {
				m.deckList.idx++
			}
		case key.Matches(msg, keys.enter):
			deck, ok := m.deckList.current()
			if !ok {
				return m, nil
			}
			m.review = newReviewModel(deck.ID, deck.Name, service.NewReviewSession(deck))
			m.currentScreen = screenReview
		case key.Matches(msg, keys.edit):
			deck, ok := m.deckList.current()
			if !ok {
				return m, nil
			}
			m.edit = newEditModel(deck.Name, service.NewEditSession(deck))
			m.currentScreen = screenEdit
		case key.Matches(msg, keys.newDeck):
			m.create = newCreateDeckModel()
			m.currentScreen = screenCreate
		case key.Matches(msg, keys.delete):
			deck, ok := m.deckList.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = fmt.Sprintf("Delete %q?", deck.Name)
			m.pendingAction = confirmDeleteDeck
			m.pendingDeckID = deck.ID
		case key.Matches(msg, keys.refresh):
			if m.deckList.refreshing {
				return m, nil
			}
			m.deckList.refreshing = true
			m.loadGen++
			return m, tea.Batch(m.deckList.spinner.Tick, m.cmdLoadDecks())
		case key.Matches(msg, keys.settings):
			m.currentScreen = screenSettings
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.deckList.refreshing {
			var cmd tea.Cmd
			m.deckList.spinner, cmd = m.deckList.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		if m.create.stage == stageUploading || m.create.stage == stageGenerating {
			var cmd tea.Cmd
			m.create.spinner, cmd = m.create.spinner.Update(tick)
			return m, cmd
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	switch m.create.stage {
	case stageUploading, stageGenerating:
		return m, nil
	case stageError:
		switch {
		case key.Matches(keyMsg, keys.retry):
			m.create.errText = ""
			m.create.stage = stageUploading
			return m, tea.Batch(m.create.spinner.Tick, m.cmdUploadImages(m.create.pending))
		case key.Matches(keyMsg, keys.esc):
			m.create.errText = ""
			m.create.stage = stageForm
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDeckList
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.create = focusNextCreate(m.create)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.create = focusPrevCreate(m.create)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		form, err := m.create.form()
		if err != nil {
			m.create.errText = err.Error()
			return m, nil
		}
		m.create.errText = ""
		m.create.pending = form
		m.create.stage = stageUploading
		return m, tea.Batch(m.create.spinner.Tick, m.cmdUploadImages(form))
	}

	var cmd tea.Cmd
	m.create.inputs[m.create.focus], cmd = m.create.inputs[m.create.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDeckList
		return m, nil
	case keyMsg.String() == "ctrl+c":
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	if m.review.session.Empty() {
		return m, nil
	}

	if m.review.session.Done() {
		if key.Matches(keyMsg, keys.restart) {
			m.review.session.Restart()
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.flip):
		m.review.session.Flip()
	case key.Matches(keyMsg, keys.copy):
		text, ok := m.review.visibleSide()
		if !ok || text == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(text)
	case key.Matches(keyMsg, keys.confLow):
		return m.answerCurrent(models.ConfidenceLow)
	case key.Matches(keyMsg, keys.confMid):
		return m.answerCurrent(models.ConfidenceMedium)
	case key.Matches(keyMsg, keys.confHigh):
		return m.answerCurrent(models.ConfidenceHigh)
	}

	return m, nil
}

// answerCurrent records a confidence outcome for the card on screen. The
// answer buttons only make sense once the back is visible.
func (m appModel) answerCurrent(confidence models.Confidence) (tea.Model, tea.Cmd) {
	if !m.review.session.Flipped() {
		return m, nil
	}
	storageIndex, ok := m.review.session.Answer(confidence)
	if !ok {
		return m, nil
	}
	return m, m.cmdRecordAnswer(m.review.deckID, storageIndex, confidence)
}

func (m appModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.edit.saving {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.edit.flushCurrent()
			if !m.edit.session.Dirty() {
				m.currentScreen = screenDeckList
				return m, nil
			}
			m.edit.saving = true
			return m, m.cmdSaveEdits(m.edit.session.DeckID(), m.edit.session.Cards())
		case key.Matches(keyMsg, keys.tab):
			m.edit.toggleFocus()
			return m, nil
		case key.Matches(keyMsg, keys.nextCard):
			m.edit.flushCurrent()
			m.edit.session.Next(true)
			m.edit.loadCurrent()
			return m, nil
		case key.Matches(keyMsg, keys.prevCard):
			m.edit.flushCurrent()
			m.edit.session.Next(false)
			m.edit.loadCurrent()
			return m, nil
		case key.Matches(keyMsg, keys.insert):
			m.edit.flushCurrent()
			m.edit.session.Insert()
			m.edit.loadCurrent()
			return m, nil
		case key.Matches(keyMsg, keys.remove):
			m.edit.session.Remove()
			m.edit.loadCurrent()
			return m, nil
		}
	}

	if m.edit.session.Empty() {
		return m, nil
	}

	var cmd tea.Cmd
	m.edit.areas[m.edit.focus], cmd = m.edit.areas[m.edit.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDeckList
	case key.Matches(keyMsg, keys.theme):
		return m, m.cmdSaveTheme(m.theme.Toggle())
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.deleteAccount):
		m.showConfirm = true
		m.confirm.message = "Delete your account and all decks? This cannot be undone."
		m.pendingAction = confirmDeleteAccount
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) cmdAuthenticate(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return authDoneMsg{err: session.Authenticate(ctx, creds)}
	}
}

func (m appModel) cmdCreateUser(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return authDoneMsg{err: session.CreateUser(ctx, creds)}
	}
}

func (m appModel) cmdLoadDecks() tea.Cmd {
	gen := m.loadGen
	ctx := m.ctx
	decks := m.services.Decks
	return func() tea.Msg {
		list, stale, err := decks.Refresh(ctx)
		return decksLoadedMsg{gen: gen, decks: list, stale: stale, err: err}
	}
}

func (m appModel) cmdUploadImages(form service.CreateDeckForm) tea.Cmd {
	ctx := m.ctx
	decks := m.services.Decks
	return func() tea.Msg {
		fileIDs, err := decks.UploadImages(ctx, form)
		return imagesUploadedMsg{fileIDs: fileIDs, err: err}
	}
}

func (m appModel) cmdGenerateDeck(form service.CreateDeckForm, fileIDs []string) tea.Cmd {
	ctx := m.ctx
	decks := m.services.Decks
	return func() tea.Msg {
		deck, err := decks.CreateFromFiles(ctx, form, fileIDs)
		return deckCreatedMsg{deck: deck, err: err}
	}
}

func (m appModel) cmdDeleteDeck(id int64) tea.Cmd {
	ctx := m.ctx
	decks := m.services.Decks
	return func() tea.Msg {
		return deckDeletedMsg{err: decks.Delete(ctx, id)}
	}
}

func (m appModel) cmdRecordAnswer(deckID int64, cardIndex int, confidence models.Confidence) tea.Cmd {
	ctx := m.ctx
	decks := m.services.Decks
	return func() tea.Msg {
		return answerRecordedMsg{err: decks.RecordAnswer(ctx, deckID, cardIndex, confidence)}
	}
}

func (m appModel) cmdSaveEdits(deckID int64, cards []models.EditedFlashcard) tea.Cmd {
	ctx := m.ctx
	decks := m.services.Decks
	return func() tea.Msg {
		return editsSavedMsg{err: decks.SaveEdits(ctx, deckID, cards)}
	}
}

func (m appModel) cmdSaveTheme(theme models.Theme) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return themeSavedMsg{theme: theme, err: session.SetTheme(ctx, theme)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return loggedOutMsg{err: session.Logout(ctx)}
	}
}

func (m appModel) cmdDeleteAccount() tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return accountDeletedMsg{err: session.DeleteAccount(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return answerRecordedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextCreate(m createDeckModel) createDeckModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevCreate(m createDeckModel) createDeckModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
