package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/views/chat"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/views/clausereview"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/views/keydates"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/views/upload"
	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
// The navigator owns the current view; App only renders it.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap
	status *status.Bar

	uploadView   *upload.View
	chatView     *chat.View
	keyDatesView *keydates.View
	clauseView   *clausereview.View
	historyView  *history.View

	// events and inbox feed the program from outside; nil when unused.
	events <-chan domain.Event
	inbox  <-chan string

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, s *styles.Styles) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		status:       status.NewBar(s, km),
		uploadView:   upload.NewView(s, ports.Workspace, ports.Documents, ports.Ingest),
		chatView:     chat.NewView(s, ports.Documents, ports.Conversation),
		keyDatesView: keydates.NewView(s, ports.Documents, ports.Calendar),
		clauseView:   clausereview.NewView(s, ports.Documents, ports.Clauses),
		historyView:  history.NewView(s, ports.History),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.uploadView.SetContext(ctx)
	a.chatView.SetContext(ctx)
	a.keyDatesView.SetContext(ctx)
	a.clauseView.SetContext(ctx)
	return a
}

// WithEvents feeds the session event feed into the app.
func (a *App) WithEvents(events <-chan domain.Event) *App {
	a.events = events
	return a
}

// WithInbox loads every path received on inbox.
func (a *App) WithInbox(inbox <-chan string) *App {
	a.inbox = inbox
	return a
}

// WithExportDir sets where key date calendar files are written.
func (a *App) WithExportDir(dir string, name keydates.FileNamer) *App {
	a.keyDatesView.WithExport(dir, name)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("contractai"),
		a.uploadView.Init(),
		a.waitForEvent(),
		a.waitForInbox(),
	)
}

func (a *App) waitForEvent() tea.Cmd {
	if a.events == nil {
		return nil
	}
	events := a.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return messages.EventsClosed{}
		}
		return messages.SessionEvent{Event: event}
	}
}

func (a *App) waitForInbox() tea.Cmd {
	if a.inbox == nil {
		return nil
	}
	inbox := a.inbox
	return func() tea.Msg {
		path, ok := <-inbox
		if !ok {
			return messages.InboxClosed{}
		}
		return messages.InboxFile{Path: path}
	}
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.NavigateTo:
		return a, a.navigate(msg.View)

	case messages.DocumentLoaded:
		var cmd tea.Cmd
		a.uploadView, cmd = a.uploadView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
			a.status.SetError(fmt.Errorf("loading %s: %w", filepath.Base(msg.Path), msg.Err))
			return a, cmd
		}
		a.err = nil
		a.status.Clear()
		a.status.SetMessage("Loaded " + msg.Name)
		a.status.SetDocument(msg.Name)
		a.chatView.Refresh()
		return a, tea.Batch(cmd, a.focusCurrent())

	case messages.InboxFile:
		a.status.SetState(status.StateLoading)
		return a, tea.Batch(
			upload.LoadFile(a.ctx, a.ports.Ingest, a.ports.Workspace, msg.Path),
			a.waitForInbox(),
		)

	case messages.InboxClosed:
		a.inbox = nil
		return a, nil

	case messages.SessionEvent:
		a.onEvent(msg.Event)
		return a, a.waitForEvent()

	case messages.EventsClosed:
		a.events = nil
		return a, nil

	case messages.KeyDateExported:
		var cmd tea.Cmd
		a.keyDatesView, cmd = a.keyDatesView.Update(msg)
		if msg.Err != nil {
			a.status.SetError(msg.Err)
		}
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.status.SetError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink) to the current view
	return a, a.forward(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keymap.NextView):
		return a, a.cycle(1)
	case key.Matches(msg, a.keymap.PrevView):
		return a, a.cycle(-1)
	}

	if v, ok := a.jumpTarget(msg); ok {
		return a, a.navigate(v)
	}

	// A key press dismisses the previous status message
	if a.status.State() == status.StateError {
		a.status.Clear()
	}
	return a, a.forward(msg)
}

// jumpTarget resolves number keys. Plain digits are text in views with an input.
func (a *App) jumpTarget(msg tea.KeyMsg) (domain.View, bool) {
	for i, b := range a.keymap.Jump {
		if !key.Matches(msg, b) {
			continue
		}
		if a.hasInput() && !msg.Alt {
			return domain.ViewUpload, false
		}
		return domain.AllViews()[i], true
	}
	return domain.ViewUpload, false
}

func (a *App) hasInput() bool {
	switch a.CurrentView() {
	case domain.ViewUpload, domain.ViewChat:
		return true
	default:
		return false
	}
}

// navigate moves to v when reachable. Unreachable views are ignored.
func (a *App) navigate(v domain.View) tea.Cmd {
	if !a.ports.Navigator.Navigate(v) {
		return nil
	}
	return a.focusCurrent()
}

// cycle moves to the next reachable view in tab order, wrapping around.
func (a *App) cycle(step int) tea.Cmd {
	views := domain.AllViews()
	current := int(a.CurrentView())
	for i := 1; i < len(views); i++ {
		next := views[((current+step*i)%len(views)+len(views))%len(views)]
		if a.ports.Navigator.Reachable(next) {
			return a.navigate(next)
		}
	}
	return nil
}

func (a *App) focusCurrent() tea.Cmd {
	a.status.SetView(a.CurrentView())
	switch a.CurrentView() {
	case domain.ViewUpload:
		return a.uploadView.Focus()
	case domain.ViewChat:
		a.chatView.Refresh()
		return a.chatView.Focus()
	default:
		return nil
	}
}

func (a *App) onEvent(event domain.Event) {
	switch event.Type {
	case domain.EventReplyReceived, domain.EventMessageSent:
		a.chatView.Refresh()
	case domain.EventDocumentLoaded, domain.EventDocumentActivated:
		a.status.SetDocument(event.DocumentName)
		a.chatView.Refresh()
	case domain.EventViewChanged:
		a.status.SetView(a.CurrentView())
	}
	if a.status.State() != status.StateError {
		if a.ports.Conversation.Pending() > 0 {
			a.status.SetState(status.StateWaiting)
		} else {
			a.status.SetState(status.StateReady)
		}
	}
}

func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.CurrentView() {
	case domain.ViewUpload:
		a.uploadView, cmd = a.uploadView.Update(msg)
	case domain.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case domain.ViewKeyDates:
		a.keyDatesView, cmd = a.keyDatesView.Update(msg)
	case domain.ViewClauseReview:
		a.clauseView, cmd = a.clauseView.Update(msg)
	case domain.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.CurrentView() {
	case domain.ViewChat:
		body = a.chatView.View()
	case domain.ViewKeyDates:
		body = a.keyDatesView.View()
	case domain.ViewClauseReview:
		body = a.clauseView.View()
	case domain.ViewHistory:
		body = a.historyView.View()
	default:
		body = a.uploadView.View()
	}

	return a.renderTabs() + "\n\n" + body + "\n\n" + a.status.View()
}

// renderTabs draws one tab per view. Unreachable tabs are dimmed.
func (a *App) renderTabs() string {
	current := a.CurrentView()
	tabs := make([]string, 0, len(domain.AllViews()))
	for i, v := range domain.AllViews() {
		label := fmt.Sprintf("%d %s", i+1, v.Title())
		switch {
		case v == current:
			tabs = append(tabs, a.styles.ActiveTab.Render(label))
		case a.ports.Navigator.Reachable(v):
			tabs = append(tabs, a.styles.Tab.Render(label))
		default:
			tabs = append(tabs, a.styles.DisabledTab.Render(label))
		}
	}
	return strings.Join(tabs, a.styles.Muted.Render("│"))
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the navigator's current view.
func (a *App) CurrentView() domain.View {
	return a.ports.Navigator.Current()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.status
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	// Tabs, blank lines and the status bar take five rows
	body := max(height-5, 5)
	a.status.SetWidth(width)
	a.uploadView.SetDimensions(width, body)
	a.chatView.SetDimensions(width, body)
	a.keyDatesView.SetDimensions(width, body)
	a.clauseView.SetDimensions(width, body)
	a.historyView.SetDimensions(width, body)
}
