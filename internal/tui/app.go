package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/pders01/veni/internal/account"
	"github.com/pders01/veni/internal/config"
	"github.com/pders01/veni/internal/debuglog"
	"github.com/pders01/veni/internal/nav"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
	// header, menu border and row, status and help lines
	chromeHeight = 5
)

type App struct {
	config     *config.Config
	nav        *nav.Navigator
	accounts   *account.Registry
	keyHandler *KeyHandler
	keys       keyMap
	screens    map[string]Screen
	menu       SlideMenu
	slide      slide
	help       help.Model
	log        *debuglog.FieldLogger

	lastTransition *nav.Transition
	status         string
	statusKind     StatusKind
	width          int
	height         int
}

func NewApp(cfg *config.Config, navigator *nav.Navigator, accounts *account.Registry) *App {
	session := uuid.NewString()

	app := &App{
		config:     cfg,
		nav:        navigator,
		accounts:   accounts,
		keys:       newKeyMap(cfg.Keys),
		screens:    make(map[string]Screen),
		menu:       NewSlideMenu(navigator.Screens()),
		slide:      newSlide(cfg.UI.AnimationFrames, cfg.UI.FrameInterval),
		help:       help.New(),
		log:        debuglog.WithFields(debuglog.Fields{"session": session}),
		status:     MsgReady,
		statusKind: StatusInfo,
	}

	for _, name := range navigator.Screens() {
		app.screens[name] = app.newScreen(name)
	}

	app.keyHandler = NewKeyHandler(app, app.keys)
	navigator.Subscribe(app.onTransition)

	return app
}

func (a *App) newScreen(name string) Screen {
	switch name {
	case ScreenRegister:
		return NewRegisterScreen(a.accounts)
	case ScreenWelcome:
		return NewWelcomeScreen()
	case ScreenLogin:
		return NewLoginScreen(a.accounts)
	default:
		return newPageScreen(name)
	}
}

// onTransition runs synchronously inside every successful jump.
func (a *App) onTransition(t nav.Transition) {
	a.lastTransition = &t
	a.menu.Clear()
	if prev, ok := a.screens[t.From]; ok && !t.SelfJump() {
		prev.Blur()
	}
	a.log.With(debuglog.Fields{
		"from":      t.From,
		"to":        t.To,
		"direction": t.Direction.String(),
		"slide":     t.Direction.Slide(),
	}).Infof("screen changed")
}

func (a *App) currentScreen() Screen {
	return a.screens[a.nav.Current()]
}

func (a *App) Init() tea.Cmd {
	a.log.Infof("started on %s", a.nav.Current())
	return a.currentScreen().Enter()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetWidth(msg.Width)
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case jumpRequestMsg:
		return a, a.jumpTo(msg.target)

	case stepRequestMsg:
		if msg.delta < 0 {
			return a, a.previous()
		}
		return a, a.next()

	case slideTickMsg:
		return a, a.slide.advance(msg)

	case registeredMsg:
		return a, a.handleRegistered(msg)

	case signedInMsg:
		return a, a.handleSignedIn(msg)

	case signOutMsg:
		if w, ok := a.screens[ScreenWelcome].(*WelcomeScreen); ok {
			a.log.Infof("signed out %s", w.User())
			w.SetUser("")
		}
		a.setStatus(MsgSignedOut, StatusInfo)
		return a, nil
	}

	// Cursor blinks and other component messages.
	var cmds []tea.Cmd
	name := a.nav.Current()
	screen, cmd := a.currentScreen().Update(msg)
	a.screens[name] = screen
	cmds = append(cmds, cmd)
	if a.menu.Focused() {
		cmds = append(cmds, a.menu.Update(msg))
	}
	return a, tea.Batch(cmds...)
}

func (a *App) setStatus(text string, kind StatusKind) {
	a.status = text
	a.statusKind = kind
}

func (a *App) View() string {
	width, height := a.width, a.height
	if width <= 0 {
		width = fallbackWidth
	}
	if height <= 0 {
		height = fallbackHeight
	}
	contentHeight := height - chromeHeight
	if contentHeight < 3 {
		contentHeight = 3
	}

	current := a.nav.Current()

	subtitle := ""
	if t := a.lastTransition; t != nil && !t.SelfJump() {
		subtitle = MsgTransition(t.From, t.Direction == nav.Backward)
	}
	header := renderHeader(CompactLogo+" "+current, subtitle, width)

	content := a.currentScreen().View(width, contentHeight)
	content = a.slide.apply(content, width)
	content = lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxWidth(width).
		MaxHeight(contentHeight).
		Render(content)

	menu := a.menu.View(current, a.keys.Prev.Help().Key, a.keys.Next.Help().Key, width)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		content,
		menu,
		a.statusBar(width),
		a.help.View(a.keys),
	)
}

func (a *App) statusBar(width int) string {
	parts := []string{StatusStyle(a.statusKind).Render(a.status)}
	if hints := a.keyHandler.GetHelpForCurrentView(); len(hints) > 0 {
		parts = append(parts, strings.Join(hints, " • "))
	}
	line := strings.Join(parts, "  ")

	return lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		Padding(0, 1).
		Foreground(MutedColor).
		Render(line)
}
