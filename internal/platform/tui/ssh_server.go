package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/andrewsmnv/polyarena/internal/core"
	"github.com/andrewsmnv/polyarena/internal/registry"
	"github.com/andrewsmnv/polyarena/internal/storage"
)

// SSHServerConfig configures the remote-play server.
type SSHServerConfig struct {
	// ListenAddr is the host:port to bind, e.g. ":23234".
	ListenAddr string

	// HostKeyPath points at the host key file. Empty means
	// ~/.polyarena/host_key, generated on first start.
	HostKeyPath string

	// DBPath is the score database shared by all remote players.
	DBPath string

	// IdleTimeout disconnects sessions with no activity.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns the stock server settings.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		ListenAddr:  ":23234",
		DBPath:      "~/.polyarena/scores.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the arena over SSH via wish. Every connection gets
// its own SessionModel; scores from all players land in one database.
type SSHServer struct {
	cfg    SSHServerConfig
	srv    *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer builds the wish server but does not start listening.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "polyarena",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("scores database unavailable, playing without persistence", "error", err)
	}

	s := &SSHServer{cfg: cfg, store: store, logger: logger}

	keyPath := cfg.HostKeyPath
	if keyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("resolve home directory: %w", homeErr)
		}
		keyPath = filepath.Join(home, ".polyarena", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(keyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("create host key directory: %w", mkdirErr)
	}

	srv, err := wish.NewServer(
		wish.WithAddress(cfg.ListenAddr),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			s.logConnections,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("configure ssh server: %w", err)
	}

	s.srv = srv
	return s, nil
}

// newSession builds the per-connection Bubble Tea model, sized to the
// client's PTY.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("rejecting session without a PTY", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}
	return NewSessionModel(s.store, cfg), []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) logConnections(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("connected",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("disconnected",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe runs until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("listening", "addr", s.cfg.ListenAddr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("serve failed", "error", err)
		}
	}()

	<-stop
	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown closes the store and stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.srv.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.ListenAddr
}

// sessionPhase tracks which screen a remote session is on.
type sessionPhase int

const (
	phaseMenu sessionPhase = iota
	phasePlaying
	phaseScores
)

// SessionModel drives a whole remote session through the start screen,
// game and leaderboard phases inside a single Bubble Tea program. The
// game phase runs inline; menu and leaderboard are delegated to their
// models, with their quit commands swallowed so only an explicit quit
// ends the session.
type SessionModel struct {
	store  *storage.Store
	config core.RuntimeConfig
	phase  sessionPhase

	menu  MenuModel
	board LeaderboardModel

	game       registry.Game
	screen     *core.Screen
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	scoreSaved bool
	quitting   bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:      store,
		config:     cfg,
		menu:       NewMenuModel(cfg),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update dispatches messages to the active phase.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = ws.Width
		m.config.ScreenH = ws.Height
	}

	switch m.phase {
	case phasePlaying:
		return m.updateGame(msg)
	case phaseScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	upd, cmd := m.menu.Update(msg)
	menu, ok := upd.(MenuModel)
	if !ok {
		return m, cmd
	}
	m.menu = menu
	if !menu.Done() {
		return m, nil
	}

	res := menu.Result()
	m.config = res.Config
	switch {
	case res.Quit:
		m.quitting = true
		return m, tea.Quit
	case res.WantsScores:
		m.board = NewLeaderboardModel(m.store, defaultBoardGame(), m.config.ScreenW, m.config.ScreenH)
		m.phase = phaseScores
		return m, nil
	case res.GameID != "":
		return m.startGame(res)
	}
	return m, nil
}

func (m SessionModel) startGame(res MenuResult) (tea.Model, tea.Cmd) {
	game, err := registry.Create(res.GameID)
	if err != nil {
		return m, nil
	}
	if d, ok := game.(interface{ ApplyDifficultyPreset(string) }); ok {
		d.ApplyDifficultyPreset(res.Difficulty)
	}

	m.config.Seed = time.Now().UnixNano()
	m.game = game
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	m.inputFrame.Clear()
	m.gameState = core.GameState{}
	m.scoreSaved = false
	m.phase = phasePlaying

	game.Reset(m.config)
	return m, scheduleFrame(m.config.TickRate)
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack &&
			(m.gameState.GameOver || m.gameState.Paused) {
			return m.backToMenu()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		if !m.gameState.GameOver {
			m.game.Reset(m.config)
		}
		return m, nil

	case frameMsg:
		return m.stepGame()
	}
	return m, nil
}

func (m SessionModel) stepGame() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, scheduleFrame(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, session continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, scheduleFrame(m.config.TickRate)
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.screen = nil
	m.menu = NewMenuModel(m.config)
	m.phase = phaseMenu
	return m, nil
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	upd, cmd := m.board.Update(msg)
	board, ok := upd.(LeaderboardModel)
	if !ok {
		return m, cmd
	}
	m.board = board

	if board.quit {
		m.quitting = true
		return m, tea.Quit
	}
	if board.back {
		m.menu = NewMenuModel(m.config)
		m.phase = phaseMenu
		return m, nil
	}
	return m, cmd
}

// View renders the active phase.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phasePlaying:
		m.screen.Clear()
		m.game.Render(m.screen)
		return RenderScreen(m.screen)
	case phaseScores:
		return m.board.View()
	default:
		return m.menu.View()
	}
}

// defaultBoardGame picks the game whose board is shown from the menu.
func defaultBoardGame() string {
	games := registry.List()
	if len(games) == 0 {
		return ""
	}
	return games[0].ID
}
