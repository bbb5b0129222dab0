package app

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/vinser/mazegame/internal/floor"
	"github.com/vinser/mazegame/internal/model/about"
	"github.com/vinser/mazegame/internal/model/intro"
	"github.com/vinser/mazegame/internal/model/play"
	"github.com/vinser/mazegame/internal/model/quit"
	"github.com/vinser/mazegame/internal/render"
	"github.com/vinser/mazegame/internal/sound"
)

type status uint

const (
	statusIntro status = iota
	statusAbout
	statusGameplay
	statusQuitting
)

func (s status) String() string {
	switch s {
	case statusIntro:
		return "intro"
	case statusAbout:
		return "about"
	case statusGameplay:
		return "gameplay"
	case statusQuitting:
		return "quitting"
	}
	return "unknown"
}

// Config is everything the app needs to run one build.
type Config struct {
	Floor  *floor.Floor
	Sound  *sound.Manager
	Logger *log.Logger
	Play   play.Options
}

type Model struct {
	status status
	cfg    Config
	logger *log.Logger
	sound  *sound.Manager
	floor  *floor.Floor
	// models
	intro intro.Model
	about about.Model
	play  play.Model
	quit  quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	m := Model{
		status: statusIntro,
		cfg:    cfg,
		logger: cfg.Logger,
		sound:  cfg.Sound,
		floor:  cfg.Floor,
	}
	m.sound.PlayLoop(sound.INTRO)
	width, height := m.pageSize()
	m.intro = intro.New(m.floor.Title, controls(m.floor.Vertical), width, height)
	return m
}

func controls(vertical bool) string {
	if vertical {
		return "Arrows, WASD or hjkl move. Esc quits."
	}
	return "Left and right arrows, a/d or h/l move. Esc quits."
}

// pageSize returns the size of the scene in characters, which every page shares.
func (m Model) pageSize() (int, int) {
	w, h := render.SpriteChars(m.cfg.Play.SpriteSize)
	return m.floor.Columns * w, m.floor.Rows * h
}

// titleScreen reports whether the title tune belongs on the current screen.
func (m Model) titleScreen() bool {
	return m.status == statusIntro || m.status == statusAbout
}

func (m Model) Status() string {
	return m.status.String()
}

func (m Model) Init() tea.Cmd {
	return m.intro.Init()
}

func (m *Model) setStatus(s status) {
	m.logger.Info("screen", "from", m.status, "to", s)
	m.status = s
}

func (m *Model) startGame() tea.Cmd {
	m.setStatus(statusGameplay)
	player := m.floor.PlacePlayer()
	m.play = play.New(m.floor, player, m.sound, m.logger, m.cfg.Play)
	if m.termWidth > 0 && m.termHeight > 0 {
		m.play, _ = m.play.Update(play.WindowSizeMsg{Width: m.termWidth, Height: m.termHeight})
	}
	m.sound.StopListed(sound.INTRO)
	m.sound.Play(sound.START)
	m.logger.Info("game started", "layout", m.floor.Name, "policy", m.floor.Policy, "x", player.Pos().X, "y", player.Pos().Y)
	return m.play.Init()
}

func (m *Model) startQuit(frames int) tea.Cmd {
	m.setStatus(statusQuitting)
	m.sound.StopAll()
	m.sound.Play(sound.QUIT)
	width, height := m.pageSize()
	m.quit = quit.New(frames, width, height)
	m.quit.SetSize(m.termWidth, m.termHeight)
	return m.quit.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c": // quit all app models
			if m.status == statusQuitting {
				return m, tea.Quit
			}
			return m, m.startQuit(m.play.Frames())
		case "m": // mute/unmute
			if m.sound.Muted() {
				m.sound.Unmute()
				if m.titleScreen() && !m.sound.Playing(sound.INTRO) {
					m.sound.PlayLoop(sound.INTRO)
				}
			} else {
				m.sound.Mute()
			}
			m.logger.Debug("mute toggled", "muted", m.sound.Muted())
			return m, nil
		}
	case tea.WindowSizeMsg:
		// Always remember the latest terminal size
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		switch m.status {
		case statusIntro:
			m.intro.SetSize(msg.Width, msg.Height)
		case statusAbout:
			m.about.SetSize(msg.Width, msg.Height)
		case statusGameplay:
			m.play, cmd = m.play.Update(play.WindowSizeMsg{Width: msg.Width, Height: msg.Height})
			cmds = append(cmds, cmd)
		case statusQuitting:
			m.quit.SetSize(msg.Width, msg.Height)
		}
		cmds = append(cmds, tea.ClearScreen)
		return m, tea.Batch(cmds...)
	}

	switch m.status {
	case statusIntro:
		switch msg := msg.(type) {
		case intro.StartMsg:
			cmds = append(cmds, m.startGame())
		case intro.QuitMsg:
			cmds = append(cmds, m.startQuit(0))
		case intro.AboutMsg:
			width, height := m.pageSize()
			a, err := about.New(width, height)
			if err != nil {
				m.logger.Error("about page", "err", err)
				return m, nil
			}
			m.setStatus(statusAbout)
			m.about = a
			m.about.SetSize(m.termWidth, m.termHeight)
		default:
			m.intro, cmd = m.intro.Update(msg)
			cmds = append(cmds, cmd)
		}
	case statusAbout:
		switch msg := msg.(type) {
		case about.CloseAboutMsg:
			cmds = append(cmds, m.startGame())
		case intro.TickMsg:
			// Stale intro ticks stop here.
		default:
			m.about, cmd = m.about.Update(msg)
			cmds = append(cmds, cmd)
		}
	case statusGameplay:
		switch msg := msg.(type) {
		case play.QuitMsg:
			m.logger.Info("game over", "frames", msg.Frames)
			cmds = append(cmds, m.startQuit(msg.Frames))
		default:
			m.play, cmd = m.play.Update(msg)
			cmds = append(cmds, cmd)
		}
	case statusQuitting:
		m.quit, cmd = m.quit.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	switch m.status {
	case statusIntro:
		return m.intro.View()
	case statusAbout:
		return m.about.View()
	case statusGameplay:
		return m.play.View()
	case statusQuitting:
		return m.quit.View()
	}
	return ""
}
