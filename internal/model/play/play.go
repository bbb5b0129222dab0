package play

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/vinser/mazegame/internal/collide"
	"github.com/vinser/mazegame/internal/dweller"
	"github.com/vinser/mazegame/internal/floor"
	"github.com/vinser/mazegame/internal/input"
	"github.com/vinser/mazegame/internal/render"
	"github.com/vinser/mazegame/internal/sound"
	"github.com/vinser/mazegame/internal/style"
)

// DefaultFrame is the frame interval at 30 frames per second.
const DefaultFrame = time.Second / 30

const bumpVolume = -1 // dB

// Options tune the frame loop.
type Options struct {
	SpriteSize string
	Frame      time.Duration
	Hold       time.Duration // how long a key counts as held between auto-repeats
	Tap        bool          // act once per key press instead of every frame
}

// TerminalDimensions holds the terminal size information
type TerminalDimensions struct {
	Width  int
	Height int
}

type Model struct {
	floor        *floor.Floor
	player       *dweller.Player
	soundManager *sound.Manager
	logger       *log.Logger
	keys         input.KeyMap
	keyboard     *input.Keyboard
	mapper       *input.Mapper
	help         help.Model
	opts         Options
	frames       int
	lastResult   collide.Result
	terminal     TerminalDimensions
	sb           *strings.Builder
}

// FrameMsg drives one update of the frame loop.
type FrameMsg time.Time

func tickFrame(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// QuitMsg is sent when the player asks to leave the game.
// The frame loop stops ticking once it is sent.
type QuitMsg struct {
	Frames int
}

func quitCmd(frames int) tea.Cmd {
	return func() tea.Msg {
		return QuitMsg{Frames: frames}
	}
}

// WindowSizeMsg is a message sent when the terminal is resized.
type WindowSizeMsg struct {
	Width  int
	Height int
}

// New returns a new play model.
func New(f *floor.Floor, p *dweller.Player, sm *sound.Manager, logger *log.Logger, opts Options) Model {
	if opts.Frame <= 0 {
		opts.Frame = DefaultFrame
	}
	if opts.SpriteSize == "" {
		opts.SpriteSize = render.SpriteDefault
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := input.DefaultKeyMap()
	if !f.Vertical {
		keys = keys.HorizontalOnly()
	}
	mapper := input.NewMapper(f.Vertical)
	mapper.Tap = opts.Tap

	return Model{
		floor:        f,
		player:       p,
		soundManager: sm,
		logger:       logger,
		keys:         keys,
		keyboard:     input.NewKeyboard(opts.Hold),
		mapper:       mapper,
		help:         help.New(),
		opts:         opts,
		lastResult:   collide.Result{Pos: p.Pos(), Wall: -1},
		terminal:     TerminalDimensions{Width: 80, Height: 24},
		sb:           &strings.Builder{},
	}
}

func (m Model) Init() tea.Cmd {
	return tickFrame(m.opts.Frame)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case WindowSizeMsg:
		m.terminal.Width = msg.Width
		m.terminal.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Respawn) {
			m.Respawn()
			return m, nil
		}
		if k, ok := m.keys.Lookup(msg); ok {
			m.keyboard.Press(k, time.Now())
		}
		return m, nil
	case FrameMsg:
		action := m.mapper.Action(m.keyboard.State(time.Time(msg)))
		if action == input.Quit {
			m.logger.Debug("quit requested", "frame", m.frames)
			m.soundManager.StopAll()
			return m, quitCmd(m.frames)
		}
		m.Step(action)
		return m, tickFrame(m.opts.Frame)
	}
	return m, nil
}

// Step applies one movement action to the player and resolves wall collisions.
func (m *Model) Step(action input.Action) collide.Result {
	m.frames++
	dir := action.Direction()
	if dir == dweller.No {
		m.lastResult = collide.Result{Pos: m.player.Pos(), Wall: -1}
		return m.lastResult
	}

	m.player.SetDir(dir)
	wasBlocked := m.lastResult.Blocked
	res := collide.Resolve(m.player.Bounds(), dir, m.player.Speed(), m.floor.WallRects(), m.floor.Policy)
	m.player.SetPos(res.Pos)
	if res.Blocked && !wasBlocked {
		m.soundManager.PlayWithVolume(sound.BUMP, bumpVolume)
		m.logger.Debug("blocked", "dir", dir, "wall", res.Wall, "x", res.Pos.X, "y", res.Pos.Y)
	}
	m.lastResult = res
	return res
}

// Respawn puts the player back on its spawn point and forgets held keys.
func (m *Model) Respawn() {
	m.player.Respawn()
	m.keyboard.Reset()
	m.mapper.Reset()
	m.lastResult = collide.Result{Pos: m.player.Home(), Wall: -1}
	m.logger.Debug("respawned", "x", m.player.Home().X, "y", m.player.Home().Y)
}

func (m Model) Player() *dweller.Player {
	return m.player
}

func (m Model) Floor() *floor.Floor {
	return m.floor
}

func (m Model) Frames() int {
	return m.frames
}

// LastResult returns the outcome of the latest frame.
func (m Model) LastResult() collide.Result {
	return m.lastResult
}

// View returns the complete screen output.
func (m *Model) View() string {
	m.sb.Reset()

	scene := render.NewScene(m.floor, m.player, m.opts.SpriteSize)
	scene.Bumped = m.lastResult.Blocked
	sceneWidth, sceneHeight := scene.Size()

	footer := m.help.View(m.keys)
	width := max(sceneWidth, lipgloss.Width(footer))
	hPad := max((m.terminal.Width-width)/2, 0)
	headerH, footerH := 2, 2
	vPad := max((m.terminal.Height-sceneHeight-headerH-footerH)/2, 0)

	pad := strings.Repeat(" ", hPad)
	m.sb.WriteString(strings.Repeat("\n", vPad))
	m.sb.WriteString(pad)
	m.sb.WriteString(style.TopPattern.Render(strings.Repeat("/", width)))
	m.sb.WriteString("\n")
	m.sb.WriteString(pad)
	m.sb.WriteString(style.PlayHeader.Render(m.headerText()))
	m.sb.WriteString("\n")

	m.sb.WriteString(scene.Render(hPad))

	m.sb.WriteString(pad)
	m.sb.WriteString(style.Footer.Render(strings.Repeat("/", width)))
	m.sb.WriteString("\n")
	m.sb.WriteString(pad)
	m.sb.WriteString(footer)
	m.sb.WriteString("\n")
	return m.sb.String()
}

func (m *Model) headerText() string {
	pos := m.player.Pos()
	text := fmt.Sprintf("%s  X: %d  Y: %d  Facing: %s", m.floor.Title, pos.X, pos.Y, m.player.Dir())
	if m.soundManager.Muted() {
		text += "  (muted)"
	}
	return text
}
