package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/eulerlab/internal/dynamo"
	"github.com/san-kum/eulerlab/internal/render"
)

const (
	canvasWidth  = 60
	canvasHeight = 20
)

type TickMsg time.Time

// Player animates a trace at fps frames per second. Its wall clock lives
// in its own render.Session, so several players never share a start time.
type Player struct {
	frames   *render.Frames
	scene    render.Scene
	session  *render.Session
	canvas   *Canvas
	interval time.Duration

	current render.Frame
	elapsed time.Duration
	shown   bool
	paused  bool
	done    bool
	ticking bool
}

// NewPlayer builds a player. now is the wall clock; nil means time.Now.
func NewPlayer(trace dynamo.Trace, scene render.Scene, fps float64, now func() time.Time) Player {
	interval := time.Second / 30
	if fps > 0 {
		interval = time.Duration(float64(time.Second) / fps)
	}
	return Player{
		frames:   render.NewFrames(trace),
		scene:    scene,
		session:  render.NewSession(now),
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		interval: interval,
		ticking:  true,
	}
}

func (m Player) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Player) Init() tea.Cmd {
	return m.tick()
}

func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if m.paused {
			return m, m.tick()
		}
		fr, ok := m.frames.Next()
		if !ok {
			m.done, m.ticking = true, false
			return m, nil
		}
		m.current, m.shown = fr, true
		m.elapsed = m.session.Mark(fr)
		return m, m.tick()
	}
	return m, nil
}

func (m Player) handleKey(msg tea.KeyMsg) (Player, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ":
		if !m.done {
			m.paused = !m.paused
		}
	case "r":
		m.frames.Reset()
		m.paused, m.done, m.shown = false, false, false
		if !m.ticking {
			m.ticking = true
			return m, m.tick()
		}
	}
	return m, nil
}

func (m Player) Frame() (render.Frame, bool) { return m.current, m.shown }
func (m Player) Paused() bool                { return m.paused }
func (m Player) Done() bool                  { return m.done }

func (m Player) View() string {
	m.draw()

	var b strings.Builder
	b.WriteString(Title.Render(m.scene.Title))
	b.WriteString("\n")
	b.WriteString(Panel.Render(strings.TrimRight(m.canvas.String(), "\n")))
	b.WriteString("\n")

	b.WriteString(Metric("time =", fmt.Sprintf("%.1fs", m.current.Time)))
	b.WriteString("   ")
	b.WriteString(Metric("real time =", fmt.Sprintf("%.1fs", m.elapsed.Seconds())))
	b.WriteString("\n")

	n := m.frames.Len()
	progress := 0.0
	if n > 1 {
		progress = float64(m.current.Index) / float64(n-1)
	}
	b.WriteString(ProgressBar(progress, canvasWidth/2))
	b.WriteString(Subtle.Render(fmt.Sprintf(" frame %d/%d ", m.current.Index+1, n)))

	switch {
	case m.done:
		b.WriteString(StatusDone.Render("done"))
	case m.paused:
		b.WriteString(StatusPaused.Render("paused"))
	default:
		b.WriteString(StatusRunning.Render("playing"))
	}
	b.WriteString("\n")
	b.WriteString(KeyHint.Render("space pause · r restart · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Player) draw() {
	c, box := m.canvas, m.scene.StageBox
	c.Clear()

	if m.scene.Floor {
		x0, y0 := c.Project(box, box.XMin, 0)
		x1, y1 := c.Project(box, box.XMax, 0)
		c.DrawLine(x0, y0, x1, y1)
	}
	if !m.shown {
		return
	}
	x, y := m.scene.Center(m.current.Value)
	px, py := c.Project(box, x, y)
	c.FillCircle(px, py, c.Scale(box, m.scene.Radius))
}
