// Package term renders the sandbox in a terminal using half-block cells, two
// grid rows per terminal row.
package term

import (
	"context"
	"fmt"
	"time"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

const (
	upperHalf = '▀'
	frameRate = 16 * time.Millisecond
)

// Viewer drives a sandbox from a tcell screen.
type Viewer struct {
	screen tcell.Screen
	sim    *sand.Sandbox
	step   *core.FixedStep

	brush    sand.Species
	paused   bool
	tickOnce bool
	debug    bool
}

// New binds a sandbox to an initialised screen.
func New(screen tcell.Screen, sim *sand.Sandbox, tps int) *Viewer {
	return &Viewer{
		screen: screen,
		sim:    sim,
		step:   core.NewFixedStep(tps),
		brush:  sand.Sand,
	}
}

// Brush returns the species painted by the left mouse button.
func (v *Viewer) Brush() sand.Species { return v.brush }

// Paused reports whether ticking is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// frameInterval is the redraw period: the frame rate, or the tick interval
// when the simulation runs faster than that.
func (v *Viewer) frameInterval() time.Duration {
	return min(frameRate, v.step.Step())
}

// Run polls events and redraws until the user quits or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	ticker := time.NewTicker(v.frameInterval())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if (!v.paused && v.step.ShouldStep()) || v.tickOnce {
				v.sim.Step()
				v.tickOnce = false
			}
			v.Draw()
		}
	}
}

// HandleEvent applies one input event. It returns false when the viewer
// should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		r := ev.Rune()
		if sp, ok := app.BrushKeys[r]; ok {
			v.brush = sp
			return true
		}
		switch r {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.tickOnce = true
		case 'r':
			v.sim.Clear()
		case 'p':
			v.debug = !v.debug
		}
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x, y := cx, cy*2
		switch {
		case ev.Buttons()&tcell.Button1 != 0:
			v.sim.Brush(v.brush, x, y)
		case ev.Buttons()&tcell.Button2 != 0:
			v.sim.Brush(sand.Empty, x, y)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Draw paints the grid and a status line.
func (v *Viewer) Draw() {
	size := v.sim.Size()
	var colors []uint32
	if v.debug {
		colors = v.sim.DebugBuffer()
	} else {
		colors = v.sim.ColorBuffer()
	}
	sw, sh := v.screen.Size()
	rows := (size.H + 1) / 2
	for cy := 0; cy < rows && cy < sh; cy++ {
		for x := 0; x < size.W && x < sw; x++ {
			top := colors[2*cy*size.W+x]
			bottom := uint32(0xff000000)
			if y := 2*cy + 1; y < size.H {
				bottom = colors[y*size.W+x]
			}
			v.screen.SetContent(x, cy, upperHalf, nil, cellStyle(top, bottom))
		}
	}
	if rows < sh {
		v.drawStatus(rows)
	}
	v.screen.Show()
}

func (v *Viewer) drawStatus(row int) {
	state := "running"
	if v.paused {
		state = "paused"
	}
	line := fmt.Sprintf("tick %d  mass %d  brush %s  %s", v.sim.Ticks(), v.sim.Mass(), v.brush, state)
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	sw, _ := v.screen.Size()
	x := 0
	for _, r := range line {
		if x >= sw {
			break
		}
		v.screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < sw; x++ {
		v.screen.SetContent(x, row, ' ', nil, style)
	}
}

// cellStyle colours an upper half block: the foreground carries the top grid
// row, the background the bottom one.
func cellStyle(top, bottom uint32) tcell.Style {
	return tcell.StyleDefault.Foreground(packedColor(top)).Background(packedColor(bottom))
}

func packedColor(c uint32) tcell.Color {
	return tcell.NewRGBColor(int32(c>>16&0xff), int32(c>>8&0xff), int32(c&0xff))
}
