// Package term draws the grid in a terminal and maps keys and mouse presses
// onto a Driver.
package term

import (
	"context"
	"time"

	"conway/internal/app"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell covers two terminal columns so cells look square.
const (
	cellWidth  = 2
	cellHeight = 1
)

// UI is a tcell front end for a Driver.
type UI struct {
	screen tcell.Screen
	driver *app.Driver
	frame  time.Duration

	alive  tcell.Style
	dead   tcell.Style
	status tcell.Style

	pressed bool
}

// New returns a UI drawing onto an initialized screen at tps frames per second.
func New(screen tcell.Screen, driver *app.Driver, tps int) *UI {
	if tps <= 0 {
		tps = 60
	}
	return &UI{
		screen: screen,
		driver: driver,
		frame:  time.Second / time.Duration(tps),
		alive:  tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
		dead:   tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		status: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
}

// Run handles input and frames until the user quits or ctx is done. All
// driver access happens on the calling goroutine.
func (u *UI) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go u.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(u.frame)
	defer ticker.Stop()

	u.screen.EnableMouse(tcell.MouseButtonEvents)
	u.screen.HideCursor()
	u.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || u.handle(ev) {
				return nil
			}
			u.draw()
		case <-ticker.C:
			u.driver.Update()
			u.draw()
		}
	}
}

// handle applies one event and reports whether the UI should exit.
func (u *UI) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			u.driver.Resume()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				u.driver.TogglePause()
			case 'n':
				u.driver.StepOnce()
			case 'r':
				u.driver.Reset()
			case 'c':
				u.driver.Clear()
			case 's':
				u.driver.Reseed(time.Now().UnixNano())
			}
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !u.pressed {
			x, y := ev.Position()
			u.driver.Click(x, y, cellWidth, cellHeight)
		}
		u.pressed = down
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return false
}

func (u *UI) draw() {
	u.screen.Clear()
	w, h := u.screen.Size()
	grid := u.driver.Grid()
	n := grid.Size()

	rows := min(n, h-1)
	cols := min(n, w/cellWidth)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			style := u.dead
			if grid.Alive(row, col) {
				style = u.alive
			}
			for dx := 0; dx < cellWidth; dx++ {
				u.screen.SetContent(col*cellWidth+dx, row, ' ', nil, style)
			}
		}
	}

	x := 0
	for _, r := range u.driver.Status().String() {
		if x >= w {
			break
		}
		u.screen.SetContent(x, max(rows, 0), r, nil, u.status)
		x++
	}
	u.screen.Show()
}
