// Package tui is the terminal frontend: it turns mouse and keyboard events
// into driver samples and draws the HUD.
package tui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/driver"
	"github.com/cory-johannsen/armory/internal/game/inventory"
	"github.com/cory-johannsen/armory/internal/hud"
)

// Key bindings.
const (
	keyTap    = 'f'
	keyReload = 'r'
	keyQuit   = 'q'
)

var slotKeys = map[rune]inventory.Slot{
	'1': inventory.SlotPrimary1,
	'2': inventory.SlotPrimary2,
	'3': inventory.SlotSecondary,
}

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleAmmo    = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHidden  = styleDefault.Foreground(tcell.ColorGray)
	styleHelp    = styleDefault.Foreground(tcell.ColorDarkCyan)
)

const helpLine = "mouse/f: fire  1-3: switch  r: reload  q: quit"

// Terminal owns a tcell screen. The event loop goroutine records input;
// the driver goroutine consumes it through Poll and redraws through Draw.
//
// Invariant: a trigger tap is reported as down for exactly one Poll.
type Terminal struct {
	screen tcell.Screen
	logger *zap.Logger

	mu         sync.Mutex
	mouseDown  bool
	tapPending bool
	switchTo   inventory.Slot
	reload     bool
	quit       bool

	finiOnce sync.Once
}

// NewScreen creates the real terminal screen.
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tui: creating screen: %w", err)
	}
	return s, nil
}

// New initializes screen and returns a Terminal drawing on it.
//
// Precondition: screen must not be initialized yet.
// Postcondition: on success the screen is live with mouse reporting enabled;
// the caller must call Stop to restore the terminal.
func New(screen tcell.Screen, logger *zap.Logger) (*Terminal, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tui: initializing screen: %w", err)
	}
	screen.SetStyle(styleDefault)
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	return &Terminal{screen: screen, logger: logger}, nil
}

// Start runs the event loop until Stop finalizes the screen.
func (t *Terminal) Start() error {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		t.HandleEvent(ev)
	}
}

// Stop restores the terminal. Safe to call multiple times.
func (t *Terminal) Stop() {
	t.finiOnce.Do(t.screen.Fini)
}

// HandleEvent records one terminal event.
func (t *Terminal) HandleEvent(ev tcell.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		t.mouseDown = ev.Buttons()&tcell.Button1 != 0
	case *tcell.EventKey:
		t.handleKey(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Terminal) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}
	r := ev.Rune()
	if slot, ok := slotKeys[r]; ok {
		t.switchTo = slot
		return
	}
	switch r {
	case keyTap:
		t.tapPending = true
	case keyReload:
		t.reload = true
	case keyQuit:
		t.quit = true
	}
}

// Poll implements driver.Input. Switch, reload and tap requests are
// consumed by the call that returns them.
func (t *Terminal) Poll() driver.Sample {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := driver.Sample{
		TriggerDown: t.mouseDown || t.tapPending,
		SwitchTo:    t.switchTo,
		Reload:      t.reload,
		Quit:        t.quit,
	}
	t.tapPending = false
	t.switchTo = ""
	t.reload = false
	return s
}

// Draw renders v, replacing the previous frame.
func (t *Terminal) Draw(v hud.View) {
	t.screen.Clear()
	for y, line := range v.Lines() {
		style := styleDefault
		if y == 0 {
			style = styleAmmo
			if !v.Visible {
				style = styleHidden
			}
		}
		t.print(0, y, line, style)
	}
	_, h := t.screen.Size()
	t.print(0, h-1, helpLine, styleHelp)
	t.screen.Show()
}

func (t *Terminal) print(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
