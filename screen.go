package asciimotion

import (
	"github.com/gdamore/tcell/v2"
)

// Screen plays frames full screen on a tcell screen. ESC, Ctrl-C and q stop
// playback.
type Screen struct {
	screen tcell.Screen
	done   chan struct{}
}

// NewScreen wraps s. A nil s opens the process terminal on Start.
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func (s *Screen) Start(quit func()) error {
	if s.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		s.screen = screen
	}
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	s.screen.Clear()

	s.done = make(chan struct{})
	go s.poll(quit)
	return nil
}

// poll runs until the screen is finalized.
func (s *Screen) poll(quit func()) {
	defer close(s.done)
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				if quit != nil {
					quit()
				}
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// Show draws status on the first row and f below it. Cells past the screen
// edge are clipped.
func (s *Screen) Show(f *TextFrame, status string) error {
	s.screen.Clear()
	plain := tcell.StyleDefault
	for x, r := range []rune(status) {
		s.screen.SetContent(x, 0, r, nil, plain)
	}
	f.EachCell(func(cell Cell) {
		s.screen.SetContent(cell.Col, cell.Row+1, cell.Glyph, nil, cellStyle(f.Depth, cell.Color))
	})
	s.screen.Show()
	return nil
}

func (s *Screen) Stop() error {
	if s.screen == nil {
		return nil
	}
	s.screen.Fini()
	if s.done != nil {
		<-s.done
	}
	return nil
}

func cellStyle(depth ColorDepth, c Code) tcell.Style {
	if depth == ColorNone || c == NoColor {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(int(c)))
}
