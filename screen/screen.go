//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"log"

	"github.com/nsf/termbox-go"
	gott "github.com/pmarks/pine/types"
)

// The Screen draws the state of an Editor and captures input events.
type Screen struct {
	size     gott.Size // screen size
	showHelp bool      // render the nano-style help bar
}

func NewScreen(showHelp bool) *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	return &Screen{showHelp: showHelp}
}

func (s *Screen) Close() {
	termbox.Close()
}

// rows reserved at the bottom for the status, message, and help bars
func (s *Screen) reservedRows() int {
	if s.showHelp {
		return 3
	}
	return 2
}

func (s *Screen) Render(e gott.Editor, c gott.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	var screenSize gott.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	editSize := screenSize
	editSize.Rows -= s.reservedRows()
	e.SetSize(editSize)

	e.Scroll()
	bufferOrigin := gott.Point{Row: 0, Col: 0}
	e.GetBuffer().Render(bufferOrigin, editSize, e.GetOffset(), s)
	s.RenderStatusBar(e)
	s.RenderMessageBar(c)
	s.RenderHelpBar()
	termbox.SetCursor(e.GetCursor().Col-e.GetOffset().Cols, e.GetCursor().Row-e.GetOffset().Rows)
	termbox.Flush()
}

func (s *Screen) SetCell(x int, y int, c rune) {
	termbox.SetCell(x, y, c, termbox.ColorWhite, termbox.ColorBlack)
}

func (s *Screen) RenderStatusBar(e gott.Editor) {
	name := e.GetBuffer().GetFileName()
	if name == "" {
		name = "(No Name)"
	}
	text := "File: " + name
	if e.Modified() {
		text += " (modified)"
	}
	for len(text) < s.size.Cols {
		text += " "
	}
	row := s.size.Rows - s.reservedRows()
	for x, ch := range text {
		if x >= s.size.Cols {
			break
		}
		termbox.SetCell(x, row, rune(ch), termbox.ColorBlack, termbox.ColorWhite)
	}
}

func (s *Screen) RenderMessageBar(c gott.Commander) {
	line := c.GetMessage()
	if len(line) > s.size.Cols {
		line = line[0:s.size.Cols]
	}
	row := s.size.Rows - s.reservedRows() + 1
	for x, ch := range line {
		termbox.SetCell(x, row, rune(ch), termbox.ColorWhite, termbox.ColorBlack)
	}
}

func (s *Screen) RenderHelpBar() {
	if !s.showHelp {
		return
	}
	line := "^X Exit  ^O Save"
	for x, ch := range line {
		if x >= s.size.Cols {
			break
		}
		termbox.SetCell(x, s.size.Rows-1, rune(ch), termbox.ColorWhite, termbox.ColorBlack)
	}
}

func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
		return &gott.Event{Type: gott.EventResize}
	}
	return &gott.Event{
		Type: gott.EventKey,
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace:
		return gott.KeyBackspace
	case termbox.KeyBackspace2:
		return gott.KeyBackspace
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyTab:
		return gott.KeyTab
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyCtrlO:
		return gott.KeyCtrlO
	case termbox.KeyCtrlX:
		return gott.KeyCtrlX
	default:
		return gott.KeyUnsupported
	}
}
