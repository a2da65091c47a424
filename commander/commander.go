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
package commander

import (
	"unicode"

	gott "github.com/pmarks/pine/types"
)

const confirmQuitMessage = "File modified. Ctrl+O to save, Ctrl+X to exit without saving."

// The Commander converts user input into commands for the Editor. Editing
// is modeless: every printable key inserts. The only two-step interaction
// is the quit confirmation, which consumes exactly one further key.
type Commander struct {
	editor   gott.Editor
	mode     int    // ModeEdit, ModeConfirmQuit, or ModeQuit
	message  string // status message
	tabWidth int    // columns per tab stop
}

func NewCommander(e gott.Editor) *Commander {
	lispEditor = e
	return &Commander{editor: e, mode: gott.ModeEdit, tabWidth: 8}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) SetMessage(message string) {
	c.message = message
}

func (c *Commander) SetTabWidth(w int) {
	if w > 0 {
		c.tabWidth = w
	}
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	case gott.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessResize(event *gott.Event) error {
	return nil
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	if c.mode == gott.ModeConfirmQuit {
		return c.ProcessKeyConfirmQuit(event)
	}

	e := c.editor
	key := event.Key
	ch := event.Ch

	if key != gott.KeyNone {
		switch key {
		case gott.KeyCtrlX:
			if e.Modified() {
				c.mode = gott.ModeConfirmQuit
				c.message = confirmQuitMessage
			} else {
				c.mode = gott.ModeQuit
			}
		case gott.KeyCtrlO:
			c.Report(e.SaveFile())
		case gott.KeyArrowUp:
			e.MoveCursor(gott.MoveUp)
		case gott.KeyArrowDown:
			e.MoveCursor(gott.MoveDown)
		case gott.KeyArrowLeft:
			e.MoveCursor(gott.MoveLeft)
		case gott.KeyArrowRight:
			e.MoveCursor(gott.MoveRight)
		case gott.KeyBackspace:
			e.BackspaceChar()
		case gott.KeyEnter:
			e.BreakLine()
		case gott.KeySpace:
			e.InsertChar(' ')
		case gott.KeyTab:
			e.InsertChar(' ')
			for e.GetCursor().Col%c.tabWidth != 0 {
				e.InsertChar(' ')
			}
		}
		return nil
	}
	if ch != 0 && unicode.IsPrint(ch) {
		e.InsertChar(ch)
	}
	return nil
}

// one key decides: Ctrl+X again quits, anything else returns to editing
func (c *Commander) ProcessKeyConfirmQuit(event *gott.Event) error {
	if event.Key == gott.KeyCtrlX {
		c.mode = gott.ModeQuit
	} else {
		c.mode = gott.ModeEdit
		c.message = ""
	}
	return nil
}

// Report surfaces a session-boundary result on the message bar.
func (c *Commander) Report(result gott.Result) {
	c.message = result.Message
}
