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
package types

// Commander modes
const (
	ModeEdit        = 0
	ModeConfirmQuit = 1
	ModeQuit        = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
)

type Key int

// Semantic keys delivered by the input boundary.
const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace
	KeyEnter
	KeyTab
	KeySpace
	KeyCtrlO
	KeyCtrlX
	KeyUnsupported
)

// An Event is one unit of user input.
type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Result severities
const (
	StatusOK        = 0 // the operation succeeded
	StatusRecovered = 1 // the operation recovered locally, e.g. load of a missing file
	StatusFailed    = 2 // the operation failed and left state unchanged, e.g. a save error
)

// A Result reports the outcome of a session-boundary operation.
type Result struct {
	Severity int
	Message  string
	Err      error
}

func OK(message string) Result {
	return Result{Severity: StatusOK, Message: message}
}

func Recovered(message string, err error) Result {
	return Result{Severity: StatusRecovered, Message: message, Err: err}
}

func Failed(message string, err error) Result {
	return Result{Severity: StatusFailed, Message: message, Err: err}
}

type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	SetSize(size Size)
	GetOffset() Size
	GetBuffer() Buffer

	MoveCursor(direction int)
	InsertChar(c rune)
	BackspaceChar()
	BreakLine()
	InsertLineAt(at int, text string)
	DeleteLineAt(at int)

	Scroll()
	Modified() bool

	ReadFile(path string) Result
	SaveFile() Result
	Bytes() []byte
}

type Buffer interface {
	GetRowCount() int
	GetRowLength(i int) int
	GetRowText(i int) string
	GetFileName() string
	Render(origin Point, size Size, offset Size, display Display)
}

type Commander interface {
	GetMode() int
	GetMessage() string
}

// A Display renders one cell; implemented by the screen.
type Display interface {
	SetCell(x int, y int, c rune)
}
