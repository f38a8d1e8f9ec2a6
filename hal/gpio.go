package hal

import (
	"sync"

	"splitkb/matrix"
)

// PinMatrix scans a row-driven switch matrix: each row is pulled low in
// turn and a column reading low means the switch at that crossing is closed.
type PinMatrix struct {
	rows   []DigitalOutput
	cols   []DigitalInput
	settle func()
}

// NewPinMatrix returns a scanner over rows and cols. settle, if not nil,
// runs between driving a row and sampling the columns. Pins beyond the
// matrix geometry are ignored.
func NewPinMatrix(rows []DigitalOutput, cols []DigitalInput, settle func()) *PinMatrix {
	if len(rows) > matrix.Rows {
		rows = rows[:matrix.Rows]
	}
	if len(cols) > matrix.Cols {
		cols = cols[:matrix.Cols]
	}
	for _, r := range rows {
		r.High()
	}
	return &PinMatrix{rows: rows, cols: cols, settle: settle}
}

func (m *PinMatrix) Scan(dst *matrix.State) {
	for i, r := range m.rows {
		r.Low()
		if m.settle != nil {
			m.settle()
		}
		for j, c := range m.cols {
			dst[i][j] = !c.Get()
		}
		r.High()
	}
}

// SwitchBoard is a half's worth of switches closed and opened by software,
// wired like the real matrix so PinMatrix can scan it.
type SwitchBoard struct {
	mu     sync.Mutex
	closed [matrix.Rows][matrix.Cols]bool
	driven int
}

func NewSwitchBoard() *SwitchBoard { return &SwitchBoard{driven: -1} }

// Set opens or closes the switch at row, col.
func (s *SwitchBoard) Set(row, col int, closed bool) {
	if row < 0 || row >= matrix.Rows || col < 0 || col >= matrix.Cols {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed[row][col] = closed
}

// Closed reports whether the switch at row, col is closed.
func (s *SwitchBoard) Closed(row, col int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed[row][col]
}

// Rows returns the row drive pins.
func (s *SwitchBoard) Rows() []DigitalOutput {
	pins := make([]DigitalOutput, matrix.Rows)
	for i := range pins {
		pins[i] = rowPin{s: s, i: i}
	}
	return pins
}

// Cols returns the column sense pins. They read high unless the driven row
// has a closed switch on them.
func (s *SwitchBoard) Cols() []DigitalInput {
	pins := make([]DigitalInput, matrix.Cols)
	for j := range pins {
		pins[j] = colPin{s: s, j: j}
	}
	return pins
}

type rowPin struct {
	s *SwitchBoard
	i int
}

func (p rowPin) Low() {
	p.s.mu.Lock()
	p.s.driven = p.i
	p.s.mu.Unlock()
}

func (p rowPin) High() {
	p.s.mu.Lock()
	if p.s.driven == p.i {
		p.s.driven = -1
	}
	p.s.mu.Unlock()
}

type colPin struct {
	s *SwitchBoard
	j int
}

func (p colPin) Get() bool {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if p.s.driven < 0 {
		return true
	}
	return !p.s.closed[p.s.driven][p.j]
}

// VirtualEncoder is a rotary encoder turned by software.
type VirtualEncoder struct {
	mu    sync.Mutex
	a, b  bool
	edges chan struct{}
}

func NewVirtualEncoder() *VirtualEncoder {
	return &VirtualEncoder{edges: make(chan struct{}, 16)}
}

func (e *VirtualEncoder) Read() (a, b bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.a, e.b
}

func (e *VirtualEncoder) Edges() <-chan struct{} { return e.edges }

// Turn moves the pins by one detent and signals an edge.
func (e *VirtualEncoder) Turn(clockwise bool) {
	e.mu.Lock()
	switch {
	case clockwise && e.a == e.b:
		e.a, e.b = !e.a, !e.b
	case clockwise:
		e.b = e.a
	case e.a == e.b:
		e.a, e.b = e.b, !e.b
	default:
		e.a, e.b = !e.a, !e.b
	}
	e.mu.Unlock()
	select {
	case e.edges <- struct{}{}:
	default:
	}
}
