// Package intcode runs Intcode programs: a tape of integers interpreted by a
// fetch-decode-execute loop with buffered input and output.
package intcode

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrBadOpcode      = errors.New("intcode: bad opcode")
	ErrBadMode        = errors.New("intcode: bad parameter mode")
	ErrBadAddress     = errors.New("intcode: negative address")
	ErrInputExhausted = errors.New("intcode: waiting for input that will never come")
)

// State is what a Machine is doing after its last step.
type State int

const (
	Running State = iota
	AwaitingInput
	HasOutput
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case AwaitingInput:
		return "AwaitingInput"
	case HasOutput:
		return "HasOutput"
	case Terminated:
		return "Terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const (
	opAdd     = 1
	opMul     = 2
	opIn      = 3
	opOut     = 4
	opJumpT   = 5
	opJumpF   = 6
	opLess    = 7
	opEq      = 8
	opRelBase = 9
	opHalt    = 99
)

const (
	modePosition  = 0
	modeImmediate = 1
	modeRelative  = 2
)

// Parse parses a comma separated program.
func Parse(text string) ([]int, error) {
	fields := strings.Split(strings.TrimSpace(text), ",")
	program := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("intcode: parsing value %d: %w", i, err)
		}
		program = append(program, v)
	}
	return program, nil
}

// Machine is a single Intcode computer. Memory past the end of the program
// reads as zero and grows on write.
type Machine struct {
	mem   []int
	ip    int
	base  int
	in    []int
	out   []int
	state State
	err   error // sticky; set by the first fault
}

// New returns a Machine loaded with a copy of program.
func New(program []int) *Machine {
	return &Machine{mem: slices.Clone(program)}
}

func (m *Machine) State() State { return m.state }

// Push queues input values.
func (m *Machine) Push(v ...int) { m.in = append(m.in, v...) }

// Outputs returns the outputs not yet taken by PopOutput.
func (m *Machine) Outputs() []int { return m.out }

// PopOutput takes the oldest pending output.
func (m *Machine) PopOutput() (int, bool) {
	if len(m.out) == 0 {
		return 0, false
	}
	v := m.out[0]
	m.out = m.out[1:]
	return v, true
}

// Mem returns the value at addr. It panics on a negative address.
func (m *Machine) Mem(addr int) int {
	if addr < 0 {
		panic(fmt.Sprintf("intcode: Mem(%d)", addr))
	}
	if addr >= len(m.mem) {
		return 0
	}
	return m.mem[addr]
}

// SetMem writes v at addr, growing memory if needed. It panics on a
// negative address.
func (m *Machine) SetMem(addr, v int) {
	if addr < 0 {
		panic(fmt.Sprintf("intcode: SetMem(%d)", addr))
	}
	m.grow(addr)
	m.mem[addr] = v
}

func (m *Machine) grow(addr int) {
	if addr >= len(m.mem) {
		m.mem = append(m.mem, make([]int, addr+1-len(m.mem))...)
	}
}

func (m *Machine) fault(err error) {
	if m.err == nil {
		m.err = fmt.Errorf("%w (ip %d)", err, m.ip)
	}
}

func (m *Machine) load(addr int) int {
	if addr < 0 {
		m.fault(fmt.Errorf("%w: read %d", ErrBadAddress, addr))
		return 0
	}
	return m.Mem(addr)
}

func (m *Machine) store(addr, v int) {
	if addr < 0 {
		m.fault(fmt.Errorf("%w: write %d", ErrBadAddress, addr))
		return
	}
	m.SetMem(addr, v)
}

// mode returns the addressing mode of the nth (1-based) parameter of the
// current instruction.
func (m *Machine) mode(n int) int {
	md := m.load(m.ip) / 100
	for ; n > 1; n-- {
		md /= 10
	}
	return md % 10
}

// param reads the nth parameter as a value.
func (m *Machine) param(n int) int {
	raw := m.load(m.ip + n)
	switch md := m.mode(n); md {
	case modePosition:
		return m.load(raw)
	case modeImmediate:
		return raw
	case modeRelative:
		return m.load(m.base + raw)
	default:
		m.fault(fmt.Errorf("%w %d", ErrBadMode, md))
		return 0
	}
}

// addr reads the nth parameter as a write address.
func (m *Machine) addr(n int) int {
	raw := m.load(m.ip + n)
	switch md := m.mode(n); md {
	case modePosition:
		return raw
	case modeRelative:
		return m.base + raw
	default:
		m.fault(fmt.Errorf("%w %d for a write", ErrBadMode, md))
		return -1
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Step executes one instruction. A machine that has faulted keeps returning
// the same error.
func (m *Machine) Step() (State, error) {
	if m.err != nil {
		return m.state, m.err
	}
	if m.state == Terminated {
		return Terminated, nil
	}
	m.state = Running

	ins := m.load(m.ip)
	switch op := ins % 100; op {
	case opAdd, opMul, opLess, opEq:
		a, b, dst := m.param(1), m.param(2), m.addr(3)
		var v int
		switch op {
		case opAdd:
			v = a + b
		case opMul:
			v = a * b
		case opLess:
			v = b2i(a < b)
		case opEq:
			v = b2i(a == b)
		}
		if m.err == nil {
			m.store(dst, v)
		}
		m.ip += 4
	case opIn:
		if len(m.in) == 0 {
			m.state = AwaitingInput
			break
		}
		dst := m.addr(1)
		if m.err == nil {
			m.store(dst, m.in[0])
			m.in = m.in[1:]
		}
		m.ip += 2
	case opOut:
		m.out = append(m.out, m.param(1))
		m.ip += 2
		m.state = HasOutput
	case opJumpT, opJumpF:
		v, target := m.param(1), m.param(2)
		if (v != 0) == (op == opJumpT) {
			if target < 0 {
				m.fault(fmt.Errorf("%w: jump to %d", ErrBadAddress, target))
			}
			m.ip = target
		} else {
			m.ip += 3
		}
	case opRelBase:
		m.base += m.param(1)
		m.ip += 2
	case opHalt:
		m.state = Terminated
	default:
		m.fault(fmt.Errorf("%w %d", ErrBadOpcode, ins))
	}
	return m.state, m.err
}

// Run steps until the machine stops running: it needs input, has produced
// an output, or has terminated.
func (m *Machine) Run() (State, error) {
	for {
		s, err := m.Step()
		if err != nil || s != Running {
			return s, err
		}
	}
}

// RunAll runs program to termination with the given inputs and returns
// everything it printed.
func RunAll(program []int, inputs ...int) ([]int, error) {
	m := New(program)
	m.Push(inputs...)
	for {
		s, err := m.Run()
		if err != nil {
			return m.out, err
		}
		switch s {
		case Terminated:
			return m.out, nil
		case AwaitingInput:
			return m.out, ErrInputExhausted
		}
	}
}
