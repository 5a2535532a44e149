// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: a registry of puzzle days, sample checking, input fetching and
// the odd parsing helper.
package aoc

import (
	"bufio"
	"bytes"
	"cmp"
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"iter"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Day is a registered puzzle day.
type Day struct {
	Year  int
	Day   int
	Parts []Part
}

// Part is one part func of a day.
type Part struct {
	Name   string // func name, e.g. "partOne"
	fn     func(*Puzzle) any
	sample *sample
}

// HasSample reports whether the part's doc comment carries a sample.
func (p Part) HasSample() bool { return p.sample != nil }

type sample struct {
	input string
	want  string
}

type dayKey struct{ year, day int }

var days = map[dayKey]*Day{}

// Register records the part funcs for a day. src is the day's own source,
// usually embedded; samples are read from the doc comments of the part
// funcs. A comment line of the form
//
//	want=<answer>
//
// followed by sample input gives that func's sample. A want line with no
// input reuses the previous func's sample input.
func Register(year, day int, src []byte, parts ...func(*Puzzle) any) {
	if len(parts) == 0 {
		panic(fmt.Sprintf("aoc: %d/%d registered with no parts", year, day))
	}
	k := dayKey{year, day}
	if _, dup := days[k]; dup {
		panic(fmt.Sprintf("aoc: %d/%d registered twice", year, day))
	}
	samples := extractSamples(src)
	d := &Day{Year: year, Day: day}
	for _, f := range parts {
		name := funcName(f)
		p := Part{Name: name, fn: f}
		if s, ok := samples[name]; ok {
			p.sample = &s
		}
		d.Parts = append(d.Parts, p)
	}
	days[k] = d
}

// Lookup returns the registered day.
func Lookup(year, day int) (*Day, bool) {
	d, ok := days[dayKey{year, day}]
	return d, ok
}

// Puzzles returns every registered day, oldest first.
func Puzzles() []*Day {
	keys := maps.Keys(days)
	slices.SortFunc(keys, func(a, b dayKey) int {
		if c := cmp.Compare(a.year, b.year); c != 0 {
			return c
		}
		return cmp.Compare(a.day, b.day)
	})
	out := make([]*Day, len(keys))
	for i, k := range keys {
		out[i] = days[k]
	}
	return out
}

var wantRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func extractSamples(src []byte) map[string]sample {
	samples := map[string]sample{}
	if len(src) == 0 {
		return samples
	}
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "", src, parser.ParseComments)
	if err != nil {
		panic(fmt.Sprintf("aoc: parsing source to extract samples: %v", err))
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			text := strings.TrimPrefix(c.Text, "//")
			if v, ok := strings.CutPrefix(text, "/*"); ok {
				text = strings.TrimSuffix(v, "*/")
			}
			if m := wantRx.FindStringSubmatch(text); m != nil {
				in := Or(m[2], lastInput)
				samples[fd.Name.Name] = sample{input: in, want: strings.TrimSpace(m[1])}
				lastInput = in
				break
			}
		}
	}
	return samples
}

func funcName(f func(*Puzzle) any) string {
	rf := runtime.FuncForPC(reflect.ValueOf(f).Pointer())
	if rf == nil {
		panic("no func found")
	}
	name := rf.Name()
	return name[strings.LastIndexByte(name, '.')+1:]
}

// Puzzle is what a part func sees: its input and where to log.
type Puzzle struct {
	Year       int
	Day        int
	SampleMode bool

	input []byte
	ctx   context.Context
	log   *zap.Logger
}

// NewPuzzle returns a Puzzle over input. It is mostly useful in tests.
func NewPuzzle(input string) *Puzzle {
	return &Puzzle{input: []byte(input)}
}

func (p *Puzzle) Input() []byte { return p.input }

// Text returns the input without its trailing newlines.
func (p *Puzzle) Text() string {
	return strings.TrimRight(string(p.input), "\r\n")
}

func (p *Puzzle) Context() context.Context {
	if p.ctx == nil {
		return context.Background()
	}
	return p.ctx
}

func (p *Puzzle) Logger() *zap.Logger {
	if p.log == nil {
		return zap.NewNop()
	}
	return p.log
}

// Debugf logs at debug level.
func (p *Puzzle) Debugf(format string, args ...any) {
	p.Logger().Sugar().Debugf(format, args...)
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.input))
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

func DigVal(b byte) int {
	if b >= '0' && b <= '9' {
		return int(b - '0')
	}
	panic(fmt.Sprintf("bogus digit %q", string(b)))
}

// Or returns the first non-zero element of list, or else returns the zero T.
//
// This is the proposal from
// https://github.com/golang/go/issues/60204#issuecomment-1581245334.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}

func Sum[T constraints.Integer](nums ...T) T {
	var s T
	for _, v := range nums {
		s += v
	}
	return s
}

func Product[T constraints.Integer](nums ...T) T {
	p := T(1)
	for _, v := range nums {
		p *= v
	}
	return p
}

// Permutations yields every ordering of xs using Heap's algorithm. The
// yielded slice is reused between iterations.
func Permutations[T any](xs []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		p := slices.Clone(xs)
		var gen func(k int) bool
		gen = func(k int) bool {
			if k <= 1 {
				return yield(p)
			}
			for i := 0; i < k-1; i++ {
				if !gen(k - 1) {
					return false
				}
				if k%2 == 0 {
					p[i], p[k-1] = p[k-1], p[i]
				} else {
					p[0], p[k-1] = p[k-1], p[0]
				}
			}
			return gen(k - 1)
		}
		gen(len(p))
	}
}
