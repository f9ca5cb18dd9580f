// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	inst, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Read parses one instance from r.
//
// Homes are returned sorted. Trailing blank lines are ignored.
//
// Errors: ErrMalformed, ErrBadWeight, ErrEdgeMismatch, ErrBadHome, each
// wrapped with the offending line number.
func Read(r io.Reader) (*Instance, error) {
	p := &parser{sc: bufio.NewScanner(r)}

	alpha, err := p.alpha()
	if err != nil {
		return nil, err
	}
	n, m, err := p.header()
	if err != nil {
		return nil, err
	}
	homes, err := p.homes(n, m)
	if err != nil {
		return nil, err
	}
	g, err := p.adjacency(n)
	if err != nil {
		return nil, err
	}
	if err = p.trailer(); err != nil {
		return nil, err
	}

	return &Instance{Alpha: alpha, Nodes: n, Homes: homes, Graph: g}, nil
}

// parser tracks the current line for error messages.
type parser struct {
	sc   *bufio.Scanner
	line int
}

// next returns the fields of the next line; ok is false at end of input.
func (p *parser) next() ([]string, bool, error) {
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return nil, false, fmt.Errorf("instance: line %d: %w", p.line+1, err)
		}
		return nil, false, nil
	}
	p.line++

	return strings.Fields(p.sc.Text()), true, nil
}

// want reads a line with exactly k integer fields.
func (p *parser) want(k int, what string) ([]int, error) {
	fields, ok, err := p.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: line %d: unexpected end of file, want %s", ErrMalformed, p.line+1, what)
	}
	if len(fields) != k {
		return nil, fmt.Errorf("%w: line %d: %d fields, want %s", ErrMalformed, p.line, len(fields), what)
	}

	return p.ints(fields, what)
}

func (p *parser) ints(fields []string, what string) ([]int, error) {
	out := make([]int, len(fields))
	var err error
	for i, f := range fields {
		if out[i], err = strconv.Atoi(f); err != nil {
			return nil, fmt.Errorf("%w: line %d: %s: %q is not an integer", ErrMalformed, p.line, what, f)
		}
	}

	return out, nil
}

func (p *parser) alpha() (float64, error) {
	fields, ok, err := p.next()
	if err != nil {
		return 0, err
	}
	if !ok || len(fields) != 1 {
		return 0, fmt.Errorf("%w: line 1: want α", ErrMalformed)
	}
	a, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return 0, fmt.Errorf("%w: line 1: α %q must be a finite non-negative number", ErrMalformed, fields[0])
	}

	return a, nil
}

func (p *parser) header() (int, int, error) {
	nm, err := p.want(2, "\"n m\"")
	if err != nil {
		return 0, 0, err
	}
	n, m := nm[0], nm[1]
	if n < 1 || m < 0 || m > n {
		return 0, 0, fmt.Errorf("%w: line %d: n=%d m=%d", ErrMalformed, p.line, n, m)
	}

	return n, m, nil
}

func (p *parser) homes(n, m int) ([]int, error) {
	fields, ok, err := p.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: line %d: unexpected end of file, want homes", ErrMalformed, p.line+1)
	}
	if len(fields) != m {
		return nil, fmt.Errorf("%w: line %d: %d homes, header says %d", ErrBadHome, p.line, len(fields), m)
	}
	homes, err := p.ints(fields, "home")
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, m)
	for _, h := range homes {
		if h < 0 || h >= n {
			return nil, fmt.Errorf("%w: line %d: home %d outside 0..%d", ErrBadHome, p.line, h, n-1)
		}
		if _, dup := seen[h]; dup {
			return nil, fmt.Errorf("%w: line %d: home %d repeated", ErrBadHome, p.line, h)
		}
		seen[h] = struct{}{}
	}
	sort.Ints(homes)

	return homes, nil
}

// adjacency reads the n vertex blocks. Each edge must be listed from both
// endpoints with equal weights.
func (p *parser) adjacency(n int) (*core.Graph, error) {
	g := core.NewGraph(core.WithVertices(n))
	// listed holds every (vertex, neighbor) record read so far
	listed := make(map[[2]int]struct{})

	var (
		v, i     int
		hdr, rec []int
		err      error
	)
	for v = 0; v < n; v++ {
		if hdr, err = p.want(2, "\"vertex degree\""); err != nil {
			return nil, err
		}
		if hdr[0] != v {
			return nil, fmt.Errorf("%w: line %d: vertex %d, want %d", ErrMalformed, p.line, hdr[0], v)
		}
		if hdr[1] < 0 || hdr[1] >= n {
			return nil, fmt.Errorf("%w: line %d: degree %d of vertex %d", ErrMalformed, p.line, hdr[1], v)
		}
		for i = 0; i < hdr[1]; i++ {
			if rec, err = p.want(2, "\"neighbor weight\""); err != nil {
				return nil, err
			}
			if err = p.edge(g, listed, v, rec[0], rec[1], n); err != nil {
				return nil, err
			}
		}
	}

	for key := range listed {
		if _, ok := listed[[2]int{key[1], key[0]}]; !ok {
			return nil, fmt.Errorf("%w: edge %d-%d listed by vertex %d only", ErrEdgeMismatch, key[0], key[1], key[0])
		}
	}

	return g, nil
}

func (p *parser) edge(g *core.Graph, listed map[[2]int]struct{}, v, u, w, n int) error {
	if u < 0 || u >= n || u == v {
		return fmt.Errorf("%w: line %d: neighbor %d of vertex %d", ErrMalformed, p.line, u, v)
	}
	if w <= 0 {
		return fmt.Errorf("%w: line %d: %d", ErrBadWeight, p.line, w)
	}
	if _, dup := listed[[2]int{v, u}]; dup {
		return fmt.Errorf("%w: line %d: neighbor %d listed twice by vertex %d", ErrMalformed, p.line, u, v)
	}
	listed[[2]int{v, u}] = struct{}{}

	if old, err := g.Weight(v, u); err == nil {
		if old != int64(w) {
			return fmt.Errorf("%w: line %d: edge %d-%d weighs %d and %d", ErrEdgeMismatch, p.line, u, v, old, w)
		}
		return nil
	}
	if err := g.AddEdge(v, u, int64(w)); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrMalformed, p.line, err)
	}

	return nil
}

// trailer accepts only blank lines after the last vertex block.
func (p *parser) trailer() error {
	for {
		fields, ok, err := p.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if len(fields) != 0 {
			return fmt.Errorf("%w: line %d: unexpected content after last vertex", ErrMalformed, p.line)
		}
	}
}
