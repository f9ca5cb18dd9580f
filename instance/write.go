// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteFile creates path and writes inst to it.
func WriteFile(path string, inst *Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("instance: create %s: %w", path, err)
	}
	if err = Write(f, inst); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

// Write serializes inst. Vertices must be exactly 0..Nodes-1.
//
// Errors: ErrNilInstance, ErrMalformed (vertex set mismatch), ErrBadHome,
// or the writer's error.
func Write(w io.Writer, inst *Instance) error {
	if inst == nil || inst.Graph == nil {
		return ErrNilInstance
	}
	g := inst.Graph
	vs := g.Vertices()
	if len(vs) != inst.Nodes || (len(vs) > 0 && vs[len(vs)-1] != inst.Nodes-1) {
		return fmt.Errorf("%w: graph vertices are not 0..%d", ErrMalformed, inst.Nodes-1)
	}
	homes := make([]string, len(inst.Homes))
	for i, h := range inst.Homes {
		if !g.HasVertex(h) {
			return fmt.Errorf("%w: %d", ErrBadHome, h)
		}
		homes[i] = strconv.Itoa(h)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, FormatAlpha(inst.Alpha))
	fmt.Fprintf(bw, "%d %d\n", inst.Nodes, len(inst.Homes))
	fmt.Fprintln(bw, strings.Join(homes, " "))
	for _, v := range vs {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%d %d\n", v, len(nbrs))
		for _, e := range nbrs {
			fmt.Fprintf(bw, "%d %d\n", e.To, e.Weight)
		}
	}

	return bw.Flush()
}

// FormatAlpha renders α in shortest form, keeping a ".0" suffix on whole
// numbers (1 → "1.0", 0.3 → "0.3").
func FormatAlpha(a float64) string {
	s := strconv.FormatFloat(a, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEIN") {
		return s
	}

	return s + ".0"
}
