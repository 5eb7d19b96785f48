// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"fmt"
	"io"

	"github.com/GregTheMadMonk/lmhfe-diffprog/lmerr"
)

// Dump writes the text form of spec.md §6: a header line with
// |points| |edges| |cells|, then that many lines of point coordinates,
// edge tuples (p1 p2 c1 c2, NoCell rendered as -1) and cell tuples
// (p1 p2 p3 e1 e2 e3).
func (m *Mesh) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", len(m.Points), len(m.Edges), len(m.Cells)); err != nil {
		return lmerr.New(lmerr.IOFailure, "mesh dump: %v", err)
	}
	for _, p := range m.Points {
		if _, err := fmt.Fprintf(bw, "%g %g\n", p[0], p[1]); err != nil {
			return lmerr.New(lmerr.IOFailure, "mesh dump: %v", err)
		}
	}
	for _, e := range m.Edges {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d\n", e.Points[0], e.Points[1], e.Cells[0], e.Cells[1]); err != nil {
			return lmerr.New(lmerr.IOFailure, "mesh dump: %v", err)
		}
	}
	for _, c := range m.Cells {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d %d %d\n",
			c.Points[0], c.Points[1], c.Points[2], c.Edges[0], c.Edges[1], c.Edges[2]); err != nil {
			return lmerr.New(lmerr.IOFailure, "mesh dump: %v", err)
		}
	}
	return bw.Flush()
}

// Read parses the text form written by Dump, reconstructing an
// equivalent Mesh. The round-trip Read(Dump(m)) == m must be exact
// (spec.md §8).
func Read(r io.Reader) (*Mesh, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)

	readLine := func() (string, bool) {
		for sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}

	header, ok := readLine()
	if !ok {
		return nil, lmerr.New(lmerr.IOFailure, "mesh read: empty input, expected header line")
	}
	var np, ne, nc int
	if _, err := fmt.Sscanf(header, "%d %d %d", &np, &ne, &nc); err != nil {
		return nil, lmerr.New(lmerr.IOFailure, "mesh read: malformed header %q: %v", header, err)
	}

	m := &Mesh{
		Points: make([]Point, np),
		Edges:  make([]Edge, ne),
		Cells:  make([]Cell, nc),
	}

	for i := 0; i < np; i++ {
		line, ok := readLine()
		if !ok {
			return nil, lmerr.New(lmerr.IOFailure, "mesh read: expected %d points, ran out at %d", np, i)
		}
		if _, err := fmt.Sscanf(line, "%g %g", &m.Points[i][0], &m.Points[i][1]); err != nil {
			return nil, lmerr.New(lmerr.IOFailure, "mesh read: malformed point line %q: %v", line, err)
		}
	}
	for i := 0; i < ne; i++ {
		line, ok := readLine()
		if !ok {
			return nil, lmerr.New(lmerr.IOFailure, "mesh read: expected %d edges, ran out at %d", ne, i)
		}
		e := &m.Edges[i]
		if _, err := fmt.Sscanf(line, "%d %d %d %d", &e.Points[0], &e.Points[1], &e.Cells[0], &e.Cells[1]); err != nil {
			return nil, lmerr.New(lmerr.IOFailure, "mesh read: malformed edge line %q: %v", line, err)
		}
	}
	for i := 0; i < nc; i++ {
		line, ok := readLine()
		if !ok {
			return nil, lmerr.New(lmerr.IOFailure, "mesh read: expected %d cells, ran out at %d", nc, i)
		}
		c := &m.Cells[i]
		if _, err := fmt.Sscanf(line, "%d %d %d %d %d %d",
			&c.Points[0], &c.Points[1], &c.Points[2], &c.Edges[0], &c.Edges[1], &c.Edges[2]); err != nil {
			return nil, lmerr.New(lmerr.IOFailure, "mesh read: malformed cell line %q: %v", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, lmerr.New(lmerr.IOFailure, "mesh read: %v", err)
	}
	return m, nil
}
