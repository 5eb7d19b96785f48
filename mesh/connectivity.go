// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"strconv"

	"github.com/katalvlaran/lvlath/algorithms"
	"github.com/katalvlaran/lvlath/core"
)

// IsConnected reports whether every cell is reachable from cell 0 through
// interior edges. This is a debugging/validation aid for mesh generators
// — not something LMHFE.Step ever calls — so the string-keyed overhead of
// lvlath/core.Graph is fine here even though it would be wasteful on the
// per-step assembly hot path (see SPEC_FULL.md §4.3).
func (m *Mesh) IsConnected() bool {
	if len(m.Cells) == 0 {
		return true
	}

	g := core.NewGraph()
	for c := range m.Cells {
		_ = g.AddVertex(strconv.Itoa(c))
	}
	for _, e := range m.Edges {
		if e.Cells[0] == NoCell || e.Cells[1] == NoCell {
			continue
		}
		_, _ = g.AddEdge(strconv.Itoa(e.Cells[0]), strconv.Itoa(e.Cells[1]), 1)
	}

	result, err := algorithms.BFS(g, "0", nil)
	if err != nil {
		return false
	}
	return len(result.Order) == len(m.Cells)
}
