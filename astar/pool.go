package astar

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/path"
)

// pool is the append-only record of every discovered path.
// Ids are dense and equal the pool size at insertion, so scanning the
// B-tree in key order is scanning in discovery order.
type pool struct {
	paths btree.Map[int, *path.Path]

	// byLast lists ids by last-node position, ascending.
	byLast map[core.Position][]int
}

func newPool() *pool {
	return &pool{byLast: make(map[core.Position][]int)}
}

// add inserts p under the next id and returns that id.
func (pl *pool) add(p *path.Path) int {
	id := pl.paths.Len()
	pl.paths.Set(id, p)
	if last := p.LastNode(); last != nil {
		pl.byLast[last.Pos] = append(pl.byLast[last.Pos], id)
	}
	return id
}

func (pl *pool) get(id int) *path.Path {
	p, _ := pl.paths.Get(id)
	return p
}

func (pl *pool) len() int { return pl.paths.Len() }

// endingAt returns the ids of all paths, enabled or not, whose last node is
// at pos, oldest first.
func (pl *pool) endingAt(pos core.Position) []int {
	return pl.byLast[pos]
}

// scan visits paths in id order until fn returns false.
func (pl *pool) scan(fn func(id int, p *path.Path) bool) {
	pl.paths.Scan(fn)
}

// active counts enabled paths.
func (pl *pool) active() int {
	n := 0
	pl.scan(func(_ int, p *path.Path) bool {
		if p.Enabled {
			n++
		}
		return true
	})
	return n
}

// lightest returns the enabled path of minimum Weight. Because the scan runs
// in id order and only a strictly smaller weight replaces the pick, ties go
// to the lowest id.
func (pl *pool) lightest() (int, bool) {
	bestID, found := -1, false
	var bestW int64
	pl.scan(func(id int, p *path.Path) bool {
		if !p.Enabled {
			return true
		}
		if w := p.Weight(); !found || w < bestW {
			bestID, bestW, found = id, w, true
		}
		return true
	})
	return bestID, found
}
