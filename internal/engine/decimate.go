package engine

import (
	"math"
	"sort"

	"github.com/strokekit/go-ink-resampler/internal/mathutil"
)

// decimate reduces the stroke to target points. It subdivides every piece to
// collect interpolated candidates, scores the original samples, then greedily
// removes the least significant points until exactly target remain.
func (p *pass) decimate(target int) []float64 {
	pieces := p.pieceCount()
	for piece := 0; piece < pieces; piece++ {
		p.refinePiece(piece)
	}
	p.scoreOriginals()

	// The true endpoints are never eligible for removal.
	xs, ys := p.cfg.XSlot, p.cfg.YSlot
	p.pool = append(p.pool,
		candidate{
			x:     p.attrAt(0, xs),
			y:     p.attrAt(0, ys),
			errSq: math.Inf(1),
			piece: phantomFirst,
			orig:  0,
		},
		candidate{
			x:     p.attrAt(p.n-1, xs),
			y:     p.attrAt(p.n-1, ys),
			errSq: math.Inf(1),
			piece: pieces,
			orig:  p.n - 1,
		})

	sortByArclength(p.pool)

	passes := 0
	for len(p.pool) > target {
		p.reduceOnce(target)
		passes++
	}
	tracer().Debugf("decimation converged after %d passes", passes)

	return p.assemble()
}

// reduceOnce performs one removal pass. The points ranked below the target-th
// significance are removal candidates; walking them in arclength order, each
// adjacent pair loses only its lower-error member, and a pair whose first
// member is already gone is skipped. Removing both members of an adjacent
// pair in one pass would double-count the curvature of the widened gap.
func (p *pass) reduceOnce(target int) {
	ranked := make([]int, len(p.pool))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return p.pool[ranked[i]].errSq > p.pool[ranked[j]].errSq
	})

	// The pool is arclength-sorted, so sorting the candidate indices
	// restores arclength order among the candidates.
	cands := ranked[target:]
	sort.Ints(cands)

	removed := make(map[int]bool, len(cands))
	if len(cands) == 1 {
		removed[cands[0]] = true
	}
	for i := 0; i+1 < len(cands); i++ {
		if removed[cands[i]] {
			continue
		}
		a, b := cands[i], cands[i+1]
		if p.pool[a].errSq <= p.pool[b].errSq {
			removed[a] = true
		} else {
			removed[b] = true
		}
	}

	kept := p.pool[:0]
	for i, c := range p.pool {
		if !removed[i] {
			kept = append(kept, c)
		}
	}
	p.pool = kept

	p.rescore()
}

// rescore recomputes the curvature error of every surviving interior point
// against its new immediate neighbors. Errors computed before a removal pass
// refer to chords that no longer exist.
func (p *pass) rescore() {
	for i := 1; i+1 < len(p.pool); i++ {
		prev, cur, next := p.pool[i-1], p.pool[i], p.pool[i+1]
		p.pool[i].errSq = mathutil.PointToSegmentSq(cur.x, cur.y, prev.x, prev.y, next.x, next.y)
	}
}
