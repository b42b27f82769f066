package engine

import "github.com/strokekit/go-ink-resampler/internal/mathutil"

// upsample grows the stroke to target points by round-robin bisection: each
// sweep visits every piece once and bisects its largest remaining
// sub-interval, stopping mid-sweep as soon as enough points exist. There is
// no curvature test; insertion density follows the pieces evenly.
func (p *pass) upsample(target int) []float64 {
	pieces := p.pieceCount()
	queues := make([]*spanQueue, pieces)
	for piece := range queues {
		begin, end := p.pieceSpan(piece)
		queues[piece] = newSpanQueue(piecePoints)
		queues[piece].push(span{begin: begin, end: end})
	}

	needed := target - p.n
	for needed > 0 {
		for piece := 0; piece < pieces && needed > 0; piece++ {
			s := queues[piece].pop()
			cx, cy := p.curvePolys(piece)
			mt := (s.begin + s.end) / 2
			p.pool = append(p.pool, candidate{
				x:     mathutil.Horner4(cx[0], cx[1], cx[2], cx[3], mt),
				y:     mathutil.Horner4(cy[0], cy[1], cy[2], cy[3], mt),
				piece: piece,
				t:     mt,
				orig:  -1,
			})
			queues[piece].push(span{begin: s.begin, end: mt})
			queues[piece].push(span{begin: mt, end: s.end})
			needed--
		}
	}

	// Merge the untouched original points in, then restore arclength order.
	xs, ys := p.cfg.XSlot, p.cfg.YSlot
	p.pool = append(p.pool, candidate{
		x:     p.attrAt(0, xs),
		y:     p.attrAt(0, ys),
		piece: phantomFirst,
		orig:  0,
	})
	for point := 1; point <= p.n-2; point++ {
		piece, t := p.originalKey(point)
		p.pool = append(p.pool, candidate{
			x:     p.attrAt(point, xs),
			y:     p.attrAt(point, ys),
			piece: piece,
			t:     t,
			orig:  point,
		})
	}
	p.pool = append(p.pool, candidate{
		x:     p.attrAt(p.n-1, xs),
		y:     p.attrAt(p.n-1, ys),
		piece: pieces,
		orig:  p.n - 1,
	})
	sortByArclength(p.pool)

	return p.assemble()
}
