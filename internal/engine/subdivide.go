package engine

import (
	"math"

	"github.com/strokekit/go-ink-resampler/internal/mathutil"
)

// midpoint is the result of bisecting one curve sub-interval.
type midpoint struct {
	x, y, t float64
	errSq   float64
	split   bool
}

// bisect evaluates the curve halfway between two parameters and decides
// whether the interval needs further subdivision. The squared error is the
// distance from the curve midpoint to the chord between the interval ends;
// the interval splits when that exceeds the curvature threshold, or when the
// midpoint strays from the straight-line midpoint by more than ten times the
// threshold on either axis. Coincident interval ends yield zero error, which
// naturally terminates the descent.
func (p *pass) bisect(cx, cy [4]float64, bx, by, bt, ex, ey, et float64) midpoint {
	mt := (bt + et) / 2
	mx := mathutil.Horner4(cx[0], cx[1], cx[2], cx[3], mt)
	my := mathutil.Horner4(cy[0], cy[1], cy[2], cy[3], mt)

	rate := p.cfg.CurvatureRate
	errSq := mathutil.PointToSegmentSq(mx, my, bx, by, ex, ey)
	split := errSq > rate*rate
	if !split {
		// The chord midpoint coincides with the parameter midpoint
		// because bisection always halves the interval.
		limit := straightLineFactor * rate
		if math.Abs(mx-(bx+ex)/2) > limit || math.Abs(my-(by+ey)/2) > limit {
			split = true
		}
	}

	return midpoint{x: mx, y: my, t: mt, errSq: errSq, split: split}
}

// refinePiece runs the adaptive subdivision descent over one piece, recording
// every evaluated midpoint as a candidate.
func (p *pass) refinePiece(piece int) {
	cx, cy := p.curvePolys(piece)
	bt, et := p.pieceSpan(piece)
	bx := mathutil.Horner4(cx[0], cx[1], cx[2], cx[3], bt)
	by := mathutil.Horner4(cy[0], cy[1], cy[2], cy[3], bt)
	ex := mathutil.Horner4(cx[0], cx[1], cx[2], cx[3], et)
	ey := mathutil.Horner4(cy[0], cy[1], cy[2], cy[3], et)
	p.refine(piece, 0, cx, cy, bx, by, bt, ex, ey, et)
}

// refine descends recursively into [begin, mid] and [mid, end] while the
// curvature test demands it. The depth cap guarantees termination on
// pathological inputs regardless of the error metric's behavior.
func (p *pass) refine(piece, depth int, cx, cy [4]float64, bx, by, bt, ex, ey, et float64) {
	m := p.bisect(cx, cy, bx, by, bt, ex, ey, et)
	p.record(piece, m)

	if !m.split || depth >= p.cfg.MaxDepth {
		return
	}
	p.refine(piece, depth+1, cx, cy, bx, by, bt, m.x, m.y, m.t)
	p.refine(piece, depth+1, cx, cy, m.x, m.y, m.t, ex, ey, et)
}

// record appends an interpolated midpoint to the candidate pool and updates
// the piece's first/last chord ends used for original-point scoring.
func (p *pass) record(piece int, m midpoint) {
	p.pool = append(p.pool, candidate{
		x:     m.x,
		y:     m.y,
		errSq: m.errSq,
		piece: piece,
		t:     m.t,
		orig:  -1,
	})

	if f := &p.first[piece]; !f.set || m.t < f.t {
		*f = chordEnd{x: m.x, y: m.y, t: m.t, set: true}
	}
	if l := &p.last[piece]; !l.set || m.t > l.t {
		*l = chordEnd{x: m.x, y: m.y, t: m.t, set: true}
	}
}

// scoreOriginals scores every interior original sample point against the
// chord between its nearest recorded interpolated neighbors: the last
// midpoint of the preceding piece and the first midpoint of the piece it
// opens. Next to the spline ends, the phantom anchor points stand in for the
// missing neighbor.
func (p *pass) scoreOriginals() {
	xs, ys := p.cfg.XSlot, p.cfg.YSlot
	for point := 1; point <= p.n-2; point++ {
		var bx, by, ex, ey float64
		if point == 1 {
			bx, by = p.attrAt(0, xs), p.attrAt(0, ys)
		} else {
			le := p.last[point-2]
			bx, by = le.x, le.y
		}
		if point == p.n-2 {
			ex, ey = p.attrAt(p.n-1, xs), p.attrAt(p.n-1, ys)
		} else {
			fe := p.first[point-1]
			ex, ey = fe.x, fe.y
		}

		px, py := p.attrAt(point, xs), p.attrAt(point, ys)
		piece, t := p.originalKey(point)
		p.pool = append(p.pool, candidate{
			x:     px,
			y:     py,
			errSq: mathutil.PointToSegmentSq(px, py, bx, by, ex, ey),
			piece: piece,
			t:     t,
			orig:  point,
		})
	}
}
