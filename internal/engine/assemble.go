package engine

import (
	"math"

	"github.com/strokekit/go-ink-resampler/internal/mathutil"
)

// assemble reconstructs a flat buffer from the candidate pool in layout
// order. Original points are copied from the input buffer; interpolated
// points have every payload slot back-filled at their stored (piece, t)
// through the slot's interpolation policy, reusing the cached polynomials
// from the subdivision stage.
func (p *pass) assemble() []float64 {
	out := make([]float64, 0, len(p.pool)*p.stride)
	for _, c := range p.pool {
		if c.orig >= 0 {
			base := c.orig * p.stride
			for slot, pol := range p.cfg.Policies {
				out = append(out, finalize(p.buf[base+slot], pol))
			}
			continue
		}

		coeffs := p.cache.coefficients(p.buf, c.piece)
		for slot, pol := range p.cfg.Policies {
			var v float64
			switch pol.Kind {
			case PolicyCurve:
				if slot == p.cfg.XSlot {
					v = c.x
				} else {
					v = c.y
				}
			case PolicyLinear:
				// Straight-line between the piece's original
				// bracketing values; repeated bisection of a
				// linear channel converges to exactly this.
				v = mathutil.Lerp(p.attrAt(c.piece+1, slot), 0, p.attrAt(c.piece+2, slot), 1, c.t)
			case PolicyCubic, PolicyAngle:
				cs := coeffs[slot]
				v = mathutil.Clamp(mathutil.Horner4(cs[0], cs[1], cs[2], cs[3], c.t), pol.Lower, pol.Upper)
			}
			out = append(out, finalize(v, pol))
		}
	}
	return out
}

// finalize normalizes the numeric representation of one output value.
func finalize(v float64, pol Policy) float64 {
	if pol.Integral {
		return math.Trunc(v)
	}
	return v
}
