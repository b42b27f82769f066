package engine

import "gonum.org/v1/gonum/mat"

// catmullBasis is the uniform Catmull-Rom coefficient matrix with the 1/2
// tension factor folded in. Multiplying it with the 4 control values of one
// piece yields [c0 c1 c2 c3] such that value(t) = c0 + c1·t + c2·t² + c3·t³
// for t in [0,1] between the second and third control point.
var catmullBasis = mat.NewDense(4, 4, []float64{
	0, 1, 0, 0,
	-0.5, 0, 0.5, 0,
	1, -2.5, 2, -0.5,
	-0.5, 1.5, -1.5, 0.5,
})

// polyCache derives and caches per-piece cubic coefficients for every
// attribute slot. The cache lives for exactly one resampling pass; reusing
// coefficients across calls would silently corrupt unrelated strokes, so a
// fresh cache is allocated per pass and never shared.
type polyCache struct {
	stride int
	pieces map[int][][4]float64
}

func newPolyCache(stride int) *polyCache {
	return &polyCache{
		stride: stride,
		pieces: make(map[int][][4]float64),
	}
}

// coefficients returns the cubic coefficients of every attribute slot for one
// piece, computing and caching them on first use. Later back-fill stages rely
// on receiving the identical coefficients the subdivision stage used.
func (c *polyCache) coefficients(buf []float64, piece int) [][4]float64 {
	if cs, ok := c.pieces[piece]; ok {
		return cs
	}

	cs := make([][4]float64, c.stride)
	geometry := mat.NewVecDense(piecePoints, nil)
	coeffs := mat.NewVecDense(piecePoints, nil)
	for slot := 0; slot < c.stride; slot++ {
		for k := 0; k < piecePoints; k++ {
			geometry.SetVec(k, buf[(piece+k)*c.stride+slot])
		}
		coeffs.MulVec(catmullBasis, geometry)
		cs[slot] = [4]float64{coeffs.AtVec(0), coeffs.AtVec(1), coeffs.AtVec(2), coeffs.AtVec(3)}
	}

	c.pieces[piece] = cs
	return cs
}
