package lbm

import (
	"fmt"
	"math"
	"runtime"
	"sync"
)

// stepPartial carries one worker's share of the per-iteration reduction.
type stepPartial struct {
	velocitySum float64
	openCells   int
	err         error
}

// stepRows runs the fused stream/rebound/collide kernel over rows [y0, y1),
// reading cur and writing next. Returns early on the first cell whose local
// density is non-positive, since dividing by it would poison the grid with
// non-finite values.
func stepRows(p Params, cur, next *Grid, mask *Mask, y0, y1 int) stepPartial {
	nx, ny := p.NX, p.NY
	omega := p.Omega

	var out stepPartial
	for y := y0; y < y1; y++ {
		yS := y - 1
		if y == 0 {
			yS = ny - 1
		}
		yN := y + 1
		if yN == ny {
			yN = 0
		}
		for x := 0; x < nx; x++ {
			xE := x + 1
			if xE == nx {
				xE = 0
			}
			xW := x - 1
			if x == 0 {
				xW = nx - 1
			}

			// Stream: pull each direction's value from the neighbour it
			// travels in from, wrapping at the domain edges. All nine reads
			// complete before any write; cur and next never alias.
			prop0 := cur.S[DirRest][x+y*nx]
			prop1 := cur.S[DirE][xW+y*nx]
			prop2 := cur.S[DirN][x+yS*nx]
			prop3 := cur.S[DirW][xE+y*nx]
			prop4 := cur.S[DirS][x+yN*nx]
			prop5 := cur.S[DirNE][xW+yS*nx]
			prop6 := cur.S[DirNW][xE+yS*nx]
			prop7 := cur.S[DirSW][xE+yN*nx]
			prop8 := cur.S[DirSE][xW+yN*nx]

			i := x + y*nx

			if mask.BlockedAt(i) {
				// Rebound: reflect every streamed value back the way it
				// came. No density or velocity is computed and the cell
				// contributes nothing to the reduction.
				next.S[DirRest][i] = prop0
				next.S[DirE][i] = prop3
				next.S[DirN][i] = prop4
				next.S[DirW][i] = prop1
				next.S[DirS][i] = prop2
				next.S[DirNE][i] = prop7
				next.S[DirNW][i] = prop8
				next.S[DirSW][i] = prop5
				next.S[DirSE][i] = prop6
				continue
			}

			localDensity := prop0 + prop1 + prop2 + prop3 + prop4 + prop5 + prop6 + prop7 + prop8
			if localDensity <= 0 {
				out.err = fmt.Errorf("non-positive local density %g at cell (%d, %d)", localDensity, x, y)
				return out
			}

			uX := (prop1 + prop5 + prop8 - (prop3 + prop6 + prop7)) / localDensity
			uY := (prop2 + prop5 + prop6 - (prop4 + prop7 + prop8)) / localDensity
			uSq := uX*uX + uY*uY

			// Directional velocity components.
			u1 := uX
			u2 := uY
			u3 := -uX
			u4 := -uY
			u5 := uX + uY
			u6 := -uX + uY
			u7 := -uX - uY
			u8 := uX - uY

			// Equilibrium densities: w * rho * (1 + 3e + 4.5e^2 - 1.5u^2).
			dEqu0 := W0 * localDensity * (1.0 - uSq*(0.5*EqScale))
			dEqu1 := W1 * localDensity * (1.0 + u1*EqScale + (u1*u1)*(1.5*EqScale) - uSq*(0.5*EqScale))
			dEqu2 := W1 * localDensity * (1.0 + u2*EqScale + (u2*u2)*(1.5*EqScale) - uSq*(0.5*EqScale))
			dEqu3 := W1 * localDensity * (1.0 + u3*EqScale + (u3*u3)*(1.5*EqScale) - uSq*(0.5*EqScale))
			dEqu4 := W1 * localDensity * (1.0 + u4*EqScale + (u4*u4)*(1.5*EqScale) - uSq*(0.5*EqScale))
			dEqu5 := W2 * localDensity * (1.0 + u5*EqScale + (u5*u5)*(1.5*EqScale) - uSq*(0.5*EqScale))
			dEqu6 := W2 * localDensity * (1.0 + u6*EqScale + (u6*u6)*(1.5*EqScale) - uSq*(0.5*EqScale))
			dEqu7 := W2 * localDensity * (1.0 + u7*EqScale + (u7*u7)*(1.5*EqScale) - uSq*(0.5*EqScale))
			dEqu8 := W2 * localDensity * (1.0 + u8*EqScale + (u8*u8)*(1.5*EqScale) - uSq*(0.5*EqScale))

			// Relaxation towards equilibrium.
			next.S[DirRest][i] = prop0 + omega*(dEqu0-prop0)
			next.S[DirE][i] = prop1 + omega*(dEqu1-prop1)
			next.S[DirN][i] = prop2 + omega*(dEqu2-prop2)
			next.S[DirW][i] = prop3 + omega*(dEqu3-prop3)
			next.S[DirS][i] = prop4 + omega*(dEqu4-prop4)
			next.S[DirNE][i] = prop5 + omega*(dEqu5-prop5)
			next.S[DirNW][i] = prop6 + omega*(dEqu6-prop6)
			next.S[DirSW][i] = prop7 + omega*(dEqu7-prop7)
			next.S[DirSE][i] = prop8 + omega*(dEqu8-prop8)

			out.openCells++
			out.velocitySum += math.Sqrt(uSq)
		}
	}
	return out
}

// Step advances the lattice one iteration: a single fused pass streams each
// cell's nine values in from the current grid, applies bounce-back at
// obstacles or BGK relaxation elsewhere, and writes the result into the next
// grid. It returns the average velocity magnitude over open cells.
//
// Rows are sharded across workers goroutines (runtime.NumCPU() when
// workers <= 0). Every cell reads only cur and writes only its own slot in
// next, so the shards need no synchronisation. The reduction is combined
// from per-worker partial sums in worker order: a fixed worker count is
// bit-reproducible, but rounding may differ between worker counts.
func Step(p Params, cur, next *Grid, mask *Mask, workers int) (float64, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > p.NY {
		workers = p.NY
	}

	var partials []stepPartial
	if workers == 1 {
		partials = []stepPartial{stepRows(p, cur, next, mask, 0, p.NY)}
	} else {
		partials = make([]stepPartial, workers)
		chunk := (p.NY + workers - 1) / workers
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			y0 := w * chunk
			y1 := min(y0+chunk, p.NY)
			if y0 >= y1 {
				continue
			}
			wg.Add(1)
			go func(w, y0, y1 int) {
				defer wg.Done()
				partials[w] = stepRows(p, cur, next, mask, y0, y1)
			}(w, y0, y1)
		}
		wg.Wait()
	}

	totU := 0.0
	openCells := 0
	for _, part := range partials {
		if part.err != nil {
			return 0, part.err
		}
		totU += part.velocitySum
		openCells += part.openCells
	}
	return totU / float64(openCells), nil
}
