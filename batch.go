package rawpoly

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/polyterms/rawpoly/logger"
)

// ExpandBatch evaluates the expansion at every point of xs, spreading the
// work over the available CPUs. Output order matches input order; entry k is
// identical to Expand(xs[k], terms).
//
// All points are shape-checked before any work starts, so a mismatch
// anywhere in the batch fails with ErrShapeMismatch and no partial output.
func ExpandBatch(xs [][]float64, terms Terms) ([][]float64, error) {
	v := terms.NbVariables()
	for k := range xs {
		if len(xs[k]) != v {
			return nil, fmt.Errorf("%w: point %d has %d values for %d variables", ErrShapeMismatch, k, len(xs[k]), v)
		}
	}

	start := time.Now()

	res := make([][]float64, len(xs))

	nbTasks := runtime.NumCPU()
	if nbTasks > len(xs) {
		nbTasks = len(xs)
	}
	if nbTasks <= 1 {
		for k := range xs {
			res[k] = make([]float64, terms.NbMonomials()+1)
			expand(res[k], xs[k], terms)
		}
	} else {
		chunk := (len(xs) + nbTasks - 1) / nbTasks
		var g errgroup.Group
		for s := 0; s < len(xs); s += chunk {
			e := s + chunk
			if e > len(xs) {
				e = len(xs)
			}
			g.Go(func() error {
				for k := s; k < e; k++ {
					res[k] = make([]float64, terms.NbMonomials()+1)
					expand(res[k], xs[k], terms)
				}
				return nil
			})
		}
		// workers only write disjoint slots and never fail; Wait is for
		// synchronization
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	log := logger.Logger()
	log.Debug().
		Int("nbPoints", len(xs)).
		Int("nbMonomials", terms.NbMonomials()).
		Dur("took", time.Since(start)).
		Msg("batch expansion done")

	return res, nil
}
