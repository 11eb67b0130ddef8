package matching

import (
	"context"

	matrix "github.com/skelterjohn/go.matrix"
	"golang.org/x/sync/errgroup"

	"github.com/BurntSushi/torsmatch/mcq"
	"github.com/BurntSushi/torsmatch/selection"
	"github.com/BurntSushi/torsmatch/torsion"
)

// distances computes the |left|x|right| matrix of per-residue MCQ values.
//
// Rows are computed concurrently by at most 'workers' goroutines. Each cell
// is written by exactly one goroutine, so no locking is needed. The context
// is checked before every row; if it is canceled, no matrix is returned.
func distances(ctx context.Context, workers int,
	left, right *selection.Selection,
	types []torsion.AngleType) (*matrix.DenseMatrix, error) {

	rows, cols := left.Len(), right.Len()
	D := matrix.Zeros(rows, cols)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < rows; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a := left.Angles(i)
			for j := 0; j < cols; j++ {
				D.Set(i, j, mcq.Residues(a, right.Angles(j), types))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The loop above may stop early without any goroutine seeing the
	// cancellation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return D, nil
}
