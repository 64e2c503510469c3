package ecdlp

import (
	"context"
	"math/big"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mattcalkohn/Elliptic-Curve-DLP/pkg/weierstrass"
)

// SolveParallel is Solve fanned out over the given number of goroutines.
//
// The scalar range [1, p] is partitioned by residue class modulo the worker
// count: worker i walks i+1, i+1+w, i+1+2w, … using a shared stride point
// w·base, so each step is still a single group addition. Workers race, but
// the result is deterministic: once any worker finds a match, the others
// only continue until their scalar passes it, and the smallest match wins.
//
// The search stops early when ctx is canceled, returning ctx's error.
func SolveParallel(ctx context.Context, c weierstrass.Curve, base, target weierstrass.Point, workers int) (*big.Int, error) {
	if workers < 1 {
		return nil, ErrNoWorkers
	}
	if err := validate(c, base, target); err != nil {
		return nil, err
	}

	stride := c.Multiply(big.NewInt(int64(workers)), base)
	var best bestMatch

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		start := int64(i + 1)
		g.Go(func() error {
			n := big.NewInt(start)
			if n.Cmp(c.P) > 0 {
				return nil
			}
			step := big.NewInt(int64(workers))
			walk := c.Multiply(n, base)
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if best.beats(n) {
					return nil
				}
				if walk.Equal(target) {
					best.offer(n)
					return nil
				}
				n.Add(n, step)
				if n.Cmp(c.P) > 0 {
					return nil
				}
				walk = c.Add(walk, stride)
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	n := best.result()
	if n == nil {
		return nil, ErrNotFound
	}
	return n, nil
}

// bestMatch tracks the smallest logarithm found so far across workers.
type bestMatch struct {
	mu sync.Mutex
	n  *big.Int
}

func (b *bestMatch) offer(n *big.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.n == nil || n.Cmp(b.n) < 0 {
		b.n = new(big.Int).Set(n)
	}
}

// beats reports whether a match smaller than n has already been found, in
// which case a worker at scalar n can stop.
func (b *bestMatch) beats(n *big.Int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.n != nil && b.n.Cmp(n) < 0
}

func (b *bestMatch) result() *big.Int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.n
}
