package main

import (
	"context"
	"sync"

	"github.com/BurntSushi/torsmatch/matching"
	"github.com/BurntSushi/torsmatch/selection"
)

type pool struct {
	wg      *sync.WaitGroup
	jobs    chan job
	results chan result
}

type job struct {
	index int
	right *selection.Selection
}

type result struct {
	index int
	match *matching.SelectionMatch
	err   error
}

func newMatchWorkers(ctx context.Context, m *matching.Matcher,
	left *selection.Selection, numWorkers int) pool {

	jobs := make(chan job, numWorkers*2)
	results := make(chan result, numWorkers*2)
	wg := &sync.WaitGroup{}
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				match, err := m.Match(ctx, left, j.right)
				results <- result{j.index, match, err}
			}
		}()
	}
	return pool{wg, jobs, results}
}

func (p pool) done() {
	close(p.jobs)
	p.wg.Wait() // wait for workers to finish sending results
	close(p.results)
}

func (p pool) enqueue(index int, right *selection.Selection) {
	p.jobs <- job{index, right}
}
