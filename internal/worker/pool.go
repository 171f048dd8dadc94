// Package worker provides a parallel tile rendering worker pool.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/MeKo-Tech/noiseplane/internal/tile"
)

// Generator renders and stores one tile. pipeline.Generator satisfies it.
type Generator interface {
	Generate(ctx context.Context, coords tile.Coords, force bool) (string, error)
}

// Task represents a single tile rendering task.
type Task struct {
	Coords tile.Coords
	Force  bool
}

// Result represents the outcome of a tile rendering task.
type Result struct {
	Task    Task
	Path    string
	Err     error
	Elapsed time.Duration
}

// ProgressFunc is called after each task completes.
type ProgressFunc func(completed, total, failed int)

// Config configures the worker pool.
type Config struct {
	Workers    int
	Generator  Generator
	OnProgress ProgressFunc
}

// Pool manages parallel tile rendering.
type Pool struct {
	workers    int
	generator  Generator
	onProgress ProgressFunc
}

// New creates a new worker pool.
func New(cfg Config) *Pool {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Pool{
		workers:    workers,
		generator:  cfg.Generator,
		onProgress: cfg.OnProgress,
	}
}

// Tasks builds one task per tile.
func Tasks(tiles []tile.Coords, force bool) []Task {
	tasks := make([]Task, len(tiles))
	for i, c := range tiles {
		tasks[i] = Task{Coords: c, Force: force}
	}
	return tasks
}

// Run executes all tasks and returns one result per task, in completion order.
// Tasks not started before ctx is cancelled come back with ctx.Err().
func (p *Pool) Run(ctx context.Context, tasks []Task) []Result {
	if len(tasks) == 0 {
		return nil
	}

	taskCh := make(chan Task)
	resultCh := make(chan Result, p.workers)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, taskCh, resultCh)
		}()
	}

	// Feed tasks; whatever is left after cancellation is reported without running.
	go func() {
		defer close(taskCh)
		for i, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				for _, skipped := range tasks[i:] {
					resultCh <- Result{Task: skipped, Err: ctx.Err()}
				}
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		// the feeder finishes its sends before closing taskCh, which the workers wait on
		close(resultCh)
	}()

	results := make([]Result, 0, len(tasks))
	failed := 0
	for result := range resultCh {
		results = append(results, result)
		if result.Err != nil {
			failed++
		}
		if p.onProgress != nil {
			p.onProgress(len(results), len(tasks), failed)
		}
	}

	return results
}

// worker processes tasks from the task channel and sends results to the result channel.
func (p *Pool) worker(ctx context.Context, tasks <-chan Task, results chan<- Result) {
	for task := range tasks {
		if err := ctx.Err(); err != nil {
			results <- Result{Task: task, Err: err}
			continue
		}

		start := time.Now()
		path, err := p.generator.Generate(ctx, task.Coords, task.Force)
		results <- Result{
			Task:    task,
			Path:    path,
			Err:     err,
			Elapsed: time.Since(start),
		}
	}
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
