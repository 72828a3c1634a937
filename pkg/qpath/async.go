package qpath

import "io/fs"

// Callback receives the outcome of an asynchronous operation. On failure
// the result is the zero value.
type Callback[T any] func(result T, err error)

// runAsync runs fn on its own goroutine and reports through done exactly once.
// A nil done discards the outcome.
func runAsync[T any](fn func() (T, error), done Callback[T]) {
	go func() {
		result, err := fn()
		if done != nil {
			done(result, err)
		}
	}()
}

// ExistsAsync is the asynchronous form of Exists.
func (p *PathEntry) ExistsAsync(done Callback[bool]) {
	runAsync(p.Exists, done)
}

// StatAsync is the asynchronous form of Stat.
func (p *PathEntry) StatAsync(done Callback[*EntryMetadata]) {
	runAsync(p.Stat, done)
}

// ReadStatsAsync is the asynchronous form of ReadStats.
func (p *PathEntry) ReadStatsAsync(done Callback[[]EntryMetadata]) {
	runAsync(p.ReadStats, done)
}

// MkdirpAsync is the asynchronous form of Mkdirp.
func (p *PathEntry) MkdirpAsync(done Callback[*PathEntry]) {
	runAsync(p.Mkdirp, done)
}

// MkdirpModeAsync is the asynchronous form of MkdirpMode.
func (p *PathEntry) MkdirpModeAsync(mode fs.FileMode, done Callback[*PathEntry]) {
	runAsync(func() (*PathEntry, error) { return p.MkdirpMode(mode) }, done)
}
