// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"selffold-core/fasta"
	"selffold/internal/engine"
)

// Config controls the folding pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Source is one origin of records: a FASTA path ("-" for stdin) or, when
// Records is non-nil, records supplied directly (inline sequences).
type Source struct {
	Path    string
	Records []fasta.Record
}

type job struct {
	idx  int
	rec  fasta.Record
	file string
}

type result struct {
	idx int
	p   engine.Product
	err error
}

// ForEachProduct folds every record of every source and calls visit with the
// products in input order, whatever the thread count. The first error
// (feeding, folding, or from visit) stops the run and is returned; a
// cancelled ctx returns ctx.Err().
func ForEachProduct(
	ctx context.Context,
	cfg Config,
	sources []Source,
	eng Folder,
	visit func(engine.Product) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					p, err := eng.FoldRecord(j.rec.ID, j.rec.Desc, j.rec.Seq)
					p.Index = j.idx
					p.SourceFile = j.file
					select {
					case results <- result{idx: j.idx, p: p, err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: releases products in index order.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]result)
		next := 0
		for r := range results {
			if cerr != nil {
				continue
			}
			pending[r.idx] = r
			for {
				cur, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				err := cur.err
				if err == nil {
					err = visit(cur.p)
				}
				if err != nil {
					cerr = err
					cancel()
					break
				}
			}
		}
	}()

	// Feed work
	var ferr error
	idx := 0
	send := func(rec fasta.Record, file string) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- job{idx: idx, rec: rec, file: file}:
			idx++
			return nil
		}
	}
feed:
	for _, src := range sources {
		if src.Records != nil {
			for _, rec := range src.Records {
				if err := send(rec, src.Path); err != nil {
					break feed
				}
			}
			continue
		}
		err := fasta.ScanPathCtx(ctx, src.Path, func(rec fasta.Record) error {
			return send(rec, src.Path)
		})
		if err != nil {
			if ctx.Err() == nil {
				ferr = err
			}
			break
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if parent.Err() != nil {
		return parent.Err()
	}
	if cerr != nil {
		return cerr
	}
	return ferr
}
