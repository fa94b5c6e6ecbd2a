// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wpool is a tiny fixed-size worker pool shared by topo and smooth
// for their embarrassingly-parallel per-node work (spec.md §5).
package wpool

import (
	"runtime"
	"sync"
)

// Run calls work(i) for i in [0,n) using workerCount goroutines.
// workerCount <= 1 runs sequentially in index order. Callers must ensure
// work(i) touches no shared mutable state other than index-disjoint output
// slots, so the result is independent of pool size (required by spec.md
// §5's bit-identical-to-single-threaded guarantee).
func Run(n, workerCount int, work func(i int)) {
	if workerCount <= 1 || n == 0 {
		for i := 0; i < n; i++ {
			work(i)
		}
		return
	}
	if workerCount > runtime.GOMAXPROCS(0) {
		workerCount = runtime.GOMAXPROCS(0)
	}
	var wg sync.WaitGroup
	ch := make(chan int)
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range ch {
				work(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		ch <- i
	}
	close(ch)
	wg.Wait()
}
