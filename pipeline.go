package overlap

import "sync"

// task splits data into contiguous chunks and runs fn over them on
// workersCount goroutines. fn receives the element index so workers can
// write results to disjoint slots without synchronization.
func task[T any](workersCount int, data []T, fn func(i int, data T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}

// DetectAll runs the narrow phase over a slice of candidate pairs and
// returns index-aligned results: results[i] is the contact for pairs[i], or
// nil when that pair does not intersect.
func DetectAll(pairs []Pair, workersCount int) []*Contact {
	workersCount = max(DefaultWorkers, workersCount)
	results := make([]*Contact, len(pairs))

	task(workersCount, pairs, func(i int, p Pair) {
		if penetration, ok := ComputePenetration(p.A, p.B); ok {
			results[i] = &Contact{A: p.A, B: p.B, Penetration: penetration}
		}
	})

	return results
}
