package renderer

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/mzhang233/go-ray-tracing/pkg/core"
	"github.com/mzhang233/go-ray-tracing/pkg/geometry"
)

// Every pixel is independent, so the frame parallelizes by partitioning rows
// across workers. Each row owns a deterministic random stream and writes a
// disjoint slice of the buffer, which keeps renders race-free and reproducible
// regardless of goroutine scheduling.

// rowSeedOffset keeps row 0 away from seed 0
const rowSeedOffset = 42

// renderRows renders all rows of the current buffer, fanning out across
// workers. Returns the number of workers used.
func (rt *Raytracer) renderRows(camera *Camera, world *geometry.World) int {
	numWorkers := rt.settings.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > rt.height {
		numWorkers = rt.height
	}

	if numWorkers == 1 {
		// Serial baseline: one shared stream for the whole frame
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(rowSeedOffset)))
		for j := 0; j < rt.height; j++ {
			rt.renderRow(camera, world, j, sampler)
		}
		return 1
	}

	rows := make(chan int, rt.height)
	for j := 0; j < rt.height; j++ {
		rows <- j
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				sampler := core.NewRandomSampler(rand.New(rand.NewSource(int64(j + rowSeedOffset))))
				rt.renderRow(camera, world, j, sampler)
			}
		}()
	}
	wg.Wait()

	return numWorkers
}
