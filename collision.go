// Package overlap determines whether two convex 2D shapes intersect and, if
// they do, computes the minimum translation vector separating them.
//
// The narrow-phase pipeline is GJK (intersection test) followed by EPA
// (penetration vector), both operating over the geom.Shape support-function
// contract. Single pairs go through TestIntersect and ComputePenetration;
// batches go through Detect (streaming) or DetectAll (slice based), which
// fan the same queries out over worker goroutines. Queries share no mutable
// state, so any level of concurrency is safe.
package overlap

import (
	"sync"

	"github.com/avasse/overlap/epa"
	"github.com/avasse/overlap/geom"
	"github.com/avasse/overlap/gjk"
	"github.com/go-gl/mathgl/mgl64"
)

const DefaultWorkers = 1

// Pair is a pair of shapes to test against each other.
type Pair struct {
	A geom.Shape
	B geom.Shape
}

// Contact is the result of a positive collision query.
// Penetration is the minimum translation vector: translating B by it (or A
// by its negation) separates the shapes.
type Contact struct {
	A           geom.Shape
	B           geom.Shape
	Penetration mgl64.Vec2
}

// collisionPair carries a detected intersection and its terminal simplex
// from the GJK stage to the EPA stage.
type collisionPair struct {
	pair    Pair
	simplex *gjk.Simplex
}

// TestIntersect reports whether two convex shapes overlap.
func TestIntersect(a, b geom.Shape) bool {
	simplex := gjk.SimplexPool.Get().(*gjk.Simplex)
	defer gjk.SimplexPool.Put(simplex)
	simplex.Reset()

	return gjk.GJK(a, b, simplex)
}

// ComputePenetration computes the minimum translation vector for two
// overlapping convex shapes. The second return value is false when the
// shapes do not intersect; that is an absent result, not an error.
func ComputePenetration(a, b geom.Shape) (mgl64.Vec2, bool) {
	simplex := gjk.SimplexPool.Get().(*gjk.Simplex)
	defer gjk.SimplexPool.Put(simplex)
	simplex.Reset()

	if !gjk.GJK(a, b, simplex) {
		return mgl64.Vec2{}, false
	}

	penetration, err := epa.EPA(a, b, simplex)
	if err != nil {
		// Unreachable with a successful GJK run: EPA only rejects
		// malformed simplexes
		return mgl64.Vec2{}, false
	}

	return penetration, true
}

// Detect runs the narrow phase over a stream of candidate pairs and emits a
// Contact for every intersecting pair. The GJK stage feeds the EPA stage
// through a channel; each stage runs workersCount goroutines.
//
// The output channel is closed once the input channel is drained.
func Detect(pairs <-chan Pair, workersCount int) <-chan Contact {
	workersCount = max(DefaultWorkers, workersCount)

	collisions := gjkStage(pairs, workersCount)

	return epaStage(collisions, workersCount)
}

func gjkStage(pairs <-chan Pair, workersCount int) <-chan collisionPair {
	collisionChan := make(chan collisionPair, workersCount)

	go func() {
		var wg sync.WaitGroup
		defer close(collisionChan)

		for i := 0; i < workersCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				for p := range pairs {
					simplex := gjk.SimplexPool.Get().(*gjk.Simplex)
					simplex.Reset()

					if gjk.GJK(p.A, p.B, simplex) {
						collisionChan <- collisionPair{pair: p, simplex: simplex}
					} else {
						gjk.SimplexPool.Put(simplex)
					}
				}
			}()
		}
		wg.Wait()
	}()

	return collisionChan
}

func epaStage(collisions <-chan collisionPair, workersCount int) <-chan Contact {
	ch := make(chan Contact, workersCount)

	go func() {
		var wg sync.WaitGroup
		defer close(ch)

		for i := 0; i < workersCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				for c := range collisions {
					penetration, err := epa.EPA(c.pair.A, c.pair.B, c.simplex)
					gjk.SimplexPool.Put(c.simplex)
					if err != nil {
						continue
					}

					ch <- Contact{
						A:           c.pair.A,
						B:           c.pair.B,
						Penetration: penetration,
					}
				}
			}()
		}
		wg.Wait()
	}()

	return ch
}
