// Command separateShapes demonstrates the narrow-phase pipeline: it builds a
// small scene of overlapping convex shapes, detects every intersection in
// parallel, and pushes the shapes apart along their penetration vectors until
// the scene is overlap free.
package main

import (
	"os"

	"github.com/avasse/overlap"
	"github.com/avasse/overlap/geom"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	workers  = 4
	maxSteps = 16
)

func mustCircle(logger *log.Logger, center mgl64.Vec2, radius float64) geom.Shape {
	c, err := geom.NewCircle(center, radius)
	if err != nil {
		logger.Fatal("invalid circle", "err", err)
	}

	return c
}

func mustPolygon(logger *log.Logger, vertices []mgl64.Vec2) geom.Shape {
	p, err := geom.NewPolygon(vertices)
	if err != nil {
		logger.Fatal("invalid polygon", "err", err)
	}

	return p
}

// setupScene builds a cluster of mutually overlapping shapes.
func setupScene(logger *log.Logger) []geom.Shape {
	return []geom.Shape{
		mustPolygon(logger, []mgl64.Vec2{
			{0, 0},
			{5, 0},
			{5, 5},
			{0, 5},
		}),
		mustPolygon(logger, []mgl64.Vec2{
			{3, 4},
			{8, 4},
			{8, 9},
			{3, 9},
		}),
		mustCircle(logger, mgl64.Vec2{6, 6}, 1.5),
		mustCircle(logger, mgl64.Vec2{2, 2}, 1.5),
	}
}

// allPairs enumerates every unordered shape pair in the scene, returning the
// pairs and the scene index of each pair's B shape.
func allPairs(shapes []geom.Shape) ([]overlap.Pair, []int) {
	var pairs []overlap.Pair
	var bIndex []int
	for i := 0; i < len(shapes); i++ {
		for j := i + 1; j < len(shapes); j++ {
			pairs = append(pairs, overlap.Pair{A: shapes[i], B: shapes[j]})
			bIndex = append(bIndex, j)
		}
	}

	return pairs, bIndex
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "separateShapes",
	})

	shapes := setupScene(logger)
	logger.Info("scene ready", "shapes", len(shapes))

	for step := 1; step <= maxSteps; step++ {
		pairs, bIndex := allPairs(shapes)
		results := overlap.DetectAll(pairs, workers)

		resolved := 0
		for i, contact := range results {
			if contact == nil {
				continue
			}

			logger.Info("overlap",
				"step", step,
				"pair", i,
				"penetration", contact.Penetration,
				"depth", contact.Penetration.Len(),
			)

			// The penetration vector points from A toward B: move B out of
			// the way. Shapes are immutable, so replace B in the scene.
			// Contacts resolved later in the step may use stale geometry;
			// the next pass recomputes them.
			shapes[bIndex[i]] = shapes[bIndex[i]].Translate(contact.Penetration)
			resolved++
		}

		if resolved == 0 {
			logger.Info("scene is overlap free", "steps", step-1)
			return
		}

		logger.Info("step done", "step", step, "resolved", resolved)
	}

	logger.Warn("still overlapping after iteration budget", "steps", maxSteps)
}
