// Command wfcexamples runs the wfc solver over a handful of bundled
// catalogue scenarios and prints the resulting wave to stdout: the
// two-pattern chequerboard, the anchored three-pattern grid, and a
// forbid-then-solve run. No image I/O is involved; cells are rendered as
// their chosen pattern id.
//
// Usage:
//
//	go run ./cmd/wfcexamples
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/wfc/catalogue"
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/wfcrng"
	"github.com/katalvlaran/wfc/wfcrun"
)

func main() {
	logger := log.New(os.Stdout, "", 0)

	runChequerboard(logger)
	runAnchor(logger)
	runForbidThenSolve(logger)
}

func runChequerboard(logger *log.Logger) {
	logger.Println("== chequerboard (8x8 torus) ==")
	cat, err := catalogue.New([]catalogue.Spec{
		{Weight: 1, Compat: [4][]catalogue.PatternID{{1}, {1}, {1}, {1}}},
		{Weight: 1, Compat: [4][]catalogue.PatternID{{0}, {0}, {0}, {0}}},
	})
	if err != nil {
		logger.Fatalf("catalogue.New: %v", err)
	}
	size := direction.Size{Width: 8, Height: 8, Wrap: direction.Torus}
	rng := wfcrng.New(1)
	run := wfcrun.New(cat, size, rng, wfcrun.WithLogger(logger))
	result := run.StepAll(rng, 0)
	logger.Printf("result: %v", result)
	printGrid(logger, run, size)
}

func runAnchor(logger *log.Logger) {
	logger.Println("== anchored A/B/C (10x10 torus) ==")
	const a, b, c catalogue.PatternID = 0, 1, 2
	cat, err := catalogue.New([]catalogue.Spec{
		{Weight: 1, Compat: [4][]catalogue.PatternID{{b}, {b}, {b}, {b}}},
		{Weight: 1, Compat: [4][]catalogue.PatternID{{a, c}, {a, c}, {a, c}, {a, c}}},
		{Weight: 1, Compat: [4][]catalogue.PatternID{{b}, {b}, {b}, {b}}},
	})
	if err != nil {
		logger.Fatalf("catalogue.New: %v", err)
	}
	size := direction.Size{Width: 10, Height: 10, Wrap: direction.Torus}
	rng := wfcrng.New(2)
	run := wfcrun.New(cat, size, rng, wfcrun.WithLogger(logger))
	if err := run.Force(9, 9, a); err != nil {
		logger.Fatalf("Force: %v", err)
	}
	result := run.StepAll(rng, 0)
	logger.Printf("result: %v", result)
	printGrid(logger, run, size)
}

func runForbidThenSolve(logger *log.Logger) {
	logger.Println("== forbid-then-solve (4x4 torus) ==")
	cat, err := catalogue.New([]catalogue.Spec{
		{Weight: 1, Compat: [4][]catalogue.PatternID{{1}, {1}, {1}, {1}}},
		{Weight: 1, Compat: [4][]catalogue.PatternID{{0}, {0}, {0}, {0}}},
	})
	if err != nil {
		logger.Fatalf("catalogue.New: %v", err)
	}
	size := direction.Size{Width: 4, Height: 4, Wrap: direction.Torus}
	rng := wfcrng.New(3)
	run := wfcrun.New(cat, size, rng, wfcrun.WithLogger(logger))
	if err := run.Forbid(0, 0, []catalogue.PatternID{0}); err != nil {
		logger.Fatalf("Forbid: %v", err)
	}
	result := run.StepAll(rng, 0)
	logger.Printf("result: %v", result)
	printGrid(logger, run, size)
}

func printGrid(logger *log.Logger, run *wfcrun.Run, size direction.Size) {
	snap := run.Snapshot()
	for y := 0; y < size.Height; y++ {
		row := ""
		for x := 0; x < size.Width; x++ {
			cv := snap[size.Index(x, y)]
			if !cv.HasChosen {
				row += "? "
				continue
			}
			row += fmt.Sprintf("%d ", cv.Chosen)
		}
		logger.Println(row)
	}
	logger.Println()
}
