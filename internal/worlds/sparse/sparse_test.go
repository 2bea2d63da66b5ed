package sparse

import (
	"errors"
	"testing"

	"golife/internal/core"
)

func cells(pairs ...[2]int) []core.Coordinate {
	out := make([]core.Coordinate, len(pairs))
	for i, p := range pairs {
		out[i] = core.Coordinate{Row: p[0], Col: p[1]}
	}
	return out
}

func assertLive(t *testing.T, world *World, want []core.Coordinate) {
	t.Helper()
	if world.Len() != len(want) {
		t.Fatalf("world has %d live cells %v, want %d %v", world.Len(), world.Live(), len(want), want)
	}
	for _, c := range want {
		if !world.Has(c) {
			t.Fatalf("cell %v dead, want live; live set: %v", c, world.Live())
		}
	}
}

func TestBlockIsStill(t *testing.T) {
	block := cells([2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})
	world := New(block)
	for gen := 1; gen <= 10; gen++ {
		world.Step()
		assertLive(t, world, block)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	start := cells([2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	world := New(start)

	world.Step()
	assertLive(t, world, cells([2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3}))

	world.Step()
	assertLive(t, world, start)
}

func TestLTriominoDiesInTwo(t *testing.T) {
	world := New(cells([2]int{3, 1}, [2]int{1, 2}, [2]int{2, 1}))

	world.Step()
	assertLive(t, world, cells([2]int{2, 1}, [2]int{2, 2}))

	world.Step()
	assertLive(t, world, nil)
}

func TestDiagonalTriominoDiesInTwo(t *testing.T) {
	world := New(cells([2]int{3, 1}, [2]int{1, 3}, [2]int{2, 2}))

	world.Step()
	assertLive(t, world, cells([2]int{2, 2}))

	world.Step()
	assertLive(t, world, nil)
}

func TestCornerTriominoSettlesIntoBlock(t *testing.T) {
	world := New(cells([2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}))
	block := cells([2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})
	for gen := 1; gen <= 10; gen++ {
		world.Step()
		assertLive(t, world, block)
	}
}

func TestEvolutionAcrossOrigin(t *testing.T) {
	// The plane is unbounded: a blinker straddling the origin oscillates
	// through negative coordinates instead of being clipped.
	world := New(cells([2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}))

	world.Step()
	assertLive(t, world, cells([2]int{0, -1}, [2]int{0, 0}, [2]int{0, 1}))

	world.Step()
	assertLive(t, world, cells([2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}))
}

func TestDuplicatesCollapse(t *testing.T) {
	world := New(cells([2]int{1, 1}, [2]int{1, 1}, [2]int{2, 2}))
	if world.Len() != 2 {
		t.Fatalf("duplicates did not collapse: %d live cells", world.Len())
	}
}

func TestFromPairsRejectsBadShape(t *testing.T) {
	_, err := FromPairs([][]int{{1, 2}, {3, 4, 5}})
	if !errors.Is(err, core.ErrInvalidShape) {
		t.Fatalf("3-component pair: got %v, want ErrInvalidShape", err)
	}

	_, err = FromPairs([][]int{{1}})
	if !errors.Is(err, core.ErrInvalidShape) {
		t.Fatalf("1-component pair: got %v, want ErrInvalidShape", err)
	}
}

func TestBounds(t *testing.T) {
	world := New(nil)
	if _, _, ok := world.Bounds(); ok {
		t.Fatal("empty world reports bounds")
	}

	world = New(cells([2]int{-2, 5}, [2]int{3, -1}, [2]int{0, 0}))
	min, max, ok := world.Bounds()
	if !ok {
		t.Fatal("populated world reports no bounds")
	}
	if min != (core.Coordinate{Row: -2, Col: -1}) || max != (core.Coordinate{Row: 3, Col: 5}) {
		t.Fatalf("bounds = %v..%v, want (-2,-1)..(3,5)", min, max)
	}
}

func TestResetDeterministic(t *testing.T) {
	world := Random(32, 24, 0.3, 777)
	if world.Len() == 0 {
		t.Fatal("random world with p=0.3 came up empty")
	}
	first := world.Live()

	world.Step()
	world.Reset(777)
	assertLive(t, world, first)
}

func TestFactorySelection(t *testing.T) {
	factory, ok := core.Worlds()["sparse"]
	if !ok {
		t.Fatal("sparse factory not registered")
	}
	world, err := factory(map[string]string{"cells": "1,2 2,2 3,2"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if world.Name() != "sparse" {
		t.Fatalf("factory built %q, want sparse", world.Name())
	}
	if len(world.Live()) != 3 {
		t.Fatalf("pattern seeded %d live cells, want 3", len(world.Live()))
	}
}
