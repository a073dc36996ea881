// Command raylinkdemo walks through raylink's public API against a small
// ASCII grid, printing the minimum-link distance between two points and
// the round-by-round illumination progress.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	raylink "github.com/lucentgraph/raylink"
	"github.com/lucentgraph/raylink/geom"
	"github.com/lucentgraph/raylink/internal/gridref"
)

func main() {
	rows := []string{
		"...........",
		".#########.",
		".#.......#.",
		".#.#####.#.",
		".#.#...#.#.",
		".#.#.#.#.#.",
		".#.#.#.#.#.",
		".#.#.###.#.",
		".#.#.....#.",
		".#.#######.",
		".#.........",
		"...........",
	}

	g, err := gridref.ParseGrid(rows)
	if err != nil {
		log.Fatalf("parse grid: %v", err)
	}
	obstacles := gridref.ObstaclesFromGrid(g)

	start := geom.NewPoint(1, 1)
	end := geom.NewPoint(5, 5)

	logger := log.New(os.Stdout, "round: ", 0)
	n, err := raylink.LinkDistance(context.Background(), 2, obstacles, start, end,
		raylink.WithLogger(logger),
		raylink.WithOnRound(func(round int) { fmt.Printf("-- starting round %d --\n", round) }),
	)
	if err != nil {
		log.Fatalf("link distance: %v", err)
	}
	fmt.Printf("link distance from %v to %v: %d\n", start, end, n)
}
