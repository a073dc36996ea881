// Package gridref is a test-only reference harness: it is the
// "test-fixture grid-to-obstacle converter ... random input generation ...
// a reference BFS-over-grid checker" spec.md §1 lists as external
// collaborators out of the core's scope.
//
// ObstaclesFromGrid/ObstaclesFromVolume turn an ASCII grid ('#' = solid,
// anything else = free) into a geom.ObstacleSet, following
// original_source/code/obstacles.cpp's bordering-plus-run-length-sweep
// construction. GridLinkDistance/VolumeLinkDistance answer the same query
// raylink.LinkDistance does, independently: they walk the ASCII grid
// directly as a (cell, incoming-direction) state space with a hand-written
// 0-1 BFS deque, 0-cost straight steps and 1-cost turns — a turn-counting
// generalization of gridgraph.ExpandIsland's 0-1 BFS. GridReachable/
// VolumeReachable run a plain BFS over the same free cells, ignoring turn
// cost, as a cheap connectivity cross-check. RandomGrid generates random
// obstacle layouts for property tests, seeded via an explicit *rand.Rand.
//
// Outside tests, only the cmd/raylinkdemo command imports this package;
// the core packages never do.
package gridref
