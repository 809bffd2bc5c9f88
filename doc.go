// Package gridpath finds least-cost paths across rectangular grids of small
// integer cells: risk maps of digits, elevation maps of letters, and the
// tiled expansions of both.
//
// The module is organized as one package per concern:
//
//	grid/      immutable flat Grid, Position, text parsers, regions
//	rule/      neighbor rules (Free, Climb) and step costs (Unit, Enter), reversible
//	tile/      tiled expansion of a base grid with wrap-around values
//	dijkstra/  single-source relaxation engine returning a distance Table
//	query/     point-to-point, point-to-any and per-seed parallel queries
//	config/    HCL query files
//	batch/     concurrent execution of a query file with logrus logging
//	cmd/gridpath  command-line front end
//
// Quick start:
//
//	g, _ := grid.Parse(input, grid.Cost)
//	g, _ = tile.Expand(g, 5, 5)
//	cost, err := query.ShortestCost(g, rule.Free,
//		grid.Position{}, grid.Position{X: g.Width() - 1, Y: g.Height() - 1},
//		query.WithCost(rule.Enter))
//
// All algorithm packages are pure: they share only read-only grids, keep their
// state per run, and report failures through sentinel errors matched with
// errors.Is.
package gridpath
