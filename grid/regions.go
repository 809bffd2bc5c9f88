package grid

// Regions finds all 4-connected regions of cells whose value satisfies keep.
// Cells rejected by keep act as walls. Regions are returned in the row-major
// order of their first cell; positions inside a region are in BFS order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(keep func(v uint8) bool) [][]Position {
	seen := make([]bool, len(g.cells))
	var regions [][]Position
	var nbuf [4]Position

	for i0, v := range g.cells {
		if seen[i0] || !keep(v) {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		var region []Position

		for qi := 0; qi < len(queue); qi++ {
			u := g.Position(queue[qi])
			region = append(region, u)
			for _, n := range g.Neighbors4(u, nbuf[:0]) {
				ni := g.Index(n)
				if seen[ni] || !keep(g.cells[ni]) {
					continue
				}
				seen[ni] = true
				queue = append(queue, ni)
			}
		}
		regions = append(regions, region)
	}
	return regions
}
