package paint

// FloodFill repaints the 4-connected region around start whose effective
// color matches start's effective color, using fill. Unpainted cells count
// as background. It returns the number of cells repainted.
//
// The traversal uses an explicit FIFO queue; grid size never bounds the
// call-stack depth.
func FloodFill(g *Grid, start Coord, fill, background RGB) int {
	return floodFill(g, start, fill, background, nil)
}

// floodFill is FloodFill with an optional callback for each repainted cell.
func floodFill(g *Grid, start Coord, fill, background RGB, painted func(Coord)) int {
	if !g.InBounds(start) {
		return 0
	}

	target := g.EffectiveColor(start, background)
	if target == fill {
		return 0
	}

	queue := []Coord{start}
	filled := 0

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		if !g.InBounds(c) || g.EffectiveColor(c, background) != target {
			continue
		}

		//nolint:errcheck // bounds checked above
		g.SetColor(c, fill)
		filled++
		if painted != nil {
			painted(c)
		}

		for _, d := range neighbors4 {
			queue = append(queue, Coord{Row: c.Row + d.Row, Col: c.Col + d.Col})
		}
	}

	return filled
}
