package mesh

import (
	"math"

	"github.com/lixenwraith/meshdrift/parameter"
	"github.com/lixenwraith/meshdrift/physics"
)

// ConnectionAlpha returns line opacity for a pair at distance d
// Linear falloff from ConnectionAlphaMax when touching to 0 at ConnectionDistance
func ConnectionAlpha(d float64) float64 {
	return (1 - d/parameter.ConnectionDistance) * parameter.ConnectionAlphaMax
}

// pairGrid buckets node indices into square cells of the connection distance
// Any pair closer than the cell size lies in the same or adjacent cells, so each
// cell only needs to be checked against itself and four forward neighbors
type pairGrid struct {
	cols, rows int
	cell       float64
	buckets    [][]int // index = y*cols + x
}

// forward neighbors: right, down-left, down, down-right
var forwardNeighbors = [4][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// maxGridSide caps cells per axis; nodes beyond it fold into the last cell, which stays correct
const maxGridSide = 1024

// reset sizes the grid to cover a width x height surface and empties every bucket
// Buckets keep their capacity across frames
func (g *pairGrid) reset(width, height int, cell float64) {
	g.cell = cell
	g.cols = min(maxGridSide, max(1, int(math.Ceil(float64(width)/cell))))
	g.rows = min(maxGridSide, max(1, int(math.Ceil(float64(height)/cell))))

	size := g.cols * g.rows
	if cap(g.buckets) < size {
		g.buckets = make([][]int, size)
	} else {
		g.buckets = g.buckets[:size]
	}
	for i := range g.buckets {
		g.buckets[i] = g.buckets[i][:0]
	}
}

// cellIndex clamps out-of-bounds coordinates into the edge cells
// Clamping keeps near pairs in adjacent cells
func (g *pairGrid) cellIndex(v float64, count int) int {
	f := math.Floor(v / g.cell)
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f >= float64(count) {
		return count - 1
	}
	return int(f)
}

// scan calls visit for every unordered pair i < j closer than maxDist
func (g *pairGrid) scan(nodes []Node, width, height int, maxDist float64, visit func(i, j int, d float64)) {
	g.reset(width, height, maxDist)

	for i := range nodes {
		cx := g.cellIndex(nodes[i].Pos.X, g.cols)
		cy := g.cellIndex(nodes[i].Pos.Y, g.rows)
		idx := cy*g.cols + cx
		g.buckets[idx] = append(g.buckets[idx], i)
	}

	check := func(a, b int) {
		d := physics.Distance(nodes[a].Pos, nodes[b].Pos)
		if d >= maxDist {
			return
		}
		if a > b {
			a, b = b, a
		}
		visit(a, b, d)
	}

	for cy := 0; cy < g.rows; cy++ {
		for cx := 0; cx < g.cols; cx++ {
			bucket := g.buckets[cy*g.cols+cx]
			for bi := 0; bi < len(bucket); bi++ {
				for bj := bi + 1; bj < len(bucket); bj++ {
					check(bucket[bi], bucket[bj])
				}
			}

			for _, off := range forwardNeighbors {
				nx, ny := cx+off[0], cy+off[1]
				if nx < 0 || nx >= g.cols || ny >= g.rows {
					continue
				}
				other := g.buckets[ny*g.cols+nx]
				for _, a := range bucket {
					for _, b := range other {
						check(a, b)
					}
				}
			}
		}
	}
}
