package facet

import (
	"math"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// cellKey addresses a cell of the uniform grid in 3D space.
type cellKey struct {
	X, Y, Z int
}

type gridCell struct {
	entries []int
}

type gridEntry struct {
	id     int
	bounds Box
}

// Grid is a uniform spatial hash over face bounding boxes. Mesh search
// code inserts faces by ID and queries for candidates near a region,
// then runs exact geometry tests on the survivors. Cells alias under the
// hash, so queries over-approximate but never miss.
//
// Mutation is not safe for concurrent use; a fully built grid may be
// queried from many goroutines at once.
type Grid struct {
	cellSize float64
	cells    []gridCell
	entries  []gridEntry
	cellMask int
}

// NewGrid returns a grid of hashed cells of the given world-unit size.
// numCells is rounded up to a power of two. Cell size should be on the
// order of a typical face extent; much smaller cells spread single faces
// over many cells, much larger ones pile unrelated faces together.
func NewGrid(cellSize float64, numCells int) *Grid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]gridCell, numCells)
	for i := range cells {
		cells[i].entries = make([]int, 0, 8)
	}

	return &Grid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert registers the face under id, occupying every cell its bounding
// box touches.
func (g *Grid) Insert(id int, f Face, points []mgl64.Vec3) {
	bounds := f.Bounds(points)
	entry := len(g.entries)
	g.entries = append(g.entries, gridEntry{id: id, bounds: bounds})

	minCell := g.worldToCell(bounds.Min)
	maxCell := g.worldToCell(bounds.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				idx := g.hashCell(cellKey{x, y, z})
				g.cells[idx].entries = append(g.cells[idx].entries, entry)
			}
		}
	}
}

// Clear removes all faces but keeps the cell storage for reuse.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].entries = g.cells[i].entries[:0]
	}
	g.entries = g.entries[:0]
}

// FacesNear returns the IDs of faces whose bounding boxes overlap the
// query box, in insertion order. The result is a candidate set: faces
// overlap the box by bounds only, not necessarily by exact geometry.
func (g *Grid) FacesNear(query Box) []int {
	seen := make([]bool, len(g.entries))
	var ids []int

	minCell := g.worldToCell(query.Min)
	maxCell := g.worldToCell(query.Max)

	var hits []int
	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				idx := g.hashCell(cellKey{x, y, z})

				for _, entry := range g.cells[idx].entries {
					if seen[entry] {
						continue
					}
					seen[entry] = true

					if g.entries[entry].bounds.Overlaps(query) {
						hits = append(hits, entry)
					}
				}
			}
		}
	}

	sort.Ints(hits)
	for _, entry := range hits {
		ids = append(ids, g.entries[entry].id)
	}
	return ids
}

// FacesAt returns the candidate faces whose bounding boxes contain the
// point.
func (g *Grid) FacesAt(p mgl64.Vec3) []int {
	return g.FacesNear(Box{Min: p, Max: p})
}

// Pairs returns every pair of registered faces whose bounding boxes
// overlap, each pair once, in deterministic order. Mesh checks use this
// to hunt for duplicate or intersecting faces without the quadratic scan.
func (g *Grid) Pairs() [][2]int {
	pairs := make([][2]int, 0, len(g.entries)/2)
	seen := make([]bool, len(g.entries))

	for entry := range g.entries {
		g.collectPairs(entry, seen, func(a, b int) {
			pairs = append(pairs, [2]int{a, b})
		})
	}
	return pairs
}

// PairsParallel is Pairs fanned out over numWorkers goroutines, streaming
// results over a channel. Pair order is not deterministic; the pair set
// matches Pairs. A worker count below one runs a single worker.
func (g *Grid) PairsParallel(numWorkers int) <-chan [2]int {
	if numWorkers < 1 {
		numWorkers = 1
	}

	var wg sync.WaitGroup
	pairsChan := make(chan [2]int, numWorkers*10)

	perWorker := len(g.entries) / numWorkers
	if perWorker == 0 {
		perWorker = 1
	}

	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		if start >= len(g.entries) {
			break
		}
		end := start + perWorker
		if w == numWorkers-1 {
			end = len(g.entries)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			seen := make([]bool, len(g.entries))
			for entry := start; entry < end; entry++ {
				g.collectPairs(entry, seen, func(a, b int) {
					pairsChan <- [2]int{a, b}
				})
			}
		}(start, end)
	}

	go func() {
		wg.Wait()
		close(pairsChan)
	}()

	return pairsChan
}

// collectPairs emits the overlapping partners of entry with a larger
// entry index, each exactly once, in ascending order. seen is scratch
// storage of entry count; it is reset on the way out.
func (g *Grid) collectPairs(entry int, seen []bool, emit func(a, b int)) {
	bounds := g.entries[entry].bounds
	minCell := g.worldToCell(bounds.Min)
	maxCell := g.worldToCell(bounds.Max)

	var hits, touched []int
	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				idx := g.hashCell(cellKey{x, y, z})

				for _, other := range g.cells[idx].entries {
					if other <= entry || seen[other] {
						continue
					}
					seen[other] = true
					touched = append(touched, other)

					if bounds.Overlaps(g.entries[other].bounds) {
						hits = append(hits, other)
					}
				}
			}
		}
	}

	sort.Ints(hits)
	for _, other := range hits {
		emit(g.entries[entry].id, g.entries[other].id)
	}

	// Every marked flag must come back down, hit or miss, or the next
	// entry sharing this scratch would skip cell-mates it never tested.
	for _, other := range touched {
		seen[other] = false
	}
}

func (g *Grid) worldToCell(pos mgl64.Vec3) cellKey {
	return cellKey{
		X: int(math.Floor(pos.X() / g.cellSize)),
		Y: int(math.Floor(pos.Y() / g.cellSize)),
		Z: int(math.Floor(pos.Z() / g.cellSize)),
	}
}

func (g *Grid) hashCell(key cellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.cellMask
}
