package project

import (
	"sort"

	"github.com/plexus-metrics/plexus/pkg/metrics"
)

// Matrix is a flat, row-major N×N buffer of 0/1 cells: a single
// length-N² slice with index arithmetic, avoiding nested allocations.
// Cells is exported (rather than kept private with accessor-only access)
// specifically so encoding/json, gopkg.in/yaml.v3, and encoding/gob can
// all round-trip it — an unexported field is silently dropped by every
// one of those encoders, which would turn every cached or printed
// AdjacencyMatrix/VisibilityMatrix into an empty shell.
type Matrix struct {
	N     int   `json:"n" yaml:"n"`
	Cells []int `json:"cells" yaml:"cells"`
}

// NewMatrix returns an N×N matrix with all cells zeroed.
func NewMatrix(n int) *Matrix {
	return &Matrix{N: n, Cells: make([]int, n*n)}
}

// Get returns the value at (row, col).
func (m *Matrix) Get(row, col int) int {
	return m.Cells[row*m.N+col]
}

// Set assigns the value at (row, col).
func (m *Matrix) Set(row, col, value int) {
	m.Cells[row*m.N+col] = value
}

// Rows materialises the matrix as [][]int, for callers that want a
// conventional nested representation (e.g. for JSON encoding).
func (m *Matrix) Rows() [][]int {
	rows := make([][]int, m.N)

	for r := 0; r < m.N; r++ {
		row := make([]int, m.N)
		copy(row, m.Cells[r*m.N:(r+1)*m.N])
		rows[r] = row
	}

	return rows
}

// unreachable is the Floyd-Warshall sentinel for "no path found", chosen
// large enough that two sentinel values can be summed without overflow.
const unreachable = int(^uint(0) >> 2)

// buildAdjacency sets A[x][y] = 1 whenever x != y and module x has a
// dependency that resolves to module y's path.
func buildAdjacency(paths []string, dependencies [][]metrics.Dependency) *Matrix {
	n := len(paths)
	adjacency := NewMatrix(n)

	for x := 0; x < n; x++ {
		for _, dep := range dependencies[x] {
			for y := 0; y < n; y++ {
				if x == y {
					continue
				}

				if resolves(paths[x], dep, paths[y]) {
					adjacency.Set(x, y, 1)

					break
				}
			}
		}
	}

	return adjacency
}

// firstOrderDensity returns the percentage of adjacency cells set to 1.
func firstOrderDensity(adjacency *Matrix) float64 {
	if adjacency.N == 0 {
		return 0
	}

	ones := 0

	for _, v := range adjacency.Cells {
		if v == 1 {
			ones++
		}
	}

	return (float64(ones) / float64(adjacency.N*adjacency.N)) * 100
}

// buildVisibility runs Floyd-Warshall over the adjacency matrix to derive
// the transitive-closure visibility matrix, plus changeCost: the
// percentage of distance-matrix cells that are reachable (finite),
// counting the diagonal, whose distance is always 1.
func buildVisibility(adjacency *Matrix) (visibility *Matrix, changeCost float64) {
	n := adjacency.N

	dist := make([]int, n*n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				dist[i*n+j] = 1
			case adjacency.Get(i, j) == 1:
				dist[i*n+j] = 1
			default:
				dist[i*n+j] = unreachable
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := dist[i*n+k]
			if ik >= unreachable {
				continue
			}

			for j := 0; j < n; j++ {
				kj := dist[k*n+j]
				if kj >= unreachable {
					continue
				}

				if sum := ik + kj; sum < dist[i*n+j] {
					dist[i*n+j] = sum
				}
			}
		}
	}

	visibility = NewMatrix(n)
	reachable := 0

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := dist[i*n+j]
			if d < unreachable {
				reachable++
			}

			if i != j && d < unreachable {
				visibility.Set(i, j, 1)
			}
		}
	}

	if n == 0 {
		return visibility, 0
	}

	return visibility, (float64(reachable) / float64(n*n)) * 100
}

// coreSize computes the percentage of modules whose fan-in and fan-out in
// the visibility matrix both meet or exceed their respective medians. It
// returns 0 when density (the first-order density of the underlying
// adjacency matrix) is zero.
func coreSize(visibility *Matrix, density float64) float64 {
	if density == 0 {
		return 0
	}

	n := visibility.N
	if n == 0 {
		return 0
	}

	fanIn := make([]int, n)
	fanOut := make([]int, n)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			fanIn[r] += visibility.Get(r, c)
			fanOut[c] += visibility.Get(r, c)
		}
	}

	medIn := medianInt(fanIn)
	medOut := medianInt(fanOut)

	count := 0

	for i := 0; i < n; i++ {
		if float64(fanIn[i]) >= medIn && float64(fanOut[i]) >= medOut {
			count++
		}
	}

	return (float64(count) / float64(n)) * 100
}

// medianInt returns the median of values without mutating the input.
func medianInt(values []int) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]int(nil), values...)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[(n-1)/2])
	}

	return float64(sorted[(n-2)/2]+sorted[n/2]) / 2
}
