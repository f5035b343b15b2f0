package interpolate

import (
	"fmt"
)

// axis locates query points within one strictly increasing table axis. A
// uniform axis answers in O(1). A general axis first guesses under the
// assumption of uniform spacing and falls back to binary search, so lookups
// are O(log n) at worst and usually faster.
type axis struct {
	nodes      []float64 // nil when the axis is uniform
	x0, dx, x1 float64
	n          int
	uniform    bool
}

func (ax *axis) init(nodes []float64) {
	if len(nodes) < 2 {
		panic(fmt.Sprintf("An axis needs at least 2 nodes, but got %d.",
			len(nodes)))
	}
	for i := 1; i < len(nodes); i++ {
		if nodes[i] <= nodes[i-1] {
			panic(fmt.Sprintf(
				"Axis nodes must be strictly increasing, but node %d is %g "+
					"and node %d is %g.", i-1, nodes[i-1], i, nodes[i],
			))
		}
	}

	ax.nodes = nodes
	ax.x0 = nodes[0]
	ax.x1 = nodes[len(nodes)-1]
	ax.dx = (ax.x1 - ax.x0) / float64(len(nodes)-1)
	ax.n = len(nodes)
	ax.uniform = false
}

func (ax *axis) initUniform(x0, dx float64, n int) {
	if n < 2 {
		panic(fmt.Sprintf("An axis needs at least 2 nodes, but got %d.", n))
	}
	if dx <= 0 {
		panic(fmt.Sprintf("Axis spacing must be positive, but dx = %g.", dx))
	}

	ax.nodes = nil
	ax.x0 = x0
	ax.x1 = x0 + dx*float64(n-1)
	ax.dx = dx
	ax.n = n
	ax.uniform = true
}

// cell returns the index i of the interval [node i, node i+1] containing x.
// Queries at the top edge return the last interval, so the result is always
// a valid left neighbor. Panics if x is outside the axis.
func (ax *axis) cell(x float64) int {
	if x < ax.x0 || x > ax.x1 {
		panic(fmt.Sprintf(
			"Point %g is outside the axis range [%g, %g].", x, ax.x0, ax.x1,
		))
	}

	if ax.uniform {
		i := int((x - ax.x0) / ax.dx)
		if i == ax.n-1 {
			i--
		}
		return i
	}

	// Guess as if the nodes were uniform.
	guess := int((x - ax.x0) / ax.dx)
	if guess >= 0 && guess < ax.n-1 &&
		ax.nodes[guess] <= x && x <= ax.nodes[guess+1] {
		return guess
	}

	lo, hi := 0, ax.n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= ax.nodes[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// at returns the position of node i.
func (ax *axis) at(i int) float64 {
	if ax.uniform {
		return ax.x0 + ax.dx*float64(i)
	}
	return ax.nodes[i]
}
