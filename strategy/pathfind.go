package strategy

import "container/heap"

// GridPos is a signed 2D grid coordinate.
type GridPos struct {
	X, Y int
}

// ManhattanDistance returns the L1 distance between p and other.
func (p GridPos) ManhattanDistance(other GridPos) int {
	return absInt(p.X-other.X) + absInt(p.Y-other.Y)
}

// EuclideanDistanceSquared returns the squared L2 distance between p and
// other.
func (p GridPos) EuclideanDistanceSquared(other GridPos) int {
	dx, dy := p.X-other.X, p.Y-other.Y
	return dx*dx + dy*dy
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// PathResult is the outcome of an A* search.
type PathResult struct {
	Path      []GridPos
	TotalCost int
	Found     bool
}

func notFound() PathResult {
	return PathResult{TotalCost: -1, Found: false}
}

// pqItem is one entry of the A* open set's min-priority queue.
type pqItem struct {
	pos   GridPos
	fCost int
	index int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].fCost < pq[j].fCost }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i]; pq[i].index, pq[j].index = i, j }
func (pq *priorityQueue) Push(x interface{}) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// blockedSet is the obstacle lookup shared by all planner variants.
type blockedSet map[GridPos]struct{}

// NewBlockedSet builds a lookup set from a slice of blocked positions.
func NewBlockedSet(positions []GridPos) blockedSet {
	set := make(blockedSet, len(positions))
	for _, p := range positions {
		set[p] = struct{}{}
	}
	return set
}

func (s blockedSet) has(p GridPos) bool {
	_, ok := s[p]
	return ok
}

func inBounds(p GridPos, width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

func reconstructPath(cameFrom map[GridPos]GridPos, current GridPos) []GridPos {
	path := []GridPos{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

var fourDirections = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// FindPath runs A* with 4-connected, unit-cost movement and a Manhattan
// heuristic.
func FindPath(start, goal GridPos, obstacles blockedSet, width, height int) PathResult {
	if start == goal {
		return PathResult{Path: []GridPos{start}, TotalCost: 0, Found: true}
	}
	if obstacles.has(goal) {
		return notFound()
	}

	open := &priorityQueue{}
	heap.Init(open)
	cameFrom := map[GridPos]GridPos{}
	gScore := map[GridPos]int{start: 0}

	heap.Push(open, &pqItem{pos: start, fCost: start.ManhattanDistance(goal)})

	for open.Len() > 0 {
		current := heap.Pop(open).(*pqItem).pos
		if current == goal {
			return PathResult{Path: reconstructPath(cameFrom, current), TotalCost: gScore[current], Found: true}
		}

		currentG := gScore[current]
		for _, d := range fourDirections {
			neighbor := GridPos{X: current.X + d[0], Y: current.Y + d[1]}
			if !inBounds(neighbor, width, height) || obstacles.has(neighbor) {
				continue
			}

			tentativeG := currentG + 1
			if g, ok := gScore[neighbor]; !ok || tentativeG < g {
				cameFrom[neighbor] = current
				gScore[neighbor] = tentativeG
				heap.Push(open, &pqItem{pos: neighbor, fCost: tentativeG + neighbor.ManhattanDistance(goal)})
			}
		}
	}

	return notFound()
}

type direction8 struct {
	dx, dy, cost int
}

var eightDirections = [8]direction8{
	{0, 1, 10}, {0, -1, 10}, {1, 0, 10}, {-1, 0, 10},
	{1, 1, 14}, {1, -1, 14}, {-1, 1, 14}, {-1, -1, 14},
}

func chebyshev(a, b GridPos) int {
	dx, dy := absInt(a.X-b.X), absInt(a.Y-b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// FindPath8Dir runs A* with 8-connected movement (orthogonal cost 10,
// diagonal cost 14), a Chebyshev heuristic scaled to match the step-cost
// units, and corner-cutting prevention: a diagonal step is disallowed if
// either orthogonal neighbour it would cut across is blocked.
func FindPath8Dir(start, goal GridPos, obstacles blockedSet, width, height int) PathResult {
	if start == goal {
		return PathResult{Path: []GridPos{start}, TotalCost: 0, Found: true}
	}
	if obstacles.has(goal) {
		return notFound()
	}

	open := &priorityQueue{}
	heap.Init(open)
	cameFrom := map[GridPos]GridPos{}
	gScore := map[GridPos]int{start: 0}

	heap.Push(open, &pqItem{pos: start, fCost: chebyshev(start, goal) * 10})

	for open.Len() > 0 {
		current := heap.Pop(open).(*pqItem).pos
		if current == goal {
			return PathResult{Path: reconstructPath(cameFrom, current), TotalCost: gScore[current], Found: true}
		}

		currentG := gScore[current]
		for _, d := range eightDirections {
			neighbor := GridPos{X: current.X + d.dx, Y: current.Y + d.dy}
			if !inBounds(neighbor, width, height) || obstacles.has(neighbor) {
				continue
			}

			if d.dx != 0 && d.dy != 0 {
				adj1 := GridPos{X: current.X + d.dx, Y: current.Y}
				adj2 := GridPos{X: current.X, Y: current.Y + d.dy}
				if obstacles.has(adj1) || obstacles.has(adj2) {
					continue
				}
			}

			tentativeG := currentG + d.cost
			if g, ok := gScore[neighbor]; !ok || tentativeG < g {
				cameFrom[neighbor] = current
				gScore[neighbor] = tentativeG
				heap.Push(open, &pqItem{pos: neighbor, fCost: tentativeG + chebyshev(neighbor, goal)*10})
			}
		}
	}

	return notFound()
}

// FindSafePosition runs a BFS from current and returns the first
// (closest by step count) unblocked cell whose Manhattan distance to
// every enemy is at least minDistance. Returns false if no such cell is
// reachable.
func FindSafePosition(current GridPos, enemies []GridPos, obstacles blockedSet, width, height, minDistance int) (GridPos, bool) {
	visited := map[GridPos]struct{}{current: {}}
	queue := []GridPos{current}

	isSafe := func(p GridPos) bool {
		for _, e := range enemies {
			if p.ManhattanDistance(e) < minDistance {
				return false
			}
		}
		return true
	}

	for len(queue) > 0 {
		var next []GridPos
		for _, pos := range queue {
			if isSafe(pos) && !obstacles.has(pos) {
				return pos, true
			}

			for _, d := range fourDirections {
				neighbor := GridPos{X: pos.X + d[0], Y: pos.Y + d[1]}
				if !inBounds(neighbor, width, height) {
					continue
				}
				if obstacles.has(neighbor) {
					continue
				}
				if _, seen := visited[neighbor]; seen {
					continue
				}
				visited[neighbor] = struct{}{}
				next = append(next, neighbor)
			}
		}
		queue = next
	}

	return GridPos{}, false
}
