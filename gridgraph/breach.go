package gridgraph

import (
	"container/list"
)

// Breach finds the fewest Blocked cells that must be opened so that dst
// becomes reachable from src, moving orthogonally. It returns one such
// route (src and dst included) and the number of Blocked cells on it.
// Blocked endpoints count like any other wall on the route.
//
// Behavior:
//  1. Validate endpoints (ErrOutOfBounds).
//  2. 0-1 BFS from src:
//     • stepping into an Open cell    → cost 0
//     • stepping into a Blocked cell  → cost 1
//  3. Stop when dst is popped.
//  4. Reconstruct the route from the predecessor array.
//
// A result of walls == 0 means the endpoints are already connected.
// Since every cell can be opened, a route always exists.
//
// Complexity: O(R·C·4) time, O(R·C) memory.
func (g *Grid) Breach(src, dst Coord) (path []Coord, walls int, err error) {
	if err = g.CheckEndpoints(src, dst); err != nil {
		return nil, 0, err
	}

	n := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	s, t := g.Index(src), g.Index(dst)
	dist[s] = g.wallCost(s)

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(s)
	done := make([]bool, n)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == t {
			break
		}
		for _, nb := range g.Neighbors(g.Coordinate(u)) {
			if !g.InBounds(nb) {
				continue
			}
			v := g.Index(nb)
			step := g.wallCost(v)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := t; at >= 0; at = prev[at] {
		path = append(path, g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[t], nil
}

func (g *Grid) wallCost(idx int) int {
	if g.cells[idx].Kind == Blocked {
		return 1
	}
	return 0
}
