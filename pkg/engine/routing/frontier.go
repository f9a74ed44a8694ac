package routing

import (
	da "github.com/lintang-b-s/citypath/pkg/datastructure"
)

// queueFrontier pops the oldest location first.
type queueFrontier struct {
	items []da.Location
	head  int
}

func newQueueFrontier() *queueFrontier {
	return &queueFrontier{items: make([]da.Location, 0)}
}

func (q *queueFrontier) Push(loc da.Location, _ *da.CostState) {
	q.items = append(q.items, loc)
}

func (q *queueFrontier) Pop() (da.Location, bool) {
	if q.head >= len(q.items) {
		return "", false
	}
	loc := q.items[q.head]
	q.head++
	if q.head > 1024 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return loc, true
}

func (q *queueFrontier) Len() int {
	return len(q.items) - q.head
}

// stackFrontier pops the most recently pushed location first.
type stackFrontier struct {
	items []da.Location
}

func newStackFrontier() *stackFrontier {
	return &stackFrontier{items: make([]da.Location, 0)}
}

func (s *stackFrontier) Push(loc da.Location, _ *da.CostState) {
	s.items = append(s.items, loc)
}

func (s *stackFrontier) Pop() (da.Location, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	loc := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return loc, true
}

func (s *stackFrontier) Len() int {
	return len(s.items)
}

// priorityFrontier pops the location with the lowest heuristic, the earliest pushed on ties.
type priorityFrontier struct {
	pq    *da.MinHeap[da.Location]
	nodes map[da.Location]*da.PriorityQueueNode[da.Location]
	seq   uint64
}

func newPriorityFrontier() *priorityFrontier {
	return &priorityFrontier{
		pq:    da.NewFourAryHeap[da.Location](),
		nodes: make(map[da.Location]*da.PriorityQueueNode[da.Location]),
	}
}

func (p *priorityFrontier) Push(loc da.Location, cs *da.CostState) {
	node := da.NewPriorityQueueNode(da.NewPriority(cs.GetHeuristic(), p.seq), loc)
	p.seq++
	p.nodes[loc] = node
	p.pq.Insert(node)
}

func (p *priorityFrontier) Pop() (da.Location, bool) {
	node, err := p.pq.ExtractMin()
	if err != nil {
		return "", false
	}
	loc := node.GetItem()
	delete(p.nodes, loc)
	return loc, true
}

func (p *priorityFrontier) Len() int {
	return p.pq.Size()
}

func (p *priorityFrontier) Reprioritize(loc da.Location, h da.Estimate) {
	node, ok := p.nodes[loc]
	if !ok {
		return
	}
	_ = p.pq.Update(node, h)
}
