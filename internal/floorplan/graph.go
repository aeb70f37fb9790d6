package floorplan

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"

	"floor-planner/pkg/geometry"
)

// GraphNode is a navigation-graph node with planar grid coordinates.
type GraphNode struct {
	ID  string           `json:"id"`
	Pos geometry.Point2D `json:"position"`
}

// GraphEdge is a weighted connection between two navigation nodes.
type GraphEdge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Graph is the optional weighted navigation overlay. The editor treats it
// as read-only; it is built by the collaborator and only rendered.
//
// Nodes keep their external string ids; the weighted backing graph uses
// gonum's compact int64 ids internally.
type Graph struct {
	backing *simple.WeightedUndirectedGraph
	ids     map[string]int64
	nodes   []GraphNode
	edges   []GraphEdge
}

// NewGraph creates an empty navigation graph.
func NewGraph() *Graph {
	return &Graph{
		backing: simple.NewWeightedUndirectedGraph(0, 0),
		ids:     make(map[string]int64),
	}
}

// AddNode adds a node at the given grid coordinates. Adding an id twice
// moves the node instead.
func (g *Graph) AddNode(id string, x, y float64) {
	if _, ok := g.ids[id]; ok {
		for i := range g.nodes {
			if g.nodes[i].ID == id {
				g.nodes[i].Pos = geometry.Point2D{X: x, Y: y}
			}
		}
		return
	}
	n := g.backing.NewNode()
	g.backing.AddNode(n)
	g.ids[id] = n.ID()
	g.nodes = append(g.nodes, GraphNode{ID: id, Pos: geometry.Point2D{X: x, Y: y}})
}

// AddEdge connects two existing nodes with the given weight.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	fid, ok := g.ids[from]
	if !ok {
		return fmt.Errorf("add edge: unknown node %q", from)
	}
	tid, ok := g.ids[to]
	if !ok {
		return fmt.Errorf("add edge: unknown node %q", to)
	}
	if fid == tid {
		return fmt.Errorf("add edge: self loop on %q", from)
	}
	g.backing.SetWeightedEdge(g.backing.NewWeightedEdge(
		g.backing.Node(fid), g.backing.Node(tid), weight))
	g.edges = append(g.edges, GraphEdge{From: from, To: to, Weight: weight})
	return nil
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []GraphNode {
	if g == nil {
		return nil
	}
	return g.nodes
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []GraphEdge {
	if g == nil {
		return nil
	}
	return g.edges
}

// Weight returns the weight of the edge between two nodes from the backing
// graph, and whether such an edge exists.
func (g *Graph) Weight(from, to string) (float64, bool) {
	if g == nil {
		return 0, false
	}
	fid, ok := g.ids[from]
	if !ok {
		return 0, false
	}
	tid, ok := g.ids[to]
	if !ok {
		return 0, false
	}
	return g.backing.Weight(fid, tid)
}

// NodePos returns the position of a node by id.
func (g *Graph) NodePos(id string) (geometry.Point2D, bool) {
	if g == nil {
		return geometry.Point2D{}, false
	}
	for _, n := range g.nodes {
		if n.ID == id {
			return n.Pos, true
		}
	}
	return geometry.Point2D{}, false
}
