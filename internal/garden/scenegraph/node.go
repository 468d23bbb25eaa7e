// Package scenegraph holds the garden's object tree: each node carries a
// transform and an optional render primitive, built once from the
// composition parameters and traversed every frame. Animated properties
// are recomputed from elapsed time during traversal; nothing accumulates
// between frames.
package scenegraph

import (
	"github.com/oliviahylam/zen-garden/internal/garden/anim"
	"github.com/oliviahylam/zen-garden/internal/garden/mesh"
	mathx "github.com/oliviahylam/zen-garden/pkg/math"
)

// Node is one element of the scene tree. Leaf nodes usually carry a mesh;
// group nodes only position their children.
type Node struct {
	Name string

	Position mathx.Vec3
	Rotation mathx.Vec3 // Euler angles, radians
	Scale    mathx.Vec3

	Mesh    *mesh.Mesh
	Color   [3]float32
	Opacity float32

	// Anim, when set, modulates this node's transform and appearance as a
	// pure function of elapsed time.
	Anim *anim.Params

	Children []*Node
}

// Visual is the resolved appearance of a node at a traversal instant.
type Visual struct {
	Color   [3]float32
	Opacity float32
}

// New creates a group node with identity transform and default appearance.
func New(name string) *Node {
	return &Node{
		Name:    name,
		Scale:   mathx.Vec3{X: 1, Y: 1, Z: 1},
		Color:   [3]float32{1, 1, 1},
		Opacity: 1,
	}
}

// Add appends children and returns the node for chaining.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Count returns the number of nodes in the subtree, including n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Walk traverses the subtree depth-first, calling fn for every node with
// its composed world transform and resolved appearance at the given
// elapsed time.
func (n *Node) Walk(elapsed float64, fn func(*Node, mathx.Mat4, Visual)) {
	n.walk(elapsed, mathx.Identity(), fn)
}

func (n *Node) walk(elapsed float64, parent mathx.Mat4, fn func(*Node, mathx.Mat4, Visual)) {
	local, visual := n.resolve(elapsed)
	world := parent.Mul(local)

	fn(n, world, visual)
	for _, c := range n.Children {
		c.walk(elapsed, world, fn)
	}
}

// resolve computes the node's local transform and appearance, applying the
// animation evaluation when present.
func (n *Node) resolve(elapsed float64) (mathx.Mat4, Visual) {
	pos := n.Position
	rot := n.Rotation
	scale := n.Scale
	visual := Visual{Color: n.Color, Opacity: n.Opacity}

	if n.Anim != nil {
		tr := anim.Evaluate(*n.Anim, elapsed)
		pos = pos.Add(tr.Offset)
		rot = rot.Add(tr.Rotation)
		scale = scale.Scale(tr.Scale)
		visual.Opacity *= tr.Opacity
		for i := 0; i < 3; i++ {
			visual.Color[i] *= tr.Color[i]
		}
	}

	return mathx.TRS(pos, rot, scale), visual
}
