package bvh

import "github.com/arl/go-suptracer/trace"

// leafOrNodeMask is the high bit of CompactNode.Payload: 0 for a leaf, 1
// for an interior node. Packing the discriminator into the high bit of
// Payload saves a separate tag field. The AABB's corners are slice-backed
// d3.Vec3 values, so a node does not have the 32-byte size of an inline
// 24-byte box plus 8 bytes of metadata.
const leafOrNodeMask = uint32(1) << 31

// CompactNode is one entry of a depth-first, pre-order BVH node array.
//
// In a leaf, Offset is the index of the first triangle in the reordered
// triangle array and Payload is the triangle count (< 1<<31). In an
// interior node, Offset is the index of the right child and Payload is
// leafOrNodeMask OR'd with the split axis (0, 1 or 2). The left child is
// always at index+1; interior nodes never store it explicitly.
type CompactNode struct {
	BB      trace.AABB
	Offset  uint32
	Payload uint32
}

// IsLeaf reports whether n is a leaf node.
func (n CompactNode) IsLeaf() bool {
	return n.Payload&leafOrNodeMask == 0
}

// LeafRange returns the [start, start+count) range of triangles stored in a
// leaf node. Only valid when n.IsLeaf().
func (n CompactNode) LeafRange() (start, count uint32) {
	return n.Offset, n.Payload
}

// RightChild returns the index of the right child of an interior node.
// Only valid when !n.IsLeaf().
func (n CompactNode) RightChild() uint32 {
	return n.Offset
}

// Axis returns the split axis of an interior node. Only valid when
// !n.IsLeaf().
func (n CompactNode) Axis() int {
	return int(n.Payload &^ leafOrNodeMask)
}

// CompactBVH is a depth-first, pre-order array of CompactNode. The root is
// always index 0. Node count is exactly 2*leaves-1 for any non-empty
// triangle array.
type CompactBVH struct {
	Nodes []CompactNode
}
