package geom

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Polygon is an ordered sequence of 2-dimensional vertices. The
// boundary is the closed ring through the vertices in order; no
// convexity or winding order is required. The zero value is an empty
// polygon ready for use.
type Polygon[T Scalar] struct {
	vertices []Vec2[T]
}

// PolygonOf returns the polygon with the given vertices. The vertices
// are copied.
func PolygonOf[T Scalar](vertices ...Vec2[T]) Polygon[T] {
	return Polygon[T]{slices.Clone(vertices)}
}

// CollectPolygon returns the polygon with the vertices yielded by
// seq, in order.
func CollectPolygon[T Scalar](seq iter.Seq[Vec2[T]]) Polygon[T] {
	return Polygon[T]{slices.Collect(seq)}
}

// PolygonTo converts a polygon to another scalar kind.
func PolygonTo[T, U Scalar](p Polygon[U]) Polygon[T] {
	vertices := make([]Vec2[T], len(p.vertices))
	for i, v := range p.vertices {
		vertices[i] = V2Of[T](v)
	}
	return Polygon[T]{vertices}
}

// Len returns the number of vertices.
func (p Polygon[T]) Len() int {
	return len(p.vertices)
}

// Empty reports whether the polygon has no vertices.
func (p Polygon[T]) Empty() bool {
	return len(p.vertices) == 0
}

// At returns the vertex at index, panicking when index is out of
// range.
func (p Polygon[T]) At(index int) Vec2[T] {
	return p.vertices[index]
}

// Add appends a vertex to the ring.
func (p *Polygon[T]) Add(vertex Vec2[T]) {
	p.vertices = append(p.vertices, vertex)
}

// AddXY appends the vertex (x, y) to the ring.
func (p *Polygon[T]) AddXY(x, y T) {
	p.Add(Vec2[T]{x, y})
}

// Insert inserts a vertex before index, panicking when index is not
// in [0, Len()].
func (p *Polygon[T]) Insert(index int, vertex Vec2[T]) {
	p.vertices = slices.Insert(p.vertices, index, vertex)
}

// Remove removes and returns the vertex at index, panicking when
// index is out of range.
func (p *Polygon[T]) Remove(index int) Vec2[T] {
	vertex := p.vertices[index]
	p.vertices = slices.Delete(p.vertices, index, index+1)
	return vertex
}

// Clone returns a polygon with its own copy of the vertices.
func (p Polygon[T]) Clone() Polygon[T] {
	return Polygon[T]{slices.Clone(p.vertices)}
}

// Eq reports whether two polygons have equal vertices in equal order.
func (p Polygon[T]) Eq(other Polygon[T]) bool {
	return slices.Equal(p.vertices, other.vertices)
}

// Vertices returns an iterator over the vertices in order.
func (p Polygon[T]) Vertices() iter.Seq[Vec2[T]] {
	return slices.Values(p.vertices)
}

// Edges returns an iterator over the edges of the closed ring,
// including the edge from the last vertex back to the first.
func (p Polygon[T]) Edges() iter.Seq[Line2[T]] {
	return func(yield func(Line2[T]) bool) {
		n := len(p.vertices)
		if n < 2 {
			return
		}
		for i := range n {
			edge := Line2[T]{p.vertices[i], p.vertices[(i+1)%n]}
			if !yield(edge) {
				return
			}
		}
	}
}

// SignedArea returns the area enclosed by the ring via the shoelace
// formula, positive when the vertices wind counterclockwise. A
// polygon with fewer than three vertices has zero area.
func (p Polygon[T]) SignedArea() float64 {
	var sum float64
	for edge := range p.Edges() {
		sum += V2Of[float64](edge.A).Cross(V2Of[float64](edge.B))
	}
	return sum / 2
}

// Area returns the absolute area enclosed by the ring.
func (p Polygon[T]) Area() float64 {
	area := p.SignedArea()
	if area < 0 {
		return -area
	}
	return area
}

// Perimeter returns the length of the closed ring.
func (p Polygon[T]) Perimeter() float64 {
	var sum float64
	for edge := range p.Edges() {
		sum += edge.Length()
	}
	return sum
}

// Centroid returns the area-weighted centroid of the ring. When the
// signed area vanishes, it degenerates to the arithmetic mean of the
// vertices; an empty polygon has the zero centroid.
func (p Polygon[T]) Centroid() Vec2[float64] {
	if len(p.vertices) == 0 {
		return Vec2[float64]{}
	}
	var acc Vec2[float64]
	var area float64
	for edge := range p.Edges() {
		a, b := V2Of[float64](edge.A), V2Of[float64](edge.B)
		cross := a.Cross(b)
		acc = acc.Add(a.Add(b).MulN(cross))
		area += cross
	}
	if area != 0 {
		return acc.DivN(3 * area)
	}
	var mean Vec2[float64]
	for _, v := range p.vertices {
		mean = mean.Add(V2Of[float64](v))
	}
	return mean.DivN(float64(len(p.vertices)))
}

// Bounds returns the axis-aligned bounding rect of the vertices. An
// empty polygon has the zero rect.
func (p Polygon[T]) Bounds() Rect[T] {
	if len(p.vertices) == 0 {
		return Rect[T]{}
	}
	r := Rect[T]{Origin: p.vertices[0]}
	return r.IncludeSeq(p.Vertices())
}

// Contains reports whether the point lies inside the ring, using the
// even-odd rule. Points on the boundary may fall on either side.
func (p Polygon[T]) Contains(point Vec2[T]) bool {
	pt := V2Of[float64](point)
	inside := false
	for edge := range p.Edges() {
		a, b := V2Of[float64](edge.A), V2Of[float64](edge.B)
		if (a.Y <= pt.Y && pt.Y < b.Y) || (b.Y <= pt.Y && pt.Y < a.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x > pt.X {
				inside = !inside
			}
		}
	}
	return inside
}

func (p Polygon[T]) String() string {
	var sb strings.Builder
	sb.WriteString("( ")
	for i, v := range p.vertices {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString(" )")
	return sb.String()
}
