package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/seqsense/meshxform/mat"
	pmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

var (
	ErrNoVertex        = errors.New("mesh has no vertex")
	ErrFloat32Overflow = errors.New("coordinate out of float32 range")
)

func (m *Mesh) vec3Slice() (pc.Vec3Slice, error) {
	s := make(pc.Vec3Slice, len(m.Vertices))
	for i, v := range m.Vertices {
		for _, f := range v {
			if math.Abs(f) > math.MaxFloat32 {
				return nil, fmt.Errorf("vertex %d %v: %w", i, v, ErrFloat32Overflow)
			}
		}
		s[i] = pmat.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
	}
	return s, nil
}

// Bounds returns the axis aligned bounding box of the vertices.
func (m *Mesh) Bounds() (mat.Vec3, mat.Vec3, error) {
	if len(m.Vertices) == 0 {
		return mat.Vec3{}, mat.Vec3{}, ErrNoVertex
	}
	min, max := m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := range v {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return min, max, nil
}

// PointCloud converts the vertices into an x-y-z float32 point cloud.
// Coordinates which do not fit in float32 are rejected.
func (m *Mesh) PointCloud() (*pc.PointCloud, error) {
	vs, err := m.vec3Slice()
	if err != nil {
		return nil, err
	}
	n := len(vs)
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version:   0.7,
			Fields:    []string{"x", "y", "z"},
			Size:      []int{4, 4, 4},
			Type:      []string{"F", "F", "F"},
			Count:     []int{1, 1, 1},
			Viewpoint: []float32{0, 0, 0, 1, 0, 0, 0},
			Width:     n,
			Height:    1,
		},
		Points: n,
	}
	pp.Data = make([]byte, n*pp.Stride())
	if n == 0 {
		return pp, nil
	}

	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	for _, v := range vs {
		it.SetVec3(v)
		it.Incr()
	}
	return pp, nil
}
