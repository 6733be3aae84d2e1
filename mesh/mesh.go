package mesh

import (
	"errors"
	"fmt"

	"github.com/seqsense/meshxform/mat"
)

// NoIndex marks an unspecified slot in a Face.
// Any negative texcoord or normal index is treated the same way.
const NoIndex = -1

// Face references mesh attributes by zero-based index.
// TexCoord and Normal are either empty or have the same length as Vertex;
// a negative element is not specified. Vertex indices are always specified.
type Face struct {
	Vertex   []int
	TexCoord []int
	Normal   []int
}

// Mesh is a polygon mesh loaded from an OBJ file.
// Others holds unsupported lines in file order so that they can be
// written back unchanged.
type Mesh struct {
	Vertices  []mat.Vec3
	TexCoords []mat.Vec2
	Normals   []mat.Vec3
	Faces     []Face
	Others    []string
}

var ErrIndexOutOfRange = errors.New("face index out of range")

// Transform applies m to all vertices and normals in place.
// Normals go through the same homogeneous multiply and are normalized
// afterwards. Texture coordinates and faces are not changed.
func (m *Mesh) Transform(trans mat.Mat4) {
	for i, v := range m.Vertices {
		m.Vertices[i] = trans.Transform(v)
	}
	for i, n := range m.Normals {
		m.Normals[i] = trans.Transform(n).Normalized()
	}
}

// Append merges o into m. Face indices of o are shifted past the
// attributes already in m; unspecified indices are kept as they are.
func (m *Mesh) Append(o *Mesh) {
	nv, nt, nn := len(m.Vertices), len(m.TexCoords), len(m.Normals)
	m.Vertices = append(m.Vertices, o.Vertices...)
	m.TexCoords = append(m.TexCoords, o.TexCoords...)
	m.Normals = append(m.Normals, o.Normals...)
	for _, f := range o.Faces {
		m.Faces = append(m.Faces, Face{
			Vertex:   shift(f.Vertex, nv),
			TexCoord: shift(f.TexCoord, nt),
			Normal:   shift(f.Normal, nn),
		})
	}
	m.Others = append(m.Others, o.Others...)
}

func shift(ids []int, offset int) []int {
	if ids == nil {
		return nil
	}
	out := make([]int, len(ids))
	for i, id := range ids {
		if id < 0 {
			out[i] = id
			continue
		}
		out[i] = id + offset
	}
	return out
}

// Validate checks that every vertex index and every specified texcoord and
// normal index refers to an existing attribute.
func (m *Mesh) Validate() error {
	check := func(fi int, kind string, ids []int, n int, optional bool) error {
		for _, id := range ids {
			if optional && id < 0 {
				continue
			}
			if id < 0 || id >= n {
				return fmt.Errorf("face %d: %s index %d (have %d): %w",
					fi, kind, id, n, ErrIndexOutOfRange,
				)
			}
		}
		return nil
	}
	for i, f := range m.Faces {
		if err := check(i, "vertex", f.Vertex, len(m.Vertices), false); err != nil {
			return err
		}
		if err := check(i, "texcoord", f.TexCoord, len(m.TexCoords), true); err != nil {
			return err
		}
		if err := check(i, "normal", f.Normal, len(m.Normals), true); err != nil {
			return err
		}
		if n := len(f.TexCoord); n != 0 && n != len(f.Vertex) {
			return fmt.Errorf("face %d: %d texcoords for %d vertices", i, n, len(f.Vertex))
		}
		if n := len(f.Normal); n != 0 && n != len(f.Vertex) {
			return fmt.Errorf("face %d: %d normals for %d vertices", i, n, len(f.Vertex))
		}
	}
	return nil
}
