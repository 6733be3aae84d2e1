package obj

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/seqsense/meshxform/mat"
	"github.com/seqsense/meshxform/mesh"
)

var (
	ErrFieldNumber = errors.New("invalid number of fields")
	ErrIndex       = errors.New("invalid index")
)

// ParseError reports the line on which parsing failed.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Unmarshal reads v, vt, vn and f lines into a Mesh.
// Any other line is kept verbatim in Mesh.Others.
func Unmarshal(r io.Reader) (*mesh.Mesh, error) {
	m := &mesh.Mesh{}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var n int
	for s.Scan() {
		n++
		line := s.Text()
		if err := parseLine(m, line); err != nil {
			return nil, &ParseError{Line: n, Err: err}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseLine(m *mesh.Mesh, line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		m.Others = append(m.Others, line)
		return nil
	}
	switch args[0] {
	case "v":
		v, err := parseVec3(args[1:])
		if err != nil {
			return err
		}
		m.Vertices = append(m.Vertices, v)
	case "vn":
		v, err := parseVec3(args[1:])
		if err != nil {
			return err
		}
		m.Normals = append(m.Normals, v)
	case "vt":
		if len(args) < 2 {
			return ErrFieldNumber
		}
		var vt mat.Vec2
		for i := 0; i < 2 && i+1 < len(args); i++ {
			f, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil {
				return err
			}
			vt[i] = f
		}
		m.TexCoords = append(m.TexCoords, vt)
	case "f":
		f, err := parseFace(m, args[1:])
		if err != nil {
			return err
		}
		m.Faces = append(m.Faces, f)
	default:
		m.Others = append(m.Others, line)
	}
	return nil
}

// parseVec3 accepts three or more values; a trailing w or color is ignored.
func parseVec3(args []string) (mat.Vec3, error) {
	if len(args) < 3 {
		return mat.Vec3{}, ErrFieldNumber
	}
	var v mat.Vec3
	for i := range v {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return mat.Vec3{}, err
		}
		v[i] = f
	}
	return v, nil
}

func parseFace(m *mesh.Mesh, corners []string) (mesh.Face, error) {
	if len(corners) < 3 {
		return mesh.Face{}, ErrFieldNumber
	}
	f := mesh.Face{
		Vertex:   make([]int, len(corners)),
		TexCoord: make([]int, len(corners)),
		Normal:   make([]int, len(corners)),
	}
	var hasTexCoord, hasNormal bool
	for i, c := range corners {
		ids := strings.Split(c, "/")
		if len(ids) > 3 {
			return mesh.Face{}, fmt.Errorf("corner %q: %w", c, ErrFieldNumber)
		}
		var err error
		if f.Vertex[i], err = parseIndex(ids[0], len(m.Vertices)); err != nil {
			return mesh.Face{}, err
		}
		f.TexCoord[i], f.Normal[i] = mesh.NoIndex, mesh.NoIndex
		if len(ids) > 1 && ids[1] != "" {
			if f.TexCoord[i], err = parseIndex(ids[1], len(m.TexCoords)); err != nil {
				return mesh.Face{}, err
			}
			hasTexCoord = true
		}
		if len(ids) > 2 && ids[2] != "" {
			if f.Normal[i], err = parseIndex(ids[2], len(m.Normals)); err != nil {
				return mesh.Face{}, err
			}
			hasNormal = true
		}
	}
	if !hasTexCoord {
		f.TexCoord = nil
	}
	if !hasNormal {
		f.Normal = nil
	}
	return f, nil
}

// parseIndex converts a 1-based or negative (relative) OBJ index into a
// zero-based one.
func parseIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0:
		return i - 1, nil
	case i < 0 && n+i >= 0:
		return n + i, nil
	default:
		return 0, fmt.Errorf("%d: %w", i, ErrIndex)
	}
}

// Marshal writes the mesh as OBJ text. Unsupported lines are written
// after the geometry.
func Marshal(m *mesh.Mesh, w io.Writer) error {
	if err := m.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2]))
	}
	for _, vt := range m.TexCoords {
		fmt.Fprintf(bw, "vt %s %s\n", formatFloat(vt[0]), formatFloat(vt[1]))
	}
	for _, vn := range m.Normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", formatFloat(vn[0]), formatFloat(vn[1]), formatFloat(vn[2]))
	}
	for _, f := range m.Faces {
		bw.WriteString("f")
		for i, v := range f.Vertex {
			bw.WriteString(" ")
			bw.WriteString(formatCorner(v, at(f.TexCoord, i), at(f.Normal, i)))
		}
		bw.WriteString("\n")
	}
	for _, l := range m.Others {
		bw.WriteString(l)
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func at(ids []int, i int) int {
	if i < len(ids) {
		return ids[i]
	}
	return mesh.NoIndex
}

func formatCorner(v, vt, vn int) string {
	s := strconv.Itoa(v + 1)
	switch {
	case vt < 0 && vn < 0:
		return s
	case vn < 0:
		return s + "/" + strconv.Itoa(vt+1)
	case vt < 0:
		return s + "//" + strconv.Itoa(vn+1)
	default:
		return s + "/" + strconv.Itoa(vt+1) + "/" + strconv.Itoa(vn+1)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Load reads an OBJ file.
func Load(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Unmarshal(f)
}

// Save writes an OBJ file. Nothing is written if the mesh can not be
// encoded.
func Save(path string, m *mesh.Mesh) error {
	var buf bytes.Buffer
	if err := Marshal(m, &buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
