package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/swr"
)

// ErrMalformedOBJ is returned by Load and Parse, wrapped with the line
// number, when a v, vt, vn, or f line has missing or unparsable fields
// or an out-of-range index. Other directives are ignored.
var ErrMalformedOBJ = errors.New("mesh: malformed OBJ data")

// cornerKey identifies one face corner's (position, uv, normal) index
// triple, the unit OBJ vertices are deduplicated on: two corners that
// reference the same triple collapse to the same Mesh vertex.
type cornerKey struct{ v, vt, vn int }

// Load reads a Wavefront OBJ file from path.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-supplied by design
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse reads Wavefront OBJ geometry from r. It supports the v, vt,
// vn, and f directives; f faces with more than three corners are fan
// triangulated around their first corner, as the reference
// rasterizer's diffuse/normal/specular sample scenes need for the
// Diablo pose asset. Negative (relative) OBJ indices are supported.
// Lines starting with any other directive (o, g, s, mtllib, usemtl,
// comments) are ignored.
func Parse(r io.Reader) (*Mesh, error) {
	var positions, normals []swr.Vec3
	var uvs []swr.Vec2

	m := &Mesh{}
	corners := make(map[cornerKey]uint32)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			positions = append(positions, v)
		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			normals = append(normals, v)
		case "vt":
			uv, err := parseVec2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			uvs = append(uvs, uv)
		case "f":
			if err := parseFace(fields[1:], positions, normals, uvs, corners, m); err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
		default:
			// o, g, s, mtllib, usemtl, and anything else: not needed
			// for rasterizing, skipped.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseVec3(fields []string) (swr.Vec3, error) {
	if len(fields) < 3 {
		return swr.Vec3{}, ErrMalformedOBJ
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return swr.Vec3{}, ErrMalformedOBJ
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return swr.Vec3{}, ErrMalformedOBJ
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return swr.Vec3{}, ErrMalformedOBJ
	}
	return swr.V3(x, y, z), nil
}

func parseVec2(fields []string) (swr.Vec2, error) {
	if len(fields) < 2 {
		return swr.Vec2{}, ErrMalformedOBJ
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return swr.Vec2{}, ErrMalformedOBJ
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return swr.Vec2{}, ErrMalformedOBJ
	}
	return swr.V2(x, y), nil
}

// parseFace resolves a face line's corners to Mesh vertex indices,
// fan triangulating faces with more than three corners.
func parseFace(fields []string, positions, normals []swr.Vec3, uvs []swr.Vec2, corners map[cornerKey]uint32, m *Mesh) error {
	if len(fields) < 3 {
		return ErrMalformedOBJ
	}
	indices := make([]uint32, len(fields))
	for i, f := range fields {
		key, err := parseCorner(f, len(positions), len(uvs), len(normals))
		if err != nil {
			return err
		}
		idx, ok := corners[key]
		if !ok {
			idx = uint32(len(m.Positions))
			corners[key] = idx
			m.Positions = append(m.Positions, positions[key.v])
			if key.vn >= 0 {
				m.Normals = append(m.Normals, normals[key.vn])
			} else {
				m.Normals = append(m.Normals, swr.Vec3{})
			}
			if key.vt >= 0 {
				m.UVs = append(m.UVs, uvs[key.vt])
			} else {
				m.UVs = append(m.UVs, swr.Vec2{})
			}
		}
		indices[i] = idx
	}
	for i := 1; i < len(indices)-1; i++ {
		m.Faces = append(m.Faces, indices[0], indices[i], indices[i+1])
	}
	return nil
}

// parseCorner parses one face corner token, which is "v", "v/vt",
// "v//vn", or "v/vt/vn"; a negative component is relative to the end
// of the list seen so far, per the OBJ spec.
func parseCorner(tok string, nv, nvt, nvn int) (cornerKey, error) {
	parts := strings.Split(tok, "/")
	v, err := resolveIndex(parts[0], nv)
	if err != nil {
		return cornerKey{}, err
	}
	key := cornerKey{v: v, vt: -1, vn: -1}
	if len(parts) >= 2 && parts[1] != "" {
		vt, err := resolveIndex(parts[1], nvt)
		if err != nil {
			return cornerKey{}, err
		}
		key.vt = vt
	}
	if len(parts) >= 3 && parts[2] != "" {
		vn, err := resolveIndex(parts[2], nvn)
		if err != nil {
			return cornerKey{}, err
		}
		key.vn = vn
	}
	return key, nil
}

func resolveIndex(tok string, count int) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ErrMalformedOBJ
	}
	switch {
	case n > 0:
		n--
	case n < 0:
		n = count + n
	default:
		return 0, ErrMalformedOBJ
	}
	if n < 0 || n >= count {
		return 0, ErrMalformedOBJ
	}
	return n, nil
}
