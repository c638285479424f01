package stellar

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// LoadOBJ reads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("stellar: open obj: %w", err)
	}
	defer file.Close()
	m, err := LoadOBJFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("stellar: %s: %w", path, err)
	}
	return m, nil
}

func LoadOBJFromBytes(b []byte) (*Mesh, error) {
	return LoadOBJFromReader(bytes.NewReader(b))
}

// LoadOBJFromReader parses v, vt, vn and f records. Polygons are fan
// triangulated and faces without normals get their face normal.
func LoadOBJFromReader(r io.Reader) (*Mesh, error) {
	// index 0 is a placeholder so OBJ's 1-based indices work directly
	vs := make([]mgl32.Vec3, 1, 1024)
	vts := make([]mgl32.Vec2, 1, 1024)
	vns := make([]mgl32.Vec3, 1, 1024)

	var vertices []Vertex
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(line) < 2 || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			vs = append(vs, mgl32.Vec3{v[0], v[1], v[2]})
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			vts = append(vts, mgl32.Vec2{v[0], v[1]})
		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			vns = append(vns, mgl32.Vec3{v[0], v[1], v[2]})
		case "f":
			args := fields[1:]
			if len(args) < 3 {
				return nil, fmt.Errorf("line %d: face with %d vertices", lineNo, len(args))
			}
			fvs := make([]int, len(args))
			fvts := make([]int, len(args))
			fvns := make([]int, len(args))
			for i, arg := range args {
				parts := strings.Split(arg+"//", "/")
				fvs[i] = fixIndex(parts[0], len(vs))
				fvts[i] = fixIndex(parts[1], len(vts))
				fvns[i] = fixIndex(parts[2], len(vns))
				if fvs[i] <= 0 || fvs[i] >= len(vs) || fvts[i] < 0 || fvts[i] >= len(vts) || fvns[i] < 0 || fvns[i] >= len(vns) {
					return nil, fmt.Errorf("line %d: index out of range in %q", lineNo, arg)
				}
			}

			for i := 1; i < len(fvs)-1; i++ {
				corners := [3]int{0, i, i + 1}
				var tri [3]Vertex
				for k, c := range corners {
					tri[k] = NewVertex(vs[fvs[c]], vns[fvns[c]], vts[fvts[c]])
				}
				if fvns[0] == 0 {
					n := faceNormal(tri[0].Position, tri[1].Position, tri[2].Position)
					for k := range tri {
						tri[k].Normal = n
						tri[k].TransformedNormal = n
					}
				}
				vertices = append(vertices, tri[:]...)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewMesh(vertices), nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := range out {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// fixIndex resolves negative (relative) OBJ indices. Empty means absent.
func fixIndex(value string, length int) int {
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}
	if parsed < 0 {
		return parsed + length
	}
	return parsed
}
