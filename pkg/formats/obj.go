package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/wavemesh/pkg/mesh"
)

// OBJ format errors.
var (
	ErrMalformedRecord = errors.New("malformed OBJ record")
	ErrMissingPart     = errors.New("OBJ record before first object")
	ErrNoContent       = errors.New("OBJ file has no objects")
)

// maxOBJLine is the longest line the scanner accepts.
const maxOBJLine = 1 << 20

// OBJError reports a parse failure at a specific line.
type OBJError struct {
	Line   int    // 1-based
	Record string // keyword of the offending line
	Err    error
}

func (e *OBJError) Error() string {
	return fmt.Sprintf("OBJ line %d (%s): %v", e.Line, e.Record, e.Err)
}

// Unwrap returns the underlying error.
func (e *OBJError) Unwrap() error {
	return e.Err
}

// ParseOBJ parses a Wavefront OBJ file from raw bytes.
//
// Only the o, v, vt and f records are read; every other line is ignored.
// Every face must have exactly three corners. Face indices are 1-based in
// the file and stored 0-based in the global index space of the mesh.
func ParseOBJ(data []byte) (*mesh.Mesh, error) {
	return ReadOBJ(bytes.NewReader(data))
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*mesh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

// ReadOBJ parses an OBJ stream. A failed parse never returns a mesh.
func ReadOBJ(r io.Reader) (*mesh.Mesh, error) {
	m := mesh.New()
	var current *mesh.Part

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxOBJLine)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		keyword := fields[0]
		fail := func(err error) error {
			return &OBJError{Line: lineNum, Record: keyword, Err: err}
		}

		switch keyword {
		case "o":
			if len(fields) < 2 {
				return nil, fail(fmt.Errorf("%w: object without name", ErrMalformedRecord))
			}
			if current != nil {
				m.AddPart(current)
			}
			current = mesh.NewPart(fields[1])

		case "v":
			if current == nil {
				return nil, fail(ErrMissingPart)
			}
			xyz, err := parseFloats(fields[1:], 3, 4)
			if err != nil {
				return nil, fail(err)
			}
			current.AddPosition(xyz[0], xyz[1], xyz[2])

		case "vt":
			if current == nil {
				return nil, fail(ErrMissingPart)
			}
			uv, err := parseFloats(fields[1:], 2, 3)
			if err != nil {
				return nil, fail(err)
			}
			current.AddUV(uv[0], uv[1])

		case "f":
			if current == nil {
				return nil, fail(ErrMissingPart)
			}
			if len(fields) != 4 {
				return nil, fail(fmt.Errorf("%w: face has %d corners, want 3", ErrMalformedRecord, len(fields)-1))
			}
			for _, tok := range fields[1:] {
				pos, uv, hasUV, err := parseFaceToken(tok)
				if err != nil {
					return nil, fail(err)
				}
				current.AddIndex(pos)
				if hasUV {
					current.AddUVIndex(uv)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ line %d: %w", lineNum+1, err)
	}

	if current != nil {
		m.AddPart(current)
	}
	if m.PartCount() == 0 {
		return nil, fmt.Errorf("%w (%d lines read)", ErrNoContent, lineNum)
	}

	return m, nil
}

// parseFloats parses between want and limit float tokens and returns the
// first want of them. Extra tokens up to limit (an optional w) are checked
// but dropped.
func parseFloats(tokens []string, want, limit int) ([]float32, error) {
	if len(tokens) < want || len(tokens) > limit {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrMalformedRecord, len(tokens), want)
	}
	out := make([]float32, want)
	for i, tok := range tokens {
		f, err := strconv.ParseFloat(tok, 32)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: bad number %q", ErrMalformedRecord, tok)
		}
		if i < want {
			out[i] = float32(f)
		}
	}
	return out, nil
}

// parseFaceToken splits a v, v/vt, v//vn or v/vt/vn corner and returns its
// 0-based position index and, when present, its 0-based UV index.
func parseFaceToken(tok string) (pos, uv uint32, hasUV bool, err error) {
	parts := strings.Split(tok, "/")
	if len(parts) > 3 {
		return 0, 0, false, fmt.Errorf("%w: bad face corner %q", ErrMalformedRecord, tok)
	}

	pos, err = parseIndex(parts[0])
	if err != nil {
		return 0, 0, false, err
	}
	if len(parts) > 1 && parts[1] != "" {
		uv, err = parseIndex(parts[1])
		if err != nil {
			return 0, 0, false, err
		}
		hasUV = true
	}
	return pos, uv, hasUV, nil
}

// parseIndex converts a 1-based OBJ index to 0-based. Relative (negative)
// indices are not supported.
func parseIndex(tok string) (uint32, error) {
	n, err := strconv.ParseUint(tok, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: bad index %q", ErrMalformedRecord, tok)
	}
	return uint32(n - 1), nil
}
