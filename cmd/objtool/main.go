// objtool inspects Wavefront OBJ files: parts, draw ranges and resolved buffers.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Faultbox/wavemesh/pkg/formats"
	"github.com/Faultbox/wavemesh/pkg/mesh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "parts", "ls":
		cmdParts(args)
	case "range":
		cmdRange(args)
	case "dump":
		cmdDump(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objtool - Wavefront OBJ inspection utility

Usage:
  objtool <command> [options]

Commands:
  info <file.obj>                Show mesh totals and bounds
  parts <file.obj>               List parts with their draw ranges
  range <file.obj> <part|index>  Show the draw range of one part
  dump [-n N] <file.obj>         Print resolved vertices, UVs and normals

Examples:
  objtool info boat.obj
  objtool range boat.obj mast
  objtool dump -n 6 boat.obj`)
}

func load(path string) *mesh.Mesh {
	m, err := formats.ParseOBJFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := m.Build(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return m
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool info <file.obj>")
		os.Exit(1)
	}

	m := load(args[0])
	buf := m.Buffers()

	positions, uvs := 0, 0
	for _, p := range m.Parts() {
		positions += p.PositionCount()
		uvs += p.UVCount()
	}

	fmt.Printf("File:      %s\n", args[0])
	fmt.Printf("Parts:     %d\n", m.PartCount())
	fmt.Printf("Positions: %d\n", positions)
	fmt.Printf("UVs:       %d\n", uvs)
	fmt.Printf("Indices:   %d (%d triangles)\n", m.IndexCount(), m.IndexCount()/3)
	fmt.Printf("Bounds:    %v .. %v\n", fmtVec(buf.Bounds.Min[:]), fmtVec(buf.Bounds.Max[:]))
}

func cmdParts(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool parts <file.obj>")
		os.Exit(1)
	}

	m := load(args[0])
	fmt.Printf("%-4s %-24s %8s %8s %8s\n", "#", "NAME", "OFFSET", "COUNT", "UVS")
	for i, r := range m.DrawRanges() {
		p, _ := m.Part(i)
		fmt.Printf("%-4d %-24s %8d %8d %8d\n", i, p.Name, r.Offset, r.Count, p.UVIndexCount())
	}
}

func cmdRange(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: objtool range <file.obj> <part|index>")
		os.Exit(1)
	}

	m := load(args[0])

	var r mesh.DrawRange
	var err error
	if k, convErr := strconv.Atoi(args[1]); convErr == nil {
		r, err = m.DrawRange(k)
	} else {
		r, err = m.DrawRangeByName(args[1])
	}
	if err != nil {
		if errors.Is(err, mesh.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "No part named %q\n", args[1])
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("offset=%d count=%d bytes=%d\n", r.Offset, r.Count, r.ByteOffset())
}

func cmdDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	limit := fs.Int("n", 0, "Limit output to N corners (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool dump [-n N] <file.obj>")
		os.Exit(1)
	}

	m := load(fs.Arg(0))
	buf := m.Buffers()

	n := buf.VertexCount()
	if *limit > 0 && *limit < n {
		n = *limit
	}

	fmt.Printf("%-6s %-30s %-20s %s\n", "#", "POSITION", "UV", "NORMAL")
	for i := 0; i < n; i++ {
		pos := buf.Vertices[i*mesh.PositionSize : (i+1)*mesh.PositionSize]
		uv := buf.UVs[i*mesh.UVSize : (i+1)*mesh.UVSize]
		nrm := buf.Normals[i*mesh.NormalSize : (i+1)*mesh.NormalSize]
		fmt.Printf("%-6d %-30s %-20s %s\n", i, fmtVec(pos), fmtVec(uv), fmtVec(nrm))
	}
	if n < buf.VertexCount() {
		fmt.Printf("... %d more\n", buf.VertexCount()-n)
	}
}

func fmtVec(v []float32) string {
	s := "("
	for i, f := range v {
		if i > 0 {
			s += ", "
		}
		s += strconv.FormatFloat(float64(f), 'g', 5, 32)
	}
	return s + ")"
}
