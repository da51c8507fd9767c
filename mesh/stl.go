package mesh

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// WriteSTL writes the mesh as an ASCII STL solid with the given name.
func WriteSTL(w io.Writer, m *Mesh, name string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "solid %s\n", name)
	for i := 0; i < m.TriangleCount(); i++ {
		n := m.Normal(i)
		t := m.Triangle(i)
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range t {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing STL: %w", err)
	}
	return nil
}

// WriteSTLBinary writes the mesh in the binary STL format.
func WriteSTLBinary(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], "brep mesh export")
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("writing STL header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(m.TriangleCount())); err != nil {
		return fmt.Errorf("writing STL triangle count: %w", err)
	}

	for i := 0; i < m.TriangleCount(); i++ {
		n := m.Normal(i)
		t := m.Triangle(i)
		record := [12]float32{
			float32(n.X), float32(n.Y), float32(n.Z),
			float32(t[0].X), float32(t[0].Y), float32(t[0].Z),
			float32(t[1].X), float32(t[1].Y), float32(t[1].Z),
			float32(t[2].X), float32(t[2].Y), float32(t[2].Z),
		}
		if err := binary.Write(bw, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("writing STL facet: %w", err)
		}
		// Attribute byte count, unused.
		if err := binary.Write(bw, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("writing STL facet: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing STL: %w", err)
	}
	return nil
}
