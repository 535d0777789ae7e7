// Command inspect prints a texture's metadata and what each filter returns at
// one sample coordinate, with the texel quad it was built from.
package main

import (
	"fmt"
	"os"
	"strconv"

	"texfilter/internal/filter"
	"texfilter/internal/mathutil"
	"texfilter/internal/texture"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: inspect <texture> <u> <v>")
		os.Exit(2)
	}

	u, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad u: %v\n", err)
		os.Exit(2)
	}
	v, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad v: %v\n", err)
		os.Exit(2)
	}

	tex, err := texture.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERR %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %dx%d %s\n", os.Args[1], tex.Width(), tex.Height(), tex.Format())

	uv := mathutil.Vec2{u, v}
	sel, err := filter.Select(tex, uv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERR %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nquad around (%g, %g):\n", u, v)
	for i, tx := range sel.Texels() {
		fmt.Printf("  %s  texel (%d,%d)  uv (%.6f, %.6f)  %s\n",
			[4]string{"TL", "TR", "BL", "BR"}[i], tx.X, tx.Y, tx.UV[0], tx.UV[1], formatColor(tx.Color))
	}

	if tri, w, err := filter.TriangleWeights(sel, uv); err == nil {
		fmt.Printf("\ntriangle: (%d,%d) w=%.4f  (%d,%d) w=%.4f  (%d,%d) w=%.4f\n",
			tri[0].X, tri[0].Y, w[0], tri[1].X, tri[1].Y, w[1], tri[2].X, tri[2].Y, w[2])
	}

	fmt.Println()
	errors := 0
	for _, k := range filter.Kinds {
		c, err := k.Kernel()(sel, uv)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERR %-10s %v\n", k, err)
			errors++
			continue
		}
		fmt.Printf("%-10s %s\n", k, formatColor(c))
	}
	if errors > 0 {
		os.Exit(1)
	}
}

func formatColor(c texture.Color) string {
	r, g, b, a := c.Bytes()
	return fmt.Sprintf("rgba(%3d,%3d,%3d,%3d)  #%08x", r, g, b, a, c.Pack())
}
