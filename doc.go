/*
Package fabric computes the coordinates and the density field of PGR
triangle plots used to display the shape of orientation tensor fabrics.

An eigen-system (e1 >= e2 >= e3, e1+e2+e3 = 1) is turned into the Point,
Girdle and Random indices, which are the barycentric coordinates of the
sample on an equilateral triangle inscribed in the unit circle:

	P = e1 - e2
	G = 2(e2 - e3)
	R = 3e3

The density field evaluates, for every node of a regular grid over the plot,
how far the eigen-system found at that node deviates from the isotropic
fabric or from a given protolith.

The package also provides a command line utility rendering the plot as PNG.
Check the supported commands by typing:

	$ fabric --help

Example to place samples on the plot and evaluate the density field:

	package main

	import (
		"fmt"
		"log"

		"github.com/esimov/fabric"
	)

	func main() {
		pgrs, points, frame := fabric.ConvertBatch([]fabric.Eigen{
			{E1: 0.6, E2: 0.3, E3: 0.1},
		})
		fmt.Println(pgrs, points, frame)

		grid, err := fabric.EvaluateGrid(150, fabric.DefaultTolerance, fabric.Density, fabric.Isotropic)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(grid.Range())
	}

Example to render the plot as a PNG image:

	p := fabric.DefaultProcessor()
	p.Mode = fabric.Intensity
	if _, err := p.Process(context.Background(), src, dst); err != nil {
		fmt.Printf("Error on plotting process: %s", err.Error())
	}
*/
package fabric
