package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/z-vig/cubeview"
)

var errSyntax = errors.New("syntax: cubeview-example [-wavelengths path] [x1 y1 x2 y2]")

func run() error {
	wavelengthsPath := flag.String("wavelengths", "", "path to a wavelength file (.txt, .csv, or .hdr)")
	flag.Parse()

	if *wavelengthsPath == "" && flag.NArg() == 0 {
		return errSyntax
	}

	if *wavelengthsPath != "" {
		wavelengths, err := cubeview.ReadWavelengths(*wavelengthsPath)
		if err != nil {
			return err
		}
		fmt.Printf("%d bands from %g to %g\n", len(wavelengths), wavelengths[0], wavelengths[len(wavelengths)-1])
	}

	if flag.NArg() != 0 {
		if flag.NArg() != 4 {
			return errSyntax
		}
		args := make([]int, 4)
		for i := range args {
			var err error
			args[i], err = strconv.Atoi(flag.Arg(i))
			if err != nil {
				return err
			}
		}
		line := cubeview.BresenhamLine(
			cubeview.Coord{X: args[0], Y: args[1]},
			cubeview.Coord{X: args[2], Y: args[3]},
		)
		for _, coord := range line {
			fmt.Println(coord.X, coord.Y)
		}
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
