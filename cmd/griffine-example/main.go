package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jkeifer/griffine"
)

func parseAffine(s string) (griffine.Affine, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return griffine.Affine{}, errors.New("transform must have 6 comma-separated coefficients")
	}
	coefficients := make([]float64, 6)
	for i, part := range parts {
		coefficient, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return griffine.Affine{}, err
		}
		coefficients[i] = coefficient
	}
	return griffine.Affine{
		A: coefficients[0],
		B: coefficients[1],
		C: coefficients[2],
		D: coefficients[3],
		E: coefficients[4],
		F: coefficients[5],
	}, nil
}

func run() error {
	cols := flag.Int("cols", 10000, "grid columns")
	rows := flag.Int("rows", 5000, "grid rows")
	tileCols := flag.Int("tile-cols", 1024, "tile columns")
	tileRows := flag.Int("tile-rows", 1024, "tile rows")
	transform := flag.String("transform", "10,0,200000,0,-10,6100000", "affine coefficients a,b,c,d,e,f")
	flag.Parse()

	if flag.NArg() != 2 {
		return errors.New("syntax: griffine-example x y")
	}
	x, err := strconv.ParseFloat(flag.Arg(0), 64)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(flag.Arg(1), 64)
	if err != nil {
		return err
	}

	t, err := parseAffine(*transform)
	if err != nil {
		return err
	}
	grid, err := griffine.NewGrid(*cols, *rows)
	if err != nil {
		return err
	}
	tiled, err := grid.AddTransform(t).TileBySize(*tileCols, *tileRows)
	if err != nil {
		return err
	}

	point := griffine.NewPoint(x, y)
	cell, err := tiled.CellContaining(point)
	if err != nil {
		return err
	}
	fmt.Printf("cell (%d, %d): origin %v, centroid %v, antiorigin %v\n",
		cell.Col, cell.Row, cell.Origin(), cell.Centroid(), cell.Antiorigin())

	tile, err := tiled.TileContainingPoint(point)
	if err != nil {
		return err
	}
	tileCellCols, tileCellRows := tile.Size()
	fmt.Printf("tile (%d, %d): %dx%d cells, origin %v, antiorigin %v\n",
		tile.Col, tile.Row, tileCellCols, tileCellRows, tile.Origin(), tile.Antiorigin())

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
