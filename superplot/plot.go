/*
 * plot.go, part of superpose.
 *
 * Copyright 2022 Raul Mera rauldotmeraatusachdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package superplot produces plots, in png format, for the quantities the
//library computes: per-point profiles, such as displacements or RMSF, and
//pairwise-RMSD matrices.
package superplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//Profile plots vals against the point index, as a line plus one marker
//per point. The extension of fname selects the format, png being the
//expected choice. Returns an error or nil.
func Profile(vals []float64, title, xlabel, ylabel, fname string) error {
	if vals == nil {
		panic("Given nil data")
	}
	p := basicPlot(title, xlabel, ylabel)
	pts := make(plotter.XYs, len(vals))
	for i, v := range vals {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	s.GlyphStyle.Radius = vg.Points(2)
	s.GlyphStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	p.Add(l, s)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, fname)
}

//a GridXYZ view of a symmetric matrix, for the heat map.
type symGrid struct {
	m *mat.SymDense
}

func (g symGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g symGrid) Z(c, r int) float64 { return g.m.At(r, c) }

func (g symGrid) X(c int) float64 { return float64(c) }

func (g symGrid) Y(r int) float64 { return float64(r) }

//RMSDHeatMap plots a pairwise-RMSD matrix, say, from ensemble.RMSDMatrix,
//as a heat map. The extension of fname selects the format. Returns an
//error or nil.
func RMSDHeatMap(m *mat.SymDense, title, fname string) error {
	if m == nil {
		return fmt.Errorf("RMSDHeatMap: Given nil data")
	}
	pal := moreland.SmoothBlueRed().Palette(255)
	h := plotter.NewHeatMap(symGrid{m}, pal)
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "conformer"
	p.Y.Label.Text = "conformer"
	p.Add(h)
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, fname)
}
