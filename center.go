/*
 * center.go, part of superpose.
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

package superpose

import (
	"fmt"

	v3 "github.com/rmera/superpose/v3"
	"gonum.org/v1/gonum/floats"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//checkWeights validates a weight slice for a set of n points and returns
//the total weight. A nil slice stands for uniform weights and is always
//valid. A slice of the wrong length, a negative weight, or a total weight
//of (numerically) zero are errors: the library does not fall back to
//uniform weights silently.
func checkWeights(weights []float64, n int, caller string) (float64, error) {
	if weights == nil {
		return float64(n), nil
	}
	if len(weights) != n {
		err := new(CError)
		err.msg = fmt.Sprintf("Mismatched weights (%d) and points (%d)", len(weights), n)
		err.Decorate(caller)
		return 0, err
	}
	for i, v := range weights {
		if v < 0 {
			err := new(CError)
			err.msg = fmt.Sprintf("Negative weight %f for the point %d", v, i)
			err.Decorate(caller)
			return 0, err
		}
	}
	total := floats.Sum(weights)
	if total <= appzero {
		err := new(CError)
		err.msg = fmt.Sprintf("Total weight %g is too close to zero", total)
		err.Decorate(caller)
		return 0, err
	}
	return total, nil
}

//Centroid returns the weighted centroid of the given set of points.
//A nil weights slice means uniform weights. A nil set of points has,
//by definition, a centroid on the origin, but giving weights for it is
//still a mismatch.
func Centroid(points *v3.Matrix, weights []float64) (*v3.Matrix, error) {
	cen := v3.Zeros(1)
	if points == nil && weights == nil {
		return cen, nil
	}
	n := 0
	if points != nil {
		n = points.NVecs()
	}
	total, err := checkWeights(weights, n, "Centroid")
	if err != nil {
		return nil, err
	}
	if points == nil {
		return cen, nil
	}
	c := cen.RawRowView(0)
	for i := 0; i < n; i++ {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		floats.AddScaled(c, w, points.RawRowView(i))
	}
	floats.Scale(1.0/total, c)
	return cen, nil
}

//Center translates the set of points so its weighted centroid lies on the
//origin. It returns the translated set and the original centroid. The input
//is not modified. A nil set of points yields a nil set and a zero centroid.
func Center(points *v3.Matrix, weights []float64) (*v3.Matrix, *v3.Matrix, error) {
	cen, err := Centroid(points, weights)
	if err != nil {
		return nil, nil, errDecorate(err, "Center")
	}
	if points == nil {
		return nil, cen, nil
	}
	centered := v3.Zeros(points.NVecs())
	centered.SubVec(points, cen)
	return centered, cen, nil
}

//Translate returns a copy of the set of points with the vector vec added
//to every point. The input is not modified. A nil set yields a nil set.
func Translate(points, vec *v3.Matrix) (*v3.Matrix, error) {
	if vec == nil || vec.NVecs() != 1 {
		err := new(CError)
		err.msg = "The translation must be a single vector"
		err.Decorate("Translate")
		return nil, err
	}
	if points == nil {
		return nil, nil
	}
	moved := v3.Zeros(points.NVecs())
	moved.AddVec(points, vec)
	return moved, nil
}
