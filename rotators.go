/*
 * rotators.go, part of superpose.
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
	"math"

	v3 "github.com/rmera/superpose/v3"
)

//Conversions
const (
	Deg2Rad = 0.0174533
	Rad2Deg = 1 / 0.0174533
)

//RotatorAroundZ returns an operator that will rotate a set of
//coordinates by gamma radians around the z axis, when applied
//on the right side of the coordinates.
func RotatorAroundZ(gamma float64) (*v3.Matrix, error) {
	singamma := math.Sin(gamma)
	cosgamma := math.Cos(gamma)
	operator := []float64{
		cosgamma, singamma, 0,
		-singamma, cosgamma, 0,
		0, 0, 1}
	return v3.NewMatrix(operator)
}

//RotatorAroundAxis returns an operator that will rotate a set of
//coordinates by angle radians around the given axis, when applied on the
//right side of the coordinates. The axis is normalized internally; an axis
//with a (numerically) zero norm is an error.
func RotatorAroundAxis(axis *v3.Matrix, angle float64) (*v3.Matrix, error) {
	if axis == nil || axis.NVecs() != 1 {
		err := new(CError)
		err.msg = "The axis must be a single vector"
		err.Decorate("RotatorAroundAxis")
		return nil, err
	}
	norm := axis.Norm(2)
	if norm <= appzero {
		err := new(CError)
		err.msg = "The axis has a norm of zero"
		err.Decorate("RotatorAroundAxis")
		return nil, err
	}
	a := axis.RawRowView(0)
	x, y, z := a[0]/norm, a[1]/norm, a[2]/norm
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	operator := []float64{
		c + x*x*t, x*y*t + z*s, x*z*t - y*s,
		x*y*t - z*s, c + y*y*t, y*z*t + x*s,
		x*z*t + y*s, y*z*t - x*s, c + z*z*t}
	return v3.NewMatrix(operator)
}
