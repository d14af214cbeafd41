/*
 * kabsch.go, part of superpose.
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
	"gonum.org/v1/gonum/mat"
)

//Correlation returns the weighted correlation matrix between the mobile and
//target sets: H[i][j] = sum_k w_k*mobile[k][i]*target[k][j]. Both sets must
//have the same, non-zero number of points and are expected to be already
//centered on their weighted centroids; that precondition is not checked.
func Correlation(mobile, target *v3.Matrix, weights []float64) (*v3.Matrix, error) {
	if mobile == nil || target == nil {
		err := new(CError)
		err.msg = "Nil matrix given"
		err.Decorate("Correlation")
		return nil, err
	}
	n := mobile.NVecs()
	if n != target.NVecs() {
		err := new(CError)
		err.msg = fmt.Sprintf("Mismatched number of points: %d, %d", n, target.NVecs())
		err.Decorate("Correlation")
		return nil, err
	}
	if _, err := checkWeights(weights, n, "Correlation"); err != nil {
		return nil, err
	}
	var h [3][3]float64
	for k := 0; k < n; k++ {
		m := mobile.RawRowView(k)
		t := target.RawRowView(k)
		w := 1.0
		if weights != nil {
			w = weights[k]
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				h[i][j] += w * m[i] * t[j]
			}
		}
	}
	H := v3.Zeros(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			H.Set(i, j, h[i][j])
		}
	}
	return H, nil
}

//Rotator returns the proper rotation that best superimposes the point set
//from which the rows of the given correlation matrix were built on the set
//its columns were built from, i.e. the rotation R minimizing the weighted
//square deviation when applied to the (centered) mobile set as x*R.
//
//The rotation comes from a singular value decomposition of the correlation
//matrix, H = U*S*V^T, as R = U*D*V^T, where D flips the last singular
//direction if the unconstrained optimum would be a reflection. R is thus
//always a proper rotation (det(R)=1), also for mirror-image sets.
//
//If the correlation matrix does not determine a unique optimum (fewer than
//two non-negligible singular values, as happens for collinear or coincident
//point sets) Rotator still returns one of the optimal proper rotations,
//unless strict is given and true, in which case it returns a
//DegenerateInput error.
func Rotator(correlation *v3.Matrix, strict ...bool) (*v3.Matrix, error) {
	if correlation == nil || correlation.NVecs() != 3 {
		err := new(CError)
		err.msg = "The correlation matrix must be 3x3"
		err.Decorate("Rotator")
		return nil, err
	}
	var svd mat.SVD
	if ok := svd.Factorize(correlation.Dense, mat.SVDFull); !ok {
		err := new(CError)
		err.msg = "SVD of the correlation matrix failed to converge"
		err.Decorate("Rotator")
		return nil, err
	}
	u := new(mat.Dense)
	v := new(mat.Dense)
	svd.UTo(u)
	svd.VTo(v)
	if len(strict) > 0 && strict[0] {
		vals := svd.Values(nil)
		if vals[0] <= appzero || vals[1] <= appzero*vals[0] {
			err := new(degenerateError)
			err.msg = fmt.Sprintf("Singular values %v do not determine a unique rotation", vals)
			err.Decorate("Rotator")
			return nil, err
		}
	}
	if mat.Det(u)*mat.Det(v) < 0 {
		//the unconstrained optimum is a reflection: flip the last
		//singular direction to get the best proper rotation instead.
		for i := 0; i < 3; i++ {
			u.Set(i, 2, -u.At(i, 2))
		}
	}
	R := v3.Zeros(3)
	R.Mul(u, v.T())
	return R, nil
}
