/*
 * rmsd.go, part of superpose.
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
	"math"

	v3 "github.com/rmera/superpose/v3"
)

//RMSD returns the weighted root-mean-square deviation between the sets of
//points test and template, in their current positions: no fit is performed.
//A nil weights slice means uniform weights. The RMSD between two nil
//(empty) sets is 0 by definition.
func RMSD(test, template *v3.Matrix, weights ...[]float64) (float64, error) {
	if test == nil && template == nil {
		return 0, nil
	}
	if test == nil || template == nil {
		err := new(CError)
		err.msg = "Only one of the matrices is nil"
		err.Decorate("RMSD")
		return -1, err
	}
	return MemRMSD(test, template, v3.Zeros(test.NVecs()), weights...)
}

//MemRMSD is as RMSD, but takes a matrix tmp with the same dimensions as
//test and template, where intermediate values are kept, so the function
//performs no allocation. Used in loops, it saves the garbage collector
//some work.
func MemRMSD(test, template, tmp *v3.Matrix, weights ...[]float64) (float64, error) {
	if test == nil || template == nil || tmp == nil {
		err := new(CError)
		err.msg = "Nil matrix given"
		err.Decorate("MemRMSD")
		return -1, err
	}
	n := test.NVecs()
	if n != template.NVecs() || n != tmp.NVecs() {
		err := new(CError)
		err.msg = fmt.Sprintf("Ill formed matrices for RMSD calculation: %d, %d and %d points", n, template.NVecs(), tmp.NVecs())
		err.Decorate("MemRMSD")
		return -1, err
	}
	var w []float64
	if len(weights) > 0 {
		w = weights[0]
	}
	total, err := checkWeights(w, n, "MemRMSD")
	if err != nil {
		return -1, err
	}
	tmp.Sub(test, template)
	var rmsd float64
	for i := 0; i < n; i++ {
		d := tmp.RawRowView(i)
		sq := d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
		if w != nil {
			sq *= w[i]
		}
		rmsd += sq
	}
	return math.Sqrt(rmsd / total), nil
}
