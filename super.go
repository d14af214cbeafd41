/*
 * super.go, part of superpose.
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
)

//Result holds the outcome of a superposition.
type Result struct {
	//The weighted RMSD between the aligned set and the target, i.e. the
	//minimized value. For AlignSubset it is the plain RMSD over the full
	//sets, while the fit itself only used the given sub-set.
	RMSD float64
	//The optimal rotation, a 3x3 matrix that acts on row vectors from
	//the right: a point x is rotated as x*R.
	Rotation *v3.Matrix
	//The difference between the target and mobile (fit) centroids, as a
	//single vector in the un-rotated frame. The full transformation is:
	//subtract the mobile centroid, rotate, add the target centroid.
	Translation *v3.Matrix
	//The transformed copy of the whole mobile set.
	Aligned *v3.Matrix
}

//String returns a string representation of the Result, without the
//aligned coordinates.
func (R *Result) String() string {
	return fmt.Sprintf("RMSD: %.4f, Rotation: %v, Translation: %v", R.RMSD, R.Rotation, R.Translation)
}

//Align superimposes the mobile set of points on the target set, minimizing
//the weighted RMSD between them over all rigid transformations. It returns
//the transformed copy of mobile together with the minimized RMSD and the
//rotation and translation that produce it. The inputs are not modified.
//Both sets must have the same, non-zero number of points. Weights, and the
//strict handling of degenerate sets, are taken from the options.
func Align(mobile, target *v3.Matrix, options ...*Options) (*Result, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	if mobile == nil || target == nil {
		err := new(CError)
		err.msg = "Nil matrix given"
		err.Decorate("Align")
		return nil, err
	}
	n := mobile.NVecs()
	if n != target.NVecs() {
		err := new(CError)
		err.msg = fmt.Sprintf("Mismatched number of points: %d, %d", n, target.NVecs())
		err.Decorate("Align")
		return nil, err
	}
	cmobile, mcen, err := Center(mobile, o.weights)
	if err != nil {
		return nil, errDecorate(err, "Align")
	}
	ctarget, tcen, err := Center(target, o.weights)
	if err != nil {
		return nil, errDecorate(err, "Align")
	}
	H, err := Correlation(cmobile, ctarget, o.weights)
	if err != nil {
		return nil, errDecorate(err, "Align")
	}
	rot, err := Rotator(H, o.strict)
	if err != nil {
		return nil, errDecorate(err, "Align")
	}
	aligned := v3.Zeros(n)
	aligned.Mul(cmobile, rot)
	aligned.AddVec(aligned, tcen)
	rmsd, err := MemRMSD(aligned, target, cmobile, o.weights) //cmobile is not needed anymore, so we reuse it
	if err != nil {
		return nil, errDecorate(err, "Align")
	}
	trans := v3.Zeros(1)
	trans.Sub(tcen, mcen)
	return &Result{RMSD: rmsd, Rotation: rot, Translation: trans, Aligned: aligned}, nil
}

//AlignSubset determines the best rotation and translation to superimpose
//the points of mobile listed in indices on the points of target listed in
//indices, and applies them to the whole mobile set. Thus, non-identical
//sets can be superimposed by fitting on their common core. The returned
//RMSD is the plain RMSD over the full sets, while Rotation and Translation
//describe the sub-set fit. The inputs are not modified.
//
//Every index must be within range and appear only once. If weights are
//given in the options, the slice must have one element per index, and it
//only affects the fit: the reported RMSD stays uniform.
func AlignSubset(mobile, target *v3.Matrix, indices []int, options ...*Options) (*Result, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	if mobile == nil || target == nil {
		err := new(CError)
		err.msg = "Nil matrix given"
		err.Decorate("AlignSubset")
		return nil, err
	}
	n := mobile.NVecs()
	if n != target.NVecs() {
		err := new(CError)
		err.msg = fmt.Sprintf("Mismatched number of points: %d, %d", n, target.NVecs())
		err.Decorate("AlignSubset")
		return nil, err
	}
	if len(indices) == 0 {
		err := new(CError)
		err.msg = "Empty set of indices for the fit"
		err.Decorate("AlignSubset")
		return nil, err
	}
	for i, v := range indices {
		if v < 0 || v >= n {
			err := new(CError)
			err.msg = fmt.Sprintf("Index %d out of range for %d points", v, n)
			err.Decorate("AlignSubset")
			return nil, err
		}
		if isInInt(v, indices[i+1:]) {
			err := new(CError)
			err.msg = fmt.Sprintf("Index %d appears more than once", v)
			err.Decorate("AlignSubset")
			return nil, err
		}
	}
	submobile := v3.Zeros(len(indices))
	submobile.SomeVecs(mobile, indices)
	subtarget := v3.Zeros(len(indices))
	subtarget.SomeVecs(target, indices)
	csub, mcen, err := Center(submobile, o.weights)
	if err != nil {
		return nil, errDecorate(err, "AlignSubset")
	}
	ctsub, tcen, err := Center(subtarget, o.weights)
	if err != nil {
		return nil, errDecorate(err, "AlignSubset")
	}
	H, err := Correlation(csub, ctsub, o.weights)
	if err != nil {
		return nil, errDecorate(err, "AlignSubset")
	}
	rot, err := Rotator(H, o.strict)
	if err != nil {
		return nil, errDecorate(err, "AlignSubset")
	}
	//the sub-set determined the transformation; now every point gets it
	aligned := v3.Zeros(n)
	aligned.SubVec(mobile, mcen)
	aligned.Mul(aligned, rot)
	aligned.AddVec(aligned, tcen)
	rmsd, err := RMSD(aligned, target)
	if err != nil {
		return nil, errDecorate(err, "AlignSubset")
	}
	trans := v3.Zeros(1)
	trans.Sub(tcen, mcen)
	return &Result{RMSD: rmsd, Rotation: rot, Translation: trans, Aligned: aligned}, nil
}

//isInInt returns true if test is in container, false otherwise.
func isInInt(test int, container []int) bool {
	if container == nil {
		return false
	}
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
