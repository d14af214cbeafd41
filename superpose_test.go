/*
 * superpose_test.go, part of superpose.
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
	"testing"

	v3 "github.com/rmera/superpose/v3"
	"gonum.org/v1/gonum/mat"
)

func TestCentroidAndTranslate(Te *testing.T) {
	points, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	if err != nil {
		Te.Error(err)
	}
	cen, err := Centroid(points, []float64{1, 3})
	if err != nil {
		Te.Error(err)
	}
	want, _ := v3.NewMatrix([]float64{0.75, 0, 0})
	if !mat.EqualApprox(cen, want, appzero) {
		Te.Error("wrong weighted centroid", cen)
	}
	centered, cen2, err := Center(points, nil)
	if err != nil {
		Te.Error(err)
	}
	if cen2.At(0, 0) != 0.5 {
		Te.Error("wrong uniform centroid", cen2)
	}
	recen, err := Centroid(centered, nil)
	if err != nil {
		Te.Error(err)
	}
	if recen.Norm(2) > appzero {
		Te.Error("a centered set should have its centroid on the origin", recen)
	}
	//the empty set
	ecen, err := Centroid(nil, nil)
	if err != nil {
		Te.Error(err)
	}
	if ecen.Norm(2) != 0 {
		Te.Error("the centroid of the empty set should be the origin", ecen)
	}
	ecentered, ecen2, err := Center(nil, nil)
	if err != nil {
		Te.Error(err)
	}
	if ecentered != nil || ecen2.Norm(2) != 0 {
		Te.Error("centering the empty set should yield an empty set on the origin")
	}
	if _, err := Centroid(nil, []float64{1, 2}); err == nil {
		Te.Error("weights for the empty set are still a mismatch")
	}
	if _, err := Centroid(points, []float64{1, 2, 3}); err == nil {
		Te.Error("Centroid should reject a weight slice of the wrong length")
	}
	vec, _ := v3.NewMatrix([]float64{1, 2, 3})
	moved, err := Translate(points, vec)
	if err != nil {
		Te.Error(err)
	}
	if moved.At(0, 0) != 1 || moved.At(1, 2) != 3 || points.At(0, 0) != 0 {
		Te.Error("Translate should add the vector to a copy of every point", moved)
	}
	empty, err := Translate(nil, vec)
	if err != nil || empty != nil {
		Te.Error("translating the empty set should yield the empty set", err)
	}
	if _, err := Translate(points, points); err == nil {
		Te.Error("the translation must be a single vector")
	}
	fmt.Println("translated", moved)
}

func TestRMSDValues(Te *testing.T) {
	test, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	template := v3.Zeros(2)
	rmsd, err := RMSD(test, template)
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(rmsd-math.Sqrt(0.5)) > appzero {
		Te.Error("wrong uniform RMSD", rmsd)
	}
	//a zero weight takes the first point out of the game
	rmsd, err = RMSD(test, template, []float64{0, 1})
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(rmsd-1) > appzero {
		Te.Error("wrong weighted RMSD", rmsd)
	}
	//the empty case
	rmsd, err = RMSD(nil, nil)
	if err != nil || rmsd != 0 {
		Te.Error("the RMSD between empty sets should be 0", rmsd, err)
	}
	if _, err = RMSD(test, nil); err == nil {
		Te.Error("RMSD should reject a single empty set")
	}
	three := v3.Zeros(3)
	if _, err = RMSD(test, three); err == nil {
		Te.Error("RMSD should reject sets with different numbers of points")
	}
	if _, err = RMSD(test, template, []float64{1}); err == nil {
		Te.Error("RMSD should reject a weight slice of the wrong length")
	}
	if _, err = RMSD(test, template, []float64{1, -1}); err == nil {
		Te.Error("RMSD should reject negative weights")
	}
	if _, err = RMSD(test, template, []float64{0, 0}); err == nil {
		Te.Error("RMSD should reject a total weight of zero")
	}
	//MemRMSD with a reused buffer
	tmp := v3.Zeros(2)
	r1, err := MemRMSD(test, template, tmp)
	if err != nil {
		Te.Error(err)
	}
	r2, err := MemRMSD(test, template, tmp)
	if err != nil {
		Te.Error(err)
	}
	if r1 != r2 {
		Te.Error("MemRMSD should give the same result on a reused buffer", r1, r2)
	}
}

func TestAlignIdentical(Te *testing.T) {
	mobile, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	if err != nil {
		Te.Error(err)
	}
	target := v3.Zeros(2)
	target.Copy(mobile)
	r, err := Align(mobile, target)
	if err != nil {
		Te.Error(err)
	}
	if r.RMSD > appzero {
		Te.Error("identical sets should align with zero RMSD", r.RMSD)
	}
	if r.Translation.Norm(2) > appzero {
		Te.Error("identical sets need no translation", r.Translation)
	}
	if !mat.EqualApprox(r.Aligned, mobile, appzero) {
		Te.Error("aligning identical sets should not move the points", r.Aligned)
	}
	if !properRotation(r.Rotation) {
		Te.Error("improper rotation", r.Rotation)
	}
	fmt.Println(r.String())
}

func TestAlignRotated(Te *testing.T) {
	target, err := v3.NewMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, 2})
	if err != nil {
		Te.Error(err)
	}
	Q, err := RotatorAroundZ(math.Pi / 2)
	if err != nil {
		Te.Error(err)
	}
	mobile := v3.Zeros(target.NVecs())
	mobile.Mul(target, Q)
	r, err := Align(mobile, target)
	if err != nil {
		Te.Error(err)
	}
	if r.RMSD > 1e-6 {
		Te.Error("a rotated copy should align exactly", r.RMSD)
	}
	Qinv, _ := RotatorAroundZ(-math.Pi / 2)
	if !mat.EqualApprox(r.Rotation, Qinv, 1e-6) {
		Te.Error("the rotation back was not recovered", r.Rotation, Qinv)
	}
	if !mat.EqualApprox(r.Aligned, target, 1e-6) {
		Te.Error("the aligned set doesn't match the target", r.Aligned)
	}
	//aligning the aligned set again should change nothing
	r2, err := Align(r.Aligned, target)
	if err != nil {
		Te.Error(err)
	}
	if !mat.EqualApprox(r2.Aligned, r.Aligned, 1e-8) {
		Te.Error("aligning twice moved the points", r2.Aligned)
	}
	if math.Abs(r2.RMSD-r.RMSD) > 1e-8 {
		Te.Error("aligning twice changed the RMSD", r.RMSD, r2.RMSD)
	}
	fmt.Println("recovered rotation", r.Rotation)
}

//The best fit of a "bond" of length 2 on one of length 1, with both on the
//same line, leaves each point half a unit away from its counterpart.
func TestAlignBondLengths(Te *testing.T) {
	mobile, _ := v3.NewMatrix([]float64{0, 0, 0, 2, 0, 0})
	target, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	before, err := RMSD(mobile, target)
	if err != nil {
		Te.Error(err)
	}
	r, err := Align(mobile, target)
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(r.RMSD-0.5) > appzero {
		Te.Error("the best RMSD here is exactly 0.5, got", r.RMSD)
	}
	if r.RMSD > before {
		Te.Error("aligning should never increase the deviation", before, r.RMSD)
	}
	fmt.Println(r.String())
}

func ExampleAlign() {
	mobile, _ := v3.NewMatrix([]float64{0, 0, 0, 2, 0, 0})
	target, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	r, err := Align(mobile, target)
	if err != nil {
		panic(err.Error())
	}
	fmt.Printf("RMSD: %f\n", r.RMSD)
	// Output:
	// RMSD: 0.500000
}

func TestAlignTranslationInvariance(Te *testing.T) {
	mobile, err := v3.NewMatrix([]float64{
		0.1, 0.2, 0.3,
		1.5, -0.4, 0.9,
		-1.1, 2.0, 0.6,
		0.8, 1.3, -1.7})
	if err != nil {
		Te.Error(err)
	}
	target, err := v3.NewMatrix([]float64{
		2.0, 0.1, 0.4,
		0.3, 1.8, -0.2,
		1.1, -0.9, 1.5,
		-0.6, 0.7, 2.2})
	if err != nil {
		Te.Error(err)
	}
	before, err := RMSD(mobile, target)
	if err != nil {
		Te.Error(err)
	}
	r1, err := Align(mobile, target)
	if err != nil {
		Te.Error(err)
	}
	if r1.RMSD > before+appzero {
		Te.Error("aligning should never increase the deviation", before, r1.RMSD)
	}
	shift, _ := v3.NewMatrix([]float64{10, -5, 3})
	moved, err := Translate(mobile, shift)
	if err != nil {
		Te.Error(err)
	}
	r2, err := Align(moved, target)
	if err != nil {
		Te.Error(err)
	}
	if !mat.EqualApprox(r1.Aligned, r2.Aligned, 1e-8) {
		Te.Error("a rigid shift of the mobile set changed the aligned coordinates")
	}
	if !mat.EqualApprox(r1.Rotation, r2.Rotation, 1e-8) {
		Te.Error("a rigid shift of the mobile set changed the rotation")
	}
	if math.Abs(r1.RMSD-r2.RMSD) > 1e-8 {
		Te.Error("a rigid shift of the mobile set changed the RMSD", r1.RMSD, r2.RMSD)
	}
	fmt.Println("shifted and unshifted RMSD", r1.RMSD, r2.RMSD)
}

func TestAlignWeights(Te *testing.T) {
	mobile, _ := v3.NewMatrix([]float64{
		0.1, 0.2, 0.3,
		1.5, -0.4, 0.9,
		-1.1, 2.0, 0.6,
		0.8, 1.3, -1.7})
	target, _ := v3.NewMatrix([]float64{
		2.0, 0.1, 0.4,
		0.3, 1.8, -0.2,
		1.1, -0.9, 1.5,
		-0.6, 0.7, 2.2})
	//uniform weights and no weights must be the same thing
	o := DefaultOptions()
	o.Weights([]float64{2.5, 2.5, 2.5, 2.5})
	rw, err := Align(mobile, target, o)
	if err != nil {
		Te.Error(err)
	}
	runi, err := Align(mobile, target)
	if err != nil {
		Te.Error(err)
	}
	if !mat.EqualApprox(rw.Aligned, runi.Aligned, 1e-8) {
		Te.Error("uniform weights should behave as no weights at all")
	}
	if math.Abs(rw.RMSD-runi.RMSD) > 1e-8 {
		Te.Error("uniform weights changed the RMSD", rw.RMSD, runi.RMSD)
	}
	//a real weighted fit. The reported RMSD uses the same weights.
	w := []float64{1, 1, 1, 1000}
	ow := DefaultOptions()
	ow.Weights(w)
	if ow.Weights() == nil {
		Te.Error("the weights were not set")
	}
	rh, err := Align(mobile, target, ow)
	if err != nil {
		Te.Error(err)
	}
	if !properRotation(rh.Rotation) {
		Te.Error("improper rotation from a weighted fit", rh.Rotation)
	}
	check, err := RMSD(rh.Aligned, target, w)
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(check-rh.RMSD) > appzero {
		Te.Error("the reported RMSD doesn't match a direct calculation", rh.RMSD, check)
	}
	fmt.Println("weighted RMSD", rh.RMSD)
	//bad weights
	for _, w := range [][]float64{{1, 2}, {1, -1, 1, 1}, {0, 0, 0, 0}} {
		bad := DefaultOptions()
		bad.Weights(w)
		if _, err := Align(mobile, target, bad); err == nil {
			Te.Error("Align should have rejected the weights", w)
		}
	}
}

//Fits on a sub-set of the points, applies the transformation to all of
//them, and checks that the result matches doing the same by hand.
func TestAlignSubset(Te *testing.T) {
	mobile, err := v3.NewMatrix([]float64{
		0, 0, 0,
		1, 0, 0,
		5, 5, 5,
		-3, 2, 1})
	if err != nil {
		Te.Error(err)
	}
	target, err := v3.NewMatrix([]float64{
		1, 2, 3,
		1, 3, 3,
		0, 0, 0,
		2, 2, 2})
	if err != nil {
		Te.Error(err)
	}
	indices := []int{0, 1}
	sr, err := AlignSubset(mobile, target, indices)
	if err != nil {
		Te.Error(err)
	}
	//now the same by hand: align the sub-sets, apply to everything
	submob := v3.Zeros(len(indices))
	submob.SomeVecs(mobile, indices)
	subtarg := v3.Zeros(len(indices))
	subtarg.SomeVecs(target, indices)
	rr, err := Align(submob, subtarg)
	if err != nil {
		Te.Error(err)
	}
	if !mat.EqualApprox(sr.Rotation, rr.Rotation, appzero) {
		Te.Error("the sub-set fit should give the same rotation as aligning the sub-sets", sr.Rotation, rr.Rotation)
	}
	mcen, err := Centroid(submob, nil)
	if err != nil {
		Te.Error(err)
	}
	tcen, err := Centroid(subtarg, nil)
	if err != nil {
		Te.Error(err)
	}
	applied := v3.Zeros(mobile.NVecs())
	applied.SubVec(mobile, mcen)
	applied.Mul(applied, rr.Rotation)
	applied.AddVec(applied, tcen)
	if !mat.EqualApprox(sr.Aligned, applied, appzero) {
		Te.Error("the transformation was not applied to the whole set as expected")
	}
	//the reported RMSD covers the whole sets, not just the fitted core
	full, err := RMSD(sr.Aligned, target)
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(full-sr.RMSD) > appzero {
		Te.Error("the RMSD should be taken over the full sets", full, sr.RMSD)
	}
	fmt.Println("sub-set fit", sr.String())
	//bad index lists
	for _, ind := range [][]int{{}, {0, 4}, {-1, 1}, {0, 1, 0}} {
		if _, err := AlignSubset(mobile, target, ind); err == nil {
			Te.Error("AlignSubset should have rejected the indices", ind)
		}
	}
}

func TestAlignStrict(Te *testing.T) {
	//collinear sets do not pin down a unique rotation
	mobile, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0, 2, 0, 0})
	target, _ := v3.NewMatrix([]float64{0, 0, 0, 0, 1, 0, 0, 2, 0})
	r, err := Align(mobile, target)
	if err != nil {
		Te.Error(err)
	}
	if !properRotation(r.Rotation) {
		Te.Error("even a degenerate input should yield a proper rotation by default", r.Rotation)
	}
	o := DefaultOptions()
	o.Strict(true)
	_, err = Align(mobile, target, o)
	if err == nil {
		Te.Error("collinear sets should be an error in strict mode")
	}
	if _, ok := err.(DegenerateInput); !ok {
		Te.Error("the error should be a DegenerateInput", err)
	}
	fmt.Println("error obtained, as expected:", err)
	//a well behaved input doesn't trigger strict mode
	well, _ := v3.NewMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, 2})
	if _, err := Align(well, well, o); err != nil {
		Te.Error("strict mode should not reject a well behaved input", err)
	}
}

func TestMaxDisplacement(Te *testing.T) {
	test, _ := v3.NewMatrix([]float64{0, 0, 0, 0, 3, 0, 3, 0, 0})
	template := v3.Zeros(3)
	d, index, err := MaxDisplacement(test, template)
	if err != nil {
		Te.Error(err)
	}
	if d != 3 {
		Te.Error("wrong maximum displacement", d)
	}
	if index != 1 {
		Te.Error("on a tie, the lowest index wins", index)
	}
	if _, _, err := MaxDisplacement(nil, nil); err == nil {
		Te.Error("there is no maximum displacement between empty sets")
	}
	if _, _, err := MaxDisplacement(test, v3.Zeros(2)); err == nil {
		Te.Error("MaxDisplacement should reject sets with different numbers of points")
	}
	//Displacements reuses the given buffer when it can
	buf := make([]float64, 0, 10)
	all, err := Displacements(test, template, buf)
	if err != nil {
		Te.Error(err)
	}
	if len(all) != 3 || cap(all) != 10 {
		Te.Error("the buffer was not reused", len(all), cap(all))
	}
	if all[0] != 0 || all[1] != 3 || all[2] != 3 {
		Te.Error("wrong displacements", all)
	}
	fmt.Println("displacements", all)
}
