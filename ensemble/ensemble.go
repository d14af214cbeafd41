/*
 * ensemble.go, part of superpose.
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

//Package ensemble implements operations over sets of conformers of the
//same structure: concurrent superposition on a common reference, mean
//structures, per-point fluctuations, pairwise-RMSD matrices and the
//search for the most rigid core of an ensemble.
package ensemble

import (
	"fmt"
	"math"

	"github.com/rmera/superpose"
	v3 "github.com/rmera/superpose/v3"
	"gonum.org/v1/gonum/mat"
)

//checkEnsemble verifies that the ensemble is not empty, that no conformer
//is nil and that all conformers have the same number of points, which it
//returns.
func checkEnsemble(confs []*v3.Matrix, caller string) (int, error) {
	if len(confs) == 0 {
		return -1, fmt.Errorf("%s: empty ensemble given", caller)
	}
	if confs[0] == nil {
		return -1, fmt.Errorf("%s: nil conformer 0", caller)
	}
	vecs := confs[0].NVecs()
	for i, v := range confs[1:] {
		if v == nil {
			return -1, fmt.Errorf("%s: nil conformer %d", caller, i+1)
		}
		if v.NVecs() != vecs {
			return -1, fmt.Errorf("%s: conformer %d has %d points, not %d", caller, i+1, v.NVecs(), vecs)
		}
	}
	return vecs, nil
}

type alignanderr struct {
	res *superpose.Result
	err error
}

func concalign(c, ref *v3.Matrix, indexes []int, so *superpose.Options, r chan *alignanderr) {
	var res *superpose.Result
	var err error
	if indexes != nil {
		res, err = superpose.AlignSubset(c, ref, indexes, so)
	} else {
		res, err = superpose.Align(c, ref, so)
	}
	r <- &alignanderr{res: res, err: err}
}

//Align superimposes every conformer of the ensemble on ref, concurrently,
//in sets of Cpus conformers at a time. If FitIndexes is set in the options,
//only those points drive each fit, while the transformation is still
//applied to whole conformers. Weights and Strict are taken from the
//options. The input conformers are not modified.
func Align(confs []*v3.Matrix, ref *v3.Matrix, options ...*Options) ([]*superpose.Result, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	vecs, err := checkEnsemble(confs, "Align")
	if err != nil {
		return nil, err
	}
	if ref == nil || ref.NVecs() != vecs {
		return nil, fmt.Errorf("Align: the reference must have %d points", vecs)
	}
	so := superpose.DefaultOptions()
	so.Strict(o.strict)
	if o.weights != nil {
		so.Weights(o.weights)
	}
	chunksize := o.Cpus()
	results := make([]chan *alignanderr, chunksize)
	for i := range results {
		results[i] = make(chan *alignanderr, 1)
		//buffered, so the goroutines left in a chunk can still finish
		//if we bail out on an error from an earlier conformer.
	}
	ret := make([]*superpose.Result, len(confs))
	for start := 0; start < len(confs); start += chunksize {
		end := start + chunksize
		if end > len(confs) {
			end = len(confs)
		}
		for i, v := range confs[start:end] {
			go concalign(v, ref, o.fitIndexes, so, results[i])
		}
		for i := range confs[start:end] {
			r := <-results[i]
			if r.err != nil {
				return nil, r.err
			}
			ret[start+i] = r.res
		}
	}
	return ret, nil
}

//Mean returns the coordinate-wise average of the conformers, which are
//assumed to be already superimposed.
func Mean(confs []*v3.Matrix) (*v3.Matrix, error) {
	vecs, err := checkEnsemble(confs, "Mean")
	if err != nil {
		return nil, err
	}
	mean := v3.Zeros(vecs)
	for _, v := range confs {
		mean.Add(mean, v)
	}
	mean.Scale(1/float64(len(confs)), mean)
	return mean, nil
}

//RMSF returns, for every point, the root-mean-square fluctuation of the
//conformers about their mean structure. The conformers are assumed to be
//already superimposed: RMSF only measures internal motion if the rigid
//part has been removed first, say, with Align.
func RMSF(confs []*v3.Matrix) ([]float64, error) {
	vecs, err := checkEnsemble(confs, "RMSF")
	if err != nil {
		return nil, err
	}
	mean, err := Mean(confs)
	if err != nil {
		return nil, err
	}
	rmsf := make([]float64, vecs)
	diff := v3.Zeros(vecs)
	for _, v := range confs {
		diff.Sub(v, mean)
		for i := 0; i < vecs; i++ {
			d := diff.RawRowView(i)
			rmsf[i] += d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
		}
	}
	for i, v := range rmsf {
		rmsf[i] = math.Sqrt(v / float64(len(confs)))
	}
	return rmsf, nil
}

type pairanderr struct {
	rmsd float64
	err  error
}

type pair struct {
	i, j int
}

func concrmsd(a, b *v3.Matrix, so *superpose.Options, r chan *pairanderr) {
	res, err := superpose.Align(a, b, so)
	if err != nil {
		r <- &pairanderr{err: err}
		return
	}
	r <- &pairanderr{rmsd: res.RMSD}
}

//RMSDMatrix returns the matrix of pairwise minimized RMSDs between the
//conformers: element i,j holds the RMSD between conformers i and j after
//their optimal superposition, so the matrix is symmetric with a zero
//diagonal. Pairs are processed concurrently, in sets of Cpus at a time.
//Weights and Strict are taken from the options.
func RMSDMatrix(confs []*v3.Matrix, options ...*Options) (*mat.SymDense, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	if _, err := checkEnsemble(confs, "RMSDMatrix"); err != nil {
		return nil, err
	}
	so := superpose.DefaultOptions()
	so.Strict(o.strict)
	if o.weights != nil {
		so.Weights(o.weights)
	}
	pairs := make([]pair, 0, len(confs)*(len(confs)-1)/2)
	for i := 0; i < len(confs); i++ {
		for j := i + 1; j < len(confs); j++ {
			pairs = append(pairs, pair{i: i, j: j})
		}
	}
	chunksize := o.Cpus()
	results := make([]chan *pairanderr, chunksize)
	for i := range results {
		results[i] = make(chan *pairanderr, 1)
	}
	M := mat.NewSymDense(len(confs), nil)
	for start := 0; start < len(pairs); start += chunksize {
		end := start + chunksize
		if end > len(pairs) {
			end = len(pairs)
		}
		for i, p := range pairs[start:end] {
			go concrmsd(confs[p.i], confs[p.j], so, results[i])
		}
		for i, p := range pairs[start:end] {
			r := <-results[i]
			if r.err != nil {
				return nil, r.err
			}
			M.SetSym(p.i, p.j, r.rmsd)
		}
	}
	return M, nil
}
