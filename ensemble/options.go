package ensemble

import (
	"runtime"

	v3 "github.com/rmera/superpose/v3"
)

//Options contains various options for the functions that work on
//conformer ensembles.
type Options struct {
	cpus          int
	strict        bool
	weights       []float64
	fitIndexes    []int
	reference     *v3.Matrix
	maxIterations int
}

//DefaultOptions returns reasonable options for ensembles of conformers:
//all logical CPUs, uniform weights, a fit on every point, and non-strict
//handling of degenerate sets.
func DefaultOptions() *Options {
	r := new(Options)
	r.cpus = runtime.NumCPU()
	//all available CPUs
	r.strict = false
	r.maxIterations = 100 //just a reasonable value.
	return r
}

//Cpus returns the number of goroutines to be used,
//and sets it to a new value, if given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

//Strict returns whether a fit that does not determine a unique rotation
//is treated as an error, and sets the behavior to a new value, if given.
func (O *Options) Strict(s ...bool) bool {
	if len(s) > 0 {
		O.strict = s[0]
	}
	return O.strict
}

//Weights returns the per-point weights for the fits, and sets them to a
//new value, if given. A nil value means uniform weights. The slice must
//have one element per fitted point.
func (O *Options) Weights(w ...[]float64) []float64 {
	if len(w) > 0 && w[0] != nil {
		O.weights = w[0]
	}
	return O.weights
}

//FitIndexes returns the indexes of the points used for the fits, and sets
//them to new values, if those are given. A nil value means that every
//point is used.
func (O *Options) FitIndexes(ind ...[]int) []int {
	if len(ind) > 0 {
		O.fitIndexes = ind[0]
	}
	return O.fitIndexes
}

//Reference returns the conformer on which the others are superimposed,
//and sets it to a new value, if given. A nil value means that the first
//conformer of the ensemble is used.
func (O *Options) Reference(ref ...*v3.Matrix) *v3.Matrix {
	if len(ref) > 0 && ref[0] != nil {
		O.reference = ref[0]
	}
	return O.reference
}

//MaxIterations returns the largest number of iterations allowed before
//the search for the most rigid points gives up, and sets it to a new
//value, if given.
func (O *Options) MaxIterations(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.maxIterations = n[0]
	}
	return O.maxIterations
}
