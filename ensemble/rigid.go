package ensemble

import (
	"fmt"
	"log"
	"sort"
	"strings"

	v3 "github.com/rmera/superpose/v3"
	"gonum.org/v1/gonum/stat"
)

//RigidReturn contains the information returned by MostRigid.
type RigidReturn struct {
	N          int
	Indexes    []int     //the N most rigid points, most rigid first
	RMSF       []float64 //the RMSF for all points, not only the N most rigid.
	Iterations int       //The iterations that were needed for convergency.
}

//String returns a string representation of the RigidReturn object.
func (R *RigidReturn) String() string {
	return fmt.Sprintf("N: %d, Indexes: %v, RMSF: %v, Iterations needed: %d", R.N, R.Indexes, R.RMSF, R.Iterations)
}

//PyMOLSel returns a string of text to create a PyMOL selection
//with the R.N most rigid points. PyMOL ids start from 1.
func (R *RigidReturn) PyMOLSel() string {
	pymolsele := "select rigid,"
	for i, v := range R.Indexes {
		pymolsele += fmt.Sprintf(" id %d ", v+1)
		if i < len(R.Indexes)-1 {
			pymolsele += "or"
		}
	}
	return pymolsele
}

//Stats returns the mean and standard deviation of the RMSF over all
//points, plus its quartiles.
func (R *RigidReturn) Stats() (float64, float64, []float64) {
	mean := stat.Mean(R.RMSF, nil)
	std := stat.StdDev(R.RMSF, nil)
	s := make([]float64, len(R.RMSF))
	copy(s, R.RMSF)
	sort.Float64s(s)
	quarts := make([]float64, 3)
	for i, v := range []float64{0.25, 0.5, 0.75} {
		quarts[i] = stat.Quantile(v, stat.Empirical, s, nil)
	}
	return mean, std, quarts
}

//MostRigid returns the n points of the ensemble with the smallest
//fluctuation about the mean, determined the LOVO way: the ensemble is
//first superimposed fitting on every point, then, repeatedly, the points
//are ranked by their RMSF and the ensemble is superimposed again fitting
//only on the n least mobile ones, until the selection stops changing.
//The reference for the superpositions is taken from the options, or the
//first conformer if none is given. Fits are uniform-weight.
//If you use this function in your research, please cite the reference
//for the LOVO alignment method: 10.1371/journal.pone.0119264.
func MostRigid(confs []*v3.Matrix, n int, options ...*Options) (*RigidReturn, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	vecs, err := checkEnsemble(confs, "MostRigid")
	if err != nil {
		return nil, err
	}
	if n <= 0 || n > vecs {
		return nil, fmt.Errorf("MostRigid: can't take the %d most rigid points out of %d", n, vecs)
	}
	ref := o.Reference()
	if ref == nil {
		ref = confs[0]
	}
	if ref.NVecs() != vecs {
		return nil, fmt.Errorf("MostRigid: the reference has %d points, not %d", ref.NVecs(), vecs)
	}
	ao := DefaultOptions()
	ao.Cpus(o.Cpus())
	ao.Strict(o.strict)
	fullindexes := make([]int, vecs)
	for i := range fullindexes {
		fullindexes[i] = i
	}
	//we first do one iteration fitting on the whole thing.
	rmsf, err := alignOn(confs, ref, fullindexes, ao)
	if err != nil {
		return nil, err
	}
	F := newFluct(fullindexes, rmsf)
	F.SortBy("rmsf")
	indexesold := F.IndexesCopy()
	var itercount int
	for {
		rmsf, err = alignOn(confs, ref, indexesold[0:n], ao)
		if err != nil {
			return nil, err
		}
		itercount++
		F = newFluct(fullindexes, rmsf)
		F.SortBy("rmsf")
		indexes := F.IndexesCopy()
		if sameElementsInt(indexes[0:n], indexesold[0:n]) {
			break //converged
		}
		if itercount >= o.MaxIterations() {
			log.Printf("MostRigid: No convergency after %d iterations, with %d points still in dispute. The last selection will be returned", itercount, disagreementInt(indexes[0:n], indexesold[0:n]))
			indexesold = indexes
			break
		}
		indexesold = indexes
	}
	//Now indexesold should contain what we want
	F.SortBy("index")
	r := &RigidReturn{N: n, Indexes: indexesold[0:n], RMSF: F.rMSFs, Iterations: itercount}
	return r, nil
}

//alignOn superimposes the ensemble on ref fitting on the given points,
//and returns the RMSF of the aligned conformers.
func alignOn(confs []*v3.Matrix, ref *v3.Matrix, indexes []int, o *Options) ([]float64, error) {
	o.FitIndexes(indexes)
	res, err := Align(confs, ref, o)
	if err != nil {
		return nil, err
	}
	aligned := make([]*v3.Matrix, len(res))
	for i, v := range res {
		aligned[i] = v.Aligned
	}
	return RMSF(aligned)
}

type fluct struct {
	indexes       []int
	rMSFs         []float64
	points        int
	lessbyIndexes func(i, j int) bool
	lessbyRMSFs   func(i, j int) bool
	sorting       string
}

func newFluct(indexes []int, iniRMSF ...[]float64) *fluct {
	ret := new(fluct)
	ret.points = len(indexes)
	ret.indexes = make([]int, len(indexes))
	copy(ret.indexes, indexes)
	if len(iniRMSF) > 0 {
		M := iniRMSF[0]
		if len(M) != ret.points {
			panic("Inconsistent data, if given, the number of initial RMSF values must match the number of points")
		}
		ret.rMSFs = M
	}
	ret.lessbyIndexes = func(i, j int) bool { return ret.indexes[i] < ret.indexes[j] }
	ret.lessbyRMSFs = func(i, j int) bool { return ret.rMSFs[i] < ret.rMSFs[j] }
	return ret
}

//IndexesCopy returns a copy of the point indexes, in the current order.
func (f *fluct) IndexesCopy(rets ...[]int) []int {
	var ret []int
	if len(rets) != 0 {
		ret = rets[0]
	} else {
		ret = make([]int, len(f.indexes))
	}
	copy(ret, f.indexes)
	return ret //I'll just let it panic if the slice given is too short.
}

func (f *fluct) Swap(i, j int) {
	f.indexes[i], f.indexes[j] = f.indexes[j], f.indexes[i]
	f.rMSFs[i], f.rMSFs[j] = f.rMSFs[j], f.rMSFs[i]
}

func (f *fluct) Len() int {
	return f.points
}

func (f *fluct) Less(i, j int) bool {
	switch f.sorting {
	case "rmsf":
		return f.lessbyRMSFs(i, j)
	default:
		return f.lessbyIndexes(i, j)
	}
}

func (f *fluct) SortBy(sorting string) {
	f.sorting = strings.ToLower(sorting)
	sort.Stable(f)
}

//helper functions

//returns true if t1 and t2 have the same elements
//(whether or not in the same order) and false otherwise.
func sameElementsInt(t1, t2 []int) bool {
	if len(t1) != len(t2) {
		return false
	}
	for _, v := range t1 {
		if !isInInt(v, t2) {
			return false
		}
	}
	return true
}

//disagreementInt returns the number of elements of t1 not present in t2.
func disagreementInt(t1, t2 []int) int {
	if len(t1) != len(t2) {
		log.Printf("disagreementInt: Slices differ in size! %d %d", len(t1), len(t2))
		return -1
	}
	dis := make([]int, 0, len(t1))
	for _, v := range t1 {
		if !isInInt(v, t2) {
			dis = append(dis, v)
		}
	}
	return len(dis)
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
