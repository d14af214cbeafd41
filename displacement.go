package superpose

import (
	"fmt"

	v3 "github.com/rmera/superpose/v3"
	"gonum.org/v1/gonum/floats"
)

//Displacements returns the Euclidean distance between each point in test
//and the corresponding point in template. If dst is given and has enough
//capacity, it is reused for the results. Both sets must have the same
//number of points. Two empty sets yield an empty slice.
func Displacements(test, template *v3.Matrix, dst []float64) ([]float64, error) {
	if test == nil && template == nil {
		return dst[:0], nil
	}
	if test == nil || template == nil {
		err := new(CError)
		err.msg = "Only one of the coordinate sets given is empty"
		err.Decorate("Displacements")
		return nil, err
	}
	vecs := test.NVecs()
	if vecs != template.NVecs() {
		err := new(CError)
		err.msg = fmt.Sprintf("Mismatched number of points: %d vs %d", vecs, template.NVecs())
		err.Decorate("Displacements")
		return nil, err
	}
	if cap(dst) >= vecs {
		dst = dst[:vecs]
	} else {
		dst = make([]float64, vecs)
	}
	for i := 0; i < vecs; i++ {
		dst[i] = floats.Distance(test.RawRowView(i), template.RawRowView(i), 2)
	}
	return dst, nil
}

//MaxDisplacement returns the largest distance between a point in test and
//the corresponding point in template, and the index of that point. If
//several points are displaced by the same distance, the lowest index is
//returned.
func MaxDisplacement(test, template *v3.Matrix) (float64, int, error) {
	d, err := Displacements(test, template, nil)
	if err != nil {
		return -1, -1, errDecorate(err, "MaxDisplacement")
	}
	if len(d) == 0 {
		err := new(CError)
		err.msg = "Can't obtain the maximum displacement between empty sets"
		err.Decorate("MaxDisplacement")
		return -1, -1, err
	}
	index := floats.MaxIdx(d)
	return d[index], index, nil
}
