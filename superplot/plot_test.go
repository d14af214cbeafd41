/*This provides some tests for the plotting functions, in the form of
 * little functions that have practical applications*/

package superplot

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/superpose"
	"github.com/rmera/superpose/ensemble"
	v3 "github.com/rmera/superpose/v3"
)

//TestProfile plots the per-point displacements between two small sets.
func TestProfile(Te *testing.T) {
	test, err := v3.NewMatrix([]float64{
		0.1, 0.2, 0.3,
		1.5, -0.4, 0.9,
		-1.1, 2.0, 0.6,
		0.8, 1.3, -1.7,
	})
	if err != nil {
		Te.Error(err)
	}
	template := v3.Zeros(4)
	d, err := superpose.Displacements(test, template, nil)
	if err != nil {
		Te.Error(err)
	}
	name := filepath.Join(Te.TempDir(), "profile.png")
	err = Profile(d, "Test displacements", "point", "distance (A)", name)
	if err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat(name); err != nil {
		Te.Error("no plot written", err)
	}
	fmt.Println("profile written to", name)
}

//TestRMSDHeatMap builds a small ensemble and plots its RMSD matrix.
func TestRMSDHeatMap(Te *testing.T) {
	base, err := v3.NewMatrix([]float64{
		0.2, 1.1, -0.4,
		1.8, 0.3, 0.9,
		-0.9, 1.5, 1.2,
		0.7, -1.3, 0.5,
	})
	if err != nil {
		Te.Error(err)
	}
	bent := v3.Zeros(4)
	bent.Copy(base)
	bent.Set(3, 0, bent.At(3, 0)+1)
	far := v3.Zeros(4)
	far.Copy(base)
	far.Set(0, 1, far.At(0, 1)-2)
	M, err := ensemble.RMSDMatrix([]*v3.Matrix{base, bent, far})
	if err != nil {
		Te.Error(err)
	}
	name := filepath.Join(Te.TempDir(), "rmsd.png")
	if err := RMSDHeatMap(M, "Test RMSD matrix", name); err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat(name); err != nil {
		Te.Error("no plot written", err)
	}
	if err := RMSDHeatMap(nil, "no data", name); err == nil {
		Te.Error("a nil matrix should be rejected")
	}
}
