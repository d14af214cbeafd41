/*
 * options.go, part of superpose.
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

//Options contains the optional settings for the Align and AlignSubset
//functions.
type Options struct {
	weights []float64
	strict  bool
}

//DefaultOptions returns the default settings for a superposition:
//uniform weights, and non-strict handling of degenerate inputs.
func DefaultOptions() *Options {
	r := new(Options)
	r.weights = nil
	r.strict = false
	return r
}

//Weights returns the per-point weights used for the fit,
//and sets them to a new value, if given. A nil value means
//uniform weights. For Align the slice must have one element
//per point; for AlignSubset, one element per index in the fit.
func (O *Options) Weights(w ...[]float64) []float64 {
	if len(w) > 0 && w[0] != nil {
		O.weights = w[0]
	}
	return O.weights
}

//Strict returns whether an input for which the optimal rotation is not
//unique is treated as an error, and sets the behavior to a new value,
//if given.
func (O *Options) Strict(s ...bool) bool {
	if len(s) > 0 {
		O.strict = s[0]
	}
	return O.strict
}
