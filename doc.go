/*
 * doc.go, part of superpose.
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

/*Package superpose implements weighted rigid-body superposition of point sets
in 3D space. It is a small, stateless library: all its operations take
coordinate sets as v3.Matrix values, and none of them reads or writes files.


	**Capabilities**

    Superimposes sets of points (typically, atoms) minimizing the weighted
	RMSD, with the rotation obtained from a singular value decomposition of
	the correlation matrix between the sets.

    Mirror-image sets are handled: the returned rotation is always a proper
	rotation, never a reflection.

    The fit can be restricted to a sub-set of the points, given as a slice of
	indexes. The resulting transformation is still applied to every point,
	so non-identical sets can be superimposed by their common core.

    Calculates weighted RMSD between sets of coordinates, with and without
	fitting, and per-point displacements between sets.

    The ensemble sub-package superimposes whole sets of conformations
	concurrently, and obtains mean structures, per-point fluctuations and
	pairwise RMSD matrices from them.

    Results can be JSON-encoded with the superjson sub-package, in a
	line-oriented format that is easy to parse from other languages, and
	compressed with zstd for large sets.

    The superplot sub-package renders per-point deviation profiles and
	pairwise-RMSD heat maps.


Coordinates are kept in the v3 sub-package Matrix type, where each row is one
point in space. Rotation matrices act on such row vectors from the right:
a point x is rotated as x*R. Functions that take per-point weights accept a
nil slice, which means uniform weights. A weight slice of the wrong length, a
negative weight, or a total weight of (numerically) zero are errors: no
silent fallback is applied.
*/
package superpose
