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

/*Package v3 implements a Matrix type representing a set of points in 3D space,
i.e. an Nx3, row-major matrix where each row holds the cartesian coordinates of
one point. It is a thin layer over gonum's Dense type
(gonum.org/v1/gonum/mat), with the restrictions that come from the fixed
number of columns, plus the vector-wise operations that rigid-body
superposition needs.

Within the package, a "vector" is a row of the matrix, a 1x3 Matrix.
*/
package v3
