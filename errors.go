/*
 * errors.go, part of superpose.
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

//Error is the interface for errors that the library and its sub-packages
//implement. Decorate adds the name of the caller to the error, so a
//traceback can be built as the error goes up the call stack.
type Error interface {
	Error() string
	Decorate(string) []string
	//Decorate will add the dec string to the decoration slice of strings of the error,
	//and return the resulting slice.
}

//CError (Concrete Error) is the concrete error type for the package.
//It is returned, wrapped in the Error interface, whenever a function is
//called with invalid arguments: mismatched lengths, bad weights, bad indexes.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//DegenerateInput errors are returned, only when strict mode is requested,
//if the input point sets do not determine a unique optimal rotation
//(say, all the points on one line). They are not critical: in the default,
//non-strict mode the same input yields one of the optimal rotations instead
//of an error. The Degenerate method does nothing; it exists so these errors
//can be told apart from invalid-argument ones in a type switch.
type DegenerateInput interface {
	Error
	Degenerate()
}

type degenerateError struct {
	CError
}

func (err *degenerateError) Degenerate() {}

//errDecorate is a helper function that asserts that the error implements
//Error and decorates it with the caller's name before returning it.
//If used with an error that does not implement Error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
