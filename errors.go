/*
 * errors.go, part of gordc.
 *
 * Copyright 2021 Raul Mera A. (raulpuntomeraatusachpuntocl)
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

package rdc

import "fmt"

//Error is the interface for errors that the packages in this library
//implement. The Decorate method allows adding and retrieving information
//from the error, without changing its type or wrapping it around
//something else. The decoration slice should contain a list of the
//functions in the calling stack, plus, for each function, any relevant
//information, or nothing. If information is to be added to an element of
//the slice, it should be in the format "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError (Concrete Error) is the concrete type implementing the Error
//interface for the rdc package.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Decorate will add the dec string to the decoration slice of strings of
//the error, and return the resulting slice. If dec is empty, it only
//returns the current decoration.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//cError builds a CError with a formatted message and the caller's name
//as the first decoration.
func cError(caller, format string, a ...interface{}) *CError {
	err := new(CError)
	err.msg = fmt.Sprintf(format, a...)
	err.Decorate(caller)
	return err
}

//errDecorate asserts that err implements Error, decorates it with the
//caller's name and returns it. If err has some other type it is wrapped
//in a CError first.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		err2 = &CError{err.Error(), []string{caller}}
		return err2
	}
	err2.Decorate(caller)
	return err2
}
