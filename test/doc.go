// This file is part of Hode.
//
// Hode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hode.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate from
// package tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions fail with t.Fatalf(). The Demand functions
// should be used when the value being tested is used in further tests and so
// must be correct. For example, testing that the length of a pixel buffer is
// correct before indexing it.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// its type:
//
//	bool  -> success is true
//	error -> success is nil
//	nil   -> success
//
// The nil type is considered a success because of how errors usually work.
//
// All functions accept an optional list of tags that are prepended to any
// failure message. This is useful when testing in a loop.
package test
