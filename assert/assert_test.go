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

package assert_test

import (
	"testing"

	"github.com/hode-port/hode/assert"
	"github.com/hode-port/hode/test"
)

func TestGoRoutineID(t *testing.T) {
	id := assert.GetGoRoutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectEquality(t, assert.GetGoRoutineID(), id)

	other := make(chan uint64)
	go func() {
		other <- assert.GetGoRoutineID()
	}()
	test.ExpectInequality(t, <-other, id)
}

func TestOwner(t *testing.T) {
	var o assert.Owner

	// unclaimed resources can be used by anyone
	test.ExpectSuccess(t, o.Check())

	o.Claim()
	test.ExpectSuccess(t, o.Check())

	other := make(chan bool)
	go func() {
		other <- o.Check()
	}()
	test.ExpectFailure(t, <-other)

	o.Release()
	go func() {
		other <- o.Check()
	}()
	test.ExpectSuccess(t, <-other)
}
