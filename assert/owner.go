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

package assert

import "sync/atomic"

// Owner records the goroutine that owns a resource. The SDL backend uses an
// Owner to make sure that video and event functions are only called from the
// goroutine that called Init().
type Owner struct {
	id atomic.Uint64
}

// Claim the resource for the calling goroutine.
func (o *Owner) Claim() {
	o.id.Store(GetGoRoutineID())
}

// Release the resource. Any goroutine may use a released resource.
func (o *Owner) Release() {
	o.id.Store(0)
}

// Check returns true if the calling goroutine is the owner or if the
// resource has not been claimed.
func (o *Owner) Check() bool {
	id := o.id.Load()
	return id == 0 || id == GetGoRoutineID()
}
