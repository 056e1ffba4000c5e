// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package hashlife

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is returned by a bounded NodeFactory when it is at
// capacity and cannot create a new entry: either eviction is skipped
// because an operation is in flight (BeginOp/EndOp), or eviction freed too
// little room. It is recoverable:
// the Universe that triggered it is left in its prior consistent state.
var ErrCapacityExceeded = errors.New("hashlife: factory capacity exceeded")

// ContractViolation reports programmer error: a size mismatch passed to
// Compose, Quad called on a Leaf, or an out-of-range coordinate. These are
// unrecoverable by design (spec §7) — the operation that triggers one
// panics with a ContractViolation value, which Universe recovers at its
// public-method boundary and reports as an error, leaving the universe
// unchanged.
type ContractViolation struct {
	Op  string
	Msg string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("hashlife: contract violation in %s: %s", e.Op, e.Msg)
}

func panicContract(op, format string, args ...interface{}) {
	panic(&ContractViolation{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// recoverContract turns a panicking ContractViolation into an error
// assigned through errp, leaving any other panic to propagate. Call this
// via defer at the top of every Universe public method that mutates state.
func recoverContract(errp *error) {
	if r := recover(); r != nil {
		if cv, ok := r.(*ContractViolation); ok {
			*errp = cv
			return
		}
		panic(r)
	}
}
