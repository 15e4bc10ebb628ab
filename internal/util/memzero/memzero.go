// Package memzero clears secret bytes held in memory.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros. The copy goes through subtle.ConstantTimeCopy
// so the compiler cannot prove the store dead and elide it.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	runtime.KeepAlive(b)
}
