package assert

import "github.com/oomph-ac/lockdown/oerror"

// IsTrue panics with an *oerror.Error when ok is false. It guards programmer errors
// only, never anything a player can cause.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
