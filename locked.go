// Package locked provides lock-based concurrent data structures to
// supplement the standard library.
package locked

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
