package mock

import "github.com/fwojciec/linkpost"

var _ linkpost.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of linkpost.Cleaner.
type Cleaner struct {
	CleanFn func(rawHTML []byte) (string, error)
}

func (c *Cleaner) Clean(rawHTML []byte) (string, error) {
	return c.CleanFn(rawHTML)
}
