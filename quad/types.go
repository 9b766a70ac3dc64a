package quad

import "errors"

// ErrEmptySamples indicates an integration request over an empty
// sample set; there are no bounds to integrate between.
var ErrEmptySamples = errors.New("quad: sample set is empty")
