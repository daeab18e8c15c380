package dispatch

import "errors"

var ErrUnknownDirection = errors.New("unknown direction")
