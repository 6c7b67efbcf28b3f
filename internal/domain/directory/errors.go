package directory

import "errors"

var (
	ErrNoUsableData = errors.New("no usable roster data found in file")
)
