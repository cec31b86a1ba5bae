package diversity

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidMode     = fmt.Errorf("%w: unknown diversity mode", ErrInvalidArgument)
)
