package site

import "errors"

var ErrInvalidConfig = errors.New("site: invalid config")
