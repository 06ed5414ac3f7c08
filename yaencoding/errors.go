package yaencoding

import "errors"

var ErrTrailingData = errors.New("trailing data")
