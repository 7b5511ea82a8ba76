package extractor

import "errors"

var ErrMalformedPDF = errors.New("malformed pdf")
