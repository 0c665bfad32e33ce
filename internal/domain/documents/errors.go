package documents

import "errors"

// ErrDecode indicates the uploaded payload could not be decoded as an image.
// It is the only error fatal to an analysis: no partial result is produced.
var ErrDecode = errors.New("image decode failed")

// ErrUnknownDocumentType indicates the declared type is not in the registry.
var ErrUnknownDocumentType = errors.New("unknown document type")

// ErrUnsupportedMedia indicates a content type outside the supported set.
var ErrUnsupportedMedia = errors.New("unsupported media type")

// ErrTooLarge indicates the upload exceeds the configured size limit.
var ErrTooLarge = errors.New("upload too large")
