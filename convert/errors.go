package convert

import "errors"

// Sentinel errors for package convert.
var (
	ErrNotImage      = errors.New("not an image")
	ErrNotAudio      = errors.New("not an Ogg stream")
	ErrBadMagic      = errors.New("unexpected file magic")
	ErrTruncated     = errors.New("truncated payload")
	ErrTrailingData  = errors.New("unexpected data after payload")
	ErrReadOnlyKind  = errors.New("manifest kind cannot be packed")
	ErrWrongRoot     = errors.New("unexpected manifest root element")
	ErrKeyTooLong    = errors.New("manifest key exceeds 65535 bytes")
	ErrImageTooLarge = errors.New("image dimensions out of range")
)
