package snapshot

import "errors"

var (
	ErrEncode       = errors.New("failed to encode session snapshot")
	ErrDecode       = errors.New("failed to decode session snapshot")
	ErrUnknownCodec = errors.New("unknown snapshot codec")
)
