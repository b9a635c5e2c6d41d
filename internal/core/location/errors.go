package location

import "errors"

var (
	// ErrLocationNotFound は所在地が存在しない場合に返却されます。
	ErrLocationNotFound = errors.New("location: not found")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("location: invalid id")
)
