package owner

import "errors"

var (
	// ErrOwnerNotFound はオーナーが存在しない場合に返却されます。
	ErrOwnerNotFound = errors.New("owner: not found")
	// ErrInvalidID はIDが不正な場合に返却されます。
	ErrInvalidID = errors.New("owner: invalid id")
)
