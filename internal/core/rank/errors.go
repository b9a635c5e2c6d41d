package rank

import "errors"

var (
	// ErrRankNotFound は役職が存在しない場合に返却されます。
	ErrRankNotFound = errors.New("rank: not found")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("rank: invalid id")
)
