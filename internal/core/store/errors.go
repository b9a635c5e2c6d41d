package store

import "errors"

var (
	// ErrStoreNotFound は店舗が存在しない場合に返却されます。
	ErrStoreNotFound = errors.New("store: not found")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("store: invalid id")
)
