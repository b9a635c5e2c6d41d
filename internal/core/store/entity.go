package store

// Store は店舗エンティティです。
type Store struct {
	ID         string
	Name       string
	LocationID string
}
