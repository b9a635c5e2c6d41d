package location

// Location は拠点の所在地エンティティです。
type Location struct {
	ID      string
	Country string
	State   string
}
