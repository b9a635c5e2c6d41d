package rank

// Rank は役職エンティティです。
type Rank struct {
	ID          string
	Name        string
	Description string
}
