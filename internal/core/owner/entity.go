package owner

// Owner はプロジェクトのオーナーです。
type Owner struct {
	ID    string
	Name  string
	Email string
	Phone string
}
