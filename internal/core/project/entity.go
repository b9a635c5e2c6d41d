package project

// Status はプロジェクトの進捗状態を表します。
type Status string

const (
	StatusNotStarted Status = "NotStarted"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

// IsValid は定義済みの状態かどうかを返します。
func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Project はプロジェクトエンティティです。OwnerID は検証されません。
type Project struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Status      Status
}
