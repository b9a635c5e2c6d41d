package employee

// Status は社員の勤務状態を表します。
type Status string

const (
	StatusNone             Status = "None"
	StatusWorking          Status = "Working"
	StatusEmergencyService Status = "EmergencyService"
	StatusVacation         Status = "Vacation"
	StatusIllness          Status = "Illness"
)

// Statuses は定義済みの状態を宣言順に返します。
func Statuses() []Status {
	return []Status{StatusNone, StatusWorking, StatusEmergencyService, StatusVacation, StatusIllness}
}

// IsValid は定義済みの状態かどうかを返します。
func (s Status) IsValid() bool {
	switch s {
	case StatusNone, StatusWorking, StatusEmergencyService, StatusVacation, StatusIllness:
		return true
	default:
		return false
	}
}

// Employee は社員エンティティです。
// Stores と RankID は作成・更新時に検証済みの参照のみを保持しますが、参照先の削除後は古い値が残ります。
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Status    Status
	Stores    []string
	RankID    string
}
