package reference

// Outcome は参照解決の結果区分です。
type Outcome int

const (
	// OutcomeResolved は参照先が存在したことを表します。
	OutcomeResolved Outcome = iota
	// OutcomeInvalid は ID の形式が不正だったことを表します。
	OutcomeInvalid
	// OutcomeNotFound は形式は正しいが参照先が存在しないことを表します。
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeResolved:
		return "resolved"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Resolution は 1 件の参照解決結果です。
type Resolution struct {
	ID      string
	Outcome Outcome
}

// Resolved は参照先が存在した場合に true を返します。
func (r Resolution) Resolved() bool {
	return r.Outcome == OutcomeResolved
}
