package docstore

import "encoding/json"

// JSONRecord は JSON 本文を保持するバックエンド向けの Record 実装です。
type JSONRecord struct {
	DocumentID string
	Body       []byte
}

// ID はドキュメント ID を返します。
func (r JSONRecord) ID() string {
	return r.DocumentID
}

// Decode は本文を out に展開します。
func (r JSONRecord) Decode(out any) error {
	return json.Unmarshal(r.Body, out)
}

// MergeJSON は JSON オブジェクト body に fields を上書きした結果を返します。
func MergeJSON(body []byte, fields Fields) ([]byte, error) {
	merged := map[string]json.RawMessage{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &merged); err != nil {
			return nil, err
		}
	}
	for key, value := range fields {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		merged[key] = encoded
	}
	return json.Marshal(merged)
}
