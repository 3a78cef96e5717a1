package entity

type FieldValue struct {
	Value string `json:"value"`
}

// QuickBaseRecord maps QuickBase field ids to their values.
type QuickBaseRecord map[string]FieldValue

// Compact returns a copy without empty values; QuickBase rejects empty
// strings for typed fields such as dates and phones.
func (r QuickBaseRecord) Compact() QuickBaseRecord {
	compact := make(QuickBaseRecord, len(r))
	for id, field := range r {
		if field.Value == "" {
			continue
		}
		compact[id] = field
	}
	return compact
}

// QuickBaseInsert is the body of POST /v1/records.
type QuickBaseInsert struct {
	To   string            `json:"to"`
	Data []QuickBaseRecord `json:"data"`
}
