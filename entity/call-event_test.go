package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallEvent_Field(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		aliases []string
		want    string
	}{
		{
			name:    "direct key",
			body:    `{"first_name":"Ana"}`,
			aliases: []string{"first_name", "firstName"},
			want:    "Ana",
		},
		{
			name:    "empty direct falls through to lead under next alias",
			body:    `{"first_name":"","lead":{"firstName":"Ana"}}`,
			aliases: []string{"first_name", "firstName"},
			want:    "Ana",
		},
		{
			name:    "lead before contact",
			body:    `{"lead":{"city":"Fresno"},"contact":{"city":"Modesto"}}`,
			aliases: []string{"city"},
			want:    "Fresno",
		},
		{
			name:    "contact nesting",
			body:    `{"contact":{"email":"ana@example.com"}}`,
			aliases: []string{"email"},
			want:    "ana@example.com",
		},
		{
			name:    "case-insensitive top level",
			body:    `{"FIRST_NAME":"Ana"}`,
			aliases: []string{"first_name"},
			want:    "Ana",
		},
		{
			name:    "all checks of first alias before second alias",
			body:    `{"firstName":"Direct","lead":{"first_name":"Nested"}}`,
			aliases: []string{"first_name", "firstName"},
			want:    "Nested",
		},
		{
			name:    "case-insensitive match is still per alias",
			body:    `{"First_Name":"Folded","fname":"Short"}`,
			aliases: []string{"first_name", "fname"},
			want:    "Folded",
		},
		{
			name:    "null is empty",
			body:    `{"zip":null,"zipcode":"90001"}`,
			aliases: []string{"zip", "zipcode"},
			want:    "90001",
		},
		{
			name:    "zero is a value",
			body:    `{"duration":0}`,
			aliases: []string{"duration"},
			want:    "0",
		},
		{
			name:    "false is a value",
			body:    `{"flag":false}`,
			aliases: []string{"flag"},
			want:    "false",
		},
		{
			name:    "numbers keep their text",
			body:    `{"phone":5551234567}`,
			aliases: []string{"phone"},
			want:    "5551234567",
		},
		{
			name:    "dotted alias is a literal key",
			body:    `{"a.b":"x","a":{"b":"y"}}`,
			aliases: []string{"a.b"},
			want:    "x",
		},
		{
			name:    "non-object lead is ignored",
			body:    `{"lead":"12345"}`,
			aliases: []string{"first_name"},
			want:    "",
		},
		{
			name:    "duplicate key keeps first occurrence",
			body:    `{"first_name":"First","first_name":"Second"}`,
			aliases: []string{"first_name"},
			want:    "First",
		},
		{
			name:    "empty duplicate does not hide a later value",
			body:    `{"first_name":"","FIRST_NAME":"Ana"}`,
			aliases: []string{"first_name"},
			want:    "Ana",
		},
		{
			name:    "nothing matches",
			body:    `{"other":"x"}`,
			aliases: []string{"first_name", "firstName"},
			want:    "",
		},
		{
			name:    "invalid json",
			body:    `{"first_name":`,
			aliases: []string{"first_name"},
			want:    "",
		},
		{
			name:    "array body",
			body:    `[{"first_name":"Ana"}]`,
			aliases: []string{"first_name"},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := NewCallEvent([]byte(tt.body))
			assert.Equal(t, tt.want, event.Field(tt.aliases...))
		})
	}
}

func TestCallEvent_IsEmpty(t *testing.T) {
	assert.True(t, NewCallEvent(nil).IsEmpty())
	assert.True(t, NewCallEvent([]byte(`{}`)).IsEmpty())
	assert.True(t, NewCallEvent([]byte(`null`)).IsEmpty())
	assert.False(t, NewCallEvent([]byte(`{"a":1}`)).IsEmpty())
	assert.JSONEq(t, `{}`, string(NewCallEvent([]byte(`nope`)).Raw()))
}

func TestQuickBaseRecord_Compact(t *testing.T) {
	record := QuickBaseRecord{
		"92":  {Value: "Ana"},
		"93":  {Value: ""},
		"109": {Value: "(555) 123-4567"},
		"11":  {},
	}

	compact := record.Compact()

	assert.Equal(t, QuickBaseRecord{
		"92":  {Value: "Ana"},
		"109": {Value: "(555) 123-4567"},
	}, compact)
	assert.Len(t, record, 4, "source record is left untouched")
}
