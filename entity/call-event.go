package entity

import (
	"strings"

	"github.com/tidwall/gjson"
)

// CallEvent is a CallTools webhook payload. The platform sends loosely
// structured JSON, so fields are looked up by alias instead of decoded.
type CallEvent struct {
	raw  []byte
	root gjson.Result
}

var emptyObject = []byte("{}")

// NewCallEvent accepts any body; anything but a JSON object becomes {}.
func NewCallEvent(raw []byte) *CallEvent {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		raw = emptyObject
	}
	return &CallEvent{
		raw:  raw,
		root: gjson.ParseBytes(raw),
	}
}

func (e *CallEvent) Raw() []byte {
	return e.raw
}

func (e *CallEvent) IsEmpty() bool {
	empty := true
	e.root.ForEach(func(_, _ gjson.Result) bool {
		empty = false
		return false
	})
	return empty
}

// Field returns the first non-empty value among names. Each name is tried at
// the top level, under "lead", under "contact" and finally as a
// case-insensitive top-level key before moving on to the next name.
// When a key is repeated in the payload its first occurrence wins.
func (e *CallEvent) Field(names ...string) string {
	lead := e.root.Get("lead")
	contact := e.root.Get("contact")

	for _, name := range names {
		path := gjson.Escape(name)

		if v := e.root.Get(path); hasValue(v) {
			return v.String()
		}
		if v := child(lead, path); hasValue(v) {
			return v.String()
		}
		if v := child(contact, path); hasValue(v) {
			return v.String()
		}
		if v, ok := e.foldedKey(name); ok {
			return v.String()
		}
	}
	return ""
}

func (e *CallEvent) foldedKey(name string) (gjson.Result, bool) {
	var found gjson.Result
	ok := false
	e.root.ForEach(func(key, value gjson.Result) bool {
		if strings.EqualFold(key.String(), name) && hasValue(value) {
			found, ok = value, true
			return false
		}
		return true
	})
	return found, ok
}

func child(parent gjson.Result, path string) gjson.Result {
	if !parent.IsObject() {
		return gjson.Result{}
	}
	return parent.Get(path)
}

// hasValue treats 0 and false as values; only absent, null and "" are empty.
func hasValue(v gjson.Result) bool {
	if !v.Exists() || v.Type == gjson.Null {
		return false
	}
	return !(v.Type == gjson.String && v.Str == "")
}
