package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

const maxBodySize = 1 << 20

var ErrTooLarge = errors.New("request body too large")

// Read returns the request body as JSON. Form-encoded bodies are converted
// into a flat object; "lead[first_name]=Ana" becomes {"lead":{"first_name":"Ana"}}.
func Read(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("read body: %w (limit %d bytes)", ErrTooLarge, maxBodySize)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/x-www-form-urlencoded" {
		return body, nil
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}
	return json.Marshal(formToObject(values))
}

func formToObject(values url.Values) map[string]any {
	obj := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		value := vals[0]

		parent, field, nested := splitNested(key)
		if !nested {
			if _, taken := obj[key].(map[string]any); !taken {
				obj[key] = value
			}
			continue
		}
		sub, ok := obj[parent].(map[string]any)
		if !ok {
			sub = make(map[string]any)
			obj[parent] = sub
		}
		sub[field] = value
	}
	return obj
}

func splitNested(key string) (string, string, bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return "", "", false
	}
	field := key[open+1 : len(key)-1]
	if field == "" || strings.ContainsAny(field, "[]") {
		return "", "", false
	}
	return key[:open], field, true
}
