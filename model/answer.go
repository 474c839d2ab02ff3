package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Undefined is what a missing answer renders as.
// It matches what the web page shows for an absent field.
const Undefined = "undefined"

// UploadStatus is the body returned by the upload endpoint.
type UploadStatus struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Answer is a decoded ask response.
// raw holds the answer field as sent, nil when the field is absent.
type Answer struct {
	raw json.RawMessage
}

// ParseAnswer decodes an ask response body.
// Any valid JSON is accepted; only a syntactically broken body is an error.
func ParseAnswer(body []byte) (*Answer, error) {
	var v json.RawMessage
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(v)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return &Answer{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, err
	}
	return &Answer{raw: fields["answer"]}, nil
}

// NewAnswer returns an Answer holding the string s.
func NewAnswer(s string) *Answer {
	bs, _ := json.Marshal(s)
	return &Answer{raw: bs}
}

// Present reports whether the response carried an answer field.
func (a *Answer) Present() bool {
	return a != nil && a.raw != nil
}

// Text renders the answer the way the web page's answer box shows it:
// an absent field is Undefined, null is empty, numbers use the shortest
// round-trip form, arrays are joined with commas and objects render as
// "[object Object]".
func (a *Answer) Text() string {
	if !a.Present() {
		return Undefined
	}

	var v any
	if err := json.Unmarshal(a.raw, &v); err != nil {
		return string(bytes.TrimSpace(a.raw))
	}
	return textOf(v)
}

func textOf(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return numberText(v)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = textOf(e)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

// numberText formats f like a script engine's number to string conversion.
func numberText(f float64) string {
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// 1e-07 -> 1e-7
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
