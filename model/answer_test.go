package model_test

import (
	"encoding/json"
	"testing"

	"github.com/askpdf/askpdf-cli/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswer(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		text    string
		present bool
	}{
		{name: "string answer", body: `{"answer":"Paris"}`, text: "Paris", present: true},
		{name: "empty string", body: `{"answer":""}`, text: "", present: true},
		{name: "missing field", body: `{"error":"boom"}`, text: model.Undefined},
		{name: "null answer", body: `{"answer":null}`, text: "", present: true},
		{name: "number answer", body: `{"answer": 42}`, text: "42", present: true},
		{name: "exponent number", body: `{"answer":1e2}`, text: "100", present: true},
		{name: "fraction", body: `{"answer":0.50}`, text: "0.5", present: true},
		{name: "negative zero", body: `{"answer":-0}`, text: "0", present: true},
		{name: "huge number", body: `{"answer":1e21}`, text: "1e+21", present: true},
		{name: "tiny number", body: `{"answer":1.5e-7}`, text: "1.5e-7", present: true},
		{name: "bool answer", body: `{"answer":true}`, text: "true", present: true},
		{name: "array answer", body: `{"answer":["a","b"]}`, text: "a,b", present: true},
		{name: "nested array", body: `{"answer":[1,[2,null],{"x":1}]}`, text: "1,2,,[object Object]", present: true},
		{name: "object answer", body: `{"answer":{"x":1}}`, text: "[object Object]", present: true},
		{name: "array body", body: `["Paris"]`, text: model.Undefined},
		{name: "string body", body: `"Paris"`, text: model.Undefined},
		{name: "unicode", body: `{"answer":"Zürich – ja"}`, text: "Zürich – ja", present: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := model.ParseAnswer([]byte(tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.text, a.Text())
			assert.Equal(t, tc.present, a.Present())
		})
	}

	t.Run("MalformedBody", func(t *testing.T) {
		_, err := model.ParseAnswer([]byte("<html>Internal Server Error</html>"))
		assert.Error(t, err)
	})
	t.Run("EmptyBody", func(t *testing.T) {
		_, err := model.ParseAnswer(nil)
		assert.Error(t, err)
	})
}

func TestQuestionBody(t *testing.T) {
	bs, err := json.Marshal(model.Question{Question: "  What is the capital of France?  "})
	require.NoError(t, err)
	assert.Equal(t, `{"question":"  What is the capital of France?  "}`, string(bs))
}
