package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerValue_UnmarshalString(t *testing.T) {
	var v AnswerValue
	require.NoError(t, json.Unmarshal([]byte(`"Green"`), &v))
	assert.True(t, v.IsStr)
	assert.Equal(t, "Green", v.Str)
	assert.Nil(t, v.List)
}

func TestAnswerValue_UnmarshalList(t *testing.T) {
	var v AnswerValue
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &v))
	assert.False(t, v.IsStr)
	assert.Equal(t, []string{"a", "b"}, v.List)
}

func TestAnswerValue_UnmarshalInvalid(t *testing.T) {
	var v AnswerValue
	assert.Error(t, json.Unmarshal([]byte(`42`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &v))
}

func TestAnswerValue_MarshalRoundTrip(t *testing.T) {
	cases := []string{`"Green"`, `["a","b"]`, `[]`}
	for _, raw := range cases {
		var v AnswerValue
		require.NoError(t, json.Unmarshal([]byte(raw), &v))
		out, err := json.Marshal(v)
		require.NoError(t, err)
		assert.JSONEq(t, raw, string(out))
	}
}

func TestAnswer_JSONShape(t *testing.T) {
	id := uuid.New()
	raw := `{"questionId":"` + id.String() + `","value":["hello"]}`

	var a Answer
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	assert.Equal(t, id, a.QuestionID)
	assert.Equal(t, []string{"hello"}, a.Value.List)

	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestFindAnswer(t *testing.T) {
	q1, q2 := uuid.New(), uuid.New()
	m := ResponseModel{
		ResponseAnswers: []Answer{
			{QuestionID: q1, Value: AnswerValue{Str: "x", IsStr: true}},
		},
	}

	require.NotNil(t, m.FindAnswer(q1))
	assert.Nil(t, m.FindAnswer(q2))
}
