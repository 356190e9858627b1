package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	JSON_SUBMISSION = `{"id":"abc","name":"Ana","email":"ana@mail.com","phone":"11999999999","status":"em conversa","createdDate":"05/03/2024","createdAt":"2024-03-05T14:30:00.123Z"}`
	JSON_LEGACY     = `{"id":"1709649000123","nome":"Ana","email":"ana@mail.com","telefone":"11999999999","status":"aprovado","data":"05/03/2024","timestamp":"2024-03-05T14:30:00.123Z"}`
)

func TestParseStatus(t *testing.T) {
	for _, st := range Statuses {
		parsed, err := ParseStatus(st.String())
		require.NoError(t, err)
		require.Equal(t, st, parsed)
	}

	_, err := ParseStatus("rejeitado")
	require.Error(t, err)

	_, err = ParseStatus("")
	require.Error(t, err)
}

func TestStatus_Valid(t *testing.T) {
	require.True(t, Pending.Valid())
	require.True(t, InConversation.Valid())
	require.True(t, Approved.Valid())
	require.False(t, Status{}.Valid())
}

func TestStatus_Label(t *testing.T) {
	require.Equal(t, "Pendente", Pending.Label())
	require.Equal(t, "Em Conversa", InConversation.Label())
	require.Equal(t, "Aprovado", Approved.Label())
	require.Empty(t, Status{}.Label())
}

func TestStatus_MarshalZero(t *testing.T) {
	_, err := json.Marshal(Submission{Id: "x"})

	require.Error(t, err)
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("all")
	require.NoError(t, err)
	require.Equal(t, All, f)

	f, err = ParseFilter("todos")
	require.NoError(t, err)
	require.True(t, f.Match(Approved))

	f, err = ParseFilter("aprovado")
	require.NoError(t, err)
	require.True(t, f.Match(Approved))
	require.False(t, f.Match(Pending))
	require.Equal(t, "aprovado", f.String())

	_, err = ParseFilter("nope")
	require.Error(t, err)
}

func TestSubmission_JSON(t *testing.T) {
	sub := Submission{
		Id:          "abc",
		Name:        "Ana",
		Email:       "ana@mail.com",
		Phone:       "11999999999",
		Status:      InConversation,
		CreatedDate: "05/03/2024",
		CreatedAt:   time.Date(2024, 3, 5, 14, 30, 0, 123000000, time.UTC),
	}

	b, err := json.Marshal(sub)
	require.NoError(t, err)
	require.JSONEq(t, JSON_SUBMISSION, string(b))

	var decoded Submission
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, sub, decoded)
}

func TestSubmission_UnmarshalLegacy(t *testing.T) {
	var sub Submission

	err := json.Unmarshal([]byte(JSON_LEGACY), &sub)

	require.NoError(t, err)
	require.Equal(t, "Ana", sub.Name)
	require.Equal(t, "11999999999", sub.Phone)
	require.Equal(t, Approved, sub.Status)
	require.Equal(t, "05/03/2024", sub.CreatedDate)
	require.True(t, sub.CreatedAt.Equal(time.Date(2024, 3, 5, 14, 30, 0, 123000000, time.UTC)))
}

func TestSubmission_UnmarshalRejectsBadStatus(t *testing.T) {
	var sub Submission

	require.Error(t, json.Unmarshal([]byte(`{"id":"1","status":"arquivado"}`), &sub))
	require.Error(t, json.Unmarshal([]byte(`{"id":"1"}`), &sub))
}

func TestSubmission_JSONWholeSecond(t *testing.T) {
	sub := Submission{
		Id:        "abc",
		Status:    Pending,
		CreatedAt: time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
	}

	b, err := json.Marshal(sub)
	require.NoError(t, err)
	require.Contains(t, string(b), `"createdAt":"2024-03-05T14:30:00.000Z"`)

	var decoded Submission
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, sub, decoded)
}

func TestSubmission_JSONConvertsToUTC(t *testing.T) {
	sub := Submission{
		Id:        "abc",
		Status:    Pending,
		CreatedAt: time.Date(2024, 3, 5, 11, 30, 0, 5000000, time.FixedZone("BRT", -3*60*60)),
	}

	b, err := json.Marshal(sub)

	require.NoError(t, err)
	require.Contains(t, string(b), `"createdAt":"2024-03-05T14:30:00.005Z"`)
}
