package model

import (
	"encoding/json"
	"errors"
	"time"
)

type Submission struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Status      Status    `json:"status"`
	CreatedDate string    `json:"createdDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ISO-8601 with fixed milliseconds, as browsers print Date.toISOString().
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// MarshalJSON writes CreatedAt in UTC with exactly three fraction digits.
func (s Submission) MarshalJSON() ([]byte, error) {
	type plain Submission
	return json.Marshal(struct {
		plain
		CreatedAt string `json:"createdAt"`
	}{
		plain:     plain(s),
		CreatedAt: s.CreatedAt.UTC().Format(TimestampLayout),
	})
}

// legacySubmission covers both the current field names and the ones written
// by the first version of the landing page (nome, telefone, data, timestamp).
type legacySubmission struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	Nome        string     `json:"nome"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Telefone    string     `json:"telefone"`
	Status      Status     `json:"status"`
	CreatedDate string     `json:"createdDate"`
	Data        string     `json:"data"`
	CreatedAt   *time.Time `json:"createdAt"`
	Timestamp   *time.Time `json:"timestamp"`
}

func (s *Submission) UnmarshalJSON(b []byte) error {
	var raw legacySubmission
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if !raw.Status.Valid() {
		return errors.New("submission has no status")
	}

	*s = Submission{
		Id:          raw.Id,
		Name:        firstNonEmpty(raw.Name, raw.Nome),
		Email:       raw.Email,
		Phone:       firstNonEmpty(raw.Phone, raw.Telefone),
		Status:      raw.Status,
		CreatedDate: firstNonEmpty(raw.CreatedDate, raw.Data),
	}
	switch {
	case raw.CreatedAt != nil:
		s.CreatedAt = *raw.CreatedAt
	case raw.Timestamp != nil:
		s.CreatedAt = *raw.Timestamp
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Stats holds submission counts partitioned by status.
type Stats struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	InConversation int `json:"inConversation"`
	Approved       int `json:"approved"`
}
