package service

import (
	"sync"
	"time"

	"github.com/dchest/uniuri"
	"github.com/dilshat/lead-store/dao"
	"github.com/dilshat/lead-store/model"
	"go.uber.org/zap"
)

// Display format of CreatedDate (pt-BR short date).
const DateLayout = "02/01/2006"

// Option customises a Store built by NewStore.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLocation sets the zone CreatedDate is rendered in.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		s.loc = loc
	}
}

// WithIdGenerator replaces the random id source.
func WithIdGenerator(newId func() string) Option {
	return func(s *Store) {
		s.newId = newId
	}
}

// Store owns the submission collection. Every read and write of submission
// data goes through it; each mutation rewrites the whole collection.
type Store struct {
	mu          sync.RWMutex
	dao         dao.SubmissionDao
	submissions []model.Submission
	now         func() time.Time
	loc         *time.Location
	newId       func() string
}

// NewStore loads the persisted collection once and returns a store over it.
func NewStore(submissionDao dao.SubmissionDao, opts ...Option) *Store {
	s := &Store{
		dao:   submissionDao,
		now:   time.Now,
		loc:   time.Local,
		newId: uniuri.New,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.submissions = submissionDao.Load()
	zap.L().Debug("Loaded submissions", zap.Int("count", len(s.submissions)))

	return s
}

// Create appends a pending submission. Field values are taken as given.
func (s *Store) Create(name, email, phone string) (model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sub := model.Submission{
		Id:          s.uniqueId(),
		Name:        name,
		Email:       email,
		Phone:       phone,
		Status:      model.Pending,
		CreatedDate: now.In(s.loc).Format(DateLayout),
		CreatedAt:   now.UTC().Truncate(time.Millisecond),
	}

	next := make([]model.Submission, len(s.submissions), len(s.submissions)+1)
	copy(next, s.submissions)
	next = append(next, sub)

	if err := s.commit(next); err != nil {
		return model.Submission{}, err
	}

	return sub, nil
}

// List returns every submission in creation order.
func (s *Store) List() []model.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Submission{}, s.submissions...)
}

// Filter returns the submissions matching filter, in creation order.
func (s *Store) Filter(filter model.StatusFilter) []model.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []model.Submission{}
	for _, sub := range s.submissions {
		if filter.Match(sub.Status) {
			matched = append(matched, sub)
		}
	}
	return matched
}

// UpdateStatus moves a submission to status. Any transition is allowed.
func (s *Store) UpdateStatus(id string, status model.Status) (model.Submission, error) {
	if !status.Valid() {
		return model.Submission{}, NewValidationError("invalid status")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Submission{}, NewNotFoundError(id)
	}

	next := append([]model.Submission{}, s.submissions...)
	next[idx].Status = status

	if err := s.commit(next); err != nil {
		return model.Submission{}, err
	}

	return next[idx], nil
}

// Stats counts submissions per status.
func (s *Store) Stats() model.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := model.Stats{Total: len(s.submissions)}
	for _, sub := range s.submissions {
		switch sub.Status {
		case model.Pending:
			stats.Pending++
		case model.InConversation:
			stats.InConversation++
		case model.Approved:
			stats.Approved++
		}
	}
	return stats
}

// commit persists next and only then makes it the current collection.
func (s *Store) commit(next []model.Submission) error {
	if err := s.dao.Save(next); err != nil {
		zap.L().Error("Error saving submissions", zap.Error(err))
		return NewPersistenceError(err)
	}
	s.submissions = next
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, sub := range s.submissions {
		if sub.Id == id {
			return i
		}
	}
	return -1
}

func (s *Store) uniqueId() string {
	for {
		id := s.newId()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}
