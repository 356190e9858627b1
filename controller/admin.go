package controller

import (
	"github.com/dilshat/lead-store/model"
	"github.com/dilshat/lead-store/service/dto"
	"github.com/dilshat/lead-store/util"
)

// Number of submissions listed on the dashboard.
const RecentCount = 5

// Session reports whether an admin is logged in.
type Session interface {
	Authenticated() bool
}

// Reviewer is the part of the store the admin console uses.
type Reviewer interface {
	List() []model.Submission
	Filter(filter model.StatusFilter) []model.Submission
	UpdateStatus(id string, status model.Status) (model.Submission, error)
	Stats() model.Stats
}

// Admin is the boundary behind the review console. Every call requires an
// active admin session.
type Admin struct {
	store    Reviewer
	session  Session
	notifier Notifier
}

func NewAdmin(store Reviewer, session Session, notifier Notifier) *Admin {
	return &Admin{store: store, session: session, notifier: notifier}
}

// Dashboard returns the counters and the latest submissions, newest first.
func (a *Admin) Dashboard() (dto.Dashboard, error) {
	if !a.session.Authenticated() {
		return dto.Dashboard{}, NewUnauthorizedError()
	}

	all := a.store.List()
	if len(all) > RecentCount {
		all = all[len(all)-RecentCount:]
	}

	return dto.Dashboard{
		Stats:  a.store.Stats(),
		Recent: util.Reversed(all),
	}, nil
}

func (a *Admin) Responses(filter model.StatusFilter) ([]model.Submission, error) {
	if !a.session.Authenticated() {
		return nil, NewUnauthorizedError()
	}
	return a.store.Filter(filter), nil
}

func (a *Admin) Stats() (model.Stats, error) {
	if !a.session.Authenticated() {
		return model.Stats{}, NewUnauthorizedError()
	}
	return a.store.Stats(), nil
}

func (a *Admin) SetStatus(id string, status model.Status) (model.Submission, error) {
	if !a.session.Authenticated() {
		return model.Submission{}, NewUnauthorizedError()
	}

	sub, err := a.store.UpdateStatus(id, status)
	if err != nil {
		a.notifier.Notify(dto.Notice{
			Title:       "Erro",
			Description: "Não foi possível atualizar o status: " + err.Error(),
			Destructive: true,
		})
		return model.Submission{}, err
	}

	a.notifier.Notify(dto.Notice{
		Title:       "Status atualizado",
		Description: "Status alterado para " + status.String(),
	})
	return sub, nil
}
