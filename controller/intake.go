package controller

import (
	"errors"

	"github.com/dilshat/lead-store/model"
	"github.com/dilshat/lead-store/service"
	"github.com/dilshat/lead-store/service/dto"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Submitter is the part of the store the public form uses.
type Submitter interface {
	Create(name, email, phone string) (model.Submission, error)
}

// Notifier receives toast notices about the outcome of an action.
type Notifier interface {
	Notify(notice dto.Notice)
}

// Throttle decides whether one more submission may go through now.
// *rate.Limiter and *service.Throttle satisfy it.
type Throttle interface {
	Allow() bool
}

// Intake is the boundary behind the public landing page form.
type Intake struct {
	store    Submitter
	notifier Notifier
	limiter  Throttle
}

// NewIntake wires the form to the store. A nil limiter disables throttling.
func NewIntake(store Submitter, notifier Notifier, limiter Throttle) *Intake {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Intake{store: store, notifier: notifier, limiter: limiter}
}

// Submit validates the form and creates a pending submission.
func (i *Intake) Submit(form dto.Form) (model.Submission, error) {
	if err := service.ValidateForm(form); err != nil {
		i.notifier.Notify(dto.Notice{
			Title:       "Erro",
			Description: "Preencha nome, email e telefone para se inscrever.",
			Destructive: true,
		})
		return model.Submission{}, err
	}

	if !i.limiter.Allow() {
		zap.L().Warn("Submission throttled", zap.String("email", form.Email))
		i.notifier.Notify(dto.Notice{
			Title:       "Erro",
			Description: "Muitas inscrições em pouco tempo. Tente novamente em instantes.",
			Destructive: true,
		})
		return model.Submission{}, NewThrottledError()
	}

	sub, err := i.store.Create(form.Name, form.Email, form.Phone)
	if err != nil {
		var persistence *service.PersistenceErr
		if !errors.As(err, &persistence) {
			zap.L().Error("Error creating submission", zap.Error(err))
		}
		i.notifier.Notify(dto.Notice{
			Title:       "Erro",
			Description: "Houve um erro ao enviar sua inscrição. Tente novamente.",
			Destructive: true,
		})
		return model.Submission{}, err
	}

	i.notifier.Notify(dto.Notice{
		Title:       "Sucesso!",
		Description: "Sua inscrição foi enviada com sucesso. Entraremos em contato em breve!",
	})
	return sub, nil
}
