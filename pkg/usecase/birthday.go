package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/heirs-lab/prince/pkg/domain/interfaces"
	"github.com/heirs-lab/prince/pkg/service/sms"
	"github.com/heirs-lab/prince/pkg/utils/async"
	"github.com/heirs-lab/prince/pkg/utils/logging"
)

const birthdayMessage = "Happy Birthday, %s! 🎉 Thank you for being a valued customer of Heirs Insurance Group."

// BirthdayUseCase sends greeting messages to customers whose date of
// birth falls on today's month and day.
type BirthdayUseCase struct {
	repo interfaces.Repository
	sms  sms.Service
}

// NewBirthdayUseCase creates a new BirthdayUseCase
func NewBirthdayUseCase(repo interfaces.Repository, smsSvc sms.Service) *BirthdayUseCase {
	return &BirthdayUseCase{
		repo: repo,
		sms:  smsSvc,
	}
}

// SendBirthdayGreetings runs one sweep and returns the number of matched
// customers. SMS dispatch is best-effort fire-and-forget; delivery
// failures are logged by the async handler and do not fail the sweep.
func (uc *BirthdayUseCase) SendBirthdayGreetings(ctx context.Context) (int, error) {
	today := time.Now()

	customers, err := uc.repo.Customer().ListByBirthday(ctx, today.Month(), today.Day())
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list customers by birthday")
	}

	for _, c := range customers {
		phone := c.Phone
		message := fmt.Sprintf(birthdayMessage, c.Name)

		logging.From(ctx).Info("Dispatching birthday greeting", "customerID", c.ID)
		async.Dispatch(ctx, func(ctx context.Context) error {
			return uc.sms.Send(ctx, phone, message)
		})
	}

	return len(customers), nil
}
