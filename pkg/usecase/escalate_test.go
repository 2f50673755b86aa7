package usecase_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/heirs-lab/prince/pkg/domain/model"
	"github.com/heirs-lab/prince/pkg/domain/types"
	"github.com/heirs-lab/prince/pkg/repository/memory"
	"github.com/heirs-lab/prince/pkg/usecase"
)

func TestHandleMessage_AgentEscalation(t *testing.T) {
	ctx := context.Background()

	t.Run("connects to the available agent and marks it busy", func(t *testing.T) {
		repo := memory.New()
		agent, err := repo.Agent().Create(ctx, &model.Agent{
			Name:      "A",
			Email:     "a@x.com",
			Expertise: "Motor",
		})
		gt.NoError(t, err).Required()

		uc := usecase.New(repo)
		session := model.NewSession("+2348044444444")

		resp, err := uc.Chat.HandleMessage(ctx, session, "I want to talk to an agent")
		gt.NoError(t, err).Required()

		gt.Value(t, resp).Equal("Connecting you with A, who specializes in Motor. Contact: a@x.com.")

		stored, err := repo.Agent().Get(ctx, agent.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, stored.Status).Equal(types.AgentStatusBusy)

		events := repo.AuditEvents()
		gt.Array(t, events).Length(1)
		gt.Value(t, events[0].Kind).Equal(types.AuditKindAgentEscalation)
		gt.String(t, events[0].Detail).Contains("A")
	})

	t.Run("agent request bypasses the consent gate", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		session := model.NewSession("+2348055555555")
		resp, err := uc.Chat.HandleMessage(ctx, session, "agent")
		gt.NoError(t, err).Required()

		// No agent seeded, so the unavailability message comes back, but
		// the consent gate was never consulted.
		gt.Value(t, resp).Equal("No agents available. Please try later or let me assist further.")
		gt.Bool(t, session.ConsentAnswered()).False()
	})

	t.Run("no agents available mutates nothing", func(t *testing.T) {
		repo := memory.New()
		busy, err := repo.Agent().Create(ctx, &model.Agent{
			Name:   "Busy",
			Email:  "busy@x.com",
			Status: types.AgentStatusBusy,
		})
		gt.NoError(t, err).Required()
		busyActive := busy.LastActive

		uc := usecase.New(repo)
		session := model.NewSession("+2348066666666")

		resp, err := uc.Chat.HandleMessage(ctx, session, "agent please")
		gt.NoError(t, err).Required()
		gt.Value(t, resp).Equal("No agents available. Please try later or let me assist further.")

		stored, err := repo.Agent().Get(ctx, busy.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, stored.Status).Equal(types.AgentStatusBusy)
		gt.Bool(t, stored.LastActive.Equal(busyActive)).True()

		gt.Array(t, repo.AuditEvents()).Length(0)
	})

	t.Run("concurrent escalations never assign the same agent", func(t *testing.T) {
		repo := memory.New()
		_, err := repo.Agent().Create(ctx, &model.Agent{
			Name:       "Only",
			Email:      "only@x.com",
			Expertise:  "Health",
			LastActive: time.Now().UTC().Add(-time.Hour),
		})
		gt.NoError(t, err).Required()

		uc := usecase.New(repo)

		const attempts = 4
		var wg sync.WaitGroup
		responses := make([]string, attempts)
		errs := make([]error, attempts)

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				session := model.NewSession("+23480777777" + string(rune('0'+i)))
				responses[i], errs[i] = uc.Chat.HandleMessage(ctx, session, "agent")
			}(i)
		}
		wg.Wait()

		connected := 0
		for i := 0; i < attempts; i++ {
			gt.NoError(t, errs[i]).Required()
			if strings.HasPrefix(responses[i], "Connecting you with") {
				connected++
			} else {
				gt.Value(t, responses[i]).Equal("No agents available. Please try later or let me assist further.")
			}
		}
		gt.Value(t, connected).Equal(1)
	})
}
