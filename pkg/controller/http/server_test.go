package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/heirs-lab/prince/pkg/controller/http"
	"github.com/heirs-lab/prince/pkg/domain/model"
	"github.com/heirs-lab/prince/pkg/repository/memory"
	"github.com/heirs-lab/prince/pkg/usecase"
)

func newTestServer(t *testing.T) (*httpctrl.Server, *memory.Memory) {
	t.Helper()

	repo := memory.New()
	uc := usecase.New(repo)
	return httpctrl.New(uc.Chat), repo
}

func postJSON(t *testing.T, srv *httpctrl.Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	gt.NoError(t, err).Required()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestChatEndpoint(t *testing.T) {
	t.Run("conversation advances across requests", func(t *testing.T) {
		srv, _ := newTestServer(t)

		rec := postJSON(t, srv, "/api/chat", map[string]string{
			"phone":   "+2348000000001",
			"message": "hello",
		})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp["reply"]).Equal("Hello! Please confirm you agree to our privacy policy to proceed. Type 'Agree' or 'Disagree'.")

		rec = postJSON(t, srv, "/api/chat", map[string]string{
			"phone":   "+2348000000001",
			"message": "agree",
		})
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp["reply"]).Equal("Thank you for agreeing to our privacy policy. How can I assist you today? Options: Buy a Product, View Your Policies, Make a Claim, Make a Complaint.")
	})

	t.Run("sessions are isolated per phone", func(t *testing.T) {
		srv, _ := newTestServer(t)

		rec := postJSON(t, srv, "/api/chat", map[string]string{
			"phone":   "+2348000000002",
			"message": "agree",
		})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		// A different phone still starts at the consent gate
		rec = postJSON(t, srv, "/api/chat", map[string]string{
			"phone":   "+2348000000003",
			"message": "hello",
		})
		var resp map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp["reply"]).Equal("Hello! Please confirm you agree to our privacy policy to proceed. Type 'Agree' or 'Disagree'.")
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		srv, _ := newTestServer(t)

		rec := postJSON(t, srv, "/api/chat", map[string]string{"message": "hi"})
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)

		rec = postJSON(t, srv, "/api/chat", map[string]string{"phone": "+2348000000004"})
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("intent turn after consent and identity", func(t *testing.T) {
		repo := memory.New()
		_, err := repo.Customer().Create(context.Background(), &model.Customer{
			Name:        "Ada Obi",
			Phone:       "+2348000000005",
			DateOfBirth: time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
		})
		gt.NoError(t, err).Required()

		uc := usecase.New(repo)
		srv := httpctrl.New(uc.Chat)

		rec := postJSON(t, srv, "/api/chat", map[string]string{
			"phone":   "+2348000000005",
			"message": "agree",
		})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		rec = postJSON(t, srv, "/api/chat", map[string]string{
			"phone":   "+2348000000005",
			"message": "make a claim",
		})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp["reply"]).Equal("To make a claim, please upload the necessary documents.")
	})
}

func TestSessionResetEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := postJSON(t, srv, "/api/chat", map[string]string{
		"phone":   "+2348000000006",
		"message": "agree",
	})
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	rec = postJSON(t, srv, "/api/session/reset", map[string]string{
		"phone": "+2348000000006",
	})
	gt.Value(t, rec.Code).Equal(http.StatusNoContent)

	// Back at the consent gate
	rec = postJSON(t, srv, "/api/chat", map[string]string{
		"phone":   "+2348000000006",
		"message": "hello",
	})
	var resp map[string]string
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Value(t, resp["reply"]).Equal("Hello! Please confirm you agree to our privacy policy to proceed. Type 'Agree' or 'Disagree'.")
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Value(t, rec.Body.String()).Equal("OK")
}
