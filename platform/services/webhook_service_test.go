package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/anatomypro/backend/platform/database/models"
	"github.com/anatomypro/backend/platform/database/repositories/mock"
)

func newWebhookService(t *testing.T) (*WebhookService, *mock.MockWebhookRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockWebhookRepository(ctrl)
	ws := NewWebhookService(repo)
	ws.now = func() time.Time { return testNow }
	return ws, repo
}

func TestWebhookService_Emit_SignsDeliveries(t *testing.T) {
	ws, repo := newWebhookService(t)

	var mu sync.Mutex
	var gotSignature string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotSignature = r.Header.Get(SignatureHeader)
		gotBody = body
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	repo.EXPECT().
		GetActiveByEvent(gomock.Any(), models.EventMissionCompleted).
		Return([]*models.WebhookSubscription{
			{ID: 1, TargetURL: server.URL, Secret: "topsecret", Event: models.EventMissionCompleted, IsActive: true},
		}, nil)

	ws.Emit(context.Background(), models.EventMissionCompleted, map[string]any{
		"user_id": float64(7),
	})
	ws.Flush()

	mu.Lock()
	defer mu.Unlock()
	if gotBody == nil {
		t.Fatal("subscriber never received the delivery")
	}
	if !VerifySignature("topsecret", gotBody, gotSignature) {
		t.Errorf("signature %q does not verify against body", gotSignature)
	}

	var event WebhookEvent
	if err := json.Unmarshal(gotBody, &event); err != nil {
		t.Fatalf("delivery body is not valid JSON: %v", err)
	}
	if event.Event != models.EventMissionCompleted {
		t.Errorf("event = %q, want %q", event.Event, models.EventMissionCompleted)
	}
	if event.Data["user_id"] != float64(7) {
		t.Errorf("data = %v, want user_id 7", event.Data)
	}
}

func TestWebhookService_Emit_RetriesFailedDelivery(t *testing.T) {
	ws, repo := newWebhookService(t)

	var mu sync.Mutex
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()
		if n < 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	repo.EXPECT().
		GetActiveByEvent(gomock.Any(), models.EventLessonCompleted).
		Return([]*models.WebhookSubscription{
			{ID: 1, TargetURL: server.URL, Secret: "s", Event: models.EventLessonCompleted, IsActive: true},
		}, nil)

	ws.Emit(context.Background(), models.EventLessonCompleted, nil)
	ws.Flush()

	mu.Lock()
	defer mu.Unlock()
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2 (one failure, one success)", attempts)
	}
}

func TestWebhookService_Emit_DoesNotBlockCaller(t *testing.T) {
	ws, repo := newWebhookService(t)

	var once sync.Once
	received := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { close(received) })
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	repo.EXPECT().
		GetActiveByEvent(gomock.Any(), models.EventMissionCompleted).
		Return([]*models.WebhookSubscription{
			{ID: 1, TargetURL: server.URL, Secret: "s", Event: models.EventMissionCompleted, IsActive: true},
		}, nil)

	ws.Emit(context.Background(), models.EventMissionCompleted, nil)

	// Emit already returned; the subscriber is still holding the request.
	select {
	case <-received:
	case <-time.After(5 * time.Second):
		t.Fatal("delivery never reached the subscriber")
	}
	close(release)
	ws.Flush()
}

func TestWebhookService_Subscribe_Validation(t *testing.T) {
	ws, _ := newWebhookService(t)

	tests := []struct {
		name   string
		url    string
		secret string
		event  string
	}{
		{name: "bad scheme", url: "ftp://example.com/hook", secret: "s", event: models.EventMissionCompleted},
		{name: "no host", url: "https://", secret: "s", event: models.EventMissionCompleted},
		{name: "missing secret", url: "https://example.com/hook", secret: "", event: models.EventMissionCompleted},
		{name: "unknown event", url: "https://example.com/hook", secret: "s", event: "user.sneezed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ws.Subscribe(context.Background(), tt.url, tt.secret, tt.event); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"event":"mission.completed"}`)
	sig := Sign("secret", body)

	if !VerifySignature("secret", body, sig) {
		t.Error("valid signature rejected")
	}
	if VerifySignature("other", body, sig) {
		t.Error("signature verified under wrong secret")
	}
	if VerifySignature("secret", []byte("tampered"), sig) {
		t.Error("signature verified for tampered body")
	}
}
