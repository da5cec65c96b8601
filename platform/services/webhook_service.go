package services

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/anatomypro/backend/platform/database/models"
	"github.com/anatomypro/backend/platform/database/repositories"
)

// SignatureHeader carries the hex HMAC-SHA256 of the delivery body, keyed
// with the subscription secret.
const SignatureHeader = "X-Anatomy-Signature"

const (
	deliveryTimeout     = 10 * time.Second
	maxConcurrentEmits  = 8
	maxDeliveryAttempts = 3
)

// WebhookEvent is the envelope posted to subscribers.
type WebhookEvent struct {
	Event      string         `json:"event"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data"`
}

type WebhookService struct {
	repo     repositories.WebhookRepository
	client   *http.Client
	now      func() time.Time
	inflight sync.WaitGroup
}

func NewWebhookService(repo repositories.WebhookRepository) *WebhookService {
	return &WebhookService{
		repo:   repo,
		client: &http.Client{Timeout: deliveryTimeout},
		now:    time.Now,
	}
}

func (ws *WebhookService) Subscribe(ctx context.Context, targetURL, secret, event string) (*models.WebhookSubscription, error) {
	parsed, err := url.Parse(targetURL)
	if err != nil || parsed.Scheme != "http" && parsed.Scheme != "https" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: target url must be http(s)", ErrInvalidArgument)
	}
	if secret == "" {
		return nil, fmt.Errorf("%w: secret is required", ErrInvalidArgument)
	}
	switch event {
	case models.EventMissionCompleted, models.EventLessonCompleted, models.EventLeaderboardBuilt:
	default:
		return nil, fmt.Errorf("%w: unknown event %q", ErrInvalidArgument, event)
	}

	sub := &models.WebhookSubscription{
		TargetURL: targetURL,
		Secret:    secret,
		Event:     event,
		IsActive:  true,
	}
	if err := ws.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return sub, nil
}

func (ws *WebhookService) List(ctx context.Context) ([]*models.WebhookSubscription, error) {
	return ws.repo.GetAll(ctx)
}

func (ws *WebhookService) SetActive(ctx context.Context, id int64, active bool) error {
	err := ws.repo.SetActive(ctx, id, active)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (ws *WebhookService) Delete(ctx context.Context, id int64) error {
	err := ws.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Emit fans the event out to every active subscription for it and returns
// immediately. Delivery runs detached from the caller's request, with its
// cancellation stripped, so a slow or flaky subscriber cannot stall or
// fail the domain operation that produced the event.
func (ws *WebhookService) Emit(ctx context.Context, event string, data map[string]any) {
	ws.inflight.Add(1)
	go func() {
		defer ws.inflight.Done()
		ws.dispatch(context.WithoutCancel(ctx), event, data)
	}()
}

// Flush blocks until every in-flight delivery has finished. Called on
// shutdown so pending events are not dropped; tests use it to observe
// deliveries deterministically.
func (ws *WebhookService) Flush() {
	ws.inflight.Wait()
}

func (ws *WebhookService) dispatch(ctx context.Context, event string, data map[string]any) {
	subs, err := ws.repo.GetActiveByEvent(ctx, event)
	if err != nil {
		slog.Error("Failed to load webhook subscriptions",
			slog.String("event", event),
			slog.Any("error", err))
		return
	}
	if len(subs) == 0 {
		return
	}

	body, err := json.Marshal(WebhookEvent{
		Event:      event,
		OccurredAt: ws.now().UTC(),
		Data:       data,
	})
	if err != nil {
		slog.Error("Failed to marshal webhook event",
			slog.String("event", event),
			slog.Any("error", err))
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEmits)
	for _, sub := range subs {
		sub := sub
		g.Go(func() error {
			ws.deliver(ctx, sub, body)
			return nil
		})
	}
	g.Wait()
}

func (ws *WebhookService) deliver(ctx context.Context, sub *models.WebhookSubscription, body []byte) {
	signature := Sign(sub.Secret, body)

	var lastErr error
	for attempt := 1; attempt <= maxDeliveryAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, sub.TargetURL, bytes.NewReader(body))
		if err != nil {
			lastErr = err
			break
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(SignatureHeader, signature)

		resp, err := ws.client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				slog.Debug("Webhook delivered",
					slog.Int64("subscription_id", sub.ID),
					slog.String("event", sub.Event),
					slog.Int("attempt", attempt))
				return
			}
			lastErr = fmt.Errorf("subscriber returned %d", resp.StatusCode)
		} else {
			lastErr = err
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}

	slog.Warn("Webhook delivery failed",
		slog.Int64("subscription_id", sub.ID),
		slog.String("event", sub.Event),
		slog.String("target", sub.TargetURL),
		slog.Any("error", lastErr))
}

// Sign computes the hex HMAC-SHA256 signature of body under secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature matches body under secret
// using a constant time comparison.
func VerifySignature(secret string, body []byte, signature string) bool {
	expected := Sign(secret, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}
