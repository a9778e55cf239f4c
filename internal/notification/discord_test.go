package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/varoOP/seasondb/internal/domain"
	"github.com/varoOP/seasondb/internal/notification"
)

type webhookPayload struct {
	Embeds []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Color       int    `json:"color"`
		Fields      []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"fields"`
	} `json:"embeds"`
}

func newWebhook(t *testing.T, status int, got *webhookPayload) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDiscordSendSuccess(t *testing.T) {
	var got webhookPayload
	srv := newWebhook(t, http.StatusNoContent, &got)

	svc := notification.NewDiscordService(zerolog.Nop(), srv.URL)
	err := svc.SendSuccess(context.Background(), domain.Statistics{
		Season:          "Spring 2013",
		TotalItems:      42,
		Removed:         3,
		Added:           5,
		RefreshRequired: true,
	})
	if err != nil {
		t.Fatalf("SendSuccess: %v", err)
	}

	if len(got.Embeds) != 1 {
		t.Fatalf("expected one embed, got %d", len(got.Embeds))
	}
	embed := got.Embeds[0]
	if embed.Title != "SeasonDB: Spring 2013" {
		t.Fatalf("unexpected title %q", embed.Title)
	}
	if embed.Color != 0xffa500 {
		t.Fatalf("expected refresh color, got %#x", embed.Color)
	}
	if len(embed.Fields) != 4 || embed.Fields[0].Value != "42" || embed.Fields[3].Value != "true" {
		t.Fatalf("unexpected fields %+v", embed.Fields)
	}
}

func TestDiscordSendError(t *testing.T) {
	var got webhookPayload
	srv := newWebhook(t, http.StatusOK, &got)

	svc := notification.NewDiscordService(zerolog.Nop(), srv.URL)
	if err := svc.SendError(context.Background(), errors.New("could not read season data")); err != nil {
		t.Fatalf("SendError: %v", err)
	}
	if len(got.Embeds) != 1 || !strings.Contains(got.Embeds[0].Description, "could not read season data") {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestDiscordRejectsFailedStatus(t *testing.T) {
	var got webhookPayload
	srv := newWebhook(t, http.StatusInternalServerError, &got)

	svc := notification.NewDiscordService(zerolog.Nop(), srv.URL)
	if err := svc.SendError(context.Background(), errors.New("boom")); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestServiceWithoutWebhookIsNoop(t *testing.T) {
	svc := notification.NewService(zerolog.Nop(), "")
	if err := svc.SendSuccess(context.Background(), domain.Statistics{}); err != nil {
		t.Fatalf("SendSuccess: %v", err)
	}
	if err := svc.SendError(context.Background(), errors.New("x")); err != nil {
		t.Fatalf("SendError: %v", err)
	}
}
