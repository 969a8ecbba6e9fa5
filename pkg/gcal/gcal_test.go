package gcal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
}

func TestEventsMapsTimedAndAllDay(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("singleEvents") != "true" {
			t.Errorf("expected singleEvents=true, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"items":[
			{"id":"1","summary":"standup","description":"daily","start":{"dateTime":"2026-03-02T09:30:00+09:00"}},
			{"id":"2","start":{"date":"2026-03-03"}},
			{"id":"3","start":{}}
		]}`))
	}))

	events := c.Events(context.Background(),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	timed := events[0]
	if timed.Date != "2026-03-02" || timed.Time != "09:30" || timed.AllDay {
		t.Fatalf("bad timed event: %#v", timed)
	}
	if timed.Title != "standup" || timed.Description != "daily" {
		t.Fatalf("bad timed event fields: %#v", timed)
	}

	allDay := events[1]
	if allDay.Date != "2026-03-03" || !allDay.AllDay || allDay.Time != "" {
		t.Fatalf("bad all-day event: %#v", allDay)
	}
	if allDay.Title != "(제목 없음)" {
		t.Fatalf("expected placeholder title, got %q", allDay.Title)
	}
}

func TestEventsFailureYieldsEmpty(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))

	events := c.Events(context.Background(), time.Now(), time.Now().Add(time.Hour))
	if events == nil || len(events) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", events)
	}
}

func TestEventsBadPayloadYieldsEmpty(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json{"))
	}))

	if events := c.Events(context.Background(), time.Now(), time.Now()); len(events) != 0 {
		t.Fatalf("expected empty slice, got %#v", events)
	}
}
