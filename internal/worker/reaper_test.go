package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/metrics"
)

type stubReaperFacade struct {
	mu       sync.Mutex
	orphans  []model.Order
	fetched  int
	deleted  []string
	deleteFn func(id string) error
}

func (s *stubReaperFacade) OrphanedOrders(_ context.Context, _ time.Duration, _ int) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetched++
	orders := s.orphans
	s.orphans = nil
	return orders, nil
}

func (s *stubReaperFacade) DeleteOrder(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteFn != nil {
		if err := s.deleteFn(id); err != nil {
			return err
		}
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubReaperFacade) deletedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deleted...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestReaperDeletesOrphans(t *testing.T) {
	facade := &stubReaperFacade{
		orphans: []model.Order{
			{ID: "o1", Number: "PD-1-AAAA"},
			{ID: "o2", Number: "PD-2-BBBB"},
		},
	}
	m := metrics.New(prometheus.NewRegistry())
	reaper := NewReaper(facade, 10*time.Millisecond, time.Minute, 8, 2, m, testLogger())

	reaper.Start(context.Background())
	deadline := time.After(2 * time.Second)
	for len(facade.deletedIDs()) < 2 {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for reaps, got %v", facade.deletedIDs())
		case <-time.After(5 * time.Millisecond):
		}
	}
	reaper.Stop()

	deleted := map[string]bool{}
	for _, id := range facade.deletedIDs() {
		deleted[id] = true
	}
	if !deleted["o1"] || !deleted["o2"] {
		t.Fatalf("expected both orphans reaped, got %v", facade.deletedIDs())
	}
}

func TestReaperKeepsRunningAfterDeleteFailure(t *testing.T) {
	facade := &stubReaperFacade{
		orphans: []model.Order{
			{ID: "bad", Number: "PD-1-AAAA"},
			{ID: "good", Number: "PD-2-BBBB"},
		},
		deleteFn: func(id string) error {
			if id == "bad" {
				return errors.New("delete failed")
			}
			return nil
		},
	}
	m := metrics.New(prometheus.NewRegistry())
	reaper := NewReaper(facade, 10*time.Millisecond, time.Minute, 8, 1, m, testLogger())

	reaper.Start(context.Background())
	deadline := time.After(2 * time.Second)
	for {
		ids := facade.deletedIDs()
		if len(ids) == 1 && ids[0] == "good" {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("timed out, deleted %v", facade.deletedIDs())
		case <-time.After(5 * time.Millisecond):
		}
	}
	reaper.Stop()
}

func TestReaperStopIsIdempotent(t *testing.T) {
	facade := &stubReaperFacade{}
	m := metrics.New(prometheus.NewRegistry())
	reaper := NewReaper(facade, time.Hour, time.Minute, 1, 1, m, testLogger())

	reaper.Start(context.Background())
	reaper.Stop()
	reaper.Stop()
}
