package stats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"

	"github.com/circuitstrategies/circuitbot/internal/dispatcher"
)

func TestRecordArgs(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer sqlDB.Close()

	s := newStore(sqlDB)

	mock.ExpectExec(`INSERT INTO resolutions \(id, kind, category_id, channel\)`).
		WithArgs(sqlmock.AnyArg(), "category", "pricing", "websocket").
		WillReturnResult(sqlmock.NewResult(0, 1))

	res := dispatcher.Result{Kind: dispatcher.KindCategory, CategoryID: "pricing", Response: "not stored"}
	if err := s.Record(context.Background(), "websocket", res); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("There were unfulfilled expectations: %s", err)
	}
}

func TestRecordError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer sqlDB.Close()

	s := newStore(sqlDB)
	dbErr := errors.New("database is locked")

	mock.ExpectExec(`INSERT INTO resolutions`).WillReturnError(dbErr)

	err = s.Record(context.Background(), "http", dispatcher.Result{Kind: dispatcher.KindDefault})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped database error, got %v", err)
	}
}

func TestSummarySinceArg(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer sqlDB.Close()

	s := newStore(sqlDB)
	since := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	rows := sqlmock.NewRows([]string{"kind", "category_id", "n"}).
		AddRow("category", "pricing", 5).
		AddRow("default", "", 2)
	mock.ExpectQuery(`SELECT kind, category_id, COUNT\(\*\) AS n\s+FROM resolutions WHERE created_at >= \?`).
		WithArgs("2026-03-01 11:00:00").
		WillReturnRows(rows)

	counts, err := s.Summary(context.Background(), since)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 counts, got %d", len(counts))
	}
	if counts[0].Kind != dispatcher.KindCategory || counts[0].CategoryID != "pricing" || counts[0].Count != 5 {
		t.Errorf("unexpected first count: %+v", counts[0])
	}
	if counts[1].Kind != dispatcher.KindDefault || counts[1].CategoryID != "" {
		t.Errorf("unexpected second count: %+v", counts[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("There were unfulfilled expectations: %s", err)
	}
}

func TestSummaryEndpointStorageError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT kind, category_id`).WillReturnError(errors.New("disk I/O error"))

	r := chi.NewRouter()
	RegisterRoutes(r, newStore(sqlDB))

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
