package db

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *MessageStore {
	t.Helper()

	database, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	store, err := NewMessageStore(database)
	if err != nil {
		t.Fatalf("NewMessageStore: %v", err)
	}
	return store
}

func record(typeID int, kind, game, line string) MessageRecord {
	return MessageRecord{
		ReceivedAt: time.Now(),
		Remote:     "127.0.0.1:5000",
		Direction:  "in",
		TypeID:     typeID,
		Kind:       kind,
		Game:       game,
		Line:       line,
		Rendering:  kind + ":game=" + game,
	}
}

func TestAppendAndRecent(t *testing.T) {
	store := newTestStore(t)

	seed := []MessageRecord{
		record(1026, "SOCPutPiece", "g1", "1026|g1,0,1,2054"),
		record(1026, "SOCPutPiece", "g2", "1026|g2,1,2,1012"),
		record(1028, "SOCDiceResult", "g1", "1028|g1,8"),
	}
	for _, rec := range seed {
		if err := store.Append(rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	recs, err := store.Recent("", 0, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("Recent returned %d records, want 3", len(recs))
	}
	// Newest first
	if recs[0].TypeID != 1028 {
		t.Errorf("first record type = %d, want 1028", recs[0].TypeID)
	}
	if recs[0].Line != "1028|g1,8" {
		t.Errorf("first record line = %q", recs[0].Line)
	}
	if recs[0].ReceivedAt.IsZero() {
		t.Error("ReceivedAt not round-tripped")
	}
}

func TestRecentFilters(t *testing.T) {
	store := newTestStore(t)

	store.Append(record(1026, "SOCPutPiece", "g1", "a"))
	store.Append(record(1026, "SOCPutPiece", "g2", "b"))
	store.Append(record(1028, "SOCDiceResult", "g1", "c"))

	byGame, err := store.Recent("g1", 0, 10)
	if err != nil {
		t.Fatalf("Recent(game): %v", err)
	}
	if len(byGame) != 2 {
		t.Fatalf("game filter returned %d records, want 2", len(byGame))
	}
	for _, rec := range byGame {
		if rec.Game != "g1" {
			t.Errorf("record game = %q, want g1", rec.Game)
		}
	}

	byType, err := store.Recent("", 1026, 10)
	if err != nil {
		t.Fatalf("Recent(type): %v", err)
	}
	if len(byType) != 2 {
		t.Fatalf("type filter returned %d records, want 2", len(byType))
	}

	both, err := store.Recent("g1", 1026, 10)
	if err != nil {
		t.Fatalf("Recent(game,type): %v", err)
	}
	if len(both) != 1 || both[0].Line != "a" {
		t.Fatalf("combined filter = %+v, want the single g1 PUTPIECE", both)
	}
}

func TestRecentLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 10; i++ {
		store.Append(record(1000, "SOCNullMessage", "", "1000"))
	}

	recs, err := store.Recent("", 0, 4)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 4 {
		t.Errorf("limit 4 returned %d records", len(recs))
	}
}

func TestCountsByKindAndTotal(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 3; i++ {
		store.Append(record(1026, "SOCPutPiece", "g1", "x"))
	}
	store.Append(record(1028, "SOCDiceResult", "g1", "y"))

	counts, err := store.CountsByKind()
	if err != nil {
		t.Fatalf("CountsByKind: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("CountsByKind returned %d kinds, want 2", len(counts))
	}
	if counts[0].Kind != "SOCPutPiece" || counts[0].Count != 3 {
		t.Errorf("most frequent = %+v, want PUTPIECE x3", counts[0])
	}

	total, err := store.Total()
	if err != nil {
		t.Fatalf("Total: %v", err)
	}
	if total != 4 {
		t.Errorf("Total = %d, want 4", total)
	}
}

func TestPrune(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 10; i++ {
		store.Append(record(1000, "SOCNullMessage", "", "1000"))
	}

	deleted, err := store.Prune(6)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if deleted != 4 {
		t.Errorf("Prune deleted %d rows, want 4", deleted)
	}

	total, _ := store.Total()
	if total != 6 {
		t.Errorf("Total after prune = %d, want 6", total)
	}

	// Oldest rows must be the ones removed.
	recs, _ := store.Recent("", 0, 100)
	for _, rec := range recs {
		if rec.ID <= 4 {
			t.Errorf("row id %d survived prune", rec.ID)
		}
	}
}

func TestPruneUnderLimit(t *testing.T) {
	store := newTestStore(t)

	store.Append(record(1000, "SOCNullMessage", "", "1000"))

	deleted, err := store.Prune(100)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if deleted != 0 {
		t.Errorf("Prune deleted %d rows from an under-limit log", deleted)
	}

	if deleted, _ := store.Prune(0); deleted != 0 {
		t.Errorf("Prune(0) deleted %d rows, want 0", deleted)
	}
}
