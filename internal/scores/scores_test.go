package scores

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmheroes/mmheroes-go/internal/game"
)

func TestLegacyRoundTrip(t *testing.T) {
	entries := []game.HighScore{
		{Name: "Коля", Score: 400},
		{Name: "Vasiliy Pupkin", Score: 255},
		{Name: "ё", Score: -5},
		{Name: "", Score: 0},
		{Name: "Паша", Score: 1},
	}
	data := EncodeLegacy(entries)
	if len(data) != LegacyFileSize {
		t.Fatalf("encoded %d bytes, want %d", len(data), LegacyFileSize)
	}
	decoded, err := DecodeLegacy(data)
	if err != nil {
		t.Fatalf("DecodeLegacy: %v", err)
	}
	if len(decoded) != NumEntries {
		t.Fatalf("decoded %d entries, want %d", len(decoded), NumEntries)
	}
	for i, e := range entries {
		if decoded[i] != e {
			t.Errorf("entry %d: got %+v, want %+v", i, decoded[i], e)
		}
	}
}

func TestLegacyLayout(t *testing.T) {
	data := EncodeLegacy([]game.HighScore{{Name: "AB", Score: 0x0201}})
	if data[0] != 2 {
		t.Errorf("name length byte: got %d, want 2", data[0])
	}
	if data[1] != 'A' || data[2] != 'B' {
		t.Errorf("name bytes: got %q", data[1:3])
	}
	for i := 3; i < 33; i++ {
		if data[i] != 0 {
			t.Errorf("name padding at %d: got %d, want 0", i, data[i])
		}
	}
	// Score is little-endian at offset 33.
	if data[33] != 0x01 || data[34] != 0x02 {
		t.Errorf("score bytes: got %#02x %#02x", data[33], data[34])
	}
	// The remaining four records are all zero.
	if !bytes.Equal(data[35:], make([]byte, LegacyFileSize-35)) {
		t.Error("trailing records are not zeroed")
	}
}

func TestLegacyCyrillicEncoding(t *testing.T) {
	data := EncodeLegacy([]game.HighScore{{Name: "Ая", Score: 0}})
	// CP-866: 'А' is 0x80, 'я' is 0xEF.
	if data[1] != 0x80 || data[2] != 0xEF {
		t.Fatalf("got %#02x %#02x, want 0x80 0xef", data[1], data[2])
	}
}

func TestDecodeLegacyRejectsBadInput(t *testing.T) {
	if _, err := DecodeLegacy(make([]byte, LegacyFileSize-1)); err == nil {
		t.Error("short file accepted")
	}
	if _, err := DecodeLegacy(make([]byte, LegacyFileSize+1)); err == nil {
		t.Error("long file accepted")
	}
	bad := make([]byte, LegacyFileSize)
	bad[0] = 33 // name length above the field size
	if _, err := DecodeLegacy(bad); err == nil {
		t.Error("oversized name length accepted")
	}
}

func TestEncodeLegacyTruncates(t *testing.T) {
	long := game.HighScore{Name: "0123456789012345678901234567890123456789", Score: 1}
	decoded, err := DecodeLegacy(EncodeLegacy([]game.HighScore{long}))
	if err != nil {
		t.Fatalf("DecodeLegacy: %v", err)
	}
	if len(decoded[0].Name) != 32 {
		t.Fatalf("name not truncated: %d bytes", len(decoded[0].Name))
	}
}

func TestInsert(t *testing.T) {
	var list []game.HighScore
	var pos int

	list, pos = Insert(list, game.HighScore{Name: "a", Score: 10})
	if pos != 0 || len(list) != 1 {
		t.Fatalf("first insert: pos %d, len %d", pos, len(list))
	}
	list, pos = Insert(list, game.HighScore{Name: "b", Score: 20})
	if pos != 0 || list[0].Name != "b" || list[1].Name != "a" {
		t.Fatalf("higher score not placed first: %+v", list)
	}
	list, _ = Insert(list, game.HighScore{Name: "c", Score: 15})
	if list[1].Name != "c" {
		t.Fatalf("middle insert misplaced: %+v", list)
	}

	for _, s := range []int16{5, 4, 3} {
		list, _ = Insert(list, game.HighScore{Name: "pad", Score: s})
	}
	if len(list) != NumEntries {
		t.Fatalf("list grew past the cap: %d", len(list))
	}
	if _, pos = Insert(list, game.HighScore{Name: "loser", Score: 1}); pos != -1 {
		t.Fatalf("score below the cut inserted at %d", pos)
	}
}

func TestStoreSaveAndHallOfFame(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}

	runs := []RunRecord{
		{Name: "first", Score: 100, Seed: 1, PassedExams: 6},
		{Name: "second", Score: 250, Seed: 2, PassedExams: 6},
		{Name: "third", Score: 50, Seed: 3, PassedExams: 2, CauseOfDeath: "Paranoia"},
		{Name: "fourth", Score: 75, Seed: 4, PassedExams: 3},
		{Name: "fifth", Score: 10, Seed: 5, PassedExams: 0, CauseOfDeath: "Burnout"},
		{Name: "sixth", Score: 300, Seed: 6, PassedExams: 6},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%q) failed: %v", r.Name, err)
		}
	}

	fame, err := store.HallOfFame()
	if err != nil {
		t.Fatalf("HallOfFame() failed: %v", err)
	}
	if len(fame) != NumEntries {
		t.Fatalf("got %d entries, want %d", len(fame), NumEntries)
	}
	if fame[0].Name != "sixth" || fame[0].Score != 300 {
		t.Errorf("top entry: got %+v", fame[0])
	}
	for i := 1; i < len(fame); i++ {
		if fame[i].Score > fame[i-1].Score {
			t.Errorf("hall of fame not sorted at %d: %+v", i, fame)
		}
	}

	recent, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d recent runs, want 3", len(recent))
	}
}

func TestStoreImportLegacy(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	data := EncodeLegacy([]game.HighScore{
		{Name: "Дима", Score: 120},
		{Name: "Olga", Score: 80},
	})
	imported, err := store.ImportLegacy(data)
	if err != nil {
		t.Fatalf("ImportLegacy() failed: %v", err)
	}
	if imported != 2 {
		t.Fatalf("imported %d entries, want 2 (empty records skipped)", imported)
	}

	fame, err := store.HallOfFame()
	if err != nil {
		t.Fatalf("HallOfFame() failed: %v", err)
	}
	if len(fame) != 2 || fame[0].Name != "Дима" {
		t.Fatalf("unexpected hall of fame: %+v", fame)
	}
}
