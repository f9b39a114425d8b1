package assembler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/config"
	"github.com/ginjaninja78/CSV-to-PDF-conversion/internal/types"
)

// stubEncoder writes a placeholder file so the temp-image lifecycle is
// exercised with real filesystem state.
type stubEncoder struct {
	calls   int
	failOn  int // 1-based call number to fail on; 0 never fails
	renders []string
}

func (e *stubEncoder) Render(number, destPath string) error {
	e.calls++
	if e.failOn != 0 && e.calls == e.failOn {
		return errors.New("encode rejected")
	}
	e.renders = append(e.renders, number)
	return os.WriteFile(destPath, []byte("png"), 0644)
}

// stubSink records drawing calls and verifies that image files exist at
// draw time.
type stubSink struct {
	pageHeight float64
	pages      int
	frames     int
	texts      []string
	corners    []string
	images     []string
	failImage  bool
	missing    []string // image paths that did not exist when drawn
}

func newStubSink() *stubSink {
	return &stubSink{pageHeight: 297, pages: 1}
}

func (s *stubSink) PageSize() (float64, float64) { return 210, s.pageHeight }
func (s *stubSink) NextPage()                    { s.pages++ }
func (s *stubSink) PageCount() int               { return s.pages }
func (s *stubSink) DrawFrame(x, y, w, h float64) { s.frames++ }
func (s *stubSink) Err() error                   { return nil }

func (s *stubSink) DrawFittedText(cx, by, maxW, size float64, text string) {
	s.texts = append(s.texts, text)
}

func (s *stubSink) DrawRightAlignedText(rx, by, size float64, text string) {
	s.corners = append(s.corners, text)
}

func (s *stubSink) DrawImageFile(path string, x, y, w, h float64) error {
	if _, err := os.Stat(path); err != nil {
		s.missing = append(s.missing, path)
	}
	s.images = append(s.images, filepath.Base(path))
	if s.failImage {
		return errors.New("draw failed")
	}
	return nil
}

func testRecords(n int) []types.Record {
	records := make([]types.Record, n)
	for i := range records {
		records[i] = types.Record{
			Name:   fmt.Sprintf("Person %d", i+1),
			Number: fmt.Sprintf("%012d", i+1),
			Row:    i + 2,
		}
	}
	return records
}

func tempDirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

func TestRunRendersAllRecordsInOrder(t *testing.T) {
	tempDir := t.TempDir()
	enc := &stubEncoder{}
	sink := newStubSink()
	asm := New(config.Default(), enc, sink, tempDir, nil)

	records := testRecords(3)
	results, err := asm.Run(records)
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, res := range results {
		if !res.Success {
			t.Errorf("result %d failed: %v", i, res.Error)
		}
		if res.Record.Name != records[i].Name {
			t.Errorf("result %d out of order: %s", i, res.Record.Name)
		}
	}
	if sink.frames != 3 {
		t.Errorf("drew %d frames, want 3", sink.frames)
	}
	// Name label and number caption per card.
	if len(sink.texts) != 6 {
		t.Errorf("drew %d text labels, want 6", len(sink.texts))
	}
	if sink.pages != 1 {
		t.Errorf("used %d pages, want 1", sink.pages)
	}
	if len(sink.missing) != 0 {
		t.Errorf("images missing at draw time: %v", sink.missing)
	}
	if left := tempDirEntries(t, tempDir); len(left) != 0 {
		t.Errorf("temp images left after run: %v", left)
	}
}

func TestRunTempImageNaming(t *testing.T) {
	tempDir := t.TempDir()
	sink := newStubSink()
	asm := New(config.Default(), &stubEncoder{}, sink, tempDir, nil)

	_, err := asm.Run([]types.Record{{Name: "Alice", Number: "400638133393"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(sink.images) != 1 || sink.images[0] != "barcode_400638133393.png" {
		t.Errorf("image files = %v, want [barcode_400638133393.png]", sink.images)
	}
}

func TestRunDrawsExtraInfoCornerLabel(t *testing.T) {
	tempDir := t.TempDir()
	sink := newStubSink()
	asm := New(config.Default(), &stubEncoder{}, sink, tempDir, nil)

	records := []types.Record{
		{Name: "Alice", Number: "400638133393", ExtraInfo: "Sales Dept"},
		{Name: "Bob", Number: "599999999999"},
	}
	if _, err := asm.Run(records); err != nil {
		t.Fatal(err)
	}

	// One corner label per record that carries extra info.
	want := []string{"Sales Dept"}
	if len(sink.corners) != 1 || sink.corners[0] != want[0] {
		t.Errorf("corner labels = %v, want %v", sink.corners, want)
	}
	// Name labels and number captions are unaffected.
	if len(sink.texts) != 4 {
		t.Errorf("drew %d text labels, want 4", len(sink.texts))
	}
}

func TestRunDuplicateNumbers(t *testing.T) {
	tempDir := t.TempDir()
	sink := newStubSink()
	asm := New(config.Default(), &stubEncoder{}, sink, tempDir, nil)

	records := []types.Record{
		{Name: "Alice", Number: "400638133393"},
		{Name: "Alias", Number: "400638133393"},
	}
	results, err := asm.Run(records)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 || !results[0].Success || !results[1].Success {
		t.Errorf("duplicate numbers did not both render: %+v", results)
	}
	if len(sink.missing) != 0 {
		t.Errorf("images missing at draw time: %v", sink.missing)
	}
	if left := tempDirEntries(t, tempDir); len(left) != 0 {
		t.Errorf("temp images left after run: %v", left)
	}
}

func TestRunAbortsOnEncoderFailure(t *testing.T) {
	tempDir := t.TempDir()
	enc := &stubEncoder{failOn: 2}
	asm := New(config.Default(), enc, newStubSink(), tempDir, nil)

	results, err := asm.Run(testRecords(3))
	if err == nil {
		t.Fatal("Run succeeded despite encoder failure")
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (third record must not be attempted)", len(results))
	}
	if !results[0].Success || results[1].Success {
		t.Errorf("unexpected results: %+v", results)
	}
	if left := tempDirEntries(t, tempDir); len(left) != 0 {
		t.Errorf("temp images left after aborted run: %v", left)
	}
}

func TestRunCleansUpWhenDrawFails(t *testing.T) {
	tempDir := t.TempDir()
	sink := newStubSink()
	sink.failImage = true
	asm := New(config.Default(), &stubEncoder{}, sink, tempDir, nil)

	_, err := asm.Run(testRecords(1))
	if err == nil {
		t.Fatal("Run succeeded despite draw failure")
	}
	if left := tempDirEntries(t, tempDir); len(left) != 0 {
		t.Errorf("temp image left after failed draw: %v", left)
	}
}

func TestRunAdvancesPages(t *testing.T) {
	// Default A4 layout fits five rows of two cards; the eleventh card
	// must open a second page.
	tempDir := t.TempDir()
	sink := newStubSink()
	asm := New(config.Default(), &stubEncoder{}, sink, tempDir, nil)

	if _, err := asm.Run(testRecords(10)); err != nil {
		t.Fatal(err)
	}
	if sink.pages != 1 {
		t.Fatalf("10 cards used %d pages, want 1", sink.pages)
	}

	sink = newStubSink()
	asm = New(config.Default(), &stubEncoder{}, sink, tempDir, nil)
	if _, err := asm.Run(testRecords(11)); err != nil {
		t.Fatal(err)
	}
	if sink.pages != 2 {
		t.Errorf("11 cards used %d pages, want 2", sink.pages)
	}
}

func TestRunEmptyInput(t *testing.T) {
	asm := New(config.Default(), &stubEncoder{}, newStubSink(), t.TempDir(), nil)
	results, err := asm.Run(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results for empty input", len(results))
	}
}
