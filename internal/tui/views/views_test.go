package views

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/compose"
	"github.com/f3rmion/wishcard/internal/export"
	"github.com/f3rmion/wishcard/internal/fonts"
	"github.com/f3rmion/wishcard/internal/gallery"
	"github.com/f3rmion/wishcard/internal/preview"
)

func newDeps(t *testing.T, withGallery bool) (Deps, *[]string) {
	t.Helper()
	reg, err := fonts.NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	var copied []string
	deps := Deps{
		Pipeline:  export.NewPipeline(compose.New(reg), nil, export.Options{Width: 144}, nil),
		OutputDir: t.TempDir(),
		Mode:      preview.Mono,
		Copy: func(s string) error {
			copied = append(copied, s)
			return nil
		},
	}
	if withGallery {
		store, err := gallery.Open(filepath.Join(t.TempDir(), "gallery.db"))
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { store.Close() })
		deps.Gallery = store
	}
	return deps, &copied
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "ctrl+e":
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func startCards(t *testing.T, deps Deps) CardsModel {
	t.Helper()
	m := NewCardsModel(deps)
	m.SetSize(100, 40)
	m.input.SetValue("Luxury birthday invitation for 50th birthday")

	m, cmd := m.Update(key("enter"))
	if m.Session() == nil {
		t.Fatalf("no session after enter: %v", m.err)
	}
	if m.Typing() {
		t.Error("input should blur after a valid prompt")
	}
	if cmd == nil {
		t.Fatal("expected a preview command")
	}
	m, _ = m.Update(cmd())
	return m
}

func TestCards_PromptToPreviews(t *testing.T) {
	deps, _ := newDeps(t, false)
	m := startCards(t, deps)

	if m.rendering || m.err != nil {
		t.Fatalf("rendering=%v err=%v", m.rendering, m.err)
	}
	for i, art := range m.previews {
		if art == "" {
			t.Errorf("preview %d empty", i)
		}
	}
	if !strings.Contains(m.View(), "Happy Birthday!") {
		t.Error("view should show the selected title")
	}
}

func TestCards_ShortPromptStaysInInput(t *testing.T) {
	deps, _ := newDeps(t, false)
	m := NewCardsModel(deps)
	m.input.SetValue("hi")
	m, cmd := m.Update(key("enter"))
	if cmd != nil || m.Session() != nil || m.err == nil || !m.Typing() {
		t.Errorf("short prompt: session=%v err=%v typing=%v", m.Session(), m.err, m.Typing())
	}
}

func TestCards_Keys(t *testing.T) {
	deps, _ := newDeps(t, false)
	m := startCards(t, deps)
	s := m.Session()

	m, _ = m.Update(key("l"))
	if s.Selected() != 1 {
		t.Errorf("selected = %d", s.Selected())
	}

	tone := s.Tone()
	m, _ = m.Update(key("t"))
	if s.Tone() == tone {
		t.Error("t should change the tone")
	}

	m, _ = m.Update(key("T"))
	if !s.ThemeOverridden() {
		t.Error("T should pin a theme")
	}
	m, _ = m.Update(key("u"))
	if s.ThemeOverridden() {
		t.Error("u should return to automatic themes")
	}

	m, cmd := m.Update(key("a"))
	if m.Aspect() != card.AspectStory || cmd == nil {
		t.Errorf("aspect = %q", m.Aspect())
	}

	before := s.Variations()[1].MainText
	m, _ = m.Update(key("r"))
	if s.Variations()[1].MainText == before {
		t.Error("r should regenerate the selected slot")
	}

	m, _ = m.Update(key("/"))
	if !m.Typing() {
		t.Error("/ should focus the prompt")
	}
}

func TestCards_StalePreviewDropped(t *testing.T) {
	deps, _ := newDeps(t, false)
	m := startCards(t, deps)
	art := m.previews

	m, _ = m.Update(previewsMsg{gen: m.gen - 1, arts: [3]string{"stale", "stale", "stale"}})
	if m.previews != art {
		t.Error("stale previews replaced current ones")
	}
}

func TestCards_ExportAndCopy(t *testing.T) {
	deps, copied := newDeps(t, true)
	m := startCards(t, deps)

	m, cmd := m.Update(key("y"))
	if cmd == nil || !m.exporting {
		t.Fatal("y should start an export")
	}
	msg := cmd().(exportedMsg)
	if msg.err != nil {
		t.Fatalf("export: %v", msg.err)
	}
	m, _ = m.Update(msg)

	if len(msg.locations) != 1 {
		t.Fatalf("locations = %v", msg.locations)
	}
	if _, err := os.Stat(msg.locations[0]); err != nil {
		t.Errorf("exported file missing: %v", err)
	}
	if len(*copied) != 1 || !filepath.IsAbs((*copied)[0]) {
		t.Errorf("copied = %v", *copied)
	}
	if !m.copied || !strings.HasPrefix(m.status, "Saved ") {
		t.Errorf("status = %q copied = %v", m.status, m.copied)
	}

	entries, err := deps.Gallery.List(context.Background(), 0)
	if err != nil || len(entries) != 1 {
		t.Errorf("gallery entries = %d, %v", len(entries), err)
	}
}

func TestCards_ExportAll(t *testing.T) {
	deps, _ := newDeps(t, false)
	m := startCards(t, deps)

	_, cmd := m.Update(key("E"))
	msg := cmd().(exportedMsg)
	if msg.err != nil || len(msg.locations) != 3 {
		t.Fatalf("export all: %v, %v", msg.locations, msg.err)
	}
	files, _ := os.ReadDir(deps.OutputDir)
	if len(files) != 3 {
		t.Errorf("got %d files", len(files))
	}
}

func TestPack_GenerateCopyExport(t *testing.T) {
	deps, copied := newDeps(t, false)
	m := NewPackModel(deps)
	m.SetSize(100, 40)
	m.inputs[fieldName].SetValue("Asha")
	m.inputs[fieldRelationship].SetValue("friend")
	m.inputs[fieldTone].SetValue("funny")

	m, _ = m.Update(key("enter"))
	if m.Pack() == nil {
		t.Fatal("enter should generate a pack")
	}
	p := m.Pack().Pack()
	if !strings.Contains(p.Hashtags, "#HappyBirthdayAsha") {
		t.Errorf("hashtags = %q", p.Hashtags)
	}

	m, _ = m.Update(key("ctrl+y"))
	if len(*copied) != 1 || (*copied)[0] != p.MainWish {
		t.Errorf("copied = %v", *copied)
	}

	m, cmd := m.Update(key("ctrl+e"))
	if cmd == nil {
		t.Fatal("ctrl+e should export")
	}
	m, _ = m.Update(cmd())
	if m.err != nil || !strings.HasPrefix(m.status, "Saved ") {
		t.Errorf("export: status %q err %v", m.status, m.err)
	}
	if !strings.Contains(m.View(), "Main wish") {
		t.Error("view should show the pack")
	}
}

func TestPack_FieldFocus(t *testing.T) {
	deps, _ := newDeps(t, false)
	m := NewPackModel(deps)
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("x"))
	if got := m.Form().Relationship; got != "x" {
		t.Errorf("relationship = %q", got)
	}
	if m.Form().Name != "" {
		t.Errorf("name = %q", m.Form().Name)
	}
}

func TestHistory(t *testing.T) {
	deps, copied := newDeps(t, true)
	ctx := context.Background()
	for i, title := range []string{"Older", "Newer"} {
		err := deps.Gallery.Record(ctx, gallery.Entry{
			ID:        title,
			CreatedAt: time.Unix(int64(1000+i), 0),
			Title:     title,
			Theme:     "paper-minimal",
			Aspect:    "square",
			Format:    "png",
			Location:  "/tmp/" + title + ".png",
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	m := NewHistoryModel(deps)
	cmd := m.Refresh()
	m, _ = m.Update(cmd())
	if len(m.Entries()) != 2 || m.Entries()[0].Title != "Newer" {
		t.Fatalf("entries = %+v", m.Entries())
	}

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("y"))
	if len(*copied) != 1 || (*copied)[0] != "/tmp/Older.png" {
		t.Errorf("copied = %v", *copied)
	}

	m, cmd = m.Update(key("d"))
	m, cmd = m.Update(cmd())
	m, _ = m.Update(cmd())
	if len(m.Entries()) != 1 || m.cursor != 0 {
		t.Errorf("after delete: %d entries, cursor %d", len(m.Entries()), m.cursor)
	}
}

func TestHistory_Disabled(t *testing.T) {
	deps, _ := newDeps(t, false)
	m := NewHistoryModel(deps)
	if m.Refresh() != nil {
		t.Error("no gallery means nothing to load")
	}
	if !strings.Contains(m.View(), "disabled") {
		t.Error("view should explain history is disabled")
	}
}
