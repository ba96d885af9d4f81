package usecase

import "testing"

func TestThemeDefaultsToDark(t *testing.T) {
	store := NewThemeStore(newMemKV(), &fakeThemeView{}, &fakeIcons{})
	if got := store.Current(); got != "dark" {
		t.Fatalf("Current = %q, want dark", got)
	}
}

func TestThemeUnknownPersistedValueFallsBackToDark(t *testing.T) {
	kv := newMemKV()
	kv.m["theme"] = "solarized"
	store := NewThemeStore(kv, &fakeThemeView{}, &fakeIcons{})
	if got := store.Current(); got != "dark" {
		t.Fatalf("Current = %q, want dark", got)
	}
}

func TestThemeTogglePersistsAndApplies(t *testing.T) {
	kv := newMemKV()
	view := &fakeThemeView{}
	store := NewThemeStore(kv, view, &fakeIcons{})

	if got := store.Toggle(); got != "light" {
		t.Fatalf("first Toggle = %q, want light", got)
	}
	if kv.m["theme"] != "light" {
		t.Fatalf("persisted theme = %q, want light", kv.m["theme"])
	}
	if got := store.Toggle(); got != "dark" {
		t.Fatalf("second Toggle = %q, want dark", got)
	}
	if len(view.applied) != 2 || view.applied[0] != "light" || view.applied[1] != "dark" {
		t.Fatalf("applied = %v, want [light dark]", view.applied)
	}
}

func TestThemeApplyRendersCurrent(t *testing.T) {
	kv := newMemKV()
	kv.m["theme"] = "light"
	view := &fakeThemeView{}
	store := NewThemeStore(kv, view, &fakeIcons{})

	store.Apply()

	if len(view.applied) != 1 || view.applied[0] != "light" {
		t.Fatalf("applied = %v, want [light]", view.applied)
	}
}
