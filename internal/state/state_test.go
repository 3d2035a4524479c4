package state

import (
	"context"
	"testing"

	"github.com/user235678/yt-adawi-sub002/internal/domain"
	"github.com/user235678/yt-adawi-sub002/internal/pipeline"
)

func TestMemoryStore_UnknownSessionGetsDefaults(t *testing.T) {
	store := NewMemorySessionStore()

	st, found, err := store.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("unknown session must not be found")
	}
	if st.Category != domain.CategoryVedette || st.Page != 1 {
		t.Fatalf("defaults: %+v", st)
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	st := pipeline.NewViewState()
	st.SetCategory(domain.CategoryFemme)
	st.SetSize("m")
	st.SetPage(3)

	if err := store.Save(ctx, "s-1", st); err != nil {
		t.Fatal(err)
	}

	got, found, err := store.Get(ctx, "s-1")
	if err != nil || !found {
		t.Fatalf("found=%v err=%v", found, err)
	}
	if got != st {
		t.Fatalf("got %+v want %+v", got, st)
	}

	// Sessions are independent.
	other, found, _ := store.Get(ctx, "s-2")
	if found || other.Category != domain.CategoryVedette {
		t.Fatalf("session leak: %+v", other)
	}
}
