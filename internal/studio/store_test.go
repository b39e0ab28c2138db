package studio

import "testing"

func TestDispatchAtDropsStaleCompletions(t *testing.T) {
	store := NewStore()
	store.Dispatch(UploadImageSuccess{ImageURL: "photo"})

	placeholders := []GeneratedImage{{ID: "a", Status: StatusPending, Source: SourceTheme}}
	_, epoch := store.Dispatch(GenerationStart{Placeholders: placeholders, Source: SourceTheme})

	// The user uploads a new photo while the batch is still running.
	store.Dispatch(UploadImageSuccess{ImageURL: "other"})

	done := GeneratedImage{ID: "a", Status: StatusSuccess, ImageURL: "url", Source: SourceTheme}
	if _, _, ok := store.DispatchAt(epoch, GenerationProgress{Index: 0, Source: SourceTheme, Image: done}); ok {
		t.Fatal("stale completion must be dropped")
	}
	if len(store.State().GeneratedImages) != 0 {
		t.Fatal("new workspace must stay clean")
	}
}

func TestDispatchAtChainsEpochs(t *testing.T) {
	store := NewStore()
	store.Dispatch(UploadImageSuccess{ImageURL: "photo"})
	epoch := store.Epoch()

	_, epoch, ok := store.DispatchAt(epoch, SettingUpStart{})
	if !ok {
		t.Fatal("matching epoch must apply")
	}

	placeholders := []GeneratedImage{{ID: "a", Status: StatusPending, Source: SourceTheme}}
	_, next, ok := store.DispatchAt(epoch, GenerationStart{Placeholders: placeholders, Source: SourceTheme})
	if !ok {
		t.Fatal("generation start must apply")
	}
	if next == epoch {
		t.Fatal("generation start must open a new epoch")
	}

	done := GeneratedImage{ID: "a", Status: StatusSuccess, ImageURL: "url", Source: SourceTheme}
	if _, _, ok := store.DispatchAt(next, GenerationProgress{Index: 0, Source: SourceTheme, Image: done}); !ok {
		t.Fatal("progress tagged with the batch epoch must apply")
	}
	if store.State().GeneratedImages[0].Status != StatusSuccess {
		t.Fatal("progress not applied")
	}
}

func TestEpochBumpsOnlyOnWorkspaceChanges(t *testing.T) {
	store := NewStore()
	before := store.Epoch()

	store.Dispatch(DismissError{})
	store.Dispatch(SetCameraOpen{Open: true})
	store.Dispatch(SetAlbumStyle{Style: "neon"})
	if store.Epoch() != before {
		t.Fatal("setting actions must not bump the epoch")
	}

	store.Dispatch(StartOver{})
	if store.Epoch() != before+1 {
		t.Fatal("start over must bump the epoch")
	}
}
