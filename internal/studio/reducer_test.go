package studio

import (
	"testing"

	"pictureme/internal/instruction"
	"pictureme/internal/raster"
)

func strPtr(s string) *string { return &s }

func successImage(id string, template instruction.TemplateID) GeneratedImage {
	return GeneratedImage{
		ID:               id,
		Status:           StatusSuccess,
		ImageURL:         "data:image/png;base64,QQ==",
		ModelInstruction: "instr-" + id,
		Source:           SourceTheme,
		Template:         template,
		Variations:       []Variation{},
	}
}

func TestUploadSnapshotsExistingWork(t *testing.T) {
	state := NewState()
	state.OriginalUploadedImage = "orig"
	state.GeneratedImages = []GeneratedImage{successImage("Anos 80", instruction.TemplateDecades)}

	next := Reduce(state, UploadImageSuccess{ImageURL: "new-photo"})

	if len(next.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(next.History))
	}
	session := next.History[0]
	if session.Name != "Viajante do Tempo" {
		t.Fatalf("session name = %q", session.Name)
	}
	if session.OriginalUploadedImage != "orig" {
		t.Fatalf("session should keep the original photo, got %q", session.OriginalUploadedImage)
	}
	if next.UploadedImage != "new-photo" || next.OriginalUploadedImage != "new-photo" {
		t.Fatal("upload must set both image fields")
	}
	if len(next.GeneratedImages) != 0 || len(next.PromptGeneratedImages) != 0 {
		t.Fatal("upload must clear both result batches")
	}
	if next.ActiveFilter != raster.FilterNone {
		t.Fatalf("filter should reset, got %q", next.ActiveFilter)
	}
}

func TestUploadWithoutResultsSkipsHistory(t *testing.T) {
	state := NewState()
	state.UploadedImage = "photo"

	next := Reduce(state, UploadImageSuccess{ImageURL: "other"})
	if len(next.History) != 0 {
		t.Fatalf("empty workspace must not be archived, history = %d", len(next.History))
	}
}

func TestStartOverKeepsHistory(t *testing.T) {
	state := NewState()
	state.UploadedImage = "photo"
	state.CustomPrompt = "algo"
	state.PromptGeneratedImages = []GeneratedImage{successImage("um prompt", instruction.TemplateNone)}

	next := Reduce(state, StartOver{})

	if len(next.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(next.History))
	}
	if next.History[0].Name != "Geração de Prompt" {
		t.Fatalf("session name = %q", next.History[0].Name)
	}
	if next.UploadedImage != "" || next.CustomPrompt != "" {
		t.Fatal("start over must reset the workspace")
	}
	if next.Status != SessionIdle {
		t.Fatalf("status = %q, want idle", next.Status)
	}
}

func TestSelectTemplateResetsOptionBundles(t *testing.T) {
	state := NewState()
	state.Hair.SelectedStyles = []string{"Short"}
	state.Lookbook.Style = "Vintage"
	state.RetroPoster.Title = "Aventura"
	state.CyberpunkCity.NeonColor = "Magenta"
	state.Headshots.Expression = "Sério"

	next := Reduce(state, SelectTemplate{Template: instruction.TemplateHeadshots})

	if next.Template != instruction.TemplateHeadshots {
		t.Fatalf("template = %q", next.Template)
	}
	initial := NewState()
	if len(next.Hair.SelectedStyles) != 0 ||
		next.Lookbook.Style != "" ||
		next.RetroPoster.Title != "" ||
		next.CyberpunkCity.NeonColor != initial.CyberpunkCity.NeonColor ||
		next.Headshots.Expression != initial.Headshots.Expression {
		t.Fatal("selecting a template must reset every option bundle")
	}
}

func TestHairStyleCap(t *testing.T) {
	state := NewState()
	seven := []string{"a", "b", "c", "d", "e", "f", "g"}

	next := Reduce(state, UpdateHairOptions{SelectedStyles: &seven})
	if next.Error != ErrTooManyHairStyles {
		t.Fatalf("error = %q", next.Error)
	}
	if len(next.Hair.SelectedStyles) != 0 {
		t.Fatal("oversized selection must not be applied")
	}

	six := seven[:6]
	next = Reduce(state, UpdateHairOptions{SelectedStyles: &six})
	if next.Error != "" || len(next.Hair.SelectedStyles) != 6 {
		t.Fatalf("six styles should be accepted, error=%q len=%d", next.Error, len(next.Hair.SelectedStyles))
	}
}

func TestPartialOptionUpdates(t *testing.T) {
	state := NewState()
	state.Headshots.Pose = instruction.PoseAngle

	next := Reduce(state, UpdateHeadshotOptions{Expression: strPtr("Confiante")})
	if next.Headshots.Expression != "Confiante" {
		t.Fatalf("expression = %q", next.Headshots.Expression)
	}
	if next.Headshots.Pose != instruction.PoseAngle {
		t.Fatal("absent fields must keep their value")
	}

	count := 4
	next = Reduce(state, UpdateGenerationSettings{PromptImageCount: &count, CustomPrompt: strPtr("um gato")})
	if next.PromptImageCount != 4 || next.CustomPrompt != "um gato" {
		t.Fatalf("settings not applied: %+v", next)
	}
	if next.AspectRatio != "1:1" {
		t.Fatal("aspect ratio must be untouched")
	}
}

func TestGenerationStartRoutesBatches(t *testing.T) {
	state := NewState()
	state.GeneratedImages = []GeneratedImage{successImage("Anos 80", instruction.TemplateDecades)}

	placeholders := []GeneratedImage{{ID: "p", Status: StatusPending, Source: SourcePrompt}}
	next := Reduce(state, GenerationStart{Placeholders: placeholders, Source: SourcePrompt})

	if next.Status != SessionPromptLoading {
		t.Fatalf("status = %q", next.Status)
	}
	if len(next.History) != 1 {
		t.Fatal("previous theme batch must be archived")
	}
	if len(next.GeneratedImages) != 0 || len(next.PromptGeneratedImages) != 1 {
		t.Fatal("prompt batch must clear theme results and install placeholders")
	}
	if next.Progress != 0 {
		t.Fatalf("progress = %f", next.Progress)
	}
}

func TestGenerationProgressIsPathCopied(t *testing.T) {
	state := NewState()
	state.GeneratedImages = []GeneratedImage{
		{ID: "a", Status: StatusPending, Source: SourceTheme, Variations: []Variation{{ID: "v"}}},
		{ID: "b", Status: StatusPending, Source: SourceTheme},
	}

	done := GeneratedImage{ID: "a", Status: StatusSuccess, ImageURL: "url", ModelInstruction: "instr", Source: SourceTheme}
	next := Reduce(state, GenerationProgress{Index: 0, Source: SourceTheme, Image: done})

	if state.GeneratedImages[0].Status != StatusPending {
		t.Fatal("input state must not be mutated")
	}
	if next.GeneratedImages[0].Status != StatusSuccess || next.GeneratedImages[0].ImageURL != "url" {
		t.Fatal("slot not updated")
	}
	if len(next.GeneratedImages[0].Variations) != 1 {
		t.Fatal("existing variations must survive a progress update")
	}
	if next.Progress != 50 {
		t.Fatalf("progress = %f, want 50", next.Progress)
	}

	next = Reduce(next, GenerationProgress{Index: 1, Source: SourceTheme, Image: done})
	if next.Progress != 100 {
		t.Fatalf("progress = %f, want 100", next.Progress)
	}
}

func TestVariationLifecycle(t *testing.T) {
	state := NewState()
	state.GeneratedImages = []GeneratedImage{successImage("a", instruction.TemplateDecades)}

	next := Reduce(state, CreateVariationsStart{ParentIndex: 0, Source: SourceTheme})
	if !next.GeneratedImages[0].GeneratingVariations {
		t.Fatal("start must flag the parent")
	}

	variations := []Variation{
		{ID: "Variação 1", Status: StatusSuccess, ImageURL: "v1"},
		{ID: "Variação 2", Status: StatusFailed},
	}
	next = Reduce(next, CreateVariationsSuccess{ParentIndex: 0, Source: SourceTheme, Variations: variations})
	parent := next.GeneratedImages[0]
	if parent.GeneratingVariations {
		t.Fatal("flag must clear on success")
	}
	if len(parent.Variations) != 2 {
		t.Fatalf("variations = %d, want 2", len(parent.Variations))
	}

	next = Reduce(next, CreateVariationsFailure{ParentIndex: 0, Source: SourceTheme, Message: "falhou"})
	if next.Error != "falhou" {
		t.Fatalf("error = %q", next.Error)
	}
}

func TestEditVariationTargetsTheRightSlot(t *testing.T) {
	vi := 1
	state := NewState()
	img := successImage("a", instruction.TemplateDecades)
	img.Variations = []Variation{{ID: "v1", Status: StatusSuccess}, {ID: "v2", Status: StatusSuccess, ImageURL: "old"}}
	state.GeneratedImages = []GeneratedImage{img}
	state.EditingImageInfo = &EditingImageInfo{ImageURL: "old", ID: "v2", Source: SourceTheme, Index: 0, VariationIndex: &vi}

	next := Reduce(state, EditImageStart{})
	if !next.GeneratedImages[0].Variations[1].Editing {
		t.Fatal("edit start must flag the variation")
	}
	if next.GeneratedImages[0].Variations[0].Editing || next.GeneratedImages[0].Editing {
		t.Fatal("other slots must stay untouched")
	}

	next = Reduce(next, EditImageSuccess{Source: SourceTheme, Index: 0, VariationIndex: &vi, NewImageURL: "new"})
	if next.GeneratedImages[0].Variations[1].ImageURL != "new" {
		t.Fatal("edit success must swap the variation image")
	}
	if next.EditingImageInfo != nil {
		t.Fatal("edit success must close the modal")
	}
	if next.Status != SessionSuccess {
		t.Fatalf("status = %q", next.Status)
	}
}

func TestLoadHistorySessionRestoresWorkspace(t *testing.T) {
	state := NewState()
	state.GeneratedImages = []GeneratedImage{successImage("Anos 80", instruction.TemplateDecades)}
	state.OriginalUploadedImage = "orig"
	state = Reduce(state, StartOver{})

	sessionID := state.History[0].ID
	next := Reduce(state, LoadHistorySession{SessionID: sessionID})

	if next.UploadedImage != "orig" || next.OriginalUploadedImage != "orig" {
		t.Fatal("history load must restore the uploaded photo")
	}
	if len(next.GeneratedImages) != 1 || next.GeneratedImages[0].ID != "Anos 80" {
		t.Fatal("history load must restore the theme batch")
	}
	if next.Template != instruction.TemplateDecades {
		t.Fatalf("template = %q", next.Template)
	}
	if next.Status != SessionSuccess || next.Progress != 100 {
		t.Fatalf("status=%q progress=%f", next.Status, next.Progress)
	}

	same := Reduce(next, LoadHistorySession{SessionID: "missing"})
	if same.UploadedImage != next.UploadedImage || len(same.History) != len(next.History) {
		t.Fatal("unknown session id must be a no-op")
	}

	cleared := Reduce(next, ClearHistory{})
	if len(cleared.History) != 0 {
		t.Fatal("clear history must empty the list")
	}
}
