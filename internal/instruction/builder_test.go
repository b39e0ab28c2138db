package instruction

import (
	"strings"
	"testing"
)

func baseConfig() Config {
	return Config{
		Style:       "Photorealistic",
		AspectRatio: "1:1",
		CameraShot:  "Padrão",
		CameraLens:  "Padrão",
	}
}

func TestBuildDecadesMentionsDecadeAndStyle(t *testing.T) {
	tpl := Catalog[TemplateDecades]
	got := Build(TemplateDecades, tpl.Prompts[3], baseConfig())

	for _, want := range []string{
		"Anos 80",
		tpl.Prompts[3].Base,
		"a Photorealistic style",
		"a 1:1 aspect ratio",
		"Do not alter the person's core facial structure.",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("instruction missing %q:\n%s", want, got)
		}
	}
}

func TestBuildCameraClauses(t *testing.T) {
	cfg := baseConfig()
	cfg.CameraShot = "Corpo Inteiro"
	cfg.CameraLens = "Retrato (85mm)"

	got := Build(TemplateDecades, Catalog[TemplateDecades].Prompts[0], cfg)
	if !strings.Contains(got, "framed as a full body shot") {
		t.Fatalf("missing shot clause:\n%s", got)
	}
	if !strings.Contains(got, "a portrait lens (85mm)") {
		t.Fatalf("missing lens clause:\n%s", got)
	}

	plain := Build(TemplateDecades, Catalog[TemplateDecades].Prompts[0], baseConfig())
	if strings.Contains(plain, "framed as") || strings.Contains(plain, "lens") {
		t.Fatalf("default camera settings must add no clauses:\n%s", plain)
	}
}

func TestBuildHairStyler(t *testing.T) {
	cfg := baseConfig()
	cfg.HairColors = []string{"ruivo", "platinado"}

	short := Catalog[TemplateHairStyler].Prompts[0]
	got := Build(TemplateHairStyler, short, cfg)
	if !strings.Contains(got, "Maintain the person's original hair texture") {
		t.Fatalf("length styles must keep texture:\n%s", got)
	}
	if !strings.Contains(got, "a mix of two colors: ruivo and platinado") {
		t.Fatalf("missing two-color clause:\n%s", got)
	}

	cfg.HairColors = cfg.HairColors[:1]
	curly := Catalog[TemplateHairStyler].Prompts[5]
	got = Build(TemplateHairStyler, curly, cfg)
	if strings.Contains(got, "original hair texture") {
		t.Fatalf("texture clause must only apply to length styles:\n%s", got)
	}
	if !strings.Contains(got, "The hair color should be ruivo.") {
		t.Fatalf("missing single-color clause:\n%s", got)
	}
}

func TestBuildHeadshots(t *testing.T) {
	cfg := baseConfig()
	cfg.HeadshotPose = PoseForward
	cfg.HeadshotExpression = "Confiante"
	cfg.BackgroundBlur = "Alto"

	got := Build(TemplateHeadshots, Catalog[TemplateHeadshots].Prompts[0], cfg)
	for _, want := range []string{
		"facing forward towards the camera",
		`"Confiante" expression`,
		"heavily blurred into abstract shapes",
		"vestindo um terno escuro",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("instruction missing %q:\n%s", want, got)
		}
	}

	cfg.HeadshotPose = PoseAngle
	got = Build(TemplateHeadshots, Catalog[TemplateHeadshots].Prompts[0], cfg)
	if !strings.Contains(got, "posed at a slight angle to the camera") {
		t.Fatalf("missing angle pose:\n%s", got)
	}
}

func TestBuildEightiesMallInterpolatesAlbumStyle(t *testing.T) {
	cfg := baseConfig()
	cfg.AlbumStyle = "Neon laser grid backdrop"

	got := Build(TemplateEightiesMall, Catalog[TemplateEightiesMall].Prompts[0], cfg)
	if !strings.Contains(got, `"Neon laser grid backdrop"`) {
		t.Fatalf("missing album style:\n%s", got)
	}
}

func TestBuildLookbookUsesResolvedStyle(t *testing.T) {
	cfg := baseConfig()
	cfg.LookbookStyle = "cottagecore"

	got := Build(TemplateStyleLookbook, Catalog[TemplateStyleLookbook].Prompts[0], cfg)
	if !strings.Contains(got, `"cottagecore"`) {
		t.Fatalf("missing lookbook style:\n%s", got)
	}
}

func TestBuildRetroPosterTitleIsOptional(t *testing.T) {
	cfg := baseConfig()
	prompt := Catalog[TemplateRetroPoster].Prompts[0]

	got := Build(TemplateRetroPoster, prompt, cfg)
	if strings.Contains(got, "texto do título") {
		t.Fatalf("empty title must add no clause:\n%s", got)
	}

	cfg.PosterTitle = "A Grande Aventura"
	got = Build(TemplateRetroPoster, prompt, cfg)
	if !strings.Contains(got, `o texto do título "A Grande Aventura"`) {
		t.Fatalf("missing title clause:\n%s", got)
	}
}

func TestBuildCyberpunkNeonColor(t *testing.T) {
	cfg := baseConfig()
	cfg.NeonColor = "magenta"

	got := Build(TemplateCyberpunkCity, Catalog[TemplateCyberpunkCity].Prompts[0], cfg)
	if !strings.Contains(got, "luzes de neon brilhantes de cor magenta") {
		t.Fatalf("missing neon clause:\n%s", got)
	}
}

func TestBuildUnknownTemplateFallsBack(t *testing.T) {
	got := Build(TemplateNone, PromptOption{ID: "x", Base: "a sunset"}, baseConfig())
	if !strings.Contains(got, "Create an image based on the reference photo") {
		t.Fatalf("unexpected fallback instruction:\n%s", got)
	}
}

func TestBuildFromPrompt(t *testing.T) {
	cfg := baseConfig()

	single := BuildFromPrompt("um dragão de origami", 0, 1, true, cfg)
	if strings.Contains(single, "variation") {
		t.Fatalf("single image must not carry a variation marker:\n%s", single)
	}
	if !strings.Contains(single, "provided reference photo") {
		t.Fatalf("reference form expected:\n%s", single)
	}

	third := BuildFromPrompt("um dragão de origami", 2, 4, false, cfg)
	if !strings.Contains(third, "(variation 3)") {
		t.Fatalf("missing variation marker:\n%s", third)
	}
	if strings.Contains(third, "reference photo") {
		t.Fatalf("no-reference form expected:\n%s", third)
	}
}

func TestCatalogShape(t *testing.T) {
	if len(Catalog) != 13 {
		t.Fatalf("catalog has %d templates, want 13", len(Catalog))
	}
	for id, tpl := range Catalog {
		if tpl.Name == "" || len(tpl.Prompts) == 0 {
			t.Fatalf("template %q is incomplete", id)
		}
	}
	if got := len(Catalog[TemplateStyleLookbook].Styles); got != 12 {
		t.Fatalf("lookbook has %d styles, want 12", got)
	}
	if _, ok := Lookup(TemplateDecades); !ok {
		t.Fatal("Lookup(decades) should succeed")
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("Lookup of unknown id should fail")
	}
}
