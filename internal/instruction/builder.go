package instruction

import "fmt"

// Headshot pose values.
const (
	PoseForward = "Forward"
	PoseAngle   = "Angle"
)

// Config is a flat snapshot of every session setting the builder reads. The
// caller resolves indirections first: LookbookStyle already carries the custom
// style when "Other" was picked, and AlbumStyle carries the suggested style
// for the mall shoot.
type Config struct {
	Style         string
	AspectRatio   string
	CameraShot    string
	CameraLens    string
	AlbumStyle    string
	LookbookStyle string
	HairColors    []string
	PosterTitle   string
	NeonColor     string

	HeadshotPose       string
	HeadshotExpression string
	BackgroundBlur     string
}

var shotClauses = map[string]string{
	"Close-up Extremo": "an extreme close-up shot",
	"Close-up":         "a close-up shot",
	"Plano Médio":      "a medium shot",
	"Plano Americano":  "a medium long shot (cowboy shot)",
	"Corpo Inteiro":    "a full body shot",
	"Plano Geral":      "a wide shot",
}

var lensClauses = map[string]string{
	"Grande Angular (24mm)": "a wide-angle lens (24mm)",
	"Padrão (50mm)":         "a standard lens (50mm)",
	"Retrato (85mm)":        "a portrait lens (85mm)",
	"Teleobjetiva (200mm)":  "a telephoto lens (200mm)",
}

// cameraClause renders the framing and lens sentences. "Padrão" and unknown
// values contribute nothing.
func cameraClause(cfg Config) string {
	out := ""
	if c, ok := shotClauses[cfg.CameraShot]; ok && cfg.CameraShot != "Padrão" {
		out += fmt.Sprintf(" The image should be framed as %s.", c)
	}
	if c, ok := lensClauses[cfg.CameraLens]; ok {
		out += fmt.Sprintf(" The photo should have the characteristics of being taken with %s.", c)
	}
	return out
}

func styleClause(cfg Config) string {
	return fmt.Sprintf("The final image should be in a %s style with a composition suitable for a %s aspect ratio.", cfg.Style, cfg.AspectRatio)
}

type builderFunc func(prompt PromptOption, cfg Config) string

var builders = map[TemplateID]builderFunc{
	TemplateDecades:           buildDecades,
	TemplateImpossibleSelfies: buildImpossibleSelfies,
	TemplateHairStyler:        buildHairStyler,
	TemplateHeadshots:         buildHeadshots,
	TemplateEightiesMall:      buildEightiesMall,
	TemplateStyleLookbook:     buildStyleLookbook,
	TemplateFigurines:         buildFigurines,
	TemplateRetroPoster:       buildRetroPoster,
	TemplateCyberpunkCity:     buildCyberpunkCity,
	TemplateOilPainting:       buildRestyle,
	TemplateWatercolor:        buildRestyle,
	TemplateSteampunk:         buildRestyle,
	TemplatePixelArt:          buildRestyle,
}

// Build renders the model instruction for one template item. Unknown template
// ids fall back to a plain reference-photo instruction.
func Build(id TemplateID, prompt PromptOption, cfg Config) string {
	if fn, ok := builders[id]; ok {
		return fn(prompt, cfg)
	}
	return fmt.Sprintf("Create an image based on the reference photo and this prompt: %s. %s%s", prompt.Base, styleClause(cfg), cameraClause(cfg))
}

// BuildFromPrompt renders the instruction for a free-form prompt. When count
// is above one, a variation marker keeps the model from collapsing the batch
// into identical outputs. hasReference switches between transforming the
// uploaded photo and generating from scratch.
func BuildFromPrompt(prompt string, index, count int, hasReference bool, cfg Config) string {
	varied := prompt
	if count > 1 {
		varied = fmt.Sprintf("%s (variation %d)", prompt, index+1)
	}
	if hasReference {
		return fmt.Sprintf("The highest priority is to maintain the exact facial features and likeness of the person in the provided reference photo. Keeping the original photo's composition, transform the image based on the following creative prompt: %q. %s%s", varied, styleClause(cfg), cameraClause(cfg))
	}
	return fmt.Sprintf("A high-quality, %s style image with an aspect ratio of %s, depicting: %s.%s", cfg.Style, cfg.AspectRatio, varied, cameraClause(cfg))
}

func buildDecades(prompt PromptOption, cfg Config) string {
	return fmt.Sprintf("The highest priority is to maintain the exact facial features, likeness, perceived gender, framing, and composition of the person in the provided reference photo. Keeping the original photo's composition, change the person's hair, clothing, and accessories, as well as the photo's background, to match the style of the %s. %s Do not alter the person's core facial structure. %s%s",
		prompt.ID, prompt.Base, styleClause(cfg), cameraClause(cfg))
}

func buildImpossibleSelfies(prompt PromptOption, cfg Config) string {
	return fmt.Sprintf("The highest priority is to maintain the exact facial features, likeness, and perceived gender of the person in the provided reference photo. Keeping the original photo's composition as much as possible, place the person into the following scene, changing their clothing, hair, and the background to match: %s. Do not alter the person's core facial structure. %s%s",
		prompt.Base, styleClause(cfg), cameraClause(cfg))
}

func buildHairStyler(prompt PromptOption, cfg Config) string {
	out := fmt.Sprintf("The highest priority is to maintain the exact facial features, likeness, and perceived gender of the person in the provided reference photo. Keeping the original photo's composition, style the person's hair to be a perfect example of %s. If the person's hair already has this style, enhance and perfect it. Do not alter the person's core facial structure, clothing, or the background. %s",
		prompt.Base, styleClause(cfg))
	switch prompt.ID {
	case "Short", "Medium", "Long":
		out += " Maintain the person's original hair texture (e.g., straight, wavy, curly)."
	}
	switch len(cfg.HairColors) {
	case 1:
		out += fmt.Sprintf(" The hair color should be %s.", cfg.HairColors[0])
	case 2:
		out += fmt.Sprintf(" The hair should be a mix of two colors: %s and %s.", cfg.HairColors[0], cfg.HairColors[1])
	}
	return out + cameraClause(cfg)
}

func blurClause(level string) string {
	switch level {
	case "Nenhum":
		return "The background should be a clean, neutral studio background that is completely in sharp focus."
	case "Baixo":
		return "The background should be a clean, neutral studio background with a very subtle, slight blur (low depth of field)."
	case "Médio":
		return "The background should be a clean, neutral, out-of-focus studio background (like light gray, beige, or white) with a moderate, natural-looking blur (medium depth of field)."
	case "Alto":
		return "The background should be a clean, neutral studio background that is heavily blurred into abstract shapes and colors (high depth of field)."
	default:
		return "The background should be a clean, neutral, out-of-focus studio background (like light gray, beige, or white)."
	}
}

func buildHeadshots(prompt PromptOption, cfg Config) string {
	pose := "posed at a slight angle to the camera"
	if cfg.HeadshotPose == PoseForward {
		pose = "facing forward towards the camera"
	}
	return fmt.Sprintf("The highest priority is to maintain the exact facial features, likeness, and perceived gender of the person in the provided reference photo. Transform the image into a professional headshot. The person should be %s with a %q expression. They should be %s. Please maintain the original hairstyle from the photo. %s Do not alter the person's core facial structure. The final image should be a well-lit, high-quality professional portrait. %s%s",
		pose, cfg.HeadshotExpression, prompt.Base, blurClause(cfg.BackgroundBlur), styleClause(cfg), cameraClause(cfg))
}

func buildEightiesMall(prompt PromptOption, cfg Config) string {
	return fmt.Sprintf("The highest priority is to maintain the exact facial features, likeness, and perceived gender of the person in the provided reference photo. Transform the image into a photo from a single 1980s mall photoshoot. The overall style for the entire photoshoot is: %q. For this specific photo, the person should be in %s. The person's hair and clothing should be 80s style and be consistent across all photos in this set. The background and lighting must also match the overall style for every photo. %s%s",
		cfg.AlbumStyle, prompt.Base, styleClause(cfg), cameraClause(cfg))
}

func buildStyleLookbook(prompt PromptOption, cfg Config) string {
	return fmt.Sprintf("The highest priority is to maintain the exact facial features, likeness, and perceived gender of the person in the provided reference photo. Transform the image into a high-fashion lookbook photo. The overall fashion style for the entire lookbook is %q. For this specific photo, create a unique, stylish outfit that fits the overall style, and place the person in %s in a suitable, fashionable setting. The person's hair and makeup should also complement the style. Each photo in the lookbook should feature a different outfit. Do not alter the person's core facial structure. %s%s",
		cfg.LookbookStyle, prompt.Base, styleClause(cfg), cameraClause(cfg))
}

func buildFigurines(prompt PromptOption, cfg Config) string {
	return fmt.Sprintf("The highest priority is to maintain the exact facial features and likeness of the person in the provided reference photo. Transform the person into a miniature figurine based on the following description, placing it in a realistic environment: %s. The final image should look like a real photograph of a physical object. Do not alter the person's core facial structure. %s%s",
		prompt.Base, styleClause(cfg), cameraClause(cfg))
}

func buildRetroPoster(prompt PromptOption, cfg Config) string {
	out := fmt.Sprintf("The highest priority is to maintain the exact facial features and likeness of the person in the provided reference photo. %s", prompt.Base)
	if cfg.PosterTitle != "" {
		out += fmt.Sprintf(" O pôster deve apresentar de forma proeminente e artística o texto do título %q.", cfg.PosterTitle)
	}
	return fmt.Sprintf("%s Do not alter the person's core facial structure. %s%s", out, styleClause(cfg), cameraClause(cfg))
}

func buildCyberpunkCity(prompt PromptOption, cfg Config) string {
	out := fmt.Sprintf("The highest priority is to maintain the exact facial features and likeness of the person in the provided reference photo. %s", prompt.Base)
	if cfg.NeonColor != "" {
		out += fmt.Sprintf(" A cena deve ser dominada por luzes de neon brilhantes de cor %s.", cfg.NeonColor)
	}
	return fmt.Sprintf("%s Do not alter the person's core facial structure. %s%s", out, styleClause(cfg), cameraClause(cfg))
}

// buildRestyle covers the whole-photo art restyles (oil painting, watercolor,
// steampunk, pixel art), which share one shape.
func buildRestyle(prompt PromptOption, cfg Config) string {
	return fmt.Sprintf("The highest priority is to maintain the exact facial features, likeness, and perceived gender of the person in the provided reference photo. Keeping the original photo's composition, %s Do not alter the person's core facial structure. %s%s",
		prompt.Base, styleClause(cfg), cameraClause(cfg))
}
