package genai

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"pictureme/internal/infra"
	"pictureme/internal/raster"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	ImageModel string
	TextModel  string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client is a lightweight facade over the Gemini generateContent API. When no
// API key is configured it serves deterministic synthetic images instead, so
// the whole pipeline stays operational in local and CI environments.
type Client struct {
	apiKey     string
	baseURL    string
	imageModel string
	textModel  string
	httpClient *http.Client
	logger     *infra.Logger
}

// ErrorReason classifies why the model returned no image.
type ErrorReason string

const (
	// ReasonBlocked means the prompt was rejected by safety filters.
	ReasonBlocked ErrorReason = "blocked"
	// ReasonEmpty means the call succeeded but carried no image part.
	ReasonEmpty ErrorReason = "empty"
	// ReasonTransport covers HTTP and decoding failures.
	ReasonTransport ErrorReason = "transport"
)

// ModelError is returned when a generation call cannot produce an image. The
// message is user-facing Portuguese copy; Reason lets callers distinguish
// safety blocks from empty responses.
type ModelError struct {
	Reason  ErrorReason
	Message string
}

func (e *ModelError) Error() string { return e.Message }

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type geminiGenerateContentRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiPromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type geminiGenerateContentResponse struct {
	Candidates     []geminiCandidate     `json:"candidates"`
	PromptFeedback *geminiPromptFeedback `json:"promptFeedback,omitempty"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// NewClient constructs a Gemini client with sane defaults. Callers may provide
// a nil HTTP client; a reusable one with sensible timeouts will be created.
func NewClient(opts Options) (*Client, error) {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 120 * time.Second}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	imageModel := opts.ImageModel
	if imageModel == "" {
		imageModel = "gemini-2.5-flash-image-preview"
	}
	textModel := opts.TextModel
	if textModel == "" {
		textModel = "gemini-2.5-flash"
	}

	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}

	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		imageModel: imageModel,
		textModel:  textModel,
		httpClient: client,
		logger:     logger,
	}, nil
}

// ImageModel returns the configured image model identifier.
func (c *Client) ImageModel() string { return c.imageModel }

// GenerateImage runs one generateContent call and returns the produced image
// as a PNG data URL. refImages are optional data URLs attached as inline
// parts; the uploaded photo goes first when present.
func (c *Client) GenerateImage(ctx context.Context, instruction string, refImages ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.apiKey == "" {
		return c.syntheticImage(instruction, refImages...), nil
	}

	parts := []geminiPart{{Text: instruction}}
	for _, ref := range refImages {
		if ref == "" {
			continue
		}
		inline, err := inlineFromDataURL(ref)
		if err != nil {
			return "", err
		}
		parts = append(parts, geminiPart{InlineData: inline})
	}

	resp, err := c.generateContent(ctx, c.imageModel, parts)
	if err != nil {
		return "", err
	}
	return extractImage(resp,
		"A geração de imagem foi bloqueada por razões de segurança: %s. Tente um prompt diferente.",
		"A API não retornou uma imagem. Resposta recebida: %s",
		"A API não retornou uma imagem válida. Por favor, tente novamente.")
}

// EditImage applies instruction to the base image, with the mask marking the
// region to change. All three images travel as inline parts.
func (c *Client) EditImage(ctx context.Context, instruction, baseImage, maskImage string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.apiKey == "" {
		return c.syntheticImage(instruction, baseImage, maskImage), nil
	}

	parts := []geminiPart{{Text: instruction}}
	for _, ref := range []string{baseImage, maskImage} {
		inline, err := inlineFromDataURL(ref)
		if err != nil {
			return "", err
		}
		parts = append(parts, geminiPart{InlineData: inline})
	}

	resp, err := c.generateContent(ctx, c.imageModel, parts)
	if err != nil {
		return "", err
	}
	return extractImage(resp,
		"Edição de imagem bloqueada por razões de segurança: %s. Tente um prompt diferente.",
		"A API não retornou uma imagem editada. Resposta recebida: %s",
		"A API não retornou uma imagem válida. Tente novamente.")
}

// SuggestStyleText runs a text-only call against the text model and returns
// the concatenated text parts.
func (c *Client) SuggestStyleText(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.apiKey == "" {
		return syntheticStyle(prompt), nil
	}

	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	}
	var resp geminiGenerateContentResponse
	path := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(c.textModel))
	if err := c.invoke(ctx, path, payload, &resp); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			b.WriteString(part.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", &ModelError{Reason: ReasonEmpty, Message: "o modelo não retornou texto"}
	}
	return text, nil
}

func (c *Client) generateContent(ctx context.Context, model string, parts []geminiPart) (*geminiGenerateContentResponse, error) {
	payload := geminiGenerateContentRequest{
		Contents:         []geminiContent{{Parts: parts}},
		GenerationConfig: &geminiGenerationConfig{ResponseModalities: []string{"IMAGE", "TEXT"}},
	}

	var resp geminiGenerateContentResponse
	path := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(model))
	if err := c.invoke(ctx, path, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// extractImage pulls the first inline image out of a response and maps the
// no-image cases onto ModelError values carrying the right user copy.
func extractImage(resp *geminiGenerateContentResponse, blockedFmt, textFmt, emptyMsg string) (string, error) {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				mime := part.InlineData.MimeType
				if mime == "" {
					mime = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mime, part.InlineData.Data), nil
			}
		}
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", &ModelError{Reason: ReasonBlocked, Message: fmt.Sprintf(blockedFmt, resp.PromptFeedback.BlockReason)}
	}
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if text := strings.TrimSpace(part.Text); text != "" {
				return "", &ModelError{Reason: ReasonEmpty, Message: fmt.Sprintf(textFmt, text)}
			}
		}
	}
	return "", &ModelError{Reason: ReasonEmpty, Message: emptyMsg}
}

func (c *Client) invoke(ctx context.Context, path string, payload any, out any) error {
	endpoint := strings.TrimRight(c.baseURL, "/") + path
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	q := req.URL.Query()
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ModelError{Reason: ReasonTransport, Message: fmt.Sprintf("invoke gemini: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr geminiErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return &ModelError{Reason: ReasonTransport, Message: fmt.Sprintf("gemini status %d: %s", resp.StatusCode, apiErr.Error.Message)}
		}
		data, _ := io.ReadAll(resp.Body)
		if len(data) > 0 {
			return &ModelError{Reason: ReasonTransport, Message: fmt.Sprintf("gemini status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))}
		}
		return &ModelError{Reason: ReasonTransport, Message: fmt.Sprintf("gemini status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ModelError{Reason: ReasonTransport, Message: fmt.Sprintf("decode gemini response: %v", err)}
	}
	return nil
}

func inlineFromDataURL(dataURL string) (*geminiInlineData, error) {
	mime, data, err := raster.ParseDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	return &geminiInlineData{
		MimeType: mime,
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}

// syntheticImage renders a deterministic placeholder so the same instruction
// always produces the same bytes.
func (c *Client) syntheticImage(instruction string, refs ...string) string {
	seed := deterministicSeed(append([]string{instruction, c.imageModel}, refs...)...)
	img := renderSyntheticImage(1024, 1024, seed)

	c.logger.Debug().
		Str("model", c.imageModel).
		Str("seed", seed).
		Msg("genai: generated synthetic image")

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return ""
	}
	return raster.DataURL("image/png", buf.Bytes())
}

func syntheticStyle(prompt string) string {
	return fmt.Sprintf("A studio backdrop inspired by: %s (seed %s)", strings.TrimSpace(prompt), deterministicSeed(prompt))
}

func renderSyntheticImage(width, height int, seed string) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	base := colorFromSeed(seed, 0)
	accent := colorFromSeed(seed, 1)
	draw.Draw(img, img.Bounds(), &image.Uniform{base}, image.Point{}, draw.Src)

	stripeHeight := height / 12
	if stripeHeight < 32 {
		stripeHeight = 32
	}
	for y := 0; y < height; y += stripeHeight * 2 {
		end := y + stripeHeight
		if end > height {
			end = height
		}
		draw.Draw(img, image.Rect(0, y, width, end), &image.Uniform{accent}, image.Point{}, draw.Over)
	}
	return img
}

func colorFromSeed(seed string, shift int) color.RGBA {
	if seed == "" {
		seed = "000000"
	}
	doubled := seed + seed
	start := (shift * 6) % len(seed)
	segment := doubled[start : start+6]
	return color.RGBA{
		R: parseHexByte(segment[0:2]),
		G: parseHexByte(segment[2:4]),
		B: parseHexByte(segment[4:6]),
		A: 255,
	}
}

func parseHexByte(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

func deterministicSeed(parts ...string) string {
	hasher := sha256.New()
	for _, part := range parts {
		hasher.Write([]byte(part))
		hasher.Write([]byte{'|'})
	}
	return hex.EncodeToString(hasher.Sum(nil))[:16]
}
