package stylesuggest

import (
	"context"
	"errors"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIOptions configures the OpenAI-backed suggester.
type OpenAIOptions struct {
	APIKey   string
	Model    string
	BaseURL  string
	Fallback Suggester
}

// OpenAI asks a chat model for a style suggestion via the official SDK and
// falls back to the static suggester on any failure.
type OpenAI struct {
	model    string
	opts     []option.RequestOption
	fallback Suggester
}

func NewOpenAI(opts OpenAIOptions) (*OpenAI, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultOpenAIModel
	}
	reqOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	fallback := opts.Fallback
	if fallback == nil {
		fallback = NewStatic()
	}
	return &OpenAI{model: model, opts: reqOpts, fallback: fallback}, nil
}

func (o *OpenAI) Suggest(ctx context.Context, brief string) (string, error) {
	client := openai.NewClient(o.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are an art director. Answer with a single short paragraph describing one photographic style. No preamble, no quotes."),
			openai.UserMessage(brief),
		},
	})
	if err != nil {
		return o.fallback.Suggest(ctx, brief)
	}
	if len(resp.Choices) == 0 {
		return o.fallback.Suggest(ctx, brief)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return o.fallback.Suggest(ctx, brief)
	}
	return text, nil
}

var _ Suggester = (*OpenAI)(nil)
