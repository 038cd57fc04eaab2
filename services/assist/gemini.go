package assistsvc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/assist"
)

// contentGenerator is the part of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiService generates text with Google's Gemini API.
// Without an API key it is unavailable and never reaches the network.
type GeminiService struct {
	models  contentGenerator
	timeout time.Duration
	logger  core.Logger
}

var _ assist.Generator = (*GeminiService)(nil)

func NewGeminiService(conf *core.Config, logger core.Logger) *GeminiService {
	svc := &GeminiService{timeout: conf.GenAI.Timeout, logger: logger}
	if conf.GenAI.APIKey == "" {
		logger.Warn("API key is not set, AI features will be disabled")
		return svc
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  conf.GenAI.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("creating genai client: %v", err), err)
		return svc
	}
	svc.models = client.Models
	return svc
}

func (svc *GeminiService) IsAvailable() bool {
	return svc.models != nil
}

// Generate sends one request for `prompt`. Markdown code fences are stripped from the answer;
// failures and empty answers are replaced by the fixed assist messages.
func (svc *GeminiService) Generate(ctx context.Context, model assist.Model, prompt string) string {
	if !svc.IsAvailable() {
		return assist.MsgUnavailable
	}

	if svc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, svc.timeout)
		defer cancel()
	}

	resp, err := svc.models.GenerateContent(ctx, string(model), genai.Text(prompt), nil)
	if err != nil {
		svc.logger.Error(fmt.Sprintf("running gemini with model %s: %v", model, err), err)
		return assist.MsgFailed
	}

	if resp == nil {
		return assist.MsgEmpty
	}
	if text := assist.StripFences(resp.Text()); text != "" {
		return text
	}
	return assist.MsgEmpty
}
