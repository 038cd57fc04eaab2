package assistsvc

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"google.golang.org/genai"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/assist"
	logsvc "github.com/umairnumplate/noor-ul-masajid/services/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeModels struct {
	text  string
	err   error
	delay time.Duration

	model  string
	prompt string
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: f.text}}},
		}},
	}, nil
}

func TestNewGeminiService_NoKey(t *testing.T) {
	svc := NewGeminiService(&core.Config{}, logsvc.NewNopLogger())
	assert.False(t, svc.IsAvailable())
	assert.Equal(t, assist.MsgUnavailable, svc.Generate(context.Background(), assist.ModelFlash, "hello"))
}

func TestGeminiService_Generate(t *testing.T) {
	tests := []struct {
		name   string
		models *fakeModels
		want   string
	}{
		{name: "text", models: &fakeModels{text: "Salam!"}, want: "Salam!"},
		{name: "fenced json", models: &fakeModels{text: "```json\n{\"title\":\"Eid\"}\n```"}, want: `{"title":"Eid"}`},
		{name: "only fences", models: &fakeModels{text: "```\n```"}, want: assist.MsgEmpty},
		{name: "empty", models: &fakeModels{}, want: assist.MsgEmpty},
		{name: "error", models: &fakeModels{err: errors.New("quota exceeded")}, want: assist.MsgFailed},
		{name: "timeout", models: &fakeModels{text: "late", delay: time.Minute}, want: assist.MsgFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &GeminiService{models: tt.models, timeout: 50 * time.Millisecond, logger: logsvc.NewNopLogger()}
			assert.True(t, svc.IsAvailable())

			got := svc.Generate(context.Background(), assist.ModelPro, "Write a remark")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, string(assist.ModelPro), tt.models.model)
			assert.Equal(t, "Write a remark", tt.models.prompt)
		})
	}
}
