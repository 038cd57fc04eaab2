// Package testutil wires the application over an in-memory store for tests.
package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/dig"

	"github.com/umairnumplate/noor-ul-masajid/apps/di"
	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/assist"
	emailsvc "github.com/umairnumplate/noor-ul-masajid/services/email"
	logsvc "github.com/umairnumplate/noor-ul-masajid/services/logger"
)

// Config is the configuration of a test app: in-memory store, no remote services.
func Config() *core.Config {
	return &core.Config{
		Env:       "TEST",
		Build:     "test",
		TestMode:  true,
		AppName:   "Noor ul Masajid",
		SecretKey: "test-secret",
		Store:     core.StoreConfig{Engine: "memory"},
		GenAI:     core.GenAIConfig{Timeout: time.Second},
		Server: core.ServerConfig{
			Host:               "127.0.0.1:0",
			JWTExpirationDelta: time.Hour,
			ShutdownTimeout:    time.Second,
		},
		Email: core.EmailConfig{
			DefaultFrom: "noreply@example.com",
			Recipients:  []string{"office@example.com"},
		},
	}
}

// FakeGenerator answers every prompt with Text, or the unavailable message when not Available.
type FakeGenerator struct {
	Available bool
	Text      string

	mu      sync.Mutex
	prompts []string
}

var _ assist.Generator = (*FakeGenerator)(nil)

func (g *FakeGenerator) IsAvailable() bool { return g.Available }

func (g *FakeGenerator) Generate(_ context.Context, _ assist.Model, prompt string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if !g.Available {
		return assist.MsgUnavailable
	}
	return g.Text
}

func (g *FakeGenerator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}

// App is the fully wired application with its mail and text generation faked.
type App struct {
	di.Services
	Container *dig.Container
	Mailer    *emailsvc.ConsoleService
	Assist    *FakeGenerator
}

// NewApp builds a seeded App; `conf` defaults to Config().
func NewApp(t *testing.T, conf ...*core.Config) App {
	t.Helper()

	cfg := Config()
	if len(conf) > 0 {
		cfg = conf[0]
	}
	app := App{Assist: new(FakeGenerator)}

	c := di.New(func() *core.Config { return cfg })
	app.Container = c
	decorate := func(fn interface{}) {
		if err := c.Decorate(fn); err != nil {
			t.Fatalf("NewApp() failed: %v", err)
		}
	}
	decorate(func(core.Logger) core.Logger { return logsvc.NewNopLogger() })
	decorate(func(conf *core.Config, logger core.Logger, _ core.EmailService) core.EmailService {
		app.Mailer = emailsvc.NewConsoleServiceMock(conf, logger)
		return app.Mailer
	})
	decorate(func(assist.Generator) assist.Generator { return app.Assist })

	if err := c.Invoke(func(s di.Services) { app.Services = s }); err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}
	t.Cleanup(func() { _ = app.DB.Close() })
	return app
}
