package logsvc

import (
	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

// ZapLogger prints through zap and, once enabled, reports to rollbar.
type ZapLogger struct {
	sugar    *zap.SugaredLogger
	hasToken bool
	rollbar  bool
}

var _ core.Logger = (*ZapLogger)(nil)

func NewZapLogger(conf *core.Config) (*ZapLogger, error) {
	zconf := zap.NewProductionConfig()
	zconf.Encoding = "console"
	zconf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zconf.OutputPaths = []string{"stderr"}
	if conf.Debug {
		zconf.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zl, err := zconf.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	rollbar.SetEnabled(false)

	return &ZapLogger{sugar: zl.Sugar(), hasToken: conf.RollbarToken != ""}, nil
}

// NewNopLogger discards everything; used in tests.
func NewNopLogger() *ZapLogger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

// Enable turns rollbar reporting on; it stays off without a token.
func (l *ZapLogger) Enable(enabled bool) {
	l.rollbar = enabled && l.hasToken
	rollbar.SetEnabled(l.rollbar)
}

// expected fmt: msg | error, map[string]interface{}, any value
func (l *ZapLogger) fields(args []interface{}) []interface{} {
	kv := make([]interface{}, 0, 2*len(args))
	for _, arg := range args {
		switch a := arg.(type) {
		case error:
			kv = append(kv, zap.Error(a))
		case map[string]interface{}:
			for k, v := range a {
				kv = append(kv, k, v)
			}
		default:
			kv = append(kv, "extra", a)
		}
	}
	return kv
}

func (l *ZapLogger) report(level string, msg string, args []interface{}) {
	if !l.rollbar {
		return
	}
	items := append([]interface{}{msg}, args...)
	switch level {
	case rollbar.INFO:
		rollbar.Info(items...)
	case rollbar.WARN:
		rollbar.Warning(items...)
	case rollbar.ERR:
		rollbar.Error(items...)
	default:
		rollbar.Critical(items...)
	}
}

func (l *ZapLogger) Debug(msg string, args ...interface{}) {
	l.sugar.Debugw(msg, l.fields(args)...)
}

func (l *ZapLogger) Info(msg string, args ...interface{}) {
	l.report(rollbar.INFO, msg, args)
	l.sugar.Infow(msg, l.fields(args)...)
}

func (l *ZapLogger) Warn(msg string, args ...interface{}) {
	l.report(rollbar.WARN, msg, args)
	l.sugar.Warnw(msg, l.fields(args)...)
}

func (l *ZapLogger) Error(msg string, args ...interface{}) {
	l.report(rollbar.ERR, msg, args)
	l.sugar.Errorw(msg, l.fields(args)...)
}

func (l *ZapLogger) Fatal(msg string, args ...interface{}) {
	l.report(rollbar.CRIT, msg, args)
	rollbar.Wait()
	l.sugar.Fatalw(msg, l.fields(args)...)
}

// Sync flushes buffered entries and pending rollbar items.
func (l *ZapLogger) Sync() {
	if l.rollbar {
		rollbar.Wait()
	}
	_ = l.sugar.Sync()
}
