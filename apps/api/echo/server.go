package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/announcement"
	"github.com/umairnumplate/noor-ul-masajid/core/assist"
	"github.com/umairnumplate/noor-ul-masajid/core/attendance"
	"github.com/umairnumplate/noor-ul-masajid/core/class"
	"github.com/umairnumplate/noor-ul-masajid/core/dashboard"
	"github.com/umairnumplate/noor-ul-masajid/core/fee"
	"github.com/umairnumplate/noor-ul-masajid/core/graduate"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
	"github.com/umairnumplate/noor-ul-masajid/core/tanzim"
	"github.com/umairnumplate/noor-ul-masajid/core/teacher"
)

type (
	Deps struct {
		Validate      *validator.Validate
		Translator    ut.Translator
		Generator     assist.Generator
		Classes       func() []class.Class
		Students      *student.Service
		Teachers      *teacher.Service
		Attendance    *attendance.Service
		Graduates     *graduate.Service
		Tanzim        *tanzim.Service
		Fees          *fee.Service
		Announcements *announcement.Service
		Dashboard     *dashboard.Service
	}

	Server struct {
		conf     *core.Config
		logger   core.Logger
		deps     Deps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ http.Handler = (*Server)(nil)

func NewServer(conf *core.Config, logger core.Logger, deps Deps) *Server {
	s := &Server{
		conf:     conf,
		logger:   logger,
		deps:     deps,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.conf.Debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = s.conf.Debug && !s.conf.TestMode

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1", middleware.JWTWithConfig(newJWTConfig(s.conf.SecretKey)), operatorMiddleware)

	registerDashboardAPI(v1, s.deps)
	registerStudentAPI(v1, s.deps)
	registerTeacherAPI(v1, s.deps)
	registerAttendanceAPI(v1, s.deps)
	registerGraduateAPI(v1, s.deps)
	registerTanzimAPI(v1, s.deps)
	registerFeeAPI(v1, s.deps)
	registerAnnouncementAPI(v1, s.deps, s.conf.Email.Recipients)
	registerReportAPI(v1, s.deps)
	registerMessageAPI(v1, s.deps, s.conf.AppName)
}

// Start listens on the configured loopback address; failures are sent to Errors().
func (s *Server) Start() {
	if err := s.app.Start(s.conf.Server.Host); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error { return s.errors }

func (s *Server) ShutdownSignal() <-chan os.Signal { return s.shutdown }

func (s *Server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *Server) Shutdown(ctx context.Context) error {
	signal.Stop(s.shutdown)
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	signal.Stop(s.shutdown)
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.conf.AppName+" API!")
}
