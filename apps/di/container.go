// Package di wires the application with a dig container shared by the CLI and the API server.
package di

import (
	"fmt"
	"log"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/umairnumplate/noor-ul-masajid/apps/api/echo"
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
	"github.com/umairnumplate/noor-ul-masajid/fs"
	assistsvc "github.com/umairnumplate/noor-ul-masajid/services/assist"
	emailsvc "github.com/umairnumplate/noor-ul-masajid/services/email"
	logsvc "github.com/umairnumplate/noor-ul-masajid/services/logger"
	"github.com/umairnumplate/noor-ul-masajid/storage/kvdb"
	"github.com/umairnumplate/noor-ul-masajid/storage/kvstore"
)

// Services gathers everything the front ends need.
type Services struct {
	dig.In

	Config        *core.Config
	Logger        core.Logger
	DB            *kvdb.DB
	Validate      *validator.Validate
	Translator    ut.Translator
	Generator     assist.Generator
	Students      *student.Service
	Teachers      *teacher.Service
	Attendance    *attendance.Service
	Graduates     *graduate.Service
	Tanzim        *tanzim.Service
	Fees          *fee.Service
	Announcements *announcement.Service
	Dashboard     *dashboard.Service
}

func newLogger(conf *core.Config) (core.Logger, error) {
	logger, err := logsvc.NewZapLogger(conf)
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	logger.Enable(!conf.Debug)
	return logger, nil
}

func newDB(conf *core.Config, logger core.Logger) (*kvdb.DB, error) {
	kv, err := kvstore.Open(conf)
	if err != nil {
		return nil, errors.Wrap(err, "opening store")
	}
	seed, err := kvdb.LoadSeed(appfs.FS)
	if err != nil {
		return nil, err
	}
	logger.Debug(fmt.Sprintf("store %q opened", conf.Store.Engine))
	return kvdb.Open(kv, logger, seed, time.Now), nil
}

func newEmailService(conf *core.Config, logger core.Logger) (core.EmailService, error) {
	if err := core.ParseEmailTemplates(appfs.FS); err != nil {
		return nil, err
	}
	return emailsvc.NewService(conf, logger), nil
}

func newGenerator(conf *core.Config, logger core.Logger) assist.Generator {
	return assistsvc.NewGeminiService(conf, logger)
}

func newIDGenerator() core.IDGenerator {
	return core.UUIDGenerator{}
}

// NewValidator returns a validator knowing every custom tag of the application.
func NewValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	class.InitValidators(validate, translator)
	teacher.InitValidators(validate, translator)
	attendance.InitValidators(validate, translator)
	graduate.InitValidators(validate, translator)
	fee.InitValidators(validate, translator)
	return validate
}

func newServer(s Services) *echoapi.Server {
	return echoapi.NewServer(s.Config, s.Logger, echoapi.Deps{
		Validate:      s.Validate,
		Translator:    s.Translator,
		Generator:     s.Generator,
		Classes:       s.DB.Classes,
		Students:      s.Students,
		Teachers:      s.Teachers,
		Attendance:    s.Attendance,
		Graduates:     s.Graduates,
		Tanzim:        s.Tanzim,
		Fees:          s.Fees,
		Announcements: s.Announcements,
		Dashboard:     s.Dashboard,
	})
}

type NewConfigFunc func() *core.Config

// New returns a new dependency injection dig.Container
func New(newConfig NewConfigFunc) *dig.Container {
	c := dig.New()

	must(c.Provide(newConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDB))
	must(c.Provide(newEmailService))
	must(c.Provide(newGenerator))
	must(c.Provide(newIDGenerator))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(NewValidator))

	must(c.Provide(kvdb.NewStudentRepository))
	must(c.Provide(kvdb.NewTeacherRepository))
	must(c.Provide(kvdb.NewAttendanceRepository))
	must(c.Provide(kvdb.NewGraduateRepository))
	must(c.Provide(kvdb.NewTanzimRepository))
	must(c.Provide(kvdb.NewFeeRepository))
	must(c.Provide(kvdb.NewAnnouncementRepository))

	must(c.Provide(student.NewService))
	must(c.Provide(teacher.NewService))
	must(c.Provide(attendance.NewService))
	must(c.Provide(graduate.NewService))
	must(c.Provide(tanzim.NewService))
	must(c.Provide(fee.NewService))
	must(c.Provide(announcement.NewService))
	must(c.Provide(dashboard.NewService))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
