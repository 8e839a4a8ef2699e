package executor

import (
	"github.com/robfig/cron/v3"

	gferrors "github.com/vnykmshr/goexec/pkg/common/errors"
	"github.com/vnykmshr/goexec/pkg/common/validation"
)

// cronParser accepts six fields with a leading seconds field, plus
// descriptors such as "@hourly" and "@every 30s".
var cronParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ParseCron validates expr and returns its schedule.
func ParseCron(expr string) (cron.Schedule, error) {
	if err := validation.ValidateNotEmpty(module, "cron", expr); err != nil {
		return nil, err
	}
	schedule, err := cronParser.Parse(expr)
	if err != nil {
		return nil, gferrors.NewValidationError(module, "cron", expr, "invalid cron expression").
			WithHint(err.Error())
	}
	return schedule, nil
}

func (e *executor) ScheduleCron(r Runnable, expr string) (*Future, error) {
	schedule, err := ParseCron(expr)
	if err != nil {
		return nil, err
	}
	return e.submit("ScheduleCron", r, cronPolicy{schedule: schedule})
}
