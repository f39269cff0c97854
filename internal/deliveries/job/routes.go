package job

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/printhaus/go-shop-finance/internal/common/ctxdata"
	"github.com/printhaus/go-shop-finance/internal/common/flag"
	"github.com/printhaus/go-shop-finance/internal/common/log"
	"github.com/printhaus/go-shop-finance/internal/config"
	v1policy "github.com/printhaus/go-shop-finance/internal/deliveries/job/v1/policy"
	v1settlement "github.com/printhaus/go-shop-finance/internal/deliveries/job/v1/settlement"
	v1statement "github.com/printhaus/go-shop-finance/internal/deliveries/job/v1/statement"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/services"
)

var ErrJobNotFound = errors.New("invalid version or job name")

type JobFunc = func(ctx context.Context, date time.Time, flag flag.Job) error

type JobRoutes map[string]map[string]JobFunc

type Job struct {
	Routes JobRoutes
	loc    *time.Location
	now    func() time.Time
}

func New(cfg config.Config, srv *services.Services) *Job {
	v1group := "v1"

	routes := JobRoutes{}
	routes.add(v1group, v1policy.Routes(srv.Policy))
	routes.add(v1group, v1statement.Routes(srv.Statement))
	routes.add(v1group, v1settlement.Routes(srv.Settlement))
	// add other version routes

	return &Job{Routes: routes, loc: cfg.App.Location(), now: time.Now}
}

func (r JobRoutes) add(version string, routes map[string]JobFunc) {
	if r[version] == nil {
		r[version] = map[string]JobFunc{}
	}
	for name, fn := range routes {
		r[version][name] = fn
	}
}

// Start runs one job. Without a date flag the job runs for today in the business timezone.
func (j *Job) Start(ctx context.Context, flag flag.Job) (err error) {
	run := log.JobRun{Name: flag.JobName, Version: flag.Version, Date: flag.Date, StartedAt: j.now()}

	fn, ok := j.Routes[flag.Version][flag.JobName]
	if !ok {
		log.LogJob(ctx, run, ErrJobNotFound)
		return ErrJobNotFound
	}

	ctx = ctxdata.Sets(ctx, ctxdata.WithCorrelationID(uuid.New().String()), ctxdata.WithSource("job"))
	defer func() {
		log.LogJob(ctx, run, err)
	}()

	run.RunningDate, err = models.ParseDate(flag.Date, j.loc, models.TruncateToDate(j.now().In(j.loc)))
	if err != nil {
		return fmt.Errorf("parse job date %q: %w", flag.Date, err)
	}

	return fn(ctx, run.RunningDate, flag)
}

// List returns every registered job as "version=<v>, name=<n>", sorted.
func (j *Job) List() []string {
	var out []string
	for version, l := range j.Routes {
		for name := range l {
			out = append(out, fmt.Sprintf("version=%s, name=%s", version, name))
		}
	}
	sort.Strings(out)
	return out
}
