package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"git.home.luguber.info/inful/docsite/internal/analytics"
	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/hugo"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/preview"
	th "git.home.luguber.info/inful/docsite/internal/theme"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Port    int  `short:"p" help:"Port to listen on (overrides config)"`
	NoWatch bool `name:"no-watch" help:"Do not regenerate when sources change"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if s.Port != 0 {
		cfg.Preview.Port = s.Port
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prom.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	gen := newGenerator(cfg, hugo.WithMountBeacon(true))
	theme, closeAnalytics := mountTheme(gen.Theme(), cfg.Analytics, reg)
	defer closeAnalytics()

	rebuild := rebuildFunc(gen, metrics.NewPrometheusRecorder(reg))
	if err := rebuild(ctx); err != nil {
		return err
	}

	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()
	if !s.NoWatch {
		if _, err := os.Stat(gen.ContentDir()); err == nil {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := preview.Watch(ctx, gen.ContentDir(), cfg.Preview.Debounce, rebuild); err != nil {
					slog.Warn("Watcher stopped", logfields.Error(err))
				}
			}()
		} else {
			slog.Warn("Content directory missing, not watching", logfields.Path(gen.ContentDir()))
		}
	}
	if cfg.Preview.RebuildInterval > 0 {
		sched, err := preview.NewScheduler()
		if err != nil {
			return err
		}
		if _, err := sched.SchedulePeriodicRebuild(ctx, cfg.Preview.RebuildInterval, rebuild); err != nil {
			return err
		}
		sched.Start()
		defer func() {
			if err := sched.Stop(); err != nil {
				slog.Warn("Scheduler shutdown error", logfields.Error(err))
			}
		}()
	}

	srv := preview.NewServer(fmt.Sprintf(":%d", cfg.Preview.Port), gen.PublicDir(), theme, reg)
	slog.Info("Preview available", "url", fmt.Sprintf("http://localhost:%d/", cfg.Preview.Port))
	return srv.ListenAndServe(ctx)
}

// rebuildFunc generates and renders the site, recording stage durations
// and the outcome on rec. Calls are serialized.
func rebuildFunc(gen *hugo.Generator, rec metrics.Recorder) preview.RebuildFunc {
	var mu sync.Mutex
	return func(ctx context.Context) error {
		mu.Lock()
		defer mu.Unlock()
		err := metrics.TimeStage(rec, metrics.StageGenerate, func() error {
			_, err := gen.Generate(ctx)
			return err
		})
		if err == nil {
			err = metrics.TimeStage(rec, metrics.StageRender, func() error { return gen.Render(ctx) })
		}
		rec.IncBuildOutcome(metrics.Outcome(err))
		return err
	}
}

// mountTheme wraps base with the page-view collector when analytics is
// enabled. The returned func releases the NATS connection, if any.
func mountTheme(base th.Theme, acfg config.AnalyticsConfig, reg prom.Registerer) (th.Theme, func()) {
	if !acfg.Enabled {
		return base, func() {}
	}
	var opts []analytics.Option
	closer := func() {}
	if acfg.NATSURL != "" {
		pub, err := analytics.NewNATSPublisher(acfg.NATSURL)
		if err != nil {
			slog.Warn("Page views will only be counted locally", logfields.Error(err))
		} else {
			opts = append(opts, analytics.WithPublisher(pub, acfg.Subject))
			closer = pub.Close
		}
	}
	collector := analytics.NewCollector(acfg.AccountID, reg, opts...)
	return th.WithAnalytics(base, collector.Inject), closer
}
