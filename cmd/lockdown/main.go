package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/lockdown"
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/hud"
	"github.com/oomph-ac/lockdown/level"
	"github.com/oomph-ac/lockdown/oerror"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/settings"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

const tickRate = 0.1

var (
	settingsPath = flag.String("settings", "lockdown.toml", "path to the settings file, written with defaults if missing")
	levelPath    = flag.String("level", "", "path to a level file, the demo level is used if empty")
	realtime     = flag.Bool("realtime", false, "tick at wall clock speed instead of as fast as possible")
)

// The following program plays a level headless, driving the player along a scripted route, and
// prints the session journal once the route ends.
func main() {
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	log.Level = logrus.InfoLevel

	opts, err := settings.Load(*settingsPath)
	if err != nil {
		log.Fatalf("unable to load settings: %v", err)
	}
	lvl := level.Demo()
	if *levelPath != "" {
		if lvl, err = level.Load(*levelPath); err != nil {
			log.Fatalf("unable to load level: %v", err)
		}
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	presenter := hud.NewRecorder()
	g, err := lockdown.New(log, opts, lvl, audio.NewAsync(audio.NewRecorder(), log), presenter)
	if err != nil {
		log.Fatalf("unable to start level: %v", err)
	}
	g.Session.SetRecoverFunc(func(s *session.Session, v any) {
		s.Log().Errorf("tick panic: %v", v)
		hub := sentry.CurrentHub().Clone()
		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("session", s.ID().String())
			scope.SetTag("level", lvl.Name)
		})
		hub.Recover(oerror.New("%v", v))
		hub.Flush(time.Second * 5)
	})

	stop := atomic.NewBool(false)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		stop.Store(true)
	}()

	var ticker *time.Ticker
	if *realtime {
		ticker = time.NewTicker(time.Duration(tickRate * float64(time.Second)))
		defer ticker.Stop()
	}

	r := &runner{g: g, route: demoRoute()}
	for !stop.Load() && r.next() {
		if ticker != nil {
			<-ticker.C
		}
	}

	p := g.Session.Progress()
	log.Infof("finished after %.1fs: escaped=%v valves=%d collectibles=%d", g.Session.Elapsed(), p.Escaped, p.ValvesTurned, p.Collectibles)
	for _, ev := range g.Session.Journal() {
		fmt.Printf("%6.1fs %-18s %s\n", ev.Time, ev.Kind, ev.Message)
	}
	if len(presenter.Hints) > 0 {
		fmt.Printf("last hint: %s\n", presenter.LastHint())
	}
}
