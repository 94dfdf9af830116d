package scheduler

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"

	"AltRadar/internal/dashboard"
	"AltRadar/internal/model"
	"AltRadar/internal/notifier"

	"github.com/robfig/cron/v3"
)

// Scheduler polls both panels on cron schedules and sends candidate alerts.
type Scheduler struct {
	Cron     *cron.Cron
	Live     *dashboard.LivePanel
	Saved    *dashboard.SavedPanel
	Notifier *notifier.TelegramNotifier
	Ctx      context.Context

	mu         sync.Mutex
	candidates []string // symbols of the last alerted candidate set
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, live *dashboard.LivePanel, saved *dashboard.SavedPanel, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Live:     live,
		Saved:    saved,
		Notifier: tn,
		Ctx:      ctx,
	}
}

// RegisterAll registers the live and saved polling tasks.
func (s *Scheduler) RegisterAll(liveCron, savedCron string) error {
	if _, err := s.Cron.AddFunc(liveCron, s.liveTask); err != nil {
		return fmt.Errorf("register live task: %w", err)
	}
	if _, err := s.Cron.AddFunc(savedCron, s.savedTask); err != nil {
		return fmt.Errorf("register saved task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running tasks.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow loads both panels immediately, as the page does when first opened.
func (s *Scheduler) RunNow() {
	s.liveTask()
	s.savedTask()
}

func (s *Scheduler) liveTask() {
	s.Live.Load(s.Ctx)
}

func (s *Scheduler) savedTask() {
	s.loadSaved()
}

// loadSaved loads the saved panel and checks the candidates of that very
// response, so an overlapping load cannot swap the set being alerted on.
func (s *Scheduler) loadSaved() bool {
	rows, ok := s.Saved.LoadWithCandidates(s.Ctx)
	if ok {
		s.checkCandidates(rows)
	}
	return ok
}

// checkCandidates alerts when the set of candidate symbols differs from the
// last alerted set.
func (s *Scheduler) checkCandidates(rows []model.SavedMarketRow) {
	syms := symbols(rows)

	s.mu.Lock()
	changed := !slices.Equal(syms, s.candidates)
	s.candidates = syms
	s.mu.Unlock()

	if !changed {
		return
	}
	log.Printf("[INFO] buy candidates changed: %v", syms)
	s.trySend(notifier.FormatCandidates(rows))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	command, _, _ = strings.Cut(strings.TrimSpace(command), "@")
	switch command {
	case "/candidates":
		return notifier.FormatCandidates(s.Saved.Candidates())
	case "/live":
		return notifier.FormatLiveSummary(s.Live.Rows())
	case "/refresh":
		live := s.Live.Load(s.Ctx)
		saved := s.loadSaved()
		return fmt.Sprintf("🔄 Refresh done\nlive: %s\nsaved: %s", outcome(live), outcome(saved))
	default:
		return notifier.FormatHelp()
	}
}

func (s *Scheduler) trySend(text string) {
	if !s.Notifier.Enabled() {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}

func symbols(rows []model.SavedMarketRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Symbol)
	}
	slices.Sort(out)
	return out
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed, previous view kept"
}
