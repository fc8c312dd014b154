package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"bengkel_service/internal/domain/analytics"
	"bengkel_service/internal/domain/entities"
	"bengkel_service/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var watchedCollections = []string{
	entities.CollectionJobs,
	entities.CollectionTransactions,
	entities.CollectionAssets,
	entities.CollectionSettings,
}

// IKPIUseCase serves the dashboard figures computed from the ledger store.
type IKPIUseCase interface {
	ComputeKPIs(ctx context.Context, p analytics.Period) (analytics.KPISnapshot, error)
	ProfitAndLoss(ctx context.Context, p analytics.Period) (analytics.ProfitAndLoss, error)
	// Watch emits a fresh snapshot now and after every change of any watched
	// collection until ctx is done. Snapshots are emitted in read order and
	// changes arriving during a recompute collapse into one more recompute.
	Watch(ctx context.Context, p analytics.Period, emit func(analytics.KPISnapshot)) error
}

type KPIUseCase struct {
	jobs     interfaces.IJobRepository
	txs      interfaces.ICashierTransactionRepository
	assets   interfaces.IAssetRepository
	settings interfaces.ISettingsRepository
	feed     interfaces.ILedgerFeed
	rules    []analytics.ClassificationRule
	logger   *slog.Logger
	now      func() time.Time

	loads        singleflight.Group
	loadsStarted atomic.Uint64
}

var _ IKPIUseCase = (*KPIUseCase)(nil)

func NewKPIUseCase(
	jobs interfaces.IJobRepository,
	txs interfaces.ICashierTransactionRepository,
	assets interfaces.IAssetRepository,
	settings interfaces.ISettingsRepository,
	feed interfaces.ILedgerFeed,
	logger *slog.Logger,
	now func() time.Time,
) *KPIUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &KPIUseCase{
		jobs:     jobs,
		txs:      txs,
		assets:   assets,
		settings: settings,
		feed:     feed,
		rules:    analytics.DefaultClassificationRules,
		logger:   logger.With(slog.String("component", "kpi_usecase")),
		now:      now,
	}
}

func (u *KPIUseCase) ComputeKPIs(ctx context.Context, p analytics.Period) (analytics.KPISnapshot, error) {
	snap, err := u.sharedSnapshot(ctx)
	if err != nil {
		return analytics.KPISnapshot{}, err
	}
	return analytics.ComputeKPIs(snap, p, u.now()), nil
}

func (u *KPIUseCase) ProfitAndLoss(ctx context.Context, p analytics.Period) (analytics.ProfitAndLoss, error) {
	snap, err := u.sharedSnapshot(ctx)
	if err != nil {
		return analytics.ProfitAndLoss{}, err
	}
	return analytics.ComputeProfitAndLoss(snap.Transactions, snap.Assets, p, u.now(), u.rules), nil
}

func (u *KPIUseCase) Watch(ctx context.Context, p analytics.Period, emit func(analytics.KPISnapshot)) error {
	// changed holds at most one pending recompute; a burst of changes while a
	// recompute runs collapses into a single follow-up read.
	changed := make(chan struct{}, 1)
	unsubscribe, err := u.feed.Subscribe(ctx, watchedCollections, func(collection string) {
		u.logger.DebugContext(ctx, "ledger changed", slog.String("collection", collection))
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return &PersistenceError{Op: "watch_kpis", Err: err}
	}
	defer unsubscribe()

	for {
		u.recompute(ctx, p, emit)
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
		}
	}
}

// recompute reads a fresh snapshot and emits its figures. Recomputes of one
// Watch run one at a time, so a result is never older than one already
// emitted. A failed recompute keeps the last emitted figures.
func (u *KPIUseCase) recompute(ctx context.Context, p analytics.Period, emit func(analytics.KPISnapshot)) {
	snap, err := u.loadSnapshot(ctx)
	if err != nil {
		if ctx.Err() == nil {
			u.logger.WarnContext(ctx, "kpi recompute failed", slog.Any("err", err))
		}
		return
	}
	if ctx.Err() != nil {
		return
	}
	emit(analytics.ComputeKPIs(snap, p, u.now()))
}

// sharedSnapshot collapses concurrent request-path loads into one store read.
// A request only joins a load that starts after it arrived, so a client
// always sees its own earlier writes.
func (u *KPIUseCase) sharedSnapshot(ctx context.Context) (analytics.Snapshot, error) {
	key := strconv.FormatUint(u.loadsStarted.Load()+1, 10)
	ch := u.loads.DoChan(key, func() (any, error) {
		u.loadsStarted.Add(1)
		return u.loadSnapshot(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return analytics.Snapshot{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return analytics.Snapshot{}, res.Err
		}
		return res.Val.(analytics.Snapshot), nil
	}
}

func (u *KPIUseCase) loadSnapshot(ctx context.Context) (analytics.Snapshot, error) {
	var snap analytics.Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobs, err := u.jobs.List(gctx)
		if err != nil {
			return &PersistenceError{Op: "load_jobs", Err: err}
		}
		snap.Jobs = jobs
		return nil
	})
	g.Go(func() error {
		txs, err := u.txs.List(gctx)
		if err != nil {
			return &PersistenceError{Op: "load_transactions", Err: err}
		}
		snap.Transactions = txs
		return nil
	})
	g.Go(func() error {
		assets, err := u.assets.List(gctx)
		if err != nil {
			return &PersistenceError{Op: "load_assets", Err: err}
		}
		snap.Assets = assets
		return nil
	})
	g.Go(func() error {
		settings, err := u.settings.Get(gctx)
		if err != nil {
			return &PersistenceError{Op: "load_settings", Err: err}
		}
		snap.Settings = settings
		return nil
	})
	if err := g.Wait(); err != nil {
		u.logger.ErrorContext(ctx, "snapshot load failed", slog.Any("err", err))
		return analytics.Snapshot{}, err
	}
	return snap, nil
}
