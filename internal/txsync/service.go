package txsync

import (
	"context"
	"sync"
	"time"

	"github.com/kevinosminski/crypto-notion-tracker/internal/pkg/logger"
	"github.com/kevinosminski/crypto-notion-tracker/internal/pkg/resilience/retry"
	"github.com/kevinosminski/crypto-notion-tracker/internal/pkg/telemetry"

	"github.com/google/uuid"
)

// defaultMaxRecordsPerNetwork caps how many filtered transactions per network
// are pushed through valuation and the sink in a single run. The explorer
// returns newest-first, so the cap keeps the most recent ones.
const defaultMaxRecordsPerNetwork = 3

// Service runs the transaction ingestion and valuation pipeline.
type Service interface {
	// Sync executes one full run: it fetches the price snapshot once, then for
	// each configured network fetches and filters transactions, values the
	// capped result set, and submits one record per transaction to the sink.
	//
	// Networks are processed concurrently and joined before Sync returns.
	// Failures local to one transaction or one network never prevent the other
	// network's transactions from being processed; they are surfaced in the
	// returned RunReport. Sync returns a non-nil error only when the run as a
	// whole was aborted (context cancellation).
	Sync(ctx context.Context) (RunReport, error)
}

type service struct {
	address     string
	networks    []NetworkSource
	priceSource PriceSource
	sink        RecordSink

	guard      IdempotencyGuard
	sinkRetry  retry.Retry
	maxRecords int
}

var _ Service = (*service)(nil)

type config struct {
	guard      IdempotencyGuard
	sinkRetry  retry.Retry
	maxRecords int
}

// Option customizes the sync service.
type Option func(*config)

// WithIdempotencyGuard installs a guard that prevents transactions already
// synced by a previous run from being re-submitted. Without it, every run
// re-submits the capped window the explorer reports.
func WithIdempotencyGuard(g IdempotencyGuard) Option {
	return func(c *config) {
		c.guard = g
	}
}

// WithSinkRetry sets the retry policy applied to sink submissions.
func WithSinkRetry(r retry.Retry) Option {
	return func(c *config) {
		c.sinkRetry = r
	}
}

// WithMaxRecordsPerNetwork overrides the per-network cap on records submitted
// per run. Default: 3.
func WithMaxRecordsPerNetwork(n int) Option {
	return func(c *config) {
		c.maxRecords = n
	}
}

// New creates a sync service watching the given address across the provided
// networks, valuing transactions with prices from the price source and
// submitting records to the sink.
func New(address string, networks []NetworkSource, prices PriceSource, sink RecordSink, opts ...Option) *service {
	cfg := config{
		guard:      nopIdempotencyGuard{},
		sinkRetry:  retry.New(),
		maxRecords: defaultMaxRecordsPerNetwork,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		address:     address,
		networks:    networks,
		priceSource: prices,
		sink:        sink,
		guard:       cfg.guard,
		sinkRetry:   cfg.sinkRetry,
		maxRecords:  cfg.maxRecords,
	}
}

// Sync implements the Service interface.
func (s *service) Sync(ctx context.Context) (RunReport, error) {
	ctx, span := telemetry.StartSpan(ctx, "txsync.Sync")
	defer span.End()

	report := RunReport{
		RunID:     uuid.Must(uuid.NewV7()).String(),
		StartedAt: time.Now().UTC(),
		Networks:  make([]NetworkReport, len(s.networks)),
	}

	logger.Info(ctx, "starting sync run", "run.id", report.RunID, "wallet.address", s.address)

	prices, err := s.priceSource.FetchPrices(ctx)
	if err != nil {
		// A price outage is not fatal: every valuation in this run will fail
		// with ErrPriceUnavailable and be reported per record.
		logger.Error(ctx, "price source unavailable", "run.id", report.RunID, "error", err)
		report.PriceErr = err
		prices = nil
	}

	var wg sync.WaitGroup
	for i, ns := range s.networks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report.Networks[i] = s.syncNetwork(ctx, report.RunID, ns, prices)
		}()
	}
	wg.Wait()

	report.FinishedAt = time.Now().UTC()

	logger.Info(ctx, "sync run finished",
		"run.id", report.RunID,
		"records.submitted", report.Submitted(),
		"records.failed", report.Failed(),
	)

	return report, ctx.Err()
}

// syncNetwork runs the fetch → filter → cap → value → submit pipeline for a
// single network. Every failure is degraded to the smallest scope that can
// absorb it: an explorer failure empties this network's list, a valuation or
// sink failure skips that one transaction.
func (s *service) syncNetwork(ctx context.Context, runID string, ns NetworkSource, prices PriceSnapshot) NetworkReport {
	ctx, span := telemetry.StartSpan(ctx, "txsync.syncNetwork")
	defer span.End()

	report := NetworkReport{Network: ns.Network.Name}

	txs, err := ns.Source.FetchTransactions(ctx, s.address)
	if err != nil {
		logger.Error(ctx, "transaction source unavailable, treating as empty",
			"run.id", runID,
			"network", ns.Network.Name,
			"error", err,
		)
		report.SourceErr = err
		txs = nil
	}

	outgoing := filterOutgoing(s.address, txs)

	report.Fetched = len(txs)
	report.Outgoing = len(outgoing)

	if len(outgoing) > s.maxRecords {
		outgoing = outgoing[:s.maxRecords]
	}

	for _, tx := range outgoing {
		if s.skipAlreadySynced(ctx, runID, ns.Network.Name, tx.Hash) {
			report.Skipped++
			continue
		}

		record, err := valueTransaction(tx, ns.Network, prices)
		if err != nil {
			logger.Error(ctx, "skipping transaction, valuation failed",
				"run.id", runID,
				"network", ns.Network.Name,
				"tx.hash", tx.Hash,
				"error", err,
			)
			telemetry.CountRecordFailed(ctx, ns.Network.Name)
			report.Failures = append(report.Failures, RecordFailure{TxHash: tx.Hash, Err: err})
			continue
		}

		err = s.sinkRetry.Execute(ctx, func() error {
			return s.sink.CreateRecord(ctx, record)
		})
		if err != nil {
			logger.Error(ctx, "record rejected by sink",
				"run.id", runID,
				"network", ns.Network.Name,
				"tx.hash", tx.Hash,
				"error", err,
			)
			telemetry.CountRecordFailed(ctx, ns.Network.Name)
			report.Failures = append(report.Failures, RecordFailure{TxHash: tx.Hash, Err: err})
			continue
		}

		telemetry.CountRecordSubmitted(ctx, ns.Network.Name)
		report.Submitted++

		if err := s.guard.MarkSynced(ctx, ns.Network.Name, tx.Hash); err != nil {
			logger.Error(ctx, "error marking transaction as synced",
				"run.id", runID,
				"network", ns.Network.Name,
				"tx.hash", tx.Hash,
				"error", err,
			)
		}
	}

	return report
}

// skipAlreadySynced consults the idempotency guard for one transaction. Guard
// lookup failures are logged and treated as "not synced" so a degraded guard
// backend falls back to the reference re-submit behavior instead of dropping
// records.
func (s *service) skipAlreadySynced(ctx context.Context, runID, network, txHash string) bool {
	synced, err := s.guard.AlreadySynced(ctx, network, txHash)
	if err != nil {
		logger.Warn(ctx, "idempotency guard lookup failed, assuming not synced",
			"run.id", runID,
			"network", network,
			"tx.hash", txHash,
			"error", err,
		)
		return false
	}

	return synced
}
