package txsync

import "time"

// RecordFailure captures a single transaction that could not be turned into
// a sink record, along with the error that stopped it. Failures are reported
// per record; they never abort the remaining transactions of a run.
type RecordFailure struct {
	TxHash string // hash of the transaction that failed
	Err    error  // valuation or sink error
}

// NetworkReport summarizes the outcome of one network's pass through the
// pipeline within a single run.
type NetworkReport struct {
	Network   string          // network display name
	Fetched   int             // transactions returned by the explorer
	Outgoing  int             // transactions surviving the outgoing filter (before the cap)
	Submitted int             // records accepted by the sink
	Skipped   int             // transactions skipped because a previous run already synced them
	Failures  []RecordFailure // per-record valuation or sink failures
	SourceErr error           // explorer failure that degraded this network to an empty list, if any
}

// RunReport aggregates the outcome of a full sync run across all networks.
// It is the structured diagnostic surface of the pipeline: since no retry or
// dead-letter mechanism exists, operators rely on it (and the log stream) to
// notice lost records.
type RunReport struct {
	RunID      string          // UUIDv7 correlating all log entries of this run
	StartedAt  time.Time       // when the run began
	FinishedAt time.Time       // when the last network finished
	PriceErr   error           // price-source outage, if the snapshot could not be fetched
	Networks   []NetworkReport // one entry per configured network, in configuration order
}

// Submitted returns the total number of records accepted by the sink across
// all networks in this run.
func (r RunReport) Submitted() int {
	var total int
	for _, network := range r.Networks {
		total += network.Submitted
	}

	return total
}

// Failed returns the total number of per-record failures across all networks.
func (r RunReport) Failed() int {
	var total int
	for _, network := range r.Networks {
		total += len(network.Failures)
	}

	return total
}
