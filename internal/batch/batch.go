// SPDX-License-Identifier: Apache-2.0

// Package batch resolves many lease records in parallel and collects the
// failures and audit warnings into a single report.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cslb/ldtoolbox-mcp/internal/legal"
	"github.com/cslb/ldtoolbox-mcp/internal/plss"
)

// DefaultWorkers is the number of records resolved concurrently when the
// runner is not configured otherwise.
const DefaultWorkers = 4

// Record is one row of the lease spreadsheet. Rows of one transaction share
// an ID. Attributes holds the remaining lease columns by heading.
type Record struct {
	ID          string            `json:"id"`
	Description string            `json:"legal_description"`
	Meridian    string            `json:"meridian"`
	Township    string            `json:"township"`
	Range       string            `json:"range"`
	Section     string            `json:"section"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// Result is the resolution of one Record. Outcome is nil when Error is set.
type Result struct {
	Record        Record         `json:"record"`
	FirstDivision string         `json:"first_division,omitempty"`
	Outcome       *legal.Outcome `json:"outcome,omitempty"`
	Filter        string         `json:"filter,omitempty"`
	Error         string         `json:"error,omitempty"`
	Warning       string         `json:"warning,omitempty"`
}

// Failed reports whether the record could not be resolved.
func (r Result) Failed() bool {
	return r.Error != ""
}

// Report is the outcome of a batch run. Results are in input order.
type Report struct {
	RunID    string        `json:"run_id"`
	Results  []Result      `json:"results"`
	Failures int           `json:"failures"`
	Warnings int           `json:"warnings"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Runner resolves records with a bounded number of workers.
type Runner struct {
	parser  *legal.Parser
	state   string
	workers int
	fields  []string
	log     *zap.Logger
}

// Config configures a Runner.
type Config struct {
	// State is the first-division state prefix; plss.DefaultState if empty.
	State string
	// Workers bounds concurrency; DefaultWorkers if zero or less.
	Workers int
	// ConsistencyFields are compared across records sharing an ID;
	// DefaultConsistencyFields if nil. An empty non-nil slice turns the
	// check off.
	ConsistencyFields []string
	Logger            *zap.Logger
}

// NewRunner creates a Runner around parser.
func NewRunner(parser *legal.Parser, cfg Config) *Runner {
	r := &Runner{
		parser:  parser,
		state:   cfg.State,
		workers: cfg.Workers,
		fields:  cfg.ConsistencyFields,
		log:     cfg.Logger,
	}
	if r.fields == nil {
		r.fields = DefaultConsistencyFields
	}
	if r.state == "" {
		r.state = plss.DefaultState
	}
	if r.workers <= 0 {
		r.workers = DefaultWorkers
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	return r
}

// Run resolves every record. A failing record never stops the batch; it is
// reported in its Result. Every record of a transaction whose records
// disagree on a consistency field fails with a "Fields mismatch" error and
// is not resolved. Once ctx is done the records not yet started are marked
// failed with the context error.
func (r *Runner) Run(ctx context.Context, records []Record) Report {
	start := time.Now()
	report := Report{
		RunID:   uuid.NewString(),
		Results: make([]Result, len(records)),
	}
	log := r.log.With(zap.String("run_id", report.RunID))
	log.Info("batch started", zap.Int("records", len(records)), zap.Int("workers", r.workers))

	mismatched := Mismatches(records, r.fields)
	for id, fields := range mismatched {
		log.Warn("transaction records disagree", zap.String("id", id), zap.Strings("fields", fields))
	}

	g := new(errgroup.Group)
	g.SetLimit(r.workers)

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(records); j++ {
				report.Results[j] = Result{Record: records[j], Error: err.Error()}
			}
			log.Warn("batch cancelled", zap.Int("skipped", len(records)-i), zap.Error(err))
			break
		}
		if fields, ok := mismatched[rec.ID]; ok {
			report.Results[i] = Result{Record: rec, Error: mismatchMessage(fields)}
			continue
		}
		g.Go(func() error {
			report.Results[i] = r.resolve(rec)
			return nil
		})
	}
	_ = g.Wait()

	for _, res := range report.Results {
		switch {
		case res.Failed():
			report.Failures++
			log.Debug("record failed", zap.String("id", res.Record.ID), zap.String("error", res.Error))
		case res.Warning != "":
			report.Warnings++
		}
	}
	report.Elapsed = time.Since(start)

	log.Info("batch finished",
		zap.Int("failures", report.Failures),
		zap.Int("warnings", report.Warnings),
		zap.Duration("elapsed", report.Elapsed))
	return report
}

// resolve computes the first division, parses the description and builds
// the attribute filter for one record.
func (r *Runner) resolve(rec Record) Result {
	res := Result{Record: rec}

	firstDiv, err := plss.FirstDivision(r.state, rec.Meridian, rec.Township, rec.Range, rec.Section)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.FirstDivision = firstDiv

	out, err := r.parser.Parse(rec.Description)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Outcome = &out
	res.Filter = plss.SecondDivisionFilter(firstDiv, out.Lookups)

	if msg := legal.AuditMessage(out); msg != "" {
		res.Warning = fmt.Sprintf("%s >> First_Div value: %s Second_Div value(s): %v", msg, firstDiv, out.Lookups)
	}
	return res
}
