// SPDX-License-Identifier: Apache-2.0

package ioutil

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// ProgressInterval is the minimum time between two progress reports.
const ProgressInterval = 5 * time.Second

// ProgressFunc receives a human-readable progress line. It is the
// out-of-scope "progress formatting" collaborator: the core pipeline only
// calls it, it never decides how a line is displayed.
type ProgressFunc func(line string)

// NoopProgress discards every progress report.
func NoopProgress(string) {}

// Progress throttles calls to a ProgressFunc so that the wrapped reporter
// fires at most once per ProgressInterval, plus a mandatory final call when
// Done is invoked.
type Progress struct {
	report  ProgressFunc
	total   uint64
	started time.Time
	last    time.Time
	done    bool
}

// NewProgress creates a throttled reporter for an operation processing total
// bytes overall (0 if unknown).
func NewProgress(report ProgressFunc, total uint64) *Progress {
	if report == nil {
		report = NoopProgress
	}
	now := time.Now()
	return &Progress{report: report, total: total, started: now, last: now}
}

// Update records that processed bytes have been handled so far and emits a
// throttled report line when the interval has elapsed.
func (p *Progress) Update(processed uint64) {
	now := time.Now()
	if p.done || now.Sub(p.last) < ProgressInterval {
		return
	}
	p.last = now
	p.report(p.line(processed, now))
}

// Done emits a final, unconditional report line.
func (p *Progress) Done(processed uint64) {
	if p.done {
		return
	}
	p.done = true
	p.report(p.line(processed, time.Now()))
}

func (p *Progress) line(processed uint64, now time.Time) string {
	elapsed := now.Sub(p.started).Seconds()
	var rate float64
	if elapsed > 0 {
		rate = float64(processed) / elapsed
	}
	if p.total > 0 {
		pct := float64(processed) / float64(p.total) * 100
		return fmt.Sprintf("%s / %s (%.1f%%), %s/s",
			humanize.Bytes(processed), humanize.Bytes(p.total), pct, humanize.Bytes(uint64(rate)))
	}
	return fmt.Sprintf("%s, %s/s", humanize.Bytes(processed), humanize.Bytes(uint64(rate)))
}
