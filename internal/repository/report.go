package repository

import (
	"context"
	"fmt"

	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/pkg/kafka"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Dashboard aggregates the circulation counters concurrently. Empty tables
// aggregate to zero.
func (r *repository) Dashboard(ctx context.Context, dueSoonDays int) (model.Dashboard, error) {
	var d model.Dashboard
	d.FinesPending = decimal.Zero
	d.FinesCollected = decimal.Zero

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.QueryRowContext(ctx,
			`select count(*) from loans where status = 'active'`).Scan(&d.ActiveLoans)
	})
	g.Go(func() error {
		q := fmt.Sprintf(`
	select count(*) from loans
	where status = 'active' and due_date >= now() and due_date < now() + interval '%d days'`, dueSoonDays)
		return r.db.QueryRowContext(ctx, q).Scan(&d.DueSoon)
	})
	g.Go(func() error {
		return r.db.QueryRowContext(ctx,
			`select count(*) from loans where status = 'active' and due_date < now()`).Scan(&d.Overdue)
	})
	g.Go(func() error {
		return r.db.QueryRowContext(ctx,
			`select coalesce(sum(amount), 0) from fines where status = 'pending'`).Scan(&d.FinesPending)
	})
	g.Go(func() error {
		return r.db.QueryRowContext(ctx,
			`select coalesce(sum(amount), 0) from fines where status = 'paid'`).Scan(&d.FinesCollected)
	})
	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}
	return d, nil
}

// LoanTrend buckets the materialized event stream by day.
func (r *repository) LoanTrend(ctx context.Context, days int) ([]model.TrendPoint, error) {
	q := fmt.Sprintf(`
	select date_trunc('day', occurred_at) as day,
	       count(*) filter (where event_type = 'ISSUE') as issues,
	       count(*) filter (where event_type = 'RETURN') as returns
	from loan_events
	where occurred_at >= now() - interval '%d days'
	group by 1
	order by 1`, days)
	var points []model.TrendPoint
	if err := r.db.SelectContext(ctx, &points, q); err != nil {
		return nil, err
	}
	return points, nil
}

func (r *repository) ExportLoans(ctx context.Context) ([]model.LoanExportRow, error) {
	const q = `
	select l.loan_uid, s.student_number, s.name as student_name, b.title as book_title,
	       c.copy_code, l.issued_date, l.due_date, l.returned_date,
	       case when l.status = 'active' and l.due_date < now() then 'overdue' else l.status end as status,
	       (select sum(amount)::text from fines f where f.loan_id = l.id) as fine_amount
	from loans l
	join students s on s.id = l.student_id
	join books b on b.id = l.book_id
	join book_copies c on c.id = l.book_copy_id
	order by l.issued_date desc`
	var rows []model.LoanExportRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// RecordLoanEvent materializes a consumed circulation event for trend reports.
func (r *repository) RecordLoanEvent(ctx context.Context, ev kafka.LoanEvent) error {
	q := `
	insert into loan_events (loan_uid, event_type, student_id, book_id, occurred_at)
	values ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, q, ev.LoanUid, string(ev.EventType), ev.StudentID, ev.BookID, ev.OccurredAt)
	return err
}
