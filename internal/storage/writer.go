package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/account"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/transaction"
)

// Committer ends a database transaction.
//
//go:generate mockery --name Committer --inpackage --testonly=false --filename mock_Committer.go
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer groups the table writers that share one database transaction.
type Writer struct {
	tx          Committer
	Account     account.IWriter
	Transaction transaction.IWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:          tx,
		Account:     account.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
	}
}

// NewWriterFrom assembles a Writer from its parts.
func NewWriterFrom(tx Committer, accounts account.IWriter, transactions transaction.IWriter) *Writer {
	return &Writer{
		tx:          tx,
		Account:     accounts,
		Transaction: transactions,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
