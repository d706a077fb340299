package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/account"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/transaction"
)

type Reader struct {
	Accounts     account.IReader
	Transactions transaction.IReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:     account.NewReader(exec),
		Transactions: transaction.NewReader(exec),
	}
}
