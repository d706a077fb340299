package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/operator/actions"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage"
)

// WriterSource opens a Writer bound to a new database transaction.
type WriterSource interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage WriterSource
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s WriterSource, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return err
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rollbackErr := writer.Rollback(context.WithoutCancel(item.ctx)); rollbackErr != nil {
			o.logger.WithError(rollbackErr).Error("Operator.processItem.rollback")
		}
		return err
	}

	return writer.Commit(item.ctx)
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
