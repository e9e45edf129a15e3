package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"queueline/internal/domain/queue"
	"queueline/internal/infra"
	sqlc "queueline/internal/infra/sqlc/generated"
	"queueline/internal/pkg/clock"
	"queueline/internal/pkg/errs"
	"queueline/internal/pkg/shortcode"
	"queueline/internal/usecase/queries"
	"queueline/internal/usecase/shared"
)

var (
	ErrQueueNotFound       = errs.New("queue not found")
	ErrAlreadyJoined       = errs.New("user already in queue")
	ErrNotInQueue          = errs.New("user is not in queue")
	ErrParticipantNotFound = errs.New("participant not found")
	ErrNotQueueOwner       = errs.New("only the queue owner can perform this operation")
	ErrCodeGeneration      = errs.New("failed to generate a unique queue code")
)

// code collisions are vanishingly rare at 9 base62 chars; a handful of
// retries is plenty.
const maxCodeAttempts = 3

type CreateQueueInput struct {
	Name        string
	Description string
	ServiceTime int32
}

type QueueCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, input CreateQueueInput) (*queries.QueueView, error)
	Join(ctx context.Context, queueID, userID uuid.UUID) (*queries.QueueView, error)
	Leave(ctx context.Context, queueID, userID uuid.UUID) error
	UpdateParticipantStatus(ctx context.Context, callerID, queueID, targetUserID uuid.UUID, status string) (*queries.QueueView, error)
}

type queueCommands struct {
	db        *pgxpool.Pool
	repo      QueueRepository
	reader    queries.QueueReadStore
	publisher SnapshotPublisher
	clock     clock.Clock
}

func NewQueueCommands(
	db *pgxpool.Pool,
	repo QueueRepository,
	reader queries.QueueReadStore,
	publisher SnapshotPublisher,
	clk clock.Clock,
) QueueCommands {
	return &queueCommands{db: db, repo: repo, reader: reader, publisher: publisher, clock: clk}
}

func (c *queueCommands) Create(ctx context.Context, ownerID uuid.UUID, input CreateQueueInput) (*queries.QueueView, error) {
	name, err := queue.NewName(input.Name)
	if err != nil {
		return nil, err
	}
	serviceTime := queue.DefaultServiceTime()
	if input.ServiceTime > 0 {
		serviceTime, err = queue.NewServiceTime(input.ServiceTime)
		if err != nil {
			return nil, err
		}
	}

	var queueID uuid.UUID
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		raw, err := shortcode.Generate()
		if err != nil {
			return nil, errs.Mark(err, ErrCodeGeneration)
		}
		code, err := queue.NewCode(raw)
		if err != nil {
			return nil, errs.Mark(err, ErrCodeGeneration)
		}

		q := queue.NewQueue(name, input.Description, serviceTime, code, ownerID)
		queueID, err = shared.RunInTx(ctx, c.db, func(tx sqlc.DBTX) (uuid.UUID, error) {
			return c.repo.Create(ctx, tx, q)
		})
		if err == nil {
			break
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			if attempt == maxCodeAttempts-1 {
				return nil, errs.Mark(err, ErrCodeGeneration)
			}
			continue
		}
		return nil, err
	}

	return c.snapshot(ctx, queueID, false)
}

func (c *queueCommands) Join(ctx context.Context, queueID, userID uuid.UUID) (*queries.QueueView, error) {
	_, err := shared.WithDefaultRetry(ctx, c.db, func(tx sqlc.DBTX) (struct{}, error) {
		var zero struct{}

		joined, err := c.repo.HasParticipant(ctx, tx, queueID, userID)
		if err != nil {
			return zero, err
		}
		if joined {
			return zero, ErrAlreadyJoined
		}

		number, serviceTime, err := c.repo.NextNumber(ctx, tx, queueID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return zero, errs.Mark(err, ErrQueueNotFound)
			}
			return zero, err
		}

		// people ahead is counted before this participant is appended
		waiting, err := c.repo.CountWaiting(ctx, tx, queueID)
		if err != nil {
			return zero, err
		}

		now := c.clock.Now()
		estimate := now.Add(queue.EstimatedWait(int(waiting), serviceTime))
		err = c.repo.AddParticipant(ctx, tx, AddParticipantParams{
			QueueID:            queueID,
			UserID:             userID,
			Status:             queue.StatusWaiting,
			Number:             number,
			JoinedAt:           now,
			EstimatedStartTime: &estimate,
		})
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return zero, errs.Mark(err, ErrAlreadyJoined)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return zero, errs.Mark(err, ErrQueueNotFound)
			}
			return zero, err
		}
		return zero, nil
	})
	if err != nil {
		return nil, err
	}

	return c.snapshot(ctx, queueID, true)
}

func (c *queueCommands) Leave(ctx context.Context, queueID, userID uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.db, func(tx sqlc.DBTX) (struct{}, error) {
		var zero struct{}

		removed, err := c.repo.RemoveParticipant(ctx, tx, queueID, userID)
		if err != nil {
			return zero, err
		}
		if !removed {
			// distinguish a missing queue from a user who never joined
			exists, err := c.repo.Exists(ctx, tx, queueID)
			if err != nil {
				return zero, err
			}
			if !exists {
				return zero, ErrQueueNotFound
			}
			return zero, ErrNotInQueue
		}
		return zero, c.repo.Touch(ctx, tx, queueID)
	})
	if err != nil {
		return err
	}

	_, err = c.snapshot(ctx, queueID, true)
	return err
}

func (c *queueCommands) UpdateParticipantStatus(ctx context.Context, callerID, queueID, targetUserID uuid.UUID, status string) (*queries.QueueView, error) {
	newStatus, err := queue.NewParticipantStatus(status)
	if err != nil {
		return nil, err
	}

	current, err := c.reader.FindByID(ctx, queueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrQueueNotFound)
		}
		return nil, err
	}
	if current.CreatedBy != callerID {
		return nil, ErrNotQueueOwner
	}

	serviceTime, err := queue.NewServiceTime(current.ServiceTime)
	if err != nil {
		return nil, err
	}

	_, err = shared.RunInTx(ctx, c.db, func(tx sqlc.DBTX) (struct{}, error) {
		var zero struct{}

		updated, err := c.repo.SetParticipantStatus(ctx, tx, queueID, targetUserID, newStatus)
		if err != nil {
			return zero, err
		}
		if !updated {
			return zero, ErrParticipantNotFound
		}

		now := c.clock.Now()
		// waiting estimates shift only when someone moves into service
		if newStatus == queue.StatusProcessing {
			if err := c.repo.RecomputeWaitingEstimates(ctx, tx, queueID, now, serviceTime); err != nil {
				return zero, err
			}
		}
		return zero, c.repo.Touch(ctx, tx, queueID)
	})
	if err != nil {
		return nil, err
	}

	return c.snapshot(ctx, queueID, true)
}

// snapshot reads the queue back and optionally broadcasts it. The read
// happens outside the mutating transaction, so concurrent writers may be
// reflected; subscribers only ever need the latest state.
func (c *queueCommands) snapshot(ctx context.Context, queueID uuid.UUID, publish bool) (*queries.QueueView, error) {
	view, err := c.reader.FindByID(ctx, queueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrQueueNotFound)
		}
		return nil, err
	}
	if publish && c.publisher != nil {
		c.publisher.PublishQueueUpdated(queueID, view)
	}
	return view, nil
}
