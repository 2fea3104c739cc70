package pool

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/dicepool/internal/common/clock"
	"github.com/KirkDiggler/dicepool/internal/common/uuid"
	"github.com/KirkDiggler/dicepool/internal/dice"
	"github.com/KirkDiggler/dicepool/internal/models"
	dicePool "github.com/KirkDiggler/dicepool/internal/pool"
	poolRepo "github.com/KirkDiggler/dicepool/internal/repositories/pool"
)

// service implements the Service interface
type service struct {
	maxRerollPasses int
	poolRepo        poolRepo.Repository
	diceRoller      dice.Roller
	clock           clock.Clock
	uuidGenerator   uuid.Generator
}

// New creates a new pool service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.PoolRepo == nil {
		return nil, ErrNilPoolRepo
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		maxRerollPasses: cfg.MaxRerollPasses,
		poolRepo:        cfg.PoolRepo,
		diceRoller:      cfg.DiceRoller,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
	}, nil
}

// CreatePool rolls and stores a new pool
func (s *service) CreatePool(ctx context.Context, input *CreatePoolInput) (*CreatePoolOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	p, err := dicePool.New(s.diceRoller, input.Count, &dicePool.Options{
		Success: input.Success,
		Double:  input.Double,
		Stunt:   input.Stunt,
		Wound:   input.Wound,
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	record := &models.PoolRecord{
		ID:        s.uuidGenerator.NewID(),
		Label:     input.Label,
		Pool:      p,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.save(ctx, record); err != nil {
		return nil, err
	}

	return &CreatePoolOutput{
		Record:     record,
		Evaluation: evaluate(p),
	}, nil
}

// RollPool rolls every die of a stored pool again
func (s *service) RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	record, err := s.getRecord(ctx, input.PoolID)
	if err != nil {
		return nil, err
	}

	var p dicePool.Pool
	if input.Count != nil {
		p, err = record.Pool.RollCount(s.diceRoller, *input.Count)
	} else {
		p, err = record.Pool.Roll(s.diceRoller)
	}
	if err != nil {
		return nil, err
	}

	record.Pool = p
	record.UpdatedAt = s.clock.Now()

	if err := s.save(ctx, record); err != nil {
		return nil, err
	}

	return &RollPoolOutput{
		Record:     record,
		Evaluation: evaluate(p),
	}, nil
}

// RerollPool rerolls the dice of a stored pool that match a criteria.
// An until_none reroll stops with ErrRerollLimit after MaxRerollPasses passes,
// or with ctx's error once ctx is done.
func (s *service) RerollPool(ctx context.Context, input *RerollPoolInput) (*RerollPoolOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Criteria == nil {
		return nil, ErrMissingCriteria
	}

	record, err := s.getRecord(ctx, input.PoolID)
	if err != nil {
		return nil, err
	}

	before := record.Pool

	var after dicePool.Pool
	if input.Mode == dicePool.ModeUntilNone {
		after, err = s.rerollUntilNone(ctx, before, input.Criteria)
	} else {
		after, err = before.Reroll(s.diceRoller, input.Criteria, input.Mode)
	}
	if err != nil {
		return nil, err
	}

	record.Pool = after
	record.UpdatedAt = s.clock.Now()

	if err := s.save(ctx, record); err != nil {
		return nil, err
	}

	passes, rerolled := rerollStats(before, after)

	return &RerollPoolOutput{
		Record:     record,
		Evaluation: evaluate(after),
		Passes:     passes,
		Rerolled:   rerolled,
	}, nil
}

// GetPool returns a stored pool and its evaluation
func (s *service) GetPool(ctx context.Context, input *GetPoolInput) (*GetPoolOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	record, err := s.getRecord(ctx, input.PoolID)
	if err != nil {
		return nil, err
	}

	return &GetPoolOutput{
		Record:     record,
		Evaluation: evaluate(record.Pool),
	}, nil
}

// ListPools returns the most recently updated pools
func (s *service) ListPools(ctx context.Context, input *ListPoolsInput) (*ListPoolsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out, err := s.poolRepo.ListPools(ctx, &poolRepo.ListPoolsInput{
		Limit: input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}

	return &ListPoolsOutput{
		Records: out.Records,
	}, nil
}

// DeletePool removes a stored pool
func (s *service) DeletePool(ctx context.Context, input *DeletePoolInput) (*DeletePoolOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.PoolID == "" {
		return nil, ErrMissingPoolID
	}

	err := s.poolRepo.DeletePool(ctx, &poolRepo.DeletePoolInput{
		PoolID: input.PoolID,
	})
	if err != nil {
		if errors.Is(err, poolRepo.ErrPoolNotFound) {
			return nil, ErrPoolNotFound
		}
		return nil, fmt.Errorf("failed to delete pool: %w", err)
	}

	return &DeletePoolOutput{
		Success: true,
	}, nil
}

// rerollUntilNone runs single passes until nothing matches, the pass limit is hit or ctx is done.
// A limit of 0 leaves only ctx to stop criteria that keep matching.
func (s *service) rerollUntilNone(ctx context.Context, p dicePool.Pool, criteria dicePool.Criteria) (dicePool.Pool, error) {
	for passes := 0; len(p.Matching(criteria)) > 0; passes++ {
		if s.maxRerollPasses > 0 && passes >= s.maxRerollPasses {
			return dicePool.Pool{}, fmt.Errorf("%w: %d passes", ErrRerollLimit, passes)
		}
		if err := ctx.Err(); err != nil {
			return dicePool.Pool{}, err
		}

		next, err := p.Pass(s.diceRoller, criteria, dicePool.ModeUntilNone)
		if err != nil {
			return dicePool.Pool{}, err
		}
		p = next
	}
	return p, nil
}

func (s *service) getRecord(ctx context.Context, poolID string) (*models.PoolRecord, error) {
	if poolID == "" {
		return nil, ErrMissingPoolID
	}

	record, err := s.poolRepo.GetPool(ctx, &poolRepo.GetPoolInput{
		PoolID: poolID,
	})
	if err != nil {
		if errors.Is(err, poolRepo.ErrPoolNotFound) {
			return nil, ErrPoolNotFound
		}
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}

	return record, nil
}

func (s *service) save(ctx context.Context, record *models.PoolRecord) error {
	err := s.poolRepo.SavePool(ctx, &poolRepo.SavePoolInput{
		Record: record,
	})
	if err != nil {
		return fmt.Errorf("failed to save pool: %w", err)
	}
	return nil
}

func evaluate(p dicePool.Pool) *Evaluation {
	return &Evaluation{
		Values:             p.Values(),
		Successes:          p.SuccessCount(),
		AutomaticSuccesses: p.AutomaticSuccessCount(),
		Botch:              p.Botch(),
	}
}

// rerollStats derives pass and reroll counts from history growth. A die leaves
// the criteria for good once it stops matching, so the die rerolled most often
// was rerolled in every pass.
func rerollStats(before, after dicePool.Pool) (passes, rerolled int) {
	for i, d := range after.Dice {
		added := len(d.History)
		if i < len(before.Dice) {
			added -= len(before.Dice[i].History)
		}
		rerolled += added
		passes = max(passes, added)
	}
	return passes, rerolled
}
