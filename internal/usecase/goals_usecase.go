package usecase

import (
	"context"
	"errors"

	"preventa/internal/domain/entities"
	"preventa/internal/domain/pricing"
	"preventa/internal/usecase/interfaces"
)

var ErrNoGoals = errors.New("no goals report downloaded")

type IGoalsUseCase interface {
	History(ctx context.Context) ([]entities.Goal, error)
	Latest(ctx context.Context) (entities.Goal, error)
}

type GoalsUseCase struct {
	storage interfaces.IStorage
}

var _ IGoalsUseCase = (*GoalsUseCase)(nil)

func NewGoalsUseCase(storage interfaces.IStorage) *GoalsUseCase {
	return &GoalsUseCase{storage: storage}
}

// History returns every goal row in download order. Rows that are not objects
// are skipped; amounts go through the price normalizer.
func (u *GoalsUseCase) History(ctx context.Context) ([]entities.Goal, error) {
	rows, err := loadRawRows(ctx, u.storage, KeyGoals)
	if err != nil {
		return nil, err
	}
	goals := make([]entities.Goal, 0, len(rows))
	for _, raw := range rows {
		row, ok := raw.(map[string]any)
		if !ok || len(row) == 0 {
			continue
		}
		goals = append(goals, entities.Goal{
			Date:       stringField(row, "fecha", "Fecha"),
			Target:     pricing.ParsePrice(row["meta"]),
			Sold:       pricing.ParsePrice(row["venta"]),
			Remaining:  pricing.ParsePrice(row["falta"]),
			Projection: pricing.ParsePrice(row["proyeccion"]),
		})
	}
	return goals, nil
}

// Latest is the last row of the report, which the backend appends in
// chronological order.
func (u *GoalsUseCase) Latest(ctx context.Context) (entities.Goal, error) {
	goals, err := u.History(ctx)
	if err != nil {
		return entities.Goal{}, err
	}
	if len(goals) == 0 {
		return entities.Goal{}, ErrNoGoals
	}
	return goals[len(goals)-1], nil
}
