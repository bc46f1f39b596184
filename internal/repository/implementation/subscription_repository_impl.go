package implementation

import (
	"context"
	"errors"
	"time"

	"sea-catering-be/internal/entity"
	"sea-catering-be/internal/mapper"
	"sea-catering-be/internal/model"
	"sea-catering-be/internal/repository/contract"
	"sea-catering-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscription *entity.Subscription) error {
	m := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	var m model.Subscription
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	var models []*model.Subscription
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Subscription, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *SubscriptionRepositoryImpl) SetPauseWindow(ctx context.Context, id, userId uuid.UUID, from, to time.Time) (*entity.Subscription, error) {
	return r.updateOwned(ctx, id, userId, map[string]interface{}{
		"paused_from": from,
		"paused_to":   to,
	})
}

func (r *SubscriptionRepositoryImpl) ClearPauseWindow(ctx context.Context, id, userId uuid.UUID) (*entity.Subscription, error) {
	return r.updateOwned(ctx, id, userId, map[string]interface{}{
		"paused_from": nil,
		"paused_to":   nil,
	})
}

// updateOwned performs the ownership check and the write in one statement:
// UPDATE subscriptions SET ... WHERE id = ? AND user_id = ? RETURNING *.
func (r *SubscriptionRepositoryImpl) updateOwned(ctx context.Context, id, userId uuid.UUID, fields map[string]interface{}) (*entity.Subscription, error) {
	var m model.Subscription
	res := r.db.WithContext(ctx).Model(&m).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", id, userId).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) SoftDelete(ctx context.Context, id, userId uuid.UUID, at time.Time) (int64, error) {
	// Deliberately no deleted_at filter: cancelling twice refreshes the
	// timestamp and still reports success.
	res := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ? AND user_id = ?", id, userId).
		Update("deleted_at", at)
	return res.RowsAffected, res.Error
}

// Dashboard aggregates

func (r *SubscriptionRepositoryImpl) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) SumRevenueBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	return total, err
}

func (r *SubscriptionRepositoryImpl) CountReactivationsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("deleted_at IS NULL AND paused_to >= ? AND paused_to < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("deleted_at IS NULL").
		Where("paused_from IS NULL OR paused_to IS NULL OR ? NOT BETWEEN paused_from AND paused_to", now).
		Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) GetMonthlyGrowth(ctx context.Context, from, to time.Time) ([]*entity.SubscriptionGrowthPoint, error) {
	var rows []struct {
		Bucket time.Time
		Month  string
		Count  int
	}
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Select("date_trunc('month', created_at) AS bucket, to_char(date_trunc('month', created_at), 'FMMonth YYYY') AS month, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("bucket, month").
		Order("bucket ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	points := make([]*entity.SubscriptionGrowthPoint, len(rows))
	for i, row := range rows {
		points[i] = &entity.SubscriptionGrowthPoint{
			Month: row.Month,
			Count: row.Count,
		}
	}
	return points, nil
}
