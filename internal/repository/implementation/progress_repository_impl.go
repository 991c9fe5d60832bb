package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/mapper"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/model"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StudyMapper
}

func NewProgressRepository(db *gorm.DB) contract.ProgressRepository {
	return &ProgressRepositoryImpl{
		db:     db,
		mapper: mapper.NewStudyMapper(),
	}
}

func (r *ProgressRepositoryImpl) FindByUserAndTopic(ctx context.Context, userId uuid.UUID, topic string) (*entity.UserProgress, error) {
	var m model.UserProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND topic = ?", userId, topic).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProgressToEntity(&m), nil
}

func (r *ProgressRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.UserProgress, error) {
	var models []*model.UserProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("last_studied DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.UserProgress, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ProgressToEntity(m)
	}
	return entities, nil
}

// Upsert applies the delta inside a transaction so concurrent checker
// dispatches do not lose increments.
func (r *ProgressRepositoryImpl) Upsert(ctx context.Context, userId uuid.UUID, topic string, delta entity.ProgressDelta) (*entity.UserProgress, error) {
	var result *entity.UserProgress

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.UserProgress
		err := tx.Where("user_id = ? AND topic = ?", userId, topic).First(&m).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			m = model.UserProgress{
				Id:                uuid.New(),
				UserId:            userId,
				Topic:             topic,
				QuestionsAnswered: delta.QuestionsAnswered,
				CorrectAnswers:    delta.CorrectAnswers,
				StudyTimeMinutes:  delta.StudyTimeMinutes,
				LastStudied:       time.Now(),
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			result = r.mapper.ProgressToEntity(&m)
			return nil
		}
		if err != nil {
			return err
		}

		m.QuestionsAnswered += delta.QuestionsAnswered
		m.CorrectAnswers += delta.CorrectAnswers
		m.StudyTimeMinutes += delta.StudyTimeMinutes
		m.LastStudied = time.Now()
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		result = r.mapper.ProgressToEntity(&m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
