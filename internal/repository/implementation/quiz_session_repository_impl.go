package implementation

import (
	"context"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/mapper"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/model"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StudyMapper
}

func NewQuizSessionRepository(db *gorm.DB) contract.QuizSessionRepository {
	return &QuizSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewStudyMapper(),
	}
}

func (r *QuizSessionRepositoryImpl) Create(ctx context.Context, session *entity.QuizSession) error {
	m := r.mapper.QuizSessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.QuizSessionToEntity(m)
	return nil
}

func (r *QuizSessionRepositoryImpl) Update(ctx context.Context, session *entity.QuizSession) error {
	m := r.mapper.QuizSessionToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.QuizSessionToEntity(m)
	return nil
}

func (r *QuizSessionRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.QuizSession, error) {
	var models []*model.QuizSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.QuizSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.QuizSessionToEntity(m)
	}
	return entities, nil
}
