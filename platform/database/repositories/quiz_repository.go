package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/anatomypro/backend/platform/database/models"
)

type QuizRepository interface {
	CreateQuestion(ctx context.Context, question *models.QuizQuestion) error
	GetQuestion(ctx context.Context, id int64) (*models.QuizQuestion, error)
	GetQuestions(ctx context.Context, system models.AnatomySystem, difficulty models.Difficulty, limit int) ([]*models.QuizQuestion, error)
	GetAllQuestions(ctx context.Context) ([]*models.QuizQuestion, error)
	CreateSession(ctx context.Context, session *models.QuizSession) error
	GetSession(ctx context.Context, id int64) (*models.QuizSession, error)
	UpdateSession(ctx context.Context, session *models.QuizSession) error
	CreateAttempt(ctx context.Context, attempt *models.QuizAttempt) error
	GetAttempts(ctx context.Context, sessionID int64) ([]*models.QuizAttempt, error)
}

type quizRepository struct {
	db *bun.DB
}

func NewQuizRepository(db *bun.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) CreateQuestion(ctx context.Context, question *models.QuizQuestion) error {
	question.CreatedAt = time.Now()
	question.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(question).Exec(ctx)
	if err != nil {
		return err
	}
	for _, opt := range question.Options {
		opt.QuestionID = question.ID
		opt.CreatedAt = question.CreatedAt
	}
	if len(question.Options) > 0 {
		_, err = r.db.NewInsert().Model(&question.Options).Exec(ctx)
	}
	return err
}

func (r *quizRepository) GetQuestion(ctx context.Context, id int64) (*models.QuizQuestion, error) {
	question := new(models.QuizQuestion)
	err := r.db.NewSelect().
		Model(question).
		Relation("Options").
		Where("qq.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return question, nil
}

func (r *quizRepository) GetQuestions(ctx context.Context, system models.AnatomySystem, difficulty models.Difficulty, limit int) ([]*models.QuizQuestion, error) {
	var questions []*models.QuizQuestion
	q := r.db.NewSelect().
		Model(&questions).
		Relation("Options")
	if system != "" {
		q = q.Where("qq.anatomy_system = ?", system)
	}
	if difficulty != "" {
		q = q.Where("qq.difficulty = ?", difficulty)
	}
	err := q.OrderExpr("random()").
		Limit(limit).
		Scan(ctx)
	return questions, err
}

func (r *quizRepository) GetAllQuestions(ctx context.Context) ([]*models.QuizQuestion, error) {
	var questions []*models.QuizQuestion
	err := r.db.NewSelect().
		Model(&questions).
		Order("id ASC").
		Scan(ctx)
	return questions, err
}

func (r *quizRepository) CreateSession(ctx context.Context, session *models.QuizSession) error {
	session.CreatedAt = time.Now()
	session.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(session).Exec(ctx)
	return err
}

func (r *quizRepository) GetSession(ctx context.Context, id int64) (*models.QuizSession, error) {
	session := new(models.QuizSession)
	err := r.db.NewSelect().
		Model(session).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (r *quizRepository) UpdateSession(ctx context.Context, session *models.QuizSession) error {
	session.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(session).
		WherePK().
		Exec(ctx)
	return err
}

func (r *quizRepository) CreateAttempt(ctx context.Context, attempt *models.QuizAttempt) error {
	attempt.CreatedAt = time.Now()
	_, err := r.db.NewInsert().Model(attempt).Exec(ctx)
	return err
}

func (r *quizRepository) GetAttempts(ctx context.Context, sessionID int64) ([]*models.QuizAttempt, error) {
	var attempts []*models.QuizAttempt
	err := r.db.NewSelect().
		Model(&attempts).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Scan(ctx)
	return attempts, err
}
