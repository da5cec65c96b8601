package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sahilm/fuzzy"

	"github.com/anatomypro/backend/platform/database/models"
	"github.com/anatomypro/backend/platform/database/repositories"
)

const (
	defaultQuizSize   = 10
	maxQuizSize       = 50
	sprintXPPerAnswer = 10
	maxSearchResults  = 25
)

type QuizService struct {
	quizRepo repositories.QuizRepository
	userRepo repositories.UserRepository
	users    *UserService
	missions *MissionService
}

func NewQuizService(quizRepo repositories.QuizRepository, userRepo repositories.UserRepository, users *UserService, missions *MissionService) *QuizService {
	return &QuizService{
		quizRepo: quizRepo,
		userRepo: userRepo,
		users:    users,
		missions: missions,
	}
}

func (qs *QuizService) CreateQuestion(ctx context.Context, question *models.QuizQuestion) error {
	if question.Prompt == "" {
		return fmt.Errorf("%w: prompt is required", ErrInvalidArgument)
	}
	if !models.AnatomySystem(question.AnatomySystem).Valid() {
		return fmt.Errorf("%w: unknown anatomy system %q", ErrInvalidArgument, question.AnatomySystem)
	}
	if len(question.Options) < 2 {
		return fmt.Errorf("%w: a question needs at least two options", ErrInvalidArgument)
	}
	correct := 0
	for _, opt := range question.Options {
		if opt.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("%w: exactly one option must be correct", ErrInvalidArgument)
	}
	return qs.quizRepo.CreateQuestion(ctx, question)
}

type questionSource []*models.QuizQuestion

func (s questionSource) String(i int) string { return s[i].Prompt }
func (s questionSource) Len() int            { return len(s) }

// SearchQuestions fuzzy matches the query against question prompts,
// ranked by match quality.
func (qs *QuizService) SearchQuestions(ctx context.Context, query string) ([]*models.QuizQuestion, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidArgument)
	}
	questions, err := qs.quizRepo.GetAllQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	matches := fuzzy.FindFrom(query, questionSource(questions))
	results := make([]*models.QuizQuestion, 0, len(matches))
	for i, match := range matches {
		if i >= maxSearchResults {
			break
		}
		results = append(results, questions[match.Index])
	}
	return results, nil
}

// StartSession draws a batch of questions and opens a session the answers
// will be recorded against.
func (qs *QuizService) StartSession(ctx context.Context, userID int64, mode models.QuizMode, system models.AnatomySystem, difficulty models.Difficulty, size int) (*models.QuizSession, []*models.QuizQuestion, error) {
	if !mode.Valid() {
		return nil, nil, fmt.Errorf("%w: unknown quiz mode %q", ErrInvalidArgument, mode)
	}
	if system != "" && !system.Valid() {
		return nil, nil, fmt.Errorf("%w: unknown anatomy system %q", ErrInvalidArgument, system)
	}
	if size <= 0 {
		size = defaultQuizSize
	}
	if size > maxQuizSize {
		return nil, nil, fmt.Errorf("%w: size exceeds %d", ErrInvalidArgument, maxQuizSize)
	}

	questions, err := qs.quizRepo.GetQuestions(ctx, system, difficulty, size)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to draw questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, nil, fmt.Errorf("%w: no questions available", ErrNotFound)
	}

	session := &models.QuizSession{
		UserID: userID,
		Mode:   mode,
		System: string(system),
	}
	if err := qs.quizRepo.CreateSession(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, questions, nil
}

// SubmitAnswer records one answer in an open session and reports whether
// it was correct.
func (qs *QuizService) SubmitAnswer(ctx context.Context, userID, sessionID, questionID int64, optionID *int64) (bool, error) {
	session, err := qs.session(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if session.UserID != userID {
		return false, ErrForbidden
	}
	if session.Completed {
		return false, fmt.Errorf("%w: session already finished", ErrInvalidArgument)
	}

	question, err := qs.quizRepo.GetQuestion(ctx, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to load question: %w", err)
	}

	correct := false
	if optionID != nil {
		for _, opt := range question.Options {
			if opt.ID == *optionID && opt.IsCorrect {
				correct = true
				break
			}
		}
	}

	attempt := &models.QuizAttempt{
		SessionID:        sessionID,
		QuestionID:       questionID,
		SelectedOptionID: optionID,
		IsCorrect:        correct,
	}
	if err := qs.quizRepo.CreateAttempt(ctx, attempt); err != nil {
		return false, fmt.Errorf("failed to record attempt: %w", err)
	}
	return correct, nil
}

// FinishSession closes a session, scores it from its attempts, awards XP
// per correct answer, advances the studied system, and ticks the sprint
// mission for sprint mode runs.
func (qs *QuizService) FinishSession(ctx context.Context, userID, sessionID int64, durationSeconds int) (*models.QuizSession, error) {
	session, err := qs.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}
	if session.Completed {
		return session, nil
	}

	attempts, err := qs.quizRepo.GetAttempts(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts: %w", err)
	}

	correct := 0
	for _, attempt := range attempts {
		if attempt.IsCorrect {
			correct++
		}
	}
	score := 0.0
	if len(attempts) > 0 {
		score = float64(correct) / float64(len(attempts)) * 100
	}

	session.Score = score
	session.DurationSeconds = durationSeconds
	session.Completed = true
	if err := qs.quizRepo.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to close session: %w", err)
	}

	if correct > 0 {
		if err := qs.userRepo.AddXP(ctx, userID, int64(correct*sprintXPPerAnswer)); err != nil {
			return nil, fmt.Errorf("failed to award quiz xp: %w", err)
		}
	}

	if session.System != "" {
		if _, err := qs.users.RecordSystemActivity(ctx, userID, models.AnatomySystem(session.System), float64(correct)*0.01); err != nil {
			slog.Warn("Failed to advance system progress",
				slog.Int64("user_id", userID),
				slog.String("system", session.System),
				slog.Any("error", err))
		}
	}

	if session.Mode == models.QuizModeSprint {
		qs.missions.IncrementByTitle(ctx, userID, "Realize um Sprint", 1)
	}

	slog.Info("Quiz session finished",
		slog.Int64("user_id", userID),
		slog.Int64("session_id", sessionID),
		slog.String("mode", string(session.Mode)),
		slog.Float64("score", score))
	return session, nil
}

func (qs *QuizService) session(ctx context.Context, sessionID int64) (*models.QuizSession, error) {
	session, err := qs.quizRepo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}
