package handlers

import (
	"github.com/gofiber/fiber/v2"

	webmodels "github.com/anatomypro/backend/api/models"
	"github.com/anatomypro/backend/api/utils"
	"github.com/anatomypro/backend/platform/database/models"
)

// QuestionCreate adds a quiz question with its options. Staff only.
func QuestionCreate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.CreateQuestionRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		question := &models.QuizQuestion{
			Prompt:        req.Prompt,
			AnatomySystem: req.AnatomySystem,
			Difficulty:    models.Difficulty(req.Difficulty),
		}
		if question.Difficulty == "" {
			question.Difficulty = models.DifficultyMedium
		}
		for _, opt := range req.Options {
			question.Options = append(question.Options, &models.QuizOption{
				Label:     opt.Label,
				IsCorrect: opt.IsCorrect,
			})
		}

		if err := webApp.Quizzes.CreateQuestion(c.Context(), question); err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendCreated(c, question, "question created")
	}
}

// QuestionSearch fuzzy matches questions by prompt.
func QuestionSearch(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		results, err := webApp.Quizzes.SearchQuestions(c.Context(), c.Query("q"))
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, results, "")
	}
}

// QuizStart opens a session and returns its question batch.
func QuizStart(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}

		var req webmodels.StartQuizRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		session, questions, err := webApp.Quizzes.StartSession(
			c.Context(),
			userID,
			models.QuizMode(req.Mode),
			models.AnatomySystem(req.System),
			models.Difficulty(req.Difficulty),
			req.Size,
		)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendCreated(c, fiber.Map{
			"session":   session,
			"questions": questions,
		}, "session started")
	}
}

// QuizAnswer records one answer in a session.
func QuizAnswer(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}
		sessionID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "invalid session id", nil)
		}

		var req webmodels.SubmitAnswerRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		correct, err := webApp.Quizzes.SubmitAnswer(c.Context(), userID, sessionID, req.QuestionID, req.OptionID)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, fiber.Map{"correct": correct}, "answer recorded")
	}
}

// QuizFinish closes a session and scores it.
func QuizFinish(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}
		sessionID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "invalid session id", nil)
		}

		var req webmodels.FinishQuizRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		session, err := webApp.Quizzes.FinishSession(c.Context(), userID, sessionID, req.DurationSeconds)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, session, "session finished")
	}
}
