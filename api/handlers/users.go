package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	webmodels "github.com/anatomypro/backend/api/models"
	"github.com/anatomypro/backend/api/utils"
	"github.com/anatomypro/backend/platform/database/models"
	"github.com/anatomypro/backend/platform/services"
)

// Me returns the authenticated user's profile.
func Me(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := utils.CurrentUser(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}
		return utils.SendSuccess(c, user, "")
	}
}

// UpdateMe patches the authenticated user's profile.
func UpdateMe(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}

		var req webmodels.UpdateProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		user, err := webApp.Users.UpdateProfile(c.Context(), userID, services.ProfileUpdate{
			DisplayName: req.DisplayName,
			AvatarURL:   req.AvatarURL,
			Preferences: req.Preferences,
		})
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, user, "profile updated")
	}
}

// UserDetail returns a public view of another user.
func UserDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "invalid user id", nil)
		}
		user, err := webApp.Users.Get(c.Context(), id)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, fiber.Map{
			"id":           user.ID,
			"display_name": user.DisplayName,
			"xp":           user.XP,
			"streak":       user.Streak,
			"elo_rating":   user.EloRating,
			"avatar_url":   user.AvatarURL,
		}, "")
	}
}

// SystemProgressList returns the caller's per-system completion rates.
func SystemProgressList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}
		progress, err := webApp.Users.SystemProgress(c.Context(), userID)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, progress, "")
	}
}

// RecordSystemActivity shifts one anatomy system's completion rate.
func RecordSystemActivity(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}

		var req webmodels.SystemActivityRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		progress, err := webApp.Users.RecordSystemActivity(c.Context(), userID, models.AnatomySystem(req.System), req.Delta)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, progress, "progress recorded")
	}
}

// UploadAvatar stores a profile picture and links it to the account.
func UploadAvatar(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}
		if webApp.Avatars == nil {
			return utils.SendError(c, fiber.StatusNotImplemented, "NOT_CONFIGURED", "avatar storage is not configured", nil)
		}

		fileHeader, err := c.FormFile("avatar")
		if err != nil {
			return utils.SendBadRequest(c, "avatar file is required", nil)
		}
		file, err := fileHeader.Open()
		if err != nil {
			return utils.SendBadRequest(c, "failed to read upload", nil)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return utils.SendBadRequest(c, "failed to read upload", nil)
		}

		url, err := webApp.Avatars.Upload(c.Context(), userID, fileHeader.Header.Get("Content-Type"), data)
		if err != nil {
			return utils.SendServiceError(c, err)
		}

		user, err := webApp.Users.UpdateProfile(c.Context(), userID, services.ProfileUpdate{AvatarURL: &url})
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, user, "avatar uploaded")
	}
}
