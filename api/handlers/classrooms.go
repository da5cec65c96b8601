package handlers

import (
	"github.com/gofiber/fiber/v2"

	webmodels "github.com/anatomypro/backend/api/models"
	"github.com/anatomypro/backend/api/utils"
)

// ClassroomCreate opens a classroom. Staff only.
func ClassroomCreate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := utils.CurrentUser(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}

		var req webmodels.CreateClassroomRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		classroom, err := webApp.Classrooms.Create(c.Context(), user, req.Name, req.OrganizationID)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendCreated(c, classroom, "classroom created")
	}
}

// ClassroomJoin enrolls the caller via invite code.
func ClassroomJoin(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}

		var req webmodels.JoinClassroomRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "invalid request body", nil)
		}

		classroom, err := webApp.Classrooms.Join(c.Context(), userID, req.InviteCode)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, classroom, "joined classroom")
	}
}

// ClassroomLeave removes the caller from a classroom.
func ClassroomLeave(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}
		classroomID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "invalid classroom id", nil)
		}

		if err := webApp.Classrooms.Leave(c.Context(), userID, classroomID); err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendNoContent(c)
	}
}

// ClassroomList returns the caller's classrooms.
func ClassroomList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}
		classrooms, err := webApp.Classrooms.ForUser(c.Context(), userID)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, classrooms, "")
	}
}

// ClassroomMembers returns the roster of one classroom.
func ClassroomMembers(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "not authenticated")
		}
		classroomID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "invalid classroom id", nil)
		}

		members, err := webApp.Classrooms.Members(c.Context(), userID, classroomID)
		if err != nil {
			return utils.SendServiceError(c, err)
		}
		return utils.SendSuccess(c, members, "")
	}
}
