package handler

import (
	"github.com/gofiber/fiber/v2"

	"studyaid/internal/model"
	"studyaid/internal/service"
)

// ListReminders godoc
// @Summary List reminders
// @Tags reminders
// @Produce json
// @Success 200 {array} model.Reminder
// @Router /api/reminders [get]
func ListReminders(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.ListReminders(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(list)
	}
}

// CreateReminder godoc
// @Summary Create a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param body body model.ReminderInput true "Reminder"
// @Success 201 {object} model.Reminder
// @Failure 400 {object} errorPayload
// @Router /api/reminders [post]
func CreateReminder(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ReminderInput
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
		r, err := svc.CreateReminder(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(r)
	}
}

// UpdateReminder godoc
// @Summary Update some fields of a reminder
// @Description Fields omitted from the body are left unchanged.
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path int true "Reminder ID"
// @Param body body model.ReminderPatch true "Fields to change"
// @Success 200 {object} model.Reminder
// @Failure 404 {object} errorPayload
// @Router /api/reminders/{id} [put]
func UpdateReminder(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var patch model.ReminderPatch
		if ok, err := parseBody(c, &patch); !ok {
			return err
		}
		r, err := svc.UpdateReminder(c.UserContext(), id, patch)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(r)
	}
}

// DeleteReminder godoc
// @Summary Delete a reminder
// @Tags reminders
// @Param id path int true "Reminder ID"
// @Success 204
// @Router /api/reminders/{id} [delete]
func DeleteReminder(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.DeleteReminder(c.UserContext(), id); err != nil {
			return respondServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DashboardStats godoc
// @Summary Dashboard counters
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.DashboardStats
// @Router /api/dashboard/stats [get]
func DashboardStats(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.DashboardStats(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(stats)
	}
}
