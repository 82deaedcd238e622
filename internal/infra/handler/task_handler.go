package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tasks-management/reminder-engine/internal/app"
)

type TaskHandler struct {
	useCase app.TaskUseCase
}

func NewTaskHandler(useCase app.TaskUseCase) *TaskHandler {
	return &TaskHandler{
		useCase: useCase,
	}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	slog.Info("handling create task request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Field:   "",
		})

		return
	}

	input := app.CreateTaskInput{
		Title:             req.Title,
		Description:       req.Description,
		ListType:          req.ListType,
		DueDate:           req.DueDate,
		SpecificDayOfWeek: req.SpecificDayOfWeek,
	}

	output, err := h.useCase.CreateTask(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.Info("task created successfully",
		"task_id", output.ID,
	)
	c.JSON(http.StatusCreated, FromDTO(output))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id := c.Param("id")

	output, err := h.useCase.GetTask(c.Request.Context(), app.GetTaskInput{ID: id})
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDTO(output))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling delete task request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"task_id", id,
	)

	if err := h.useCase.DeleteTask(c.Request.Context(), app.DeleteTaskInput{ID: id}); err != nil {
		h.handleError(c, err)

		return
	}

	slog.Info("task deleted successfully",
		"task_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) GetTasksDue(c *gin.Context) {
	slog.Info("handling get tasks due request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	date, ok := h.bindDate(c)
	if !ok {
		return
	}

	output, err := h.useCase.GetTasksByDate(c.Request.Context(), app.GetTasksByDateInput{Date: date})
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.Info("due tasks retrieved successfully",
		"date", date.Format("2006-01-02"),
		"count", output.Count,
	)
	c.JSON(http.StatusOK, FromDTOs(output))
}

func (h *TaskHandler) GetTasksRemindersFiring(c *gin.Context) {
	slog.Info("handling get firing reminders request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	date, ok := h.bindDate(c)
	if !ok {
		return
	}

	output, err := h.useCase.GetTasksWithReminders(c.Request.Context(), app.GetTasksWithRemindersInput{Date: date})
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.Info("firing reminder tasks retrieved successfully",
		"date", date.Format("2006-01-02"),
		"count", output.Count,
	)
	c.JSON(http.StatusOK, FromDTOs(output))
}

func (h *TaskHandler) GetTaskReminders(c *gin.Context) {
	id := c.Param("id")

	var req GetTaskRemindersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Field:   "",
		})

		return
	}

	output, err := h.useCase.GetTaskReminders(c.Request.Context(), app.GetTaskRemindersInput{
		TaskID:        id,
		Use24HourTime: req.Use24Hour(),
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromReminderDTOs(output))
}

func (h *TaskHandler) UpdateTaskReminders(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling update task reminders request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"task_id", id,
	)

	var req UpdateTaskRemindersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Field:   "",
		})

		return
	}

	reminders := make([]app.ReminderInput, 0, len(req.Reminders))
	for _, r := range req.Reminders {
		reminders = append(reminders, app.ReminderInput{
			ID:           r.ID,
			Timeframe:    r.Timeframe,
			Time:         r.Time,
			SpecificDate: r.SpecificDate,
			CustomDate:   r.CustomDate,
			DayOfWeek:    r.DayOfWeek,
			DaysBefore:   r.DaysBefore,
			HasAlarm:     r.HasAlarm,
			Location:     r.Location,
		})
	}

	output, err := h.useCase.UpdateTaskReminders(c.Request.Context(), app.UpdateTaskRemindersInput{
		TaskID:    id,
		Reminders: reminders,
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.Info("task reminders updated successfully",
		"task_id", id,
		"count", output.Count,
	)
	c.JSON(http.StatusOK, FromReminderDTOs(output))
}

func (h *TaskHandler) bindDate(c *gin.Context) (time.Time, bool) {
	var req DateQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.Warn("request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Field:   "date",
		})

		return time.Time{}, false
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Field:   "date",
		})

		return time.Time{}, false
	}

	return date, true
}

func (h *TaskHandler) handleError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})

		return
	}

	if errors.Is(err, app.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "resource not found",
			Field:   "",
		})

		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
		Field:   "",
	})
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("/due", h.GetTasksDue)
		tasks.GET("/reminders/firing", h.GetTasksRemindersFiring)
		tasks.GET("/:id", h.GetTask)
		tasks.DELETE("/:id", h.DeleteTask)
		tasks.GET("/:id/reminders", h.GetTaskReminders)
		tasks.PUT("/:id/reminders", h.UpdateTaskReminders)
	}
}
