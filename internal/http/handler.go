package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"task-manager-api.com/task-manager-api/internal/constants"
	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	"task-manager-api.com/task-manager-api/internal/http/validators"
	"task-manager-api.com/task-manager-api/internal/pagination"
	"task-manager-api.com/task-manager-api/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	// zeroBasedLinks makes navigation URLs carry the page value the
	// listing accepts instead of the one-based page number.
	zeroBasedLinks bool
}

func NewHandler(taskService *services.TaskService, zeroBasedLinks bool) *Handler {
	return &Handler{
		taskService:    taskService,
		zeroBasedLinks: zeroBasedLinks,
	}
}

func (h *Handler) ListTasks(rc *RequestContext) error {
	var q dto.TaskListQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(rc, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	urls := pagination.NewURLBuilder(rc.BaseURL(), rc.QueryString())
	if h.zeroBasedLinks {
		urls = urls.ZeroBased()
	}

	page, err := h.taskService.ListTasks(rc.Request().Context(), services.TaskQuery{
		Search: strings.TrimSpace(q.Search),
		Params: pagination.ParseParams(q.Page, q.PerPage),
		URLs:   urls,
	})
	if err != nil {
		return err
	}

	return rc.JSON(http.StatusOK, page)
}

func (h *Handler) CreateTask(rc *RequestContext) error {
	req, err := bindTask(rc)
	if err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(rc.Request().Context(), req.Title, req.Description)
	if err != nil {
		return err
	}

	return rc.JSON(http.StatusOK, dto.TaskEnvelope{Task: task})
}

func (h *Handler) GetTask(rc *RequestContext) error {
	id, err := taskID(rc)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(rc.Request().Context(), id)
	if err != nil {
		return err
	}

	return rc.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(rc *RequestContext) error {
	id, err := taskID(rc)
	if err != nil {
		return err
	}

	// The task must exist before the payload is looked at.
	if _, err := h.taskService.GetTask(rc.Request().Context(), id); err != nil {
		return err
	}

	req, err := bindTask(rc)
	if err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(rc.Request().Context(), id, req.Title, req.Description)
	if err != nil {
		return err
	}

	return rc.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(rc *RequestContext) error {
	id, err := taskID(rc)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(rc.Request().Context(), id); err != nil {
		return err
	}

	return rc.JSON(http.StatusOK, dto.MessageResponse{Message: constants.TaskDeletedMessage})
}

// taskID treats ids that cannot name a row as missing tasks.
func taskID(rc *RequestContext) (uint, error) {
	id, err := strconv.ParseUint(rc.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.ErrTaskNotFound
	}
	return uint(id), nil
}

func bindTask(rc *RequestContext) (*dto.TaskRequestData, error) {
	var req dto.TaskRequestData
	if err := bindBody(rc, &req); err != nil {
		return nil, err
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)

	if err := validators.Validate(&req).Err(); err != nil {
		return nil, err
	}
	return &req, nil
}

func bindBody(c echo.Context, v any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, v); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusUnsupportedMediaType {
			return httpErr
		}
		return apperrors.ErrInvalidJSON
	}
	return nil
}
