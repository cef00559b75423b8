package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/domain"
)

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	BoardID     string `json:"boardId"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

func listTasks(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		tasks, err := store.ListTasks(c.Request().Context(), c.QueryParam("boardId"), c.QueryParam("status"))
		if err != nil {
			return storeFailure(c, err)
		}
		return c.JSON(http.StatusOK, ok(tasks))
	}
}

func createTask(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createTaskRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, fail("invalid body"))
		}
		task := domain.Task{
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
			Priority:    domain.Priority(req.Priority),
			BoardID:     req.BoardID,
		}
		if errs := domain.ValidateNewTask(task); len(errs) > 0 {
			return c.JSON(http.StatusBadRequest, invalid(errs))
		}
		if err := store.CreateTask(c.Request().Context(), &task); err != nil {
			return storeFailure(c, err)
		}
		return c.JSON(http.StatusCreated, ok(task))
	}
}

func updateTask(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req updateTaskRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, fail("invalid body"))
		}
		patch := domain.TaskPatch{
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
		}
		if req.Priority != nil {
			p := domain.Priority(*req.Priority)
			patch.Priority = &p
		}
		if errs := domain.ValidateTaskPatch(patch); len(errs) > 0 {
			return c.JSON(http.StatusBadRequest, invalid(errs))
		}
		task, err := store.UpdateTask(c.Request().Context(), c.Param("id"), patch)
		if err != nil {
			return storeFailure(c, err)
		}
		return c.JSON(http.StatusOK, ok(task))
	}
}

func deleteTask(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
			return storeFailure(c, err)
		}
		return c.JSON(http.StatusOK, ok(nil))
	}
}
