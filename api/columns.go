package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/domain"
)

type createColumnRequest struct {
	Title   string `json:"title"`
	Status  string `json:"status"`
	BoardID string `json:"boardId"`
}

type updateColumnRequest struct {
	Title  *string `json:"title"`
	Status *string `json:"status"`
	Order  *int    `json:"order"`
}

func listColumns(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		columns, err := store.ListColumns(c.Request().Context(), c.QueryParam("boardId"))
		if err != nil {
			return storeFailure(c, err)
		}
		return c.JSON(http.StatusOK, ok(columns))
	}
}

func createColumn(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createColumnRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, fail("invalid body"))
		}
		col := domain.Column{
			Title:   req.Title,
			Status:  req.Status,
			BoardID: req.BoardID,
		}
		if errs := domain.ValidateNewColumn(col); len(errs) > 0 {
			return c.JSON(http.StatusBadRequest, invalid(errs))
		}
		if err := store.CreateColumn(c.Request().Context(), &col); err != nil {
			return storeFailure(c, err)
		}
		return c.JSON(http.StatusCreated, ok(col))
	}
}

func updateColumn(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req updateColumnRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, fail("invalid body"))
		}
		patch := domain.ColumnPatch{
			Title:  req.Title,
			Status: req.Status,
			Order:  req.Order,
		}
		if errs := domain.ValidateColumnPatch(patch); len(errs) > 0 {
			return c.JSON(http.StatusBadRequest, invalid(errs))
		}
		col, err := store.UpdateColumn(c.Request().Context(), c.Param("id"), patch)
		if err != nil {
			return storeFailure(c, err)
		}
		return c.JSON(http.StatusOK, ok(col))
	}
}

func deleteColumn(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.DeleteColumn(c.Request().Context(), c.Param("id")); err != nil {
			return storeFailure(c, err)
		}
		return c.JSON(http.StatusOK, ok(nil))
	}
}
