package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, store Store) {
	e.GET("/api/boards", listBoards(store))
	e.GET("/api/boards/:id", getBoard(store))
	e.POST("/api/boards", createBoard(store))
	e.PUT("/api/boards/:id", updateBoard(store))
	e.DELETE("/api/boards/:id", deleteBoard(store))

	e.GET("/api/tasks", listTasks(store))
	e.POST("/api/tasks", createTask(store))
	e.PUT("/api/tasks/:id", updateTask(store))
	e.DELETE("/api/tasks/:id", deleteTask(store))

	e.GET("/api/columns", listColumns(store))
	e.POST("/api/columns", createColumn(store))
	e.PUT("/api/columns/:id", updateColumn(store))
	e.DELETE("/api/columns/:id", deleteColumn(store))

	e.GET("/healthz", healthz(store))
}

func healthz(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.Ping(c.Request().Context()); err != nil {
			c.Logger().Error(err)
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	}
}

// decodeBody reads a size-limited JSON body, rejecting unknown fields.
func decodeBody(c echo.Context, v any) error {
	lr := io.LimitReader(c.Request().Body, requestBodyMaxSize)
	dec := sonic.ConfigStd.NewDecoder(lr)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// storeFailure converts a store error into the matching envelope
// response. Internal failures are logged and reported opaquely so store
// detail never leaks to the caller.
func storeFailure(c echo.Context, err error) error {
	var nf NotFoundError
	if errors.As(err, &nf) {
		return c.JSON(http.StatusNotFound, fail(nf.Error()))
	}
	var pc ProtectedColumnError
	if errors.As(err, &pc) {
		return c.JSON(http.StatusBadRequest, fail(pc.Error()))
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, fail("internal error"))
}
