package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/domain"
)

type createBoardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateBoardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// boardDetail is the GET /api/boards/:id payload: the board with its
// tasks and stored columns, plus the derived display column set so
// clients have a server-side reference for their own merge.
type boardDetail struct {
	domain.Board
	EffectiveColumns []domain.EffectiveColumn `json:"effectiveColumns"`
}

func listBoards(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		boards, err := store.ListBoards(c.Request().Context())
		if err != nil {
			return storeFailure(c, err)
		}
		return c.JSON(http.StatusOK, ok(boards))
	}
}

func getBoard(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		board, err := store.GetBoardDetail(c.Request().Context(), c.Param("id"))
		if err != nil {
			return storeFailure(c, err)
		}
		detail := boardDetail{
			Board:            *board,
			EffectiveColumns: domain.EffectiveColumns(board.Columns),
		}
		return c.JSON(http.StatusOK, ok(detail))
	}
}

func createBoard(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createBoardRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, fail("invalid body"))
		}
		board := domain.Board{Title: req.Title, Description: req.Description}
		if errs := domain.ValidateNewBoard(board); len(errs) > 0 {
			return c.JSON(http.StatusBadRequest, invalid(errs))
		}
		if err := store.CreateBoard(c.Request().Context(), &board); err != nil {
			return storeFailure(c, err)
		}
		return c.JSON(http.StatusCreated, ok(board))
	}
}

func updateBoard(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req updateBoardRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, fail("invalid body"))
		}
		patch := domain.BoardPatch{Title: req.Title, Description: req.Description}
		if errs := domain.ValidateBoardPatch(patch); len(errs) > 0 {
			return c.JSON(http.StatusBadRequest, invalid(errs))
		}
		board, err := store.UpdateBoard(c.Request().Context(), c.Param("id"), patch)
		if err != nil {
			return storeFailure(c, err)
		}
		return c.JSON(http.StatusOK, ok(board))
	}
}

func deleteBoard(store Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.DeleteBoard(c.Request().Context(), c.Param("id")); err != nil {
			return storeFailure(c, err)
		}
		return c.JSON(http.StatusOK, ok(nil))
	}
}
