package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type createDriverRequest struct {
	Name string `json:"name" binding:"required"`
}

// createDriver 录入司机
// POST /v1/drivers
func (server *Server) createDriver(ctx *gin.Context) {
	var req createDriverRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	driver, err := server.store.CreateDriver(ctx, req.Name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, driver)
}

type driverIDUri struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getDriver 查询司机
// GET /v1/drivers/:id
func (server *Server) getDriver(ctx *gin.Context) {
	var uri driverIDUri
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	driver, err := server.store.GetDriver(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, driver)
}
