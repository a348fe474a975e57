package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	db "github.com/deliveryease/dispatch/db/sqlc"
)

type listBatchesRequest struct {
	// 逗号分隔的状态过滤，缺省列出所有活跃批次
	Status []string `form:"status"`
}

// listBatches 列出批次
// GET /v1/batches?status=pending&status=assigned
func (server *Server) listBatches(ctx *gin.Context) {
	var req listBatchesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	statuses := req.Status
	if len(statuses) == 0 {
		statuses = []string{
			db.BatchStatusPending,
			db.BatchStatusReadyForDelivery,
			db.BatchStatusAssigned,
			db.BatchStatusDelivering,
		}
	}

	batches, err := server.store.ListBatchesByStatus(ctx, statuses)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, batches)
}

type batchIDUri struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type batchResponse struct {
	Batch  db.Batch   `json:"batch"`
	Orders []db.Order `json:"orders"`
}

// getBatch 查询批次和它的成员订单
// GET /v1/batches/:id
func (server *Server) getBatch(ctx *gin.Context) {
	var uri batchIDUri
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	batch, err := server.store.GetBatch(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	orders, err := server.store.ListBatchOrders(ctx, pgtype.Int8{Int64: batch.ID, Valid: true})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, batchResponse{Batch: batch, Orders: orders})
}

// getBatchRoute 查询批次的优化路线（缓存命中时直接返回，否则现算）
// GET /v1/batches/:id/route
func (server *Server) getBatchRoute(ctx *gin.Context) {
	var uri batchIDUri
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if _, err := server.store.GetBatch(ctx, uri.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	plan, err := server.planner.PlanForBatch(ctx, uri.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, plan)
}

// getBatchProgress 查询批次配送进度
// GET /v1/batches/:id/progress
func (server *Server) getBatchProgress(ctx *gin.Context) {
	var uri batchIDUri
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	batch, err := server.store.GetBatch(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	remaining, next, err := server.tracker.BatchProgress(ctx, uri.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"batch":           batch,
		"remaining_stops": remaining,
		"next_order_id":   next,
	})
}

type completeStopUri struct {
	ID      int64 `uri:"id" binding:"required,min=1"`
	OrderID int64 `uri:"order_id" binding:"required,min=1"`
}

type completeStopRequest struct {
	DriverID int64 `json:"driver_id" binding:"required,min=1"`
}

// completeStop 司机上报一个站点送达
// POST /v1/batches/:id/stops/:order_id/complete
func (server *Server) completeStop(ctx *gin.Context) {
	var uri completeStopUri
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	var req completeStopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.tracker.CompleteStop(ctx, uri.ID, uri.OrderID, req.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrNotAssignedDriver):
			ctx.JSON(http.StatusForbidden, errorResponse(err))
		case errors.Is(err, db.ErrOrderNotInBatch):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		case errors.Is(err, pgx.ErrNoRows):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	stopsCompletedTotal.Inc()
	ctx.JSON(http.StatusOK, result)
}
