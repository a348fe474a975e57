package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"

	db "github.com/deliveryease/dispatch/db/sqlc"
	"github.com/deliveryease/dispatch/worker"
)

type createOrderRequest struct {
	Recipient  string   `json:"recipient" binding:"required"`
	Locality   string   `json:"locality" binding:"required"`
	WeightKg   float64  `json:"weight_kg" binding:"required,gt=0"`
	ValueCents int64    `json:"value_cents" binding:"min=0"`
	Latitude   *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude  *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

// createOrder 创建订单（待审核状态）
// POST /v1/orders
func (server *Server) createOrder(ctx *gin.Context) {
	var req createOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.CreateOrderParams{
		Recipient:      req.Recipient,
		Locality:       req.Locality,
		WeightKg:       req.WeightKg,
		ValueCents:     req.ValueCents,
		ApprovalStatus: db.OrderApprovalPending,
	}
	if req.Latitude != nil && req.Longitude != nil {
		arg.Latitude = pgtype.Float8{Float64: *req.Latitude, Valid: true}
		arg.Longitude = pgtype.Float8{Float64: *req.Longitude, Valid: true}
	}

	order, err := server.store.CreateOrder(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ordersCreatedTotal.Inc()
	ctx.JSON(http.StatusCreated, order)
}

type orderIDUri struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getOrder 查询订单
// GET /v1/orders/:id
func (server *Server) getOrder(ctx *gin.Context) {
	var uri orderIDUri
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	order, err := server.store.GetOrder(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// approveOrder 审核通过订单，并立即触发一轮调度把它装入批次
// POST /v1/orders/:id/approve
func (server *Server) approveOrder(ctx *gin.Context) {
	var uri orderIDUri
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	order, err := server.store.GetOrder(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if order.ApprovalStatus == db.OrderApprovalApproved {
		ctx.JSON(http.StatusOK, order)
		return
	}
	if order.ApprovalStatus == db.OrderApprovalRejected {
		ctx.JSON(http.StatusConflict, errorResponse(fmt.Errorf("order %d is rejected", order.ID)))
		return
	}

	order, err = server.store.UpdateOrderApproval(ctx, db.UpdateOrderApprovalParams{
		ID:             uri.ID,
		ApprovalStatus: db.OrderApprovalApproved,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// 审核通过即触发调度，不等下一个周期；入队失败不影响审核结果
	err = server.taskDistributor.DistributeTaskDispatchPass(ctx, &worker.DispatchPassPayload{
		Reason: "order_approved",
	})
	if err != nil {
		log.Error().Err(err).Int64("order_id", order.ID).Msg("failed to enqueue dispatch pass")
	}

	ctx.JSON(http.StatusOK, order)
}
