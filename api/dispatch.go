package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deliveryease/dispatch/worker"
)

// triggerDispatch 手动触发一轮调度（异步执行，立即返回）
// POST /v1/dispatch/run
func (server *Server) triggerDispatch(ctx *gin.Context) {
	err := server.taskDistributor.DistributeTaskDispatchPass(ctx, &worker.DispatchPassPayload{
		Reason: "manual",
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusAccepted, gin.H{"message": "dispatch pass enqueued"})
}
