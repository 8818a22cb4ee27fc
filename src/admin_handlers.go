package main

import (
	"bloodbank/src/controllers"
	"bloodbank/src/middlewares"
	"bloodbank/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func adminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/requests/decide", func(ctx *gin.Context) {
			var body types.DecideRequestRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			requestId, err := uuid.Parse(body.RequestID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if body.UserID != ctx.GetUint("id") {
				ctx.JSON(http.StatusForbidden, gin.H{"error": controllers.ErrNotRequestOwner.Error()})
				return
			}
			result, status, err := controllers.DecideRequest(requestId, ctx.GetUint("id"), *body.IsAccepted)
			if err != nil {
				log.Printf("[DecideRequest] error: %s\n", err.Error())
				if result != nil {
					// accepted but notification incomplete
					ctx.JSON(status, gin.H{"data": result, "error": err.Error()})
					return
				}
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"data": result})
		}).
		POST("/requests/approve", func(ctx *gin.Context) {
			var body types.ApproveRequestRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			requestId, err := uuid.Parse(body.RequestID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if body.UserID != ctx.GetUint("id") {
				ctx.JSON(http.StatusForbidden, gin.H{"error": controllers.ErrNotRequestOwner.Error()})
				return
			}
			request, status, err := controllers.ApproveRequest(requestId, ctx.GetUint("id"))
			if err != nil {
				log.Printf("[ApproveRequest] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"data": request})
		}).
		POST("/users", middlewares.AdminOnly, func(ctx *gin.Context) {
			users, status, err := controllers.GetAllUsers()
			if err != nil {
				log.Printf("[GetAllUsers] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": users, "count": len(users)})
		}).
		PATCH("/users/role", middlewares.AdminOnly, func(ctx *gin.Context) {
			var body types.ChangeRoleRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			user, status, err := controllers.ChangeRole(body.UserID, body.Role)
			if err != nil {
				log.Printf("[ChangeRole] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"data": user})
		})
	return g
}
