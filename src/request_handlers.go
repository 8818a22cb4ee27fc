package main

import (
	"bloodbank/src/controllers"
	"bloodbank/src/middlewares"
	"bloodbank/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func requestHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/requests", func(ctx *gin.Context) {
			var body types.CreateBloodRequestRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			request, status, err := controllers.SubmitRequest(&body, ctx.GetUint("id"))
			if err != nil {
				log.Printf("[SubmitRequest] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"data": request})
		}).
		POST("/requests/status", func(ctx *gin.Context) {
			requests, status, err := controllers.GetOwnRequests(ctx.GetUint("id"))
			if err != nil {
				log.Printf("[GetOwnRequests] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": requests, "count": len(requests)})
		}).
		GET("/requests", middlewares.AdminOnly, func(ctx *gin.Context) {
			requests, status, err := controllers.GetAllRequests()
			if err != nil {
				log.Printf("[GetAllRequests] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": requests, "count": len(requests)})
		})
	return g
}
