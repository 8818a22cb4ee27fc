package main

import (
	"bloodbank/src/controllers"
	"bloodbank/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func userInfoHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/profile", func(ctx *gin.Context) {
			var body types.AddUserInfoRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			info, status, err := controllers.AddUserInfo(&body, ctx.GetUint("id"))
			if err != nil {
				log.Printf("[AddUserInfo] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"data": info})
		}).
		PUT("/profile", func(ctx *gin.Context) {
			var body types.UpdateUserInfoRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			info, status, err := controllers.UpdateUserInfo(&body, ctx.GetUint("id"))
			if err != nil {
				log.Printf("[UpdateUserInfo] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"data": info})
		}).
		GET("/profile/:userId", func(ctx *gin.Context) {
			var params types.UserInfoURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			info, status, err := controllers.GetUserInfoByUserID(params.UserID)
			if err != nil {
				log.Printf("[GetUserInfoByUserID] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"data": info})
		})
	return g
}
