package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

func insightsCacheKey(userID string) string {
	return "insights:" + userID
}

func GetInsights(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		sessions, err := app.SessionRepo().ListSessions(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch sessions for insights")
			return
		}

		ins := app.Insights().Insights(c.Request.Context(), insightsCacheKey(user.ID), sessions)
		HandleSuccess(c, app.Logger(), ins, map[string]any{
			"sessions_analyzed": ins.DataRange.SessionsAnalyzed,
			"data_quality":      ins.DataQuality,
		})
	}
}

func DeleteInsightsCache(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)
		app.Insights().ClearCache(c.Request.Context(), insightsCacheKey(user.ID))
		HandleSuccess(c, app.Logger(), nil, map[string]any{"cleared": true})
	}
}
