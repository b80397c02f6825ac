package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"alpinepulse/internal/api/controllers"
)

// RegisterRoutes wires the planner and catalog endpoints under /api.
func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	catalogController *controllers.CatalogController) {

	apiGroup := r.Group("/api")

	apiGroup.GET("/cities", catalogController.ListCities)
	apiGroup.GET("/attractions", catalogController.ListAttractions)
	apiGroup.GET("/themes", catalogController.ListThemes)

	sessions := apiGroup.Group("/planner/session")
	sessions.POST("", plannerController.OpenSession)
	sessions.GET("/:id", plannerController.GetState)
	sessions.DELETE("/:id", plannerController.ResetSession)
	sessions.PUT("/:id/trip", plannerController.UpdateTrip)
	sessions.POST("/:id/ranks/move", plannerController.MoveRank)
	sessions.POST("/:id/ranks/reorder", plannerController.ReorderRank)
	sessions.POST("/:id/balanced", plannerController.ToggleBalanced)
	sessions.PUT("/:id/weights/:theme", plannerController.SetWeight)
	sessions.POST("/:id/mustvisit/next", plannerController.NextCandidate)
	sessions.POST("/:id/mustvisit/prev", plannerController.PrevCandidate)
	sessions.POST("/:id/mustvisit/add", plannerController.AddMustVisit)
	sessions.POST("/:id/mustvisit/remove", plannerController.RemoveMustVisit)
	sessions.POST("/:id/mustvisit/finish", plannerController.FinishSelection)
	sessions.POST("/:id/mustvisit/reopen", plannerController.ReopenSelection)
	sessions.POST("/:id/mustvisit/reset", plannerController.ResetCandidates)
	sessions.POST("/:id/submit", plannerController.Submit)
	sessions.GET("/:id/plan", plannerController.GetPlan)
}

// RegisterSPA serves the built frontend and forwards any route that is not
// an API call or a static asset to index.html, so deep links into planner
// sub-routes land in the client-side router.
func RegisterSPA(r *gin.Engine, distDir string) {
	r.Static("/assets", filepath.Join(distDir, "assets"))
	r.Static("/images", filepath.Join(distDir, "images"))
	r.StaticFile("/favicon.ico", filepath.Join(distDir, "favicon.ico"))

	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/assets/") || strings.HasPrefix(path, "/images/") {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(filepath.Join(distDir, "index.html"))
	})
}
