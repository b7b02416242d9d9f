package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursesearch/internal/app/controllers"
)

// SearchPath is where the course search form posts to
const SearchPath = "/SearchServlet"

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, searchController *controllers.SearchController) {
	router.POST(SearchPath, searchController.SearchCourses)

	// Liveness probe; does not touch the course store
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}
