// Package router provides group module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/mkravchenko/groupdir/internal/config"
	contentRepository "github.com/mkravchenko/groupdir/internal/content/repository"
	"github.com/mkravchenko/groupdir/internal/group/handler"
	"github.com/mkravchenko/groupdir/internal/group/repository"
	"github.com/mkravchenko/groupdir/internal/group/service"
	userRepository "github.com/mkravchenko/groupdir/internal/user/repository"
)

// RegisterRoutes registers group directory routes. The same handlers are
// mounted twice: the /api mounts resolve non-canonical slugs in place
// instead of redirecting.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, directory appConfig.DirectoryConfig, logger *zap.SugaredLogger) {
	groups := repository.New(db)
	users := userRepository.New(db)
	content := contentRepository.New(db)
	svc := service.New(groups, users, content, directory, logger)
	h := handler.New(svc, logger)

	r.GET("/groups", h.ListGroups)
	r.GET("/groups/:slug", h.GetGroupDetails)
	r.GET("/groups/:slug/members", h.GetGroupMembers)

	api := r.Group("/api")
	api.GET("/groups", h.ListGroups)
	api.GET("/groups/:slug", h.GetGroupDetailsAPI)
	api.GET("/groups/:slug/members", h.GetGroupMembers)
}
