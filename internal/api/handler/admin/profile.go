package admin

import (
	"devfolio/internal/api/response"
	"devfolio/internal/db/models"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
ProfileHandler 个人资料管理处理器
*/
type ProfileHandler struct {
	app    *types.App
	logger *zap.Logger
}

func NewProfileHandler(app *types.App) *ProfileHandler {
	return &ProfileHandler{
		app:    app,
		logger: zap.L().Named("admin-profile-handler"),
	}
}

/*
Get 获取个人资料
路由：GET /api/v1/admin/profile
*/
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.app.Content.GetProfile(c.Request.Context())
	if err != nil {
		h.logger.Error("获取个人资料失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	if profile == nil {
		profile = &models.Profile{}
	}
	response.OK(c, profile)
}

/*
ProfileRequest 个人资料写入请求
*/
type ProfileRequest struct {
	Name      string `json:"name" binding:"required,max=64"`
	Headline  string `json:"headline" binding:"max=128"`
	Bio       string `json:"bio"`
	Location  string `json:"location" binding:"max=64"`
	Email     string `json:"email" binding:"omitempty,email,max=128"`
	GitHubURL string `json:"github_url" binding:"omitempty,url,max=256"`
	LinkedIn  string `json:"linkedin_url" binding:"omitempty,url,max=256"`
	Resume    string `json:"resume_url" binding:"omitempty,url,max=256"`
}

/*
Update 创建或更新个人资料
路由：PUT /api/v1/admin/profile
*/
func (h *ProfileHandler) Update(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	profile := &models.Profile{
		Name:      req.Name,
		Headline:  req.Headline,
		Bio:       req.Bio,
		Location:  req.Location,
		Email:     req.Email,
		GitHubURL: req.GitHubURL,
		LinkedIn:  req.LinkedIn,
		Resume:    req.Resume,
	}
	if err := h.app.Content.UpdateProfile(c.Request.Context(), profile); err != nil {
		h.logger.Error("保存个人资料失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, profile)
}
