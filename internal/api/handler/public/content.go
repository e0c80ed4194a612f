package public

import (
	"devfolio/internal/api/response"
	"devfolio/internal/db/models"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
ContentHandler 公开内容处理器
功能：门户站点的只读内容接口。列表查询失败时降级为空集而非 500——
访客页面宁可少一个板块，也不整页报错。
*/
type ContentHandler struct {
	app    *types.App
	logger *zap.Logger
}

func NewContentHandler(app *types.App) *ContentHandler {
	return &ContentHandler{
		app:    app,
		logger: zap.L().Named("public-content-handler"),
	}
}

/*
Profile 个人资料
路由：GET /api/v1/profile
*/
func (h *ContentHandler) Profile(c *gin.Context) {
	profile, err := h.app.Content.GetProfile(c.Request.Context())
	if err != nil {
		h.logger.Error("获取个人资料失败", zap.Error(err))
		response.OK(c, &models.Profile{})
		return
	}
	if profile == nil {
		profile = &models.Profile{}
	}
	response.OK(c, profile)
}

/*
Skills 技能列表
路由：GET /api/v1/skills
*/
func (h *ContentHandler) Skills(c *gin.Context) {
	skills, err := h.app.Content.ListSkills(c.Request.Context())
	if err != nil {
		h.logger.Error("查询技能列表失败", zap.Error(err))
		skills = []models.Skill{}
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	response.OK(c, skills)
}

/*
Projects 项目列表（featured 优先）
路由：GET /api/v1/projects
*/
func (h *ContentHandler) Projects(c *gin.Context) {
	projects, err := h.app.Content.ListProjects(c.Request.Context())
	if err != nil {
		h.logger.Error("查询项目列表失败", zap.Error(err))
		projects = []models.Project{}
	}
	if projects == nil {
		projects = []models.Project{}
	}
	response.OK(c, projects)
}

/*
ProjectBySlug 项目详情（含已发布案例）
路由：GET /api/v1/projects/:slug
*/
func (h *ContentHandler) ProjectBySlug(c *gin.Context) {
	slug := c.Param("slug")
	project, err := h.app.Content.GetProjectBySlug(c.Request.Context(), slug)
	if err != nil {
		h.logger.Error("查询项目失败", zap.String("slug", slug), zap.Error(err))
		response.InternalError(c)
		return
	}
	if project == nil {
		response.NotFound(c, "项目不存在")
		return
	}
	response.OK(c, project)
}

/*
CaseStudies 已发布案例列表
路由：GET /api/v1/case-studies
*/
func (h *ContentHandler) CaseStudies(c *gin.Context) {
	studies, err := h.app.Content.ListCaseStudies(c.Request.Context(), true)
	if err != nil {
		h.logger.Error("查询案例列表失败", zap.Error(err))
		studies = []models.CaseStudy{}
	}
	if studies == nil {
		studies = []models.CaseStudy{}
	}
	response.OK(c, studies)
}

/*
CaseStudyBySlug 已发布案例详情（含项目）
路由：GET /api/v1/case-studies/:slug
*/
func (h *ContentHandler) CaseStudyBySlug(c *gin.Context) {
	slug := c.Param("slug")
	study, err := h.app.Content.GetCaseStudyBySlug(c.Request.Context(), slug)
	if err != nil {
		h.logger.Error("查询案例失败", zap.String("slug", slug), zap.Error(err))
		response.InternalError(c)
		return
	}
	if study == nil {
		response.NotFound(c, "案例不存在")
		return
	}
	response.OK(c, study)
}

/*
Experience 工作经历时间线
路由：GET /api/v1/experience
*/
func (h *ContentHandler) Experience(c *gin.Context) {
	experiences, err := h.app.Content.ListExperiences(c.Request.Context())
	if err != nil {
		h.logger.Error("查询工作经历失败", zap.Error(err))
		experiences = []models.Experience{}
	}
	if experiences == nil {
		experiences = []models.Experience{}
	}
	response.OK(c, experiences)
}
