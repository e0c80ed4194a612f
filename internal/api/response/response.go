/*
Package response API 响应辅助

统一 JSON 响应形状：
  - 成功：直接返回资源本体（对象或数组）
  - 分页：{"items": [...], "pagination": {"page","limit","total","pages"}}
  - 错误：{"error": "<message>"}，HTTP 状态码表达错误类别
*/
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

/*
Pagination 分页元信息
*/
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

/* PagedBody 分页响应体 */
type PagedBody struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

/* OK 200 返回资源本体 */
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

/* Created 201 返回新建的资源 */
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

/* NoContent 204 无响应体 */
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

/*
Paged 200 分页响应
功能：items 为 nil 时归一化为空数组，客户端无需判空；
pages 为向上取整的总页数，total 为 0 时 pages 为 0。
*/
func Paged(c *gin.Context, items interface{}, page, limit int, total int64) {
	pages := 0
	if limit > 0 && total > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	if items == nil {
		items = []interface{}{}
	}
	c.JSON(http.StatusOK, PagedBody{
		Items: items,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	})
}

/* BadRequest 400 请求参数错误 */
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Bad Request"
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

/*
Unauthorized 401 未认证
响应体固定为 {"error":"Unauthorized"}，不透露凭据被拒绝的具体原因
*/
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

/* Forbidden 403 已认证但无权限 */
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
}

/* NotFound 404 资源不存在 */
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not Found"
	}
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

/* TooManyRequests 429 触发限流 */
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "Too Many Requests"
	}
	c.JSON(http.StatusTooManyRequests, gin.H{"error": message})
}

/*
InternalError 500 服务端错误
功能：对外只暴露笼统消息，具体错误由调用方记入日志
*/
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}
