package middleware

import (
	"sync"
	"time"

	"devfolio/internal/api/response"

	"github.com/gin-gonic/gin"
)

/*
IPRateLimiter 基于 IP 的滑动窗口限流器
功能：限制单个 IP 在窗口期内的请求次数，超出后返回 429。
站点有两类易被滥用的写入口：管理登录（暴力破解密码）和
访客留言（垃圾信息灌入），各挂一个独立实例、独立配额。
内置后台清理，每 5 分钟清除过期记录，防止 map 无限增长。
*/
type IPRateLimiter struct {
	attempts    map[string][]time.Time /* IP → 请求时间戳列表 */
	mu          sync.Mutex
	maxAttempts int           /* 窗口期内最大请求次数 */
	window      time.Duration /* 滑动窗口时长 */
	stopChan    chan struct{} /* 用于停止 cleanup goroutine，防止泄漏 */
}

/*
NewIPRateLimiter 创建限流器
maxAttempts: 窗口期内最大请求次数
window: 滑动窗口时长（登录/留言场景建议 5-15 分钟）
*/
func NewIPRateLimiter(maxAttempts int, window time.Duration) *IPRateLimiter {
	rl := &IPRateLimiter{
		attempts:    make(map[string][]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
		stopChan:    make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

/* Stop 停止限流器的后台清理 goroutine，防止泄漏 */
func (rl *IPRateLimiter) Stop() {
	close(rl.stopChan)
}

/*
Middleware 返回 Gin 中间件
功能：检查当前 IP 在窗口期内的请求次数，超限返回 429
*/
func (rl *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rl.mu.Lock()
		now := time.Now()
		cutoff := now.Add(-rl.window)

		/* 清除窗口外的过期记录 */
		attempts := rl.attempts[ip]
		valid := attempts[:0]
		for _, t := range attempts {
			if t.After(cutoff) {
				valid = append(valid, t)
			}
		}

		if len(valid) >= rl.maxAttempts {
			rl.attempts[ip] = valid
			rl.mu.Unlock()

			response.TooManyRequests(c, "请求过于频繁，请稍后再试")
			c.Abort()
			return
		}

		/* 记录本次请求 */
		rl.attempts[ip] = append(valid, now)
		rl.mu.Unlock()

		c.Next()
	}
}

/* cleanup 定期清理过期的限流记录 */
func (rl *IPRateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			cutoff := time.Now().Add(-rl.window)
			for ip, attempts := range rl.attempts {
				valid := attempts[:0]
				for _, t := range attempts {
					if t.After(cutoff) {
						valid = append(valid, t)
					}
				}
				if len(valid) == 0 {
					delete(rl.attempts, ip)
				} else {
					rl.attempts[ip] = valid
				}
			}
			rl.mu.Unlock()
		case <-rl.stopChan:
			return
		}
	}
}
