package service

import (
	"context"
	"fmt"
	"time"

	"devfolio/internal/db/dao"
	"devfolio/internal/db/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

/*
UserService 管理员账户服务
功能：管理员凭据验证与密码管理。系统只存在单一管理员身份，
不提供注册入口，账户由首次启动的初始化流程创建。
*/
type UserService struct {
	dao    *dao.DAO
	logger *zap.Logger
}

/*
NewUserService 创建用户服务
*/
func NewUserService(d *dao.DAO) *UserService {
	return &UserService{
		dao:    d,
		logger: zap.L().Named("user-service"),
	}
}

/*
bcryptCost bcrypt 哈希成本因子
12 在现代硬件上约 250ms/次，登录频率极低，安全优先
*/
const bcryptCost = 12

/*
HashPassword 使用 bcrypt 对密码进行哈希
*/
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("密码哈希失败: %w", err)
	}
	return string(hashed), nil
}

/*
CheckPassword 验证密码是否匹配
*/
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

/*
Authenticate 验证管理员凭据
功能：用户名查找 → 账户状态检查 → bcrypt 密码比对 → 更新最后登录时间。
任一环节失败均返回同一错误，调用方不应向客户端透露具体失败原因。
*/
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.dao.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("用户名或密码错误")
	}
	if !user.Enabled {
		return nil, fmt.Errorf("账户已禁用")
	}
	if !CheckPassword(user.Password, password) {
		return nil, fmt.Errorf("用户名或密码错误")
	}

	if err := s.dao.UpdateUserLastLogin(ctx, user.ID); err != nil {
		/* 登录时间更新失败不阻断登录 */
		s.logger.Warn("更新最后登录时间失败", zap.String("user_id", user.ID), zap.Error(err))
	}
	user.LastLogin = time.Now()

	return user, nil
}
