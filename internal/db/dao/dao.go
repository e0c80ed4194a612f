package dao

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

/*
DAO 统一 GORM 数据访问对象
功能：所有数据库操作的唯一入口，handler 通过服务层间接访问。
全部方法接收 context.Context，请求取消时中止进行中的查询，
避免发起方已离开后仍占用数据库连接。
*/
type DAO struct {
	DB     *gorm.DB
	logger *zap.Logger
}

/*
New 创建 DAO 实例
*/
func New(db *gorm.DB) *DAO {
	return &DAO{
		DB:     db,
		logger: zap.L().Named("dao"),
	}
}

/*
SanitizePagination 校正分页参数
功能：防止负值、零值和超大值导致的异常查询。
limit 范围 [1, maxLimit]，page 最小为 1。
*/
func SanitizePagination(page, limit, maxLimit int) (int, int) {
	if maxLimit <= 0 {
		maxLimit = 100
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	} else if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

/*
Transaction 在事务中执行多个数据库操作
功能：自动提交成功的事务，自动回滚失败的事务。
fn 内通过 txDAO 执行的所有操作共享同一事务。
*/
func (d *DAO) Transaction(fn func(txDAO *DAO) error) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		txDAO := &DAO{
			DB:     tx,
			logger: d.logger,
		}
		return fn(txDAO)
	})
}

/* ctxDB 返回绑定请求上下文的查询句柄 */
func (d *DAO) ctxDB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return d.DB
	}
	return d.DB.WithContext(ctx)
}
