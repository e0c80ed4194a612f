package service

import (
	"sync"
	"testing"

	"devfolio/internal/db"
)

/*
TestJWTManagerConfiguredSecret 测试配置密钥优先使用，不安全默认值被忽略
*/
func TestJWTManagerConfiguredSecret(t *testing.T) {
	m := NewJWTManager(&db.Manager{}, "my-configured-secret")
	if err := m.Start(); err != nil {
		t.Fatalf("启动密钥管理器失败: %v", err)
	}
	defer m.Stop()

	if m.GetSecret() != "my-configured-secret" {
		t.Errorf("应使用配置密钥: %s", m.GetSecret())
	}

	insecure := NewJWTManager(&db.Manager{}, "change-this-secret-in-production")
	if err := insecure.Start(); err != nil {
		t.Fatalf("启动密钥管理器失败: %v", err)
	}
	defer insecure.Stop()

	secret := insecure.GetSecret()
	if secret == "change-this-secret-in-production" {
		t.Error("不安全默认密钥应被忽略并替换为随机密钥")
	}
	if len(secret) != JWTSecretLength*2 {
		t.Errorf("生成的密钥应为 %d 位 hex, 实际 %d", JWTSecretLength*2, len(secret))
	}
}

/*
TestJWTManagerConcurrentAccess 测试密钥并发读写安全
请求协程持续读取密钥，同步路径同时替换密钥（-race 下验证无数据竞争）
*/
func TestJWTManagerConcurrentAccess(t *testing.T) {
	m := NewJWTManager(&db.Manager{}, "initial-secret")
	if err := m.Start(); err != nil {
		t.Fatalf("启动密钥管理器失败: %v", err)
	}
	defer m.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if m.GetSecret() == "" {
					t.Error("密钥不应为空")
					return
				}
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 1000; j++ {
			if j%2 == 0 {
				m.setSecret("rotated-secret-a")
			} else {
				m.setSecret("rotated-secret-b")
			}
		}
	}()

	wg.Wait()
}
