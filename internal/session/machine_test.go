package session

import (
	"testing"
)

/*
TestInitialStateIsLoading 测试初始态恒为 loading
*/
func TestInitialStateIsLoading(t *testing.T) {
	m := New()
	if m.State() != StateLoading {
		t.Errorf("初始态应为 loading, 实际 %s", m.State())
	}
	if m.Identity() != nil {
		t.Error("初始态不应携带身份")
	}
}

/*
TestResolveAuthenticated 测试校验成功迁移到 authenticated
*/
func TestResolveAuthenticated(t *testing.T) {
	m := New()
	identity := &Identity{UserID: "uid-1", Username: "admin", Role: "admin"}

	state, changed := m.Resolve(identity)
	if state != StateAuthenticated || !changed {
		t.Errorf("应迁移到 authenticated: state=%s changed=%v", state, changed)
	}
	if got := m.Identity(); got == nil || got.UserID != "uid-1" {
		t.Errorf("身份未正确保存: %+v", got)
	}
}

/*
TestResolveUnauthenticated 测试校验失败迁移到 unauthenticated
*/
func TestResolveUnauthenticated(t *testing.T) {
	m := New()

	state, changed := m.Resolve(nil)
	if state != StateUnauthenticated || !changed {
		t.Errorf("应迁移到 unauthenticated: state=%s changed=%v", state, changed)
	}
}

/*
TestResolveOnlyOnce 测试重复的校验结果不改变已解析的状态
*/
func TestResolveOnlyOnce(t *testing.T) {
	m := New()
	m.Resolve(&Identity{UserID: "uid-1"})

	/* 第二次 Resolve（迟到的失败结果）不应覆盖已认证状态 */
	state, changed := m.Resolve(nil)
	if changed {
		t.Error("非 loading 态的 Resolve 不应引起迁移")
	}
	if state != StateAuthenticated {
		t.Errorf("状态不应被覆盖: %s", state)
	}
}

/*
TestInvalidateGuardsSingleRedirect 测试作废迁移只报告一次变化
调用方以返回值守卫跳转，重复作废不应引起重复跳转
*/
func TestInvalidateGuardsSingleRedirect(t *testing.T) {
	m := New()
	m.Resolve(&Identity{UserID: "uid-1"})

	if !m.Invalidate() {
		t.Error("首次作废应报告迁移")
	}
	if m.Invalidate() {
		t.Error("重复作废不应再报告迁移")
	}
	if m.State() != StateUnauthenticated {
		t.Errorf("作废后状态应为 unauthenticated: %s", m.State())
	}
	if m.Identity() != nil {
		t.Error("作废后不应保留身份")
	}
}

/*
TestInvalidateFromLoading 测试 loading 态也可直接作废
*/
func TestInvalidateFromLoading(t *testing.T) {
	m := New()
	if !m.Invalidate() {
		t.Error("loading 态作废应报告迁移")
	}

	/* 迟到的校验结果不应复活会话 */
	_, changed := m.Resolve(&Identity{UserID: "uid-1"})
	if changed {
		t.Error("已作废的会话不应被迟到的校验结果复活")
	}
}
