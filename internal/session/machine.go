/*
Package session 管理端会话状态机

管理界面对"当前是否已登录"的认知来自服务端校验的异步往返，
在结果返回前不能做任何跳转或渲染决策。本包把这个过程建模为
显式三态状态机：

	loading → authenticated（服务端确认凭据有效，携带身份）
	loading → unauthenticated（凭据缺失 / 被拒绝 / 校验过程出错）
	任意态 → unauthenticated（登出或服务端后续拒绝）

所有状态迁移收敛在 Resolve 和 Invalidate 两个入口，
迁移函数返回"是否发生变化"，调用方据此保证跳转只触发一次——
由状态迁移本身守卫，不需要额外的标志位。
*/
package session

import (
	"sync"
)

/*
State 会话状态枚举
*/
type State int

const (
	/* StateLoading 初始态：校验往返未完成，禁止做任何决策 */
	StateLoading State = iota
	/* StateAuthenticated 已认证：携带服务端确认的身份 */
	StateAuthenticated
	/* StateUnauthenticated 未认证：应跳转登录入口 */
	StateUnauthenticated
)

/* String 状态的可读名称 */
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

/*
Identity 服务端确认的管理员身份
*/
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

/*
Machine 会话状态机
并发安全；零值不可用，通过 New 创建。
*/
type Machine struct {
	mu       sync.Mutex
	state    State
	identity *Identity
}

/*
New 创建状态机，初始态恒为 loading
*/
func New() *Machine {
	return &Machine{state: StateLoading}
}

/*
Resolve 用服务端校验结果解析 loading 态
功能：identity 非空时迁移到 authenticated，为空时迁移到 unauthenticated。
仅在 loading 态生效——重复的校验结果不会改变已解析的状态。
返回解析后的状态和本次调用是否引起迁移。
*/
func (m *Machine) Resolve(identity *Identity) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateLoading {
		return m.state, false
	}

	if identity != nil {
		m.state = StateAuthenticated
		m.identity = identity
	} else {
		m.state = StateUnauthenticated
		m.identity = nil
	}
	return m.state, true
}

/*
Invalidate 作废会话
功能：登出或服务端拒绝凭据时调用，从任意状态迁移到 unauthenticated。
返回是否发生迁移——已处于 unauthenticated 时返回 false，
调用方借此保证跳转登录页只执行一次。
*/
func (m *Machine) Invalidate() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateUnauthenticated {
		return false
	}
	m.state = StateUnauthenticated
	m.identity = nil
	return true
}

/*
State 当前状态
*/
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

/*
Identity 当前身份，仅 authenticated 态非空
*/
func (m *Machine) Identity() *Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identity
}
