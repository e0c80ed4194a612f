/*
Package cache 管理端数据缓存

提供一个容量有界、按键寻址、带 TTL 的内存缓存，供管理端服务层
在会话内复用最近一次成功读取的结果，减少重复查库。

设计要点：
  - 显式构造：NewStore 注入容量与默认 TTL，不使用包级单例，测试可各建独立实例
  - 淘汰策略：容量满时按插入顺序淘汰最早写入的条目（FIFO，非 LRU），
    不追踪访问频率和最近使用，复杂度换简单性
  - 过期策略：读取时惰性判定，过期条目视同不存在并顺手删除
  - 订阅通知：Set/Invalidate 同步触发该键的全部订阅回调，
    回调在操作返回前完成，订阅方总能观察到新值
  - 键命名约定：entity:operation:序列化参数，见 keys.go
*/
package cache

import (
	"regexp"
	"sync"
	"time"
)

const (
	/* DefaultTTL 默认缓存有效期 */
	DefaultTTL = 5 * time.Minute
	/* DefaultCapacity 默认最大条目数 */
	DefaultCapacity = 100
)

/* entry 单个缓存条目 */
type entry struct {
	payload   interface{}
	writtenAt time.Time
}

/*
Store 有界 TTL 缓存存储
并发安全：所有操作由互斥锁保护，均为运行至完成的短临界区。
订阅回调在锁外同步执行，回调内可安全地再次操作 Store。
*/
type Store struct {
	mu          sync.Mutex
	entries     map[string]*entry
	order       []string /* 插入顺序，淘汰依据 */
	subscribers map[string]map[int]func()
	nextSubID   int

	defaultTTL time.Duration
	capacity   int
}

/*
NewStore 创建缓存存储
参数：capacity 最大条目数（<=0 取默认 100），defaultTTL 默认有效期（<=0 取默认 5 分钟）
*/
func NewStore(capacity int, defaultTTL time.Duration) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Store{
		entries:     make(map[string]*entry),
		subscribers: make(map[string]map[int]func()),
		defaultTTL:  defaultTTL,
		capacity:    capacity,
	}
}

/*
Get 读取缓存
功能：条目存在且 now - 写入时间 <= ttl 时返回载荷；
过期条目立即删除并按未命中处理。ttl 为 0 时使用默认 TTL。
缓存未命中不是错误，调用方应回源读取。
*/
func (s *Store) Get(key string, ttl time.Duration) (interface{}, bool) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(e.writtenAt) > ttl {
		/* 惰性过期：过期即删除，后续 Set 视为全新插入 */
		s.removeLocked(key)
		return nil, false
	}
	return e.payload, true
}

/*
Set 写入缓存
功能：同键覆盖写不改变插入顺序；新键写入时若已达容量上限，
先淘汰最早插入的条目。写入完成后同步通知该键的全部订阅者。
*/
func (s *Store) Set(key string, payload interface{}) {
	s.mu.Lock()

	if _, exists := s.entries[key]; !exists {
		if len(s.entries) >= s.capacity {
			/* FIFO 淘汰：移除最早插入的条目 */
			oldest := s.order[0]
			s.removeLocked(oldest)
		}
		s.order = append(s.order, key)
	}
	s.entries[key] = &entry{payload: payload, writtenAt: time.Now()}

	callbacks := s.callbacksLocked(key)
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}

/*
Invalidate 删除指定键的条目并通知订阅者
*/
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	s.removeLocked(key)
	callbacks := s.callbacksLocked(key)
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}

/*
InvalidatePattern 删除所有键匹配正则的条目
功能：配合键命名约定批量失效，如 ^skill: 清空技能实体的全部缓存。
每个被删除的键都会通知其订阅者。返回删除的条目数。
*/
func (s *Store) InvalidatePattern(pattern *regexp.Regexp) int {
	s.mu.Lock()

	var removed []string
	for key := range s.entries {
		if pattern.MatchString(key) {
			removed = append(removed, key)
		}
	}

	var callbacks []func()
	for _, key := range removed {
		s.removeLocked(key)
		callbacks = append(callbacks, s.callbacksLocked(key)...)
	}
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
	return len(removed)
}

/*
Subscribe 订阅指定键的变更
功能：Set/Invalidate 触及该键时调用 callback。
返回取消订阅函数；取消后该键订阅集合为空时一并清理注册表。
*/
func (s *Store) Subscribe(key string, callback func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subscribers[key] == nil {
		s.subscribers[key] = make(map[int]func())
	}
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[key][id] = callback

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if subs, ok := s.subscribers[key]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(s.subscribers, key)
			}
		}
	}
}

/*
Len 当前条目数
*/
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

/*
Clear 清空全部条目（不触发订阅通知，仅供测试与关停）
*/
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*entry)
	s.order = s.order[:0]
}

/* removeLocked 删除条目并维护插入顺序表，须持锁调用 */
func (s *Store) removeLocked(key string) {
	if _, ok := s.entries[key]; !ok {
		return
	}
	delete(s.entries, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

/* callbacksLocked 复制指定键的订阅回调列表，须持锁调用 */
func (s *Store) callbacksLocked(key string) []func() {
	subs := s.subscribers[key]
	if len(subs) == 0 {
		return nil
	}
	callbacks := make([]func(), 0, len(subs))
	for _, cb := range subs {
		callbacks = append(callbacks, cb)
	}
	return callbacks
}
