package snapshot

import (
	"context"
	"sync/atomic"

	"github.com/shopkit/shoprec/core"
)

// Manager 负责快照的进程内缓存。
//
// 快照在进程生命周期内只加载一次（或显式 Load 时重新加载），
// 之后所有查询都走内存缓存——按查询重新加载制品是被明确拒绝的
// 资源使用反模式。替换通过原子指针完成，在途查询要么看到完整的
// 旧快照、要么看到完整的新快照，不会看到两次构建混搭的制品。
type Manager struct {
	store       core.Store
	catalogSize int
	cur         atomic.Pointer[Snapshot]
}

// NewManager 创建 Manager。catalogSize 是目录行数，
// 加载时用于校验商品向量索引的行数。
func NewManager(store core.Store, catalogSize int) *Manager {
	return &Manager{store: store, catalogSize: catalogSize}
}

// Load 从 Store 加载快照并替换当前缓存。
// 任一制品缺失、损坏或维度不匹配都返回错误，当前缓存保持不变，
// 服务在拿到合法快照之前应拒绝提供查询。
// 重复调用即为显式 reload（例如收到 SIGHUP 时）。
func (m *Manager) Load(ctx context.Context) error {
	snap, err := load(ctx, m.store)
	if err != nil {
		return err
	}
	if err := snap.Validate(m.catalogSize); err != nil {
		return err
	}
	m.cur.Store(snap)
	return nil
}

// Current 返回当前缓存的快照；尚未加载时返回 nil。
func (m *Manager) Current() *Snapshot {
	return m.cur.Load()
}

// Save 校验并将快照写入 Store，由离线构建调用。
func (m *Manager) Save(ctx context.Context, snap *Snapshot) error {
	if err := snap.Validate(m.catalogSize); err != nil {
		return err
	}
	return save(ctx, m.store, snap)
}
