package store

// 注意：此包只包含实现，接口定义在 core 包。
// 使用 core.Store 接口：
//
//	var st core.Store = NewMemoryStore()
//	st, err := NewFileStore("models")
//	st, err := NewRedisStore("127.0.0.1:6379", 0)
