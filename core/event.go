package core

// EventKind 是交互事件类型的封闭枚举。
// 未识别的类型权重为 0，聚合时等价于被剔除；
// 这里刻意不做开放式的 map 查表，保证权重表是编译期可见的契约。
type EventKind string

const (
	EventView      EventKind = "view"
	EventAddToCart EventKind = "add_to_cart"
	EventPurchase  EventKind = "purchase"
)

// Weight 返回事件类型的固定权重。
func (k EventKind) Weight() float64 {
	switch k {
	case EventView:
		return 1
	case EventAddToCart:
		return 3
	case EventPurchase:
		return 5
	default:
		return 0
	}
}

// Interaction 是交互日志中的一条原始事件。
type Interaction struct {
	UserID    int64
	ProductID int64
	Kind      EventKind
}
