package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型，带错误代码（Code）与所属模块（Module）
//   - 查不到/无信号类状态（未知用户、越界商品 ID）不是错误，用空结果表达；
//     DomainError 只用于数据接入与制品加载这类必须中止的失败
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "CORRUPTED"）
	Message string // 错误消息
	Module  string // 模块名称（如 "store", "snapshot", "dataset"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError 创建新的领域错误。
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// GetDomainError 获取 DomainError，如果不是则返回 nil。
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// 错误代码常量
const (
	ErrorCodeNotFound     = "NOT_FOUND"      // 资源不存在
	ErrorCodeCorrupted    = "CORRUPTED"      // 制品损坏或维度不一致
	ErrorCodeInvalidInput = "INVALID_INPUT"  // 输入无效
	ErrorCodeInternal     = "INTERNAL_ERROR" // 内部错误
)

// 模块名称常量
const (
	ModuleStore    = "store"    // 制品存储模块
	ModuleSnapshot = "snapshot" // 快照模块
	ModuleDataset  = "dataset"  // 数据接入模块
)

// IsNotFound 检查错误是否为 NOT_FOUND。
func IsNotFound(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsCorrupted 检查错误是否为制品损坏/维度不一致。
func IsCorrupted(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeCorrupted
	}
	return false
}
