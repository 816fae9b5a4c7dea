// Package dsl 提供基于 CEL (Common Expression Language) 的业务规则求值，
// 用于对推荐结果做配置驱动的剔除（价格上限、类目屏蔽等）。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：item.price > 500.0 / item.score < 0.1
//   - 字符串：item.category == "shoes" / item.title.contains("sale")
//   - 逻辑：item.category == "shoes" && item.price > 200.0
//   - 用户维度：user.id == 42
package dsl

import (
	"sync"

	"github.com/google/cel-go/cel"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
	celEnvErr  error
)

func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("item", cel.DynType),
			cel.Variable("user", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// Rule 是一条编译后的 CEL 规则。编译一次、多次求值，线程安全。
type Rule struct {
	expr string
	prg  cel.Program
}

// Compile 编译 CEL 表达式。表达式在求值时必须返回 bool，
// 语法错误在这里暴露，而不是等到请求路径上。
func Compile(expr string) (*Rule, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, err
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, iss.Err()
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, err
	}
	return &Rule{expr: expr, prg: prg}, nil
}

// Expr 返回规则的原始表达式（用于日志）。
func (r *Rule) Expr() string { return r.expr }

// Eval 对给定的 item / user 求值；非 bool 结果视为 false。
func (r *Rule) Eval(item map[string]any, user map[string]any) (bool, error) {
	out, _, err := r.prg.Eval(map[string]any{
		"item": item,
		"user": user,
	})
	if err != nil {
		return false, err
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, nil
	}
	return b, nil
}
