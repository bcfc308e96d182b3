// Package decorator 提供通用的装饰链
//
// 一个装饰层持有唯一的被包装对象和一个固定贡献值，调用时先求被包装对象的结果，
// 再把自己的贡献合并进去。链按构造顺序由内向外求值：
//
//	b := decorator.Chain[Beverage](espresso, WithSugar, WithMilk)
//	// 等价于 WithMilk(WithSugar(espresso))
//	b.Description() // "Espresso, Sugar, Milk"
//
// 数值类贡献（附加费）满足交换律，文本类贡献（后缀）与顺序相关。
package decorator

// Layer 装饰层构造函数：接收被包装对象，返回包装后的对象
type Layer[T any] func(inner T) T

// Chain 依次应用装饰层，layers[0] 在最内层，最后一个在最外层
func Chain[T any](leaf T, layers ...Layer[T]) T {
	for _, layer := range layers {
		leaf = layer(leaf)
	}
	return leaf
}

// Wrapper 通用装饰值：持有被包装对象 inner 和固定贡献 contribution
//
// 构造后不可变；具体领域通过嵌入 Wrapper 并实现能力接口来组合结果。
type Wrapper[T any, C any] struct {
	inner        T
	contribution C
}

// Wrap 创建装饰值
func Wrap[T any, C any](inner T, contribution C) Wrapper[T, C] {
	return Wrapper[T, C]{inner: inner, contribution: contribution}
}

// Inner 返回被包装对象
func (w Wrapper[T, C]) Inner() T {
	return w.inner
}

// Unwrap 同 Inner，用于 Depth/Innermost 遍历
func (w Wrapper[T, C]) Unwrap() T {
	return w.inner
}

// Contribution 返回本层的固定贡献
func (w Wrapper[T, C]) Contribution() C {
	return w.contribution
}

// Unwrapper 能返回被包装对象的装饰层
type Unwrapper[T any] interface {
	Unwrap() T
}

// Depth 返回链上装饰层的数量，叶子返回 0
func Depth[T any](c T) int {
	n := 0
	for {
		u, ok := any(c).(Unwrapper[T])
		if !ok {
			return n
		}
		c = u.Unwrap()
		n++
	}
}

// Innermost 返回链最内层的叶子
func Innermost[T any](c T) T {
	for {
		u, ok := any(c).(Unwrapper[T])
		if !ok {
			return c
		}
		c = u.Unwrap()
	}
}

// Append 文本合并：base + sep + label
func Append(base, sep, label string) string {
	return base + sep + label
}

// Surcharge 数值合并：base + add
func Surcharge(base, add float64) float64 {
	return base + add
}
