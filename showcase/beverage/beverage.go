// Package beverage 饮品定价：基础饮品加配料装饰
package beverage

import (
	"fmt"

	"patternkit/patterns/decorator"
)

// Beverage 饮品能力
type Beverage interface {
	Description() string
	Cost() float64
}

// Base 基础饮品（叶子）
type Base struct {
	name  string
	price float64
}

// NewBase 创建基础饮品
func NewBase(name string, price float64) Base {
	return Base{name: name, price: price}
}

func (b Base) Description() string { return b.name }
func (b Base) Cost() float64       { return b.price }

// Espresso 2.0
func Espresso() Beverage { return NewBase("Espresso", 2.0) }

// Tea 1.5
func Tea() Beverage { return NewBase("Tea", 1.5) }

// Coffee 50.0
func Coffee() Beverage { return NewBase("Coffee", 50.0) }

// Addon 配料：描述后缀和附加费
type Addon struct {
	Label     string
	Surcharge float64
}

// 内置配料
var (
	Milk         = Addon{Label: "Milk", Surcharge: 0.5}
	Sugar        = Addon{Label: "Sugar", Surcharge: 0.2}
	WhippedCream = Addon{Label: "Whipped Cream", Surcharge: 0.7}
	Chocolate    = Addon{Label: "Chocolate", Surcharge: 15.0}
)

const separator = ", "

// Condiment 配料装饰层
type Condiment struct {
	decorator.Wrapper[Beverage, Addon]
}

// NewCondiment 用配料包装饮品
func NewCondiment(inner Beverage, addon Addon) Condiment {
	return Condiment{decorator.Wrap(inner, addon)}
}

// Description 被包装饮品的描述后追加 ", <Label>"
func (c Condiment) Description() string {
	return decorator.Append(c.Inner().Description(), separator, c.Contribution().Label)
}

// Cost 被包装饮品的价格加上附加费
func (c Condiment) Cost() float64 {
	return decorator.Surcharge(c.Inner().Cost(), c.Contribution().Surcharge)
}

// With 返回添加指定配料的装饰层
func With(addon Addon) decorator.Layer[Beverage] {
	return func(inner Beverage) Beverage {
		return NewCondiment(inner, addon)
	}
}

func WithMilk(b Beverage) Beverage         { return NewCondiment(b, Milk) }
func WithSugar(b Beverage) Beverage        { return NewCondiment(b, Sugar) }
func WithWhippedCream(b Beverage) Beverage { return NewCondiment(b, WhippedCream) }
func WithChocolate(b Beverage) Beverage    { return NewCondiment(b, Chocolate) }

// Receipt 格式化为 "<描述> costs $<价格>"
func Receipt(b Beverage) string {
	return fmt.Sprintf("%s costs $%.2f", b.Description(), b.Cost())
}
