package beverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternkit/config"
	"patternkit/errors"
	"patternkit/patterns/decorator"
)

const delta = 1e-9

// TestCafeOrders 测试咖啡店的三笔订单
func TestCafeOrders(t *testing.T) {
	tests := []struct {
		name string
		b    Beverage
		desc string
		cost float64
	}{
		{
			name: "牛奶加糖浓缩",
			b:    WithMilk(WithSugar(Espresso())),
			desc: "Espresso, Sugar, Milk",
			cost: 2.7,
		},
		{
			name: "奶油茶",
			b:    WithWhippedCream(Tea()),
			desc: "Tea, Whipped Cream",
			cost: 2.2,
		},
		{
			name: "奶油牛奶加糖浓缩",
			b:    WithWhippedCream(WithMilk(WithSugar(Espresso()))),
			desc: "Espresso, Sugar, Milk, Whipped Cream",
			cost: 3.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.desc, tt.b.Description())
			assert.InDelta(t, tt.cost, tt.b.Cost(), delta)
		})
	}
}

// TestChainMatchesNesting 测试 Chain 与手写嵌套一致
func TestChainMatchesNesting(t *testing.T) {
	chained := decorator.Chain[Beverage](Espresso(), WithSugar, WithMilk, WithWhippedCream)
	nested := WithWhippedCream(WithMilk(WithSugar(Espresso())))

	assert.Equal(t, nested.Description(), chained.Description())
	assert.InDelta(t, nested.Cost(), chained.Cost(), delta)
	assert.Equal(t, 3, decorator.Depth(chained))
	assert.Equal(t, Espresso(), decorator.Innermost(chained))
}

// TestOrderIndependentCost 测试价格与顺序无关、描述与顺序相关
func TestOrderIndependentCost(t *testing.T) {
	layers := []decorator.Layer[Beverage]{WithSugar, WithMilk, WithWhippedCream, WithChocolate}
	perms := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}}

	want := Espresso().Cost() + Sugar.Surcharge + Milk.Surcharge + WhippedCream.Surcharge + Chocolate.Surcharge
	descs := make(map[string]bool)
	for _, p := range perms {
		ordered := make([]decorator.Layer[Beverage], len(p))
		for i, idx := range p {
			ordered[i] = layers[idx]
		}
		b := decorator.Chain(Espresso(), ordered...)
		assert.InDelta(t, want, b.Cost(), delta)
		descs[b.Description()] = true
	}
	assert.Len(t, descs, len(perms))
}

// TestPracticeOrders 测试另一份菜单的逐步加料
func TestPracticeOrders(t *testing.T) {
	houseMilk := Addon{Label: "Milk", Surcharge: 10.0}
	houseSugar := Addon{Label: "Sugar", Surcharge: 5.0}

	b := Coffee()
	assert.Equal(t, "Coffee", b.Description())
	assert.InDelta(t, 50.0, b.Cost(), delta)

	b = With(houseMilk)(b)
	b = With(houseSugar)(b)
	b = WithChocolate(b)
	assert.Equal(t, "Coffee, Milk, Sugar, Chocolate", b.Description())
	assert.InDelta(t, 80.0, b.Cost(), delta)
}

// TestDecoratorOnDecorator 测试装饰层可以包装任何饮品，包括同一种配料
func TestDecoratorOnDecorator(t *testing.T) {
	b := WithMilk(WithMilk(Tea()))

	assert.Equal(t, "Tea, Milk, Milk", b.Description())
	assert.InDelta(t, 2.5, b.Cost(), delta)
}

func TestReceipt(t *testing.T) {
	assert.Equal(t, "Espresso, Sugar, Milk costs $2.70", Receipt(WithMilk(WithSugar(Espresso()))))
	assert.Equal(t, "Tea costs $1.50", Receipt(Tea()))
}

// TestMenu_FromConfig 测试由内置菜单点单
func TestMenu_FromConfig(t *testing.T) {
	catalog, err := config.LoadMenus()
	require.NoError(t, err)

	spec, err := catalog.Menu("cafe")
	require.NoError(t, err)
	menu, err := FromConfig(spec)
	require.NoError(t, err)

	assert.Equal(t, "cafe", menu.Name())
	assert.Equal(t, []string{"espresso", "tea"}, menu.Bases())
	assert.Equal(t, []string{"milk", "sugar", "whippedcream"}, menu.Addons())

	b, err := menu.Order("espresso", "sugar", "milk", "WhippedCream")
	require.NoError(t, err)
	assert.Equal(t, "Espresso, Sugar, Milk, Whipped Cream", b.Description())
	assert.InDelta(t, 3.4, b.Cost(), delta)

	spec, err = catalog.Menu("house")
	require.NoError(t, err)
	house, err := FromConfig(spec)
	require.NoError(t, err)

	b, err = house.Order("Coffee", "milk", "sugar", "chocolate")
	require.NoError(t, err)
	assert.Equal(t, "Coffee, Milk, Sugar, Chocolate", b.Description())
	assert.InDelta(t, 80.0, b.Cost(), delta)
}

func TestMenu_Errors(t *testing.T) {
	m := NewMenu("test")
	require.NoError(t, m.AddBase("Tea", 1.5))
	require.NoError(t, m.AddAddon("milk", Milk))

	assert.True(t, errors.IsConflict(m.AddBase("TEA", 2)))
	assert.True(t, errors.IsConflict(m.AddAddon("MILK", Milk)))
	assert.True(t, errors.IsValidation(m.AddBase("Water", -1)))
	assert.True(t, errors.IsValidation(m.AddAddon("", Milk)))
	assert.True(t, errors.IsValidation(m.AddAddon("foam", Addon{Surcharge: 0.1})))

	_, err := m.Order("coffee")
	assert.True(t, errors.IsNotFound(err))

	_, err = m.Order("tea", "milk", "caramel")
	assert.True(t, errors.IsNotFound(err))

	_, err = m.Addon("caramel")
	assert.True(t, errors.IsNotFound(err))
}
