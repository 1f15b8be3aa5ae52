package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageToggle_Involution(t *testing.T) {
	assert.Equal(t, LanguageArabic, LanguageEnglish.Toggle())
	assert.Equal(t, LanguageEnglish, LanguageArabic.Toggle())
	assert.Equal(t, LanguageEnglish, LanguageEnglish.Toggle().Toggle())
}

func TestLanguageToggle_UnknownValueSelfHeals(t *testing.T) {
	assert.Equal(t, LanguageEnglish, Language("fr").Toggle())
}

func TestThemeToggle_Involution(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeLight, ThemeLight.Toggle().Toggle())
}

func TestAttributes(t *testing.T) {
	attrs := Attributes(LanguageArabic, ThemeDark)
	assert.Equal(t, "rtl", attrs.Dir)
	assert.Equal(t, "ar", attrs.Lang)
	assert.Equal(t, "dark", attrs.ThemeClass)

	attrs = Attributes(LanguageEnglish, ThemeLight)
	assert.Equal(t, "ltr", attrs.Dir)
	assert.Equal(t, "en", attrs.Lang)
	assert.Empty(t, attrs.ThemeClass)
}

func TestProductColors(t *testing.T) {
	p := Product{Tags: []string{"Black", "casual", "red", "summer"}}
	assert.Equal(t, []string{"Black", "red"}, p.Colors())

	assert.Nil(t, Product{Tags: []string{"casual"}}.Colors())
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusDelivered.Valid())
	assert.False(t, OrderStatus("cancelled").Valid())
}

func TestOrdersAppend(t *testing.T) {
	var orders Orders
	orders = orders.Append(Order{ID: "o-1"})
	orders = orders.Append(Order{ID: "o-2"})

	assert.Len(t, orders, 2)
	assert.Equal(t, "o-1", orders[0].ID)
	assert.Equal(t, "o-2", orders[1].ID)
}
