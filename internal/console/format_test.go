package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "0 KRW", Money(0, "KRW"))
	assert.Equal(t, "1,000 KRW", Money(1000, "KRW"))
	assert.Equal(t, "12,345,678 KRW", Money(12345678, "KRW"))
	assert.Equal(t, "-12,000 KRW", Money(-12000, "KRW"))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0.00 %", Percent(0))
	assert.Equal(t, "3.14 %", Percent(3.14159))
	assert.Equal(t, "-2.50 %", Percent(-2.5))
}
