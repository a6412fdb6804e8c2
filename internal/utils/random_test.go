package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp := GenerateRandomOTP()
		require.Len(t, otp, 6)
		for _, c := range otp {
			assert.True(t, c >= '0' && c <= '9')
		}
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(12)
	assert.Len(t, password, 12)
}

func TestGenerateSINFromChineseName(t *testing.T) {
	sin := GenerateSINFromChineseName("张伟")
	require.NotEmpty(t, sin)

	// SIN 必须是纯 ASCII 的字母数字键
	for _, c := range sin {
		assert.True(t, (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9'), "unexpected character %q in %q", c, sin)
	}
}

func TestGenerateRandomChineseName(t *testing.T) {
	for i := 0; i < 20; i++ {
		name := []rune(GenerateRandomChineseName())
		// 一个姓氏加一到两个名字用字
		assert.GreaterOrEqual(t, len(name), 2)
		assert.LessOrEqual(t, len(name), 3)
	}
}
