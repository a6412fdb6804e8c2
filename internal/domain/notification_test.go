package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 前端会逐字解析这些文案，模板一旦变动这里必须同步失败
func TestNewRequestMessage(t *testing.T) {
	msg := NewRequestMessage("liping7", "vacation")
	assert.Equal(t, "New request from employee liping7 for vacation", msg)
}

func TestRequestDecisionMessage(t *testing.T) {
	approved := RequestDecisionMessage("vacation", true)
	assert.Equal(t, "Your request for vacation has been approved", approved)

	rejected := RequestDecisionMessage("shift swap", false)
	assert.Equal(t, "Your request for shift swap has been rejected", rejected)
}
