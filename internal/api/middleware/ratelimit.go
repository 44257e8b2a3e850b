// Package middleware HTTP中间件：令牌桶限流。
// 文档解析是CPU密集操作，单实例用令牌桶兜底，超出速率直接返回429。
package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// TokenBucket 令牌桶限流器
type TokenBucket struct {
	rate           float64   // 每秒生成的令牌数
	capacity       float64   // 桶的容量
	tokens         float64   // 当前令牌数
	lastRefillTime time.Time // 上次填充令牌的时间
	mutex          sync.Mutex
}

// NewTokenBucket 创建令牌桶，qpm为每分钟请求数
// 未指定容量时取QPM的一半，允许短暂突发
func NewTokenBucket(qpm int, capacity int) *TokenBucket {
	if capacity <= 0 {
		capacity = qpm / 2
		if capacity <= 0 {
			capacity = 1
		}
	}

	return &TokenBucket{
		rate:           float64(qpm) / 60.0,
		capacity:       float64(capacity),
		tokens:         float64(capacity), // 初始填满
		lastRefillTime: time.Now(),
	}
}

// refill 根据经过的时间填充令牌，不超过容量
func (tb *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(tb.lastRefillTime).Seconds()
	tb.lastRefillTime = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > tb.capacity {
		tb.tokens = tb.capacity
	}
}

// Allow 判断是否允许通过一个请求，消耗一个令牌
func (tb *TokenBucket) Allow() bool {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	tb.refill()
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// RateLimit 基于令牌桶的限流中间件
func RateLimit(qpm int) app.HandlerFunc {
	bucket := NewTokenBucket(qpm, 0)
	return func(c context.Context, ctx *app.RequestContext) {
		if !bucket.Allow() {
			ctx.AbortWithStatusJSON(consts.StatusTooManyRequests,
				utils.H{"error": "Too many requests, please retry later"})
			return
		}
		ctx.Next(c)
	}
}
