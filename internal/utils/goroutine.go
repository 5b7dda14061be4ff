// Package utils provides small shared helpers.
package utils

import (
	"runtime/debug"

	"go.uber.org/zap"

	"ainexus/server/internal/logger"
)

// SafeGo starts a goroutine that recovers from panics and logs them. Used for
// fire-and-forget work such as notification emails, where a panic must never
// take down the request path.
func SafeGo(name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("goroutine panic recovered",
					zap.String("name", name),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
