package system

import "go.uber.org/zap"

// warnOnce logs a warning the first time a key is seen. Unknown actor and
// projectile names would otherwise flood the log every tick.
type warnOnce struct {
	log  *zap.Logger
	seen map[string]struct{}
}

func newWarnOnce(log *zap.Logger) *warnOnce {
	if log == nil {
		log = zap.NewNop()
	}
	return &warnOnce{log: log, seen: map[string]struct{}{}}
}

func (w *warnOnce) warn(key, msg string, fields ...zap.Field) {
	if _, ok := w.seen[key]; ok {
		return
	}
	w.seen[key] = struct{}{}
	w.log.Warn(msg, fields...)
}
