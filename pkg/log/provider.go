package log

import (
	"os"
	"sync"
)

var (
	providerMu      sync.RWMutex
	defaultProvider LoggerProvider = &staticProvider{logger: NewZerologLogger(os.Stderr, LevelInfo)}
)

// staticProvider hands out a single logger. SetLevel only applies to a
// ZerologLogger; other loggers keep the level they were built with.
type staticProvider struct {
	mu     sync.RWMutex
	logger Logger
}

func (p *staticProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.logger
}

func (p *staticProvider) GetLoggerWithName(name string) Logger {
	return p.GetLogger().With(ComponentKey, name)
}

func (p *staticProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if z, ok := p.logger.(*ZerologLogger); ok {
		p.logger = z.WithLevel(level)
	}
}

// GetProvider returns the process-wide logger provider.
func GetProvider() LoggerProvider {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider
}

// SetProvider replaces the process-wide logger provider. A nil provider is ignored.
func SetProvider(p LoggerProvider) {
	if p == nil {
		return
	}
	providerMu.Lock()
	defer providerMu.Unlock()
	defaultProvider = p
}

// GetLogger returns the default logger of the current provider.
func GetLogger() Logger {
	return GetProvider().GetLogger()
}

// SetLogger installs a provider that always returns l. A nil logger is ignored.
func SetLogger(l Logger) {
	if l == nil {
		return
	}
	SetProvider(&staticProvider{logger: l})
}

// GetLoggerWithName returns a logger tagged with a component name.
func GetLoggerWithName(name string) Logger {
	return GetProvider().GetLoggerWithName(name)
}
