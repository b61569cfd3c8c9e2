package logger

import "github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/app/port"

// slogAdapter реализует интерфейс port.Logger поверх глобальных функций пакета logger.
// component, если задан, добавляется к каждому сообщению.
type slogAdapter struct {
	component string
}

// NewSlogAdapter создает новый экземпляр slogAdapter.
func NewSlogAdapter() port.Logger {
	return &slogAdapter{}
}

// NewComponentAdapter создает slogAdapter, помечающий сообщения именем компонента.
func NewComponentAdapter(component string) port.Logger {
	return &slogAdapter{component: component}
}

func (a *slogAdapter) withComponent(args []any) []any {
	if a.component == "" {
		return args
	}
	return append([]any{"component", a.component}, args...)
}

// Info логирует информационное сообщение.
func (a *slogAdapter) Info(msg string, args ...any) {
	Info(msg, a.withComponent(args)...)
}

// Debug логирует отладочное сообщение.
func (a *slogAdapter) Debug(msg string, args ...any) {
	Debug(msg, a.withComponent(args)...)
}

// Warn логирует предупреждающее сообщение.
func (a *slogAdapter) Warn(msg string, args ...any) {
	Warn(msg, a.withComponent(args)...)
}

// Error логирует сообщение об ошибке.
func (a *slogAdapter) Error(msg string, args ...any) {
	Error(msg, a.withComponent(args)...)
}
