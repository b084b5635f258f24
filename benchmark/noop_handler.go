package benchmark

import "github.com/xcollantes/loggio/core"

// noopHandler measures the logger path without serialization cost.
type noopHandler struct{}

func (noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (noopHandler) Close() error {
	return nil
}
