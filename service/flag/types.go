package flag

import "github.com/terrafirma2021/makcu-version/model"

type service struct{}

// Service is the interface for CLI flag service.
type Service interface {
	GetParsedFlags() (model.Flags, error)
	GetParsedCheckFlags(args []string) (model.CheckFlags, error)
}
