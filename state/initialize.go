package state

import (
	_ "embed"
	"time"
)

//go:embed default.ucss
var defaultStylesheet []byte

//go:embed default.yaml
var defaultScene []byte

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:             time.Now(),
		DefaultStylesheet: defaultStylesheet,
		DefaultScene:      defaultScene,
	}
}
