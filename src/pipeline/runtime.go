package pipeline

import (
	"fmt"

	"github.com/will-rowe/dbgasm/src/config"
	"github.com/will-rowe/dbgasm/src/version"
)

// Info stores the runtime information
type Info struct {
	Version  string
	Settings *config.Settings

	// counters set by the ResultWriter
	Assembled  int
	Infeasible int
	Errored    int
	Outputs    []string
}

// NewInfo is the Info constructor, it validates the settings before use
func NewInfo(settings *config.Settings) (*Info, error) {
	if settings == nil {
		return nil, fmt.Errorf("no settings provided to the pipeline")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Info{
		Version:  version.GetVersion(),
		Settings: settings,
	}, nil
}

// Processed returns the number of inputs that made it through the pipeline
func (Info *Info) Processed() int {
	return Info.Assembled + Info.Infeasible + Info.Errored
}
