package glimpse

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/pkg/profile"
)

var profileModes = map[string]func(*profile.Profile){
	"cpu":       profile.CPUProfile,
	"mem":       profile.MemProfile,
	"trace":     profile.TraceProfile,
	"block":     profile.BlockProfile,
	"mutex":     profile.MutexProfile,
	"goroutine": profile.GoroutineProfile,
}

// ProfileModes returns the accepted values for Options.Profile
func ProfileModes() []string {
	modes := make([]string, 0, len(profileModes))
	for mode := range profileModes {
		modes = append(modes, mode)
	}

	slices.Sort(modes)

	return modes
}

type stopper interface{ Stop() }

type noProfile struct{}

func (noProfile) Stop() {}

// startProfile starts the profiler selected by mode. An empty mode
// disables profiling.
func startProfile(mode string) (stopper, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		return noProfile{}, nil
	}

	option, ok := profileModes[mode]
	if !ok {
		return nil, fmt.Errorf("unknown profile mode %q, expected one of %s", mode, strings.Join(ProfileModes(), ", "))
	}

	slog.Info("Start profiling", slog.String("mode", mode))

	// the window handles termination signals itself, the profile
	// must not exit the process on its own.
	return profile.Start(option, profile.ProfilePath("."), profile.NoShutdownHook), nil
}
