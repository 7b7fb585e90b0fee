package observability

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/team-roster/internal/config"
	"github.com/riskibarqy/team-roster/internal/platform/logging"
)

const (
	mutexProfileFraction = 5
	blockProfileRate     = 5
)

var profileGroups = map[string][]pyroscope.ProfileType{
	"cpu":        {pyroscope.ProfileCPU},
	"alloc":      {pyroscope.ProfileAllocObjects, pyroscope.ProfileAllocSpace},
	"inuse":      {pyroscope.ProfileInuseObjects, pyroscope.ProfileInuseSpace},
	"goroutines": {pyroscope.ProfileGoroutines},
	"mutex":      {pyroscope.ProfileMutexCount, pyroscope.ProfileMutexDuration},
	"block":      {pyroscope.ProfileBlockCount, pyroscope.ProfileBlockDuration},
}

// InitPyroscope starts continuous profiling when enabled. Mutex and block
// profiles are opt-in because they turn on runtime sampling.
func InitPyroscope(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	profileTypes, err := parseProfileTypes(cfg.PyroscopeProfileTypes)
	if err != nil {
		return nil, err
	}
	for _, pt := range profileTypes {
		switch pt {
		case pyroscope.ProfileMutexCount:
			runtime.SetMutexProfileFraction(mutexProfileFraction)
		case pyroscope.ProfileBlockCount:
			runtime.SetBlockProfileRate(blockProfileRate)
		}
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Logger:            logger.Named("pyroscope").Zap().Sugar(),
		Tags: map[string]string{
			"env":          cfg.AppEnv,
			"service":      cfg.ServiceName,
			"store_driver": cfg.StoreDriver,
		},
		ProfileTypes: profileTypes,
	})
	if err != nil {
		return nil, fmt.Errorf("start pyroscope: %w", err)
	}

	logger.Info("pyroscope enabled",
		"server_address", cfg.PyroscopeServerAddress,
		"application", cfg.PyroscopeAppName,
		"profiles", strings.Join(cfg.PyroscopeProfileTypes, ","),
	)

	return profiler.Stop, nil
}

func parseProfileTypes(names []string) ([]pyroscope.ProfileType, error) {
	if len(names) == 0 {
		names = []string{"cpu"}
	}

	out := make([]pyroscope.ProfileType, 0, len(names)*2)
	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if _, dup := seen[name]; dup {
			continue
		}
		group, ok := profileGroups[name]
		if !ok {
			return nil, fmt.Errorf("unknown pyroscope profile type %q", raw)
		}
		seen[name] = struct{}{}
		out = append(out, group...)
	}
	return out, nil
}
