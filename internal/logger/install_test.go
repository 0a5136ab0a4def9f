package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/montar/internal/config"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	prevLogger := log.Logger
	prevContext := zerolog.DefaultContextLogger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.DefaultContextLogger = prevContext
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestInstaller_InstallsOnce(t *testing.T) {
	restoreGlobals(t)
	var inst Installer
	first, buf := newTestLogger(t, defaultLogging())
	second, _ := newTestLogger(t, defaultLogging())

	require.NoError(t, inst.Install(first))
	assert.True(t, inst.Installed())

	err := inst.Install(second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInstall)

	// The first logger stays active.
	log.Info().Msg("global")
	assert.Equal(t, "05-03-2024 07-08-09 [montar] [INFO]: global\n", buf.String())
}

func TestInstaller_FromContextFallsBackToInstalled(t *testing.T) {
	restoreGlobals(t)
	var inst Installer
	l, buf := newTestLogger(t, defaultLogging())

	require.NoError(t, inst.Install(l))

	FromContext(context.Background()).Warn().Msg("fallback")
	assert.Equal(t, "05-03-2024 07-08-09 [montar] [WARN]: fallback\n", buf.String())
}

func TestInstaller_NilLogger(t *testing.T) {
	var inst Installer

	err := inst.Install(nil)
	assert.ErrorIs(t, err, ErrInstall)
	assert.False(t, inst.Installed())
}

// TestInstaller_LowersGlobalLevel verifies that installing lets Trace records
// of the installed logger through.
func TestInstaller_LowersGlobalLevel(t *testing.T) {
	restoreGlobals(t)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	var inst Installer
	cfg := defaultLogging()
	cfg.Level = config.LevelTrace
	l, buf := newTestLogger(t, cfg)

	require.NoError(t, inst.Install(l))
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())

	log.Trace().Msg("deep")
	assert.Equal(t, "05-03-2024 07-08-09 [montar] [TRACE]: deep\n", buf.String())
}

// TestInstaller_FailedInstallKeepsGlobalLevel verifies that a rejected
// install leaves zerolog's global level alone.
func TestInstaller_FailedInstallKeepsGlobalLevel(t *testing.T) {
	restoreGlobals(t)
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	var inst Installer

	require.Error(t, inst.Install(nil))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
