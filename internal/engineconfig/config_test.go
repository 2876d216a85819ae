package engineconfig_test

import (
	"testing"

	"github.com/dreamtides/rules-engine/internal/engineconfig"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchHardcodedEngineConstants(t *testing.T) {
	cfg := engineconfig.Defaults()
	require.Equal(t, 25, cfg.Battle.RoundLimit)
	require.Equal(t, 9, cfg.Battle.HandSizeLimit)
	require.Equal(t, 8, cfg.Battle.BattlefieldLimit)
	require.Equal(t, 25, cfg.Battle.PointsToWin)
	require.Equal(t, "info", cfg.Logging.Level)
}
