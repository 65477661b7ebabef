package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livingtool/ltbridge/internal/bridge"
	"github.com/livingtool/ltbridge/internal/errors"
	"github.com/livingtool/ltbridge/internal/testutil"
)

func TestWhereCommand(t *testing.T) {
	inst := testutil.NewInstallation(t)
	configPath := writeConfig(t, inst, "dotnet")

	t.Run("text", func(t *testing.T) {
		out, err := runApp(t, "", "--config", configPath, "where")

		require.NoError(t, err)
		assert.Contains(t, out, "install dir: "+inst.InstallDir)
		assert.Contains(t, out, "project:     "+inst.ProjectPath)
		assert.Contains(t, out, "workdir:     "+inst.SrcDir)
	})

	t.Run("json", func(t *testing.T) {
		out, err := runApp(t, "", "--config", configPath, "where", "--json")
		require.NoError(t, err)

		var loc bridge.Location
		require.NoError(t, json.Unmarshal([]byte(out), &loc))
		assert.Equal(t, inst.ProjectPath, loc.ProjectPath)
		assert.Equal(t, inst.SrcDir, loc.DefaultWorkingDirectory)
	})

	t.Run("missing project", func(t *testing.T) {
		inst.RemoveProject(t)

		_, err := runApp(t, "", "--config", configPath, "where")
		assert.ErrorIs(t, err, errors.ErrPathResolution)
	})
}
