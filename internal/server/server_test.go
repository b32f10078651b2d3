// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cslb/ldtoolbox-mcp/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Name: "ldtoolbox-mcp", Version: "test"},
		Log:    config.LogConfig{Level: "info"},
		Parser: config.ParserConfig{MaxLotSpan: 200},
		Batch:  config.BatchConfig{Workers: 2},
		PLSS:   config.PLSSConfig{State: "CO"},
	}
}

func connect(t *testing.T, cfg *config.Config) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	srv, err := New(cfg, zap.NewNop())
	require.NoError(t, err)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := srv.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestServer_ListTools(t *testing.T) {
	session := connect(t, testConfig())

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tl := range res.Tools {
		names = append(names, tl.Name)
	}
	assert.ElementsMatch(t, []string{"parse_legal_description", "first_division_id", "audit_legal_descriptions"}, names)
}

func TestServer_CallParse(t *testing.T) {
	session := connect(t, testConfig())
	ctx := context.Background()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "parse_legal_description",
		Arguments: map[string]any{"description": "NE lots 1-2"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out struct {
		Outcome struct {
			Lookups  []string `json:"lookups"`
			FallOuts []string `json:"fall_outs"`
		} `json:"outcome"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, []string{"1", "2", "NENE", "NWNE", "SENE", "SWNE"}, out.Outcome.Lookups)
	assert.Equal(t, []string{"lots"}, out.Outcome.FallOuts)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "parse_legal_description",
		Arguments: map[string]any{"description": "All except Lot 3"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError, "unparseable descriptions are reported as tool errors")
}

func TestNew_PatternsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("TRACT: [T1]\n"), 0o600))

	cfg := testConfig()
	cfg.Patterns.Path = path
	session := connect(t, cfg)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "parse_legal_description",
		Arguments: map[string]any{"description": "TRACT"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	cfg.Patterns.Path = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = New(cfg, zap.NewNop())
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	log, err = NewLogger("warn", true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger("loud", false)
	require.Error(t, err)
}
