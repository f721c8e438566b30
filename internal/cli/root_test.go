package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "staffdir", cmd.Use)
	assert.Contains(t, cmd.Long, "employee directory")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"serve", "list", "export"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("fixture"))
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))
	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))

	_, err := execute(t, "--format", "yaml", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestListText(t *testing.T) {
	out, err := execute(t, "list", "--department", "Sales", "--arrangement", "Hybrid", "--sort", "fullName")
	require.NoError(t, err)
	assert.Contains(t, out, "James Wilson")
	assert.Contains(t, out, "Olivia Martinez")
	assert.Contains(t, out, "Showing 2 of 2 employees (page 1 of 1)")
}

func TestListJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "list", "--search", "eng", "--page-size", "4", "--page", "2")
	require.NoError(t, err)

	var result struct {
		Items      []map[string]any `json:"items"`
		Total      int              `json:"total"`
		TotalPages int              `json:"totalPages"`
		Page       int              `json:"page"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 6, result.Total)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, 2, result.Page)
	assert.Len(t, result.Items, 2)
}

func TestListNoMatches(t *testing.T) {
	out, err := execute(t, "list", "--search", "zzzz-nobody")
	require.NoError(t, err)
	assert.Contains(t, out, "No employees found")
}

func TestListRejectsBadQuery(t *testing.T) {
	_, err := execute(t, "list", "--sort", "salary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sort: unknown field")

	for _, page := range []string{"0", "-3"} {
		_, err = execute(t, "list", "--page", page)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "page: must be a positive integer")
	}

	_, err = execute(t, "list", "--page-size", "1000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page-size")
}

func TestExportWritesPDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sales.pdf")
	stdout, err := execute(t, "export", "--department", "Sales", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote 3 employee(s)")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestServeFlags(t *testing.T) {
	cmd := NewRootCommand()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	addrFlag := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, addrFlag)
	assert.Equal(t, "", addrFlag.DefValue)
}
