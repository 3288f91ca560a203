package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testCLI struct {
	tb      testing.TB
	cfgPath string
}

func newTestCLI(tb testing.TB) *testCLI {
	dir := tb.TempDir()
	cfgPath := filepath.Join(dir, "ledger.yml")

	cfg := "Ledger:\n  Type: boltdb\n  BoltDBOptions:\n    FilePath: " + filepath.Join(dir, "world.bolt") + "\n"
	require.NoError(tb, os.WriteFile(cfgPath, []byte(cfg), 0600))

	return &testCLI{tb: tb, cfgPath: cfgPath}
}

func (x *testCLI) exec(args ...string) (string, error) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", x.cfgPath}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func (x *testCLI) run(args ...string) string {
	out, err := x.exec(args...)
	require.NoError(x.tb, err, args)
	return out
}

func TestMethods(t *testing.T) {
	out := newTestCLI(t).run("methods")
	lines := strings.Split(strings.TrimSpace(out), "\n")

	require.Contains(t, lines, "AssetTransfer:ReadAsset")
	require.Contains(t, lines, "AssetTransfer:UpdateAsset")
	require.Contains(t, lines, "ProductTransfer:UpdateAsset")
	require.Contains(t, lines, "ProductTransfer:UpdateTrackingInfo")
}

func TestInvoke(t *testing.T) {
	cli := newTestCLI(t)

	require.Empty(t, cli.run("submit", "InitLedger"))
	require.Equal(t, "true\n", cli.run("call", "AssetExists", "asset1"))
	require.Equal(t, "false\n", cli.run("call", "ProductTransfer:ProductExists", "product1"))

	require.Empty(t, cli.run("submit", "CreateAsset", "a9", "Desk", "[10001]", "Alice"))
	require.Equal(t, "Alice\n", cli.run("submit", "TransferAsset", "a9", "Bob", "221B Baker St"))
	require.Equal(t,
		`{"ID":"a9","ItemSold":true,"Object":"Desk","Owner":"Bob","Pincodes":[10001],"ShippingAddress":"221B Baker St"}`+"\n",
		cli.run("call", "ReadAsset", "a9"))

	// evaluated writes are not committed
	require.Empty(t, cli.run("call", "DeleteAsset", "a9"))
	require.Equal(t, "true\n", cli.run("call", "AssetExists", "a9"))

	_, err := cli.exec("submit", "CreateAsset", "a9", "Desk", "[10001]", "Alice")
	require.ErrorContains(t, err, "the asset a9 already exists")

	_, err = cli.exec("call", "Unknown:Method")
	require.ErrorContains(t, err, "unknown method")
}

func TestTypedCommands(t *testing.T) {
	cli := newTestCLI(t)

	require.Empty(t, cli.run("asset", "create", "a1", "Chair", "Alice", "--pincodes", "110001,110002"))
	require.Equal(t, "true\n", cli.run("asset", "available", "a1", "110002"))
	require.Equal(t, "false\n", cli.run("asset", "available", "a1", "999"))
	require.Equal(t, "Alice\n", cli.run("asset", "transfer", "a1", "Bob", "Main St 1"))
	require.Contains(t, cli.run("asset", "read", "a1"), `"Owner": "Bob"`)
	require.Equal(t, "[]\n", cli.run("asset", "list", "Chair"))

	require.Empty(t, cli.run("product", "create", "p1", "Laptop", "Carol"))
	require.Equal(t, "Carol\n", cli.run("product", "transfer-virtual", "p1", "Dave"))
	require.Empty(t, cli.run("product", "ship", "p1", "Dave's flat"))
	require.Empty(t, cli.run("product", "track", "p1", "TRK-1"))

	out := cli.run("product", "read", "p1")
	require.Contains(t, out, `"PhysicalOwner": "Carol"`)
	require.Contains(t, out, `"VirtualOwner": "Dave"`)
	require.Contains(t, out, `"TrackingInfo": "TRK-1"`)

	require.Contains(t, cli.run("product", "list", "Laptop"), `"ID": "p1"`)

	require.Empty(t, cli.run("asset", "delete", "a1"))
	require.Equal(t, "false\n", cli.run("asset", "exists", "a1"))
}

func TestSnapshot(t *testing.T) {
	cli := newTestCLI(t)
	dir := filepath.Join(t.TempDir(), "snapshots")

	cli.run("submit", "InitLedger")
	cli.run("submit", "ProductTransfer:InitLedger")

	hash := strings.TrimSpace(cli.run("statehash"))
	require.NotEmpty(t, hash)

	out := cli.run("dump", "--dir", dir, "--label", "test", "--epoch", "7")
	require.Equal(t, "test-7 "+hash+"\n", out)

	require.Equal(t, "test-7 12 "+hash+"\n", cli.run("dumps", "--dir", dir))

	other := newTestCLI(t)
	require.Equal(t, "12 "+hash+"\n", other.run("restore", "test-7", "--dir", dir))
	require.Equal(t, hash+"\n", other.run("statehash"))

	_, err := cli.exec("dump", "--dir", dir, "--label", "test", "--epoch", "7")
	require.Error(t, err)

	_, err = other.exec("restore", "test-8", "--dir", dir)
	require.Error(t, err)
}

func TestInMemoryWarning(t *testing.T) {
	exec := func(args ...string) string {
		var out, logs bytes.Buffer

		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&logs)
		cmd.SetArgs(args)

		require.NoError(t, cmd.Execute(), args)

		return logs.String()
	}

	require.Contains(t, exec("submit", "CreateAsset", "a1", "Desk", "[1]", "Alice"), "changes are lost on exit")
	require.Contains(t, exec("product", "init"), "changes are lost on exit")
	require.NotContains(t, exec("call", "AssetExists", "a1"), "changes are lost on exit")
	require.NotContains(t, exec("asset", "exists", "a1"), "changes are lost on exit")

	cli := newTestCLI(t)
	_, err := cli.exec("asset", "init")
	require.NoError(t, err)

	var logs bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(&logs)
	cmd.SetArgs([]string{"--config", cli.cfgPath, "asset", "delete", "asset1"})
	require.NoError(t, cmd.Execute())
	require.NotContains(t, logs.String(), "changes are lost on exit")
}
