package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/storage/dbconfig"
	"github.com/spf13/cobra"
	"github.com/tradeledger/asset-transfer/config"
	"github.com/tradeledger/asset-transfer/contracts"
	"github.com/tradeledger/asset-transfer/contracts/asset"
	"github.com/tradeledger/asset-transfer/internal/logs"
	"github.com/tradeledger/asset-transfer/ledger"
	"go.uber.org/zap"
)

// env is shared by all commands: world state opened according to the
// configuration and the registry of contracts.
type env struct {
	cfgPath string

	log      *zap.Logger
	registry *contracts.Registry
	world    *ledger.World
	inMemory bool
}

func newRootCmd() *cobra.Command {
	e := new(env)

	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Asset and product ledger tool",
		Long:          "Execute AssetTransfer and ProductTransfer contract operations against a local world state",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&e.cfgPath, "config", "c", "", "Path to YAML configuration file")

	root.AddCommand(
		newMethodsCmd(e),
		newInvokeCmd(e, "call", "Evaluate operation without committing its writes", false),
		newInvokeCmd(e, "submit", "Execute operation and commit its writes", true),
		newStateHashCmd(e),
		newDumpCmd(e),
		newRestoreCmd(e),
		newDumpsCmd(),
		newAssetCmd(e),
		newProductCmd(e),
	)

	return root
}

// open initializes env for commands accessing the world state. The returned
// function releases it.
func (x *env) open(cmd *cobra.Command) (func(), error) {
	cfg, err := config.Load(x.cfgPath)
	if err != nil {
		return nil, err
	}

	x.log, err = logs.New(cfg.Logger, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	x.registry, err = newRegistry(cfg)
	if err != nil {
		return nil, err
	}

	st, err := storage.NewStore(cfg.Ledger)
	if err != nil {
		return nil, fmt.Errorf("open world state: %w", err)
	}

	x.log.Debug("world state opened", zap.String("type", cfg.Ledger.Type))

	x.world = ledger.NewWorld(st, x.registry, x.log)
	x.inMemory = cfg.Ledger.Type == dbconfig.InMemoryDB

	return func() {
		if err := x.world.Close(); err != nil {
			x.log.Error("failed to close world state", zap.Error(err))
		}
		_ = x.log.Sync()
	}, nil
}

func newRegistry(cfg config.Config) (*contracts.Registry, error) {
	def := cfg.DefaultContract
	if def == "" {
		def = asset.ContractName
	}

	r, err := contracts.NewRegistry(def, contracts.All()...)
	if err != nil {
		return nil, fmt.Errorf("init contract registry: %w", err)
	}

	return r, nil
}

// withWorld wraps f into cobra handler executed over opened env.
func withWorld(e *env, f func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		done, err := e.open(cmd)
		if err != nil {
			return err
		}
		defer done()

		return f(cmd, args)
	}
}

// withCommit is withWorld for commands changing the world state.
func withCommit(e *env, f func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return withWorld(e, func(cmd *cobra.Command, args []string) error {
		if e.inMemory {
			e.log.Warn("world state is in-memory, changes are lost on exit",
				zap.String("command", cmd.CommandPath()))
		}
		return f(cmd, args)
	})
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
