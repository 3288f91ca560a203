/*
Package contracts registers the contracts of the repository and resolves their
operations by transaction function name.

Operations are addressed as "Contract:Method", e.g.
"ProductTransfer:UpdateAsset". A name without the contract part refers to
the default contract of the Registry.
*/
package contracts

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tradeledger/asset-transfer/contracts/asset"
	"github.com/tradeledger/asset-transfer/contracts/product"
	"github.com/tradeledger/asset-transfer/ledger"
)

// Separator separates contract name and method name in the transaction
// function name.
const Separator = ":"

// ErrUnknownMethod is returned by Registry.Lookup for names not registered.
var ErrUnknownMethod = errors.New("unknown method")

// Contract groups operations of a single contract.
type Contract struct {
	Name    string
	Methods []ledger.Method
}

// All returns all contracts of the repository in registration order.
func All() []Contract {
	return []Contract{
		{Name: asset.ContractName, Methods: asset.Methods()},
		{Name: product.ContractName, Methods: product.Methods()},
	}
}

// Registry maps transaction function names to contract operations.
//
// Registry must be constructed using NewRegistry.
type Registry struct {
	defaultContract string
	contracts       map[string]map[string]ledger.Method
	order           []string
}

// NewRegistry returns Registry of the given contracts. Names without contract
// part are resolved against defaultContract, which must be one of them.
func NewRegistry(defaultContract string, cs ...Contract) (*Registry, error) {
	res := &Registry{
		defaultContract: defaultContract,
		contracts:       make(map[string]map[string]ledger.Method, len(cs)),
	}

	for i := range cs {
		name := cs[i].Name
		if name == "" || strings.Contains(name, Separator) {
			return nil, fmt.Errorf("invalid contract name %q", name)
		}

		if _, ok := res.contracts[name]; ok {
			return nil, fmt.Errorf("duplicated contract %s", name)
		}

		methods := make(map[string]ledger.Method, len(cs[i].Methods))

		for _, m := range cs[i].Methods {
			if m.Name == "" || m.Handler == nil {
				return nil, fmt.Errorf("contract %s: invalid method %q", name, m.Name)
			}

			if _, ok := methods[m.Name]; ok {
				return nil, fmt.Errorf("contract %s: duplicated method %s", name, m.Name)
			}

			methods[m.Name] = m
		}

		res.contracts[name] = methods
		res.order = append(res.order, name)
	}

	if _, ok := res.contracts[defaultContract]; !ok {
		return nil, fmt.Errorf("default contract %q is not registered", defaultContract)
	}

	return res, nil
}

// Default returns Registry of all contracts with AssetTransfer as the default
// one.
func Default() *Registry {
	r, err := NewRegistry(asset.ContractName, All()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup implements ledger.Dispatcher.
func (x *Registry) Lookup(name string) (ledger.Method, error) {
	contract, method, ok := strings.Cut(name, Separator)
	if !ok {
		contract, method = x.defaultContract, name
	}

	methods, ok := x.contracts[contract]
	if !ok {
		return ledger.Method{}, fmt.Errorf("%w %s: no contract %q", ErrUnknownMethod, name, contract)
	}

	m, ok := methods[method]
	if !ok {
		return ledger.Method{}, fmt.Errorf("%w %s", ErrUnknownMethod, name)
	}

	return m, nil
}

// Contracts returns names of the registered contracts in registration order.
func (x *Registry) Contracts() []string {
	return append([]string(nil), x.order...)
}

// Methods returns sorted full names of the given contract's operations.
func (x *Registry) Methods(contract string) []string {
	methods := x.contracts[contract]

	res := make([]string, 0, len(methods))
	for name := range methods {
		res = append(res, contract+Separator+name)
	}

	sort.Strings(res)

	return res
}
