package chaincode

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/stretchr/testify/require"
	"github.com/tradeledger/asset-transfer/contracts"
)

type testPeer struct {
	stub *shimtest.MockStub
	seq  int
}

func newTestPeer() *testPeer {
	return &testPeer{stub: shimtest.NewMockStub("assets", New(contracts.Default(), nil))}
}

func (x *testPeer) invoke(tb testing.TB, fn string, args ...string) (string, bool) {
	bs := make([][]byte, 0, len(args)+1)
	bs = append(bs, []byte(fn))
	for i := range args {
		bs = append(bs, []byte(args[i]))
	}

	x.seq++
	resp := x.stub.MockInvoke("tx"+strconv.Itoa(x.seq), bs)
	if resp.Status != shim.OK {
		return resp.Message, false
	}

	return string(resp.Payload), true
}

func TestChaincode(t *testing.T) {
	p := newTestPeer()

	resp := p.stub.MockInit("init", nil)
	require.EqualValues(t, shim.OK, resp.Status)

	_, ok := p.invoke(t, "InitLedger")
	require.True(t, ok)
	_, ok = p.invoke(t, "ProductTransfer:InitLedger")
	require.True(t, ok)

	_, ok = p.invoke(t, "CreateAsset", "a9", "Desk", "[10001]", "Alice")
	require.True(t, ok)

	res, ok := p.invoke(t, "AssetExists", "a9")
	require.True(t, ok)
	require.Equal(t, "true", res)

	res, ok = p.invoke(t, "TransferAsset", "a9", "Bob", "221B Baker St")
	require.True(t, ok)
	require.Equal(t, "Alice", res)

	res, ok = p.invoke(t, "AssetTransfer:ReadAsset", "a9")
	require.True(t, ok)
	require.Equal(t,
		`{"ID":"a9","ItemSold":true,"Object":"Desk","Owner":"Bob","Pincodes":[10001],"ShippingAddress":"221B Baker St"}`,
		res)

	res, ok = p.invoke(t, "CreateAsset", "a9", "Desk", "[10001]", "Alice")
	require.False(t, ok)
	require.Equal(t, "the asset a9 already exists", res)

	res, ok = p.invoke(t, "GetAllAssetsByObject", "Laptop")
	require.True(t, ok)

	var laptops []struct{ ID string }
	require.NoError(t, json.Unmarshal([]byte(res), &laptops))
	require.Equal(t, []struct{ ID string }{{"asset4"}, {"asset5"}}, laptops)

	res, ok = p.invoke(t, "GetAllAssets")
	require.True(t, ok)

	var all []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(res), &all))
	require.Len(t, all, 13)

	var raw string
	require.NoError(t, json.Unmarshal(all[len(all)-1], &raw), "products are not assets")
	require.Contains(t, raw, `"ID":"product6"`)

	res, ok = p.invoke(t, "ProductTransfer:TransferVirtualProduct", "product2", "Alice")
	require.True(t, ok)
	require.Equal(t, "Brad", res)

	res, ok = p.invoke(t, "ProductTransfer:GetAllProductsByObjectType", "Monopoly")
	require.True(t, ok)
	require.Contains(t, res, `"ID":"product5"`)
	require.Contains(t, res, `"ID":"product6"`)

	_, ok = p.invoke(t, "DeleteAsset", "a9")
	require.True(t, ok)

	res, ok = p.invoke(t, "ReadAsset", "a9")
	require.False(t, ok)
	require.Equal(t, "the asset a9 does not exist", res)

	res, ok = p.invoke(t, "Unknown")
	require.False(t, ok)
	require.Contains(t, res, "unknown method")
}
