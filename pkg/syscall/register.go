package syscall

import (
	"github.com/nspcc-dev/neo-interop/pkg/registry"
	"github.com/nspcc-dev/neo-interop/pkg/session"
)

// RegisterAll populates r with every interop service spec §4.4–§4.6 names
// and the static gas price table in spec §6. Called once by whoever
// constructs a Session (composition root, not pkg/session itself — see
// pkg/session's package doc) before the first Invoke.
func RegisterAll(r *registry.Registry[*session.Session]) {
	reg := func(name string, h registry.Handler[*session.Session], price int64) {
		r.Register(name, h, price, true)
	}
	regVariable := func(name string, h registry.Handler[*session.Session]) {
		r.Register(name, h, 0, false)
	}

	reg("System.ExecutionEngine.GetScriptContainer", GetScriptContainer, 1)
	reg("System.ExecutionEngine.GetExecutingScriptHash", GetExecutingScriptHash, 1)
	reg("System.ExecutionEngine.GetCallingScriptHash", GetCallingScriptHash, 1)
	reg("System.ExecutionEngine.GetEntryScriptHash", GetEntryScriptHash, 1)

	reg("System.Runtime.Platform", Platform, 1)
	reg("System.Runtime.GetTrigger", GetTrigger, 1)
	reg("System.Runtime.CheckWitness", CheckWitness, 200)
	reg("System.Runtime.Notify", Notify, 1)
	reg("System.Runtime.Log", Log, 1)
	reg("System.Runtime.GetTime", GetTime, 1)
	reg("System.Runtime.Serialize", Serialize, 1)
	reg("System.Runtime.Deserialize", Deserialize, 1)

	reg("System.Blockchain.GetHeight", GetHeight, 1)
	reg("System.Blockchain.GetHeader", GetHeader, 100)
	reg("System.Blockchain.GetBlock", GetBlock, 200)
	reg("System.Blockchain.GetTransaction", GetTransaction, 200)
	reg("System.Blockchain.GetTransactionHeight", GetTransactionHeight, 100)
	reg("System.Blockchain.GetContract", GetContract, 100)

	reg("System.Header.GetIndex", HeaderGetIndex, 1)
	reg("System.Header.GetHash", HeaderGetHash, 1)
	reg("System.Header.GetPrevHash", HeaderGetPrevHash, 1)
	reg("System.Header.GetTimestamp", HeaderGetTimestamp, 1)

	reg("System.Block.GetTransactionCount", BlockGetTransactionCount, 1)
	reg("System.Block.GetTransactions", BlockGetTransactions, 1)
	reg("System.Block.GetTransaction", BlockGetTransaction, 1)

	reg("System.Transaction.GetHash", TransactionGetHash, 1)

	reg("System.Contract.Destroy", ContractDestroy, 1)
	reg("System.Contract.GetStorageContext", ContractGetStorageContext, 1)

	reg("System.Storage.GetContext", StorageGetContext, 1)
	reg("System.Storage.GetReadOnlyContext", StorageGetReadOnlyContext, 1)
	reg("System.Storage.Get", StorageGet, 100)
	regVariable("System.Storage.Put", StoragePut)
	regVariable("System.Storage.PutEx", StoragePutEx)
	reg("System.Storage.Delete", StorageDelete, 100)
	reg("System.StorageContext.AsReadOnly", StorageContextAsReadOnly, 1)
}
