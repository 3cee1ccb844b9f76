package executor

const (
	ApproveGasLimit = approveGasLimit
	SwapGasLimit    = swapGasLimit
)
