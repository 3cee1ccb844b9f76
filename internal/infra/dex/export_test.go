package dex

const (
	ERC20ABIJSON   = erc20ABIJSON
	FactoryABIJSON = factoryABIJSON
	PoolABIJSON    = poolABIJSON
	QuoterABIJSON  = quoterABIJSON
)
