package constants

type ContextKey string

const (
	PoolKey    ContextKey = "pool"
	TxKey      ContextKey = "tx"
	AccessKey  ContextKey = "access"
	AccountKey ContextKey = "account"
	LoggerKey  ContextKey = "logger"
)
