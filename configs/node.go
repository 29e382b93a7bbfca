package configs

import "time"

type Node struct {
	Binary         string        `env:"NAMADA_CLIENT_BINARY" envDefault:"namadac"`
	RPCURL         string        `env:"NAMADA_NODE_RPC_URL" envDefault:"http://127.0.0.1:26657"`
	CommandTimeout time.Duration `env:"NAMADA_COMMAND_TIMEOUT" envDefault:"30s"`
}
