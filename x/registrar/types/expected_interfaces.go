package types

import "github.com/bcp-innovations/hyperlane-cosmos/util"

// AppRouter is the hyperlane application router the registrar installs
// itself in. *util.Router[util.HyperlaneApp] satisfies it.
type AppRouter interface {
	RegisterModule(moduleType uint8, module util.HyperlaneApp)
	GetModuleIds() []uint32
}
