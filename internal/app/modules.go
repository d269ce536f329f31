package app

import (
	"github.com/vk/delegatego/internal/registry"
	"github.com/vk/delegatego/modules/floatops"
	"github.com/vk/delegatego/modules/mathops"
	"github.com/vk/delegatego/modules/textops"
)

// coreModules is the definitive list of all modules that are compiled into
// the delegatego binary.
var coreModules = []registry.Module{
	&mathops.Module{},
	&floatops.Module{},
	&textops.Module{},
}
