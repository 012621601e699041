package configs

import (
	"github.com/reusee/dscope"

	"github.com/reusee/moo/cmds"
)

var configPaths = cmds.Collect[string]("-config")

// engine and driver options accepted from config files
const mooSchema = `
moo?: {
	window?:   int & >0
	maxSteps?: int & >=0
}
`

type Module struct {
	dscope.Module
}

func (Module) Loader() Loader {
	return NewLoader(*configPaths, mooSchema)
}
