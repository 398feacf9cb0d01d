package modkit

import "clubhouse/internal/modkit/module"

// Module is what api.Mount composes. It lives in the module package so port
// lookups there do not import modkit
type Module = module.Module
