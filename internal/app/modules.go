package app

import (
	"github.com/lumenlearn/pagecraft/internal/module"
	"github.com/lumenlearn/pagecraft/internal/modules/landingbuilder"
	"github.com/lumenlearn/pagecraft/internal/modules/media"
	"github.com/lumenlearn/pagecraft/internal/modules/previewstream"
	"github.com/lumenlearn/pagecraft/internal/modules/profilebuilder"
)

// Modules is the central list of application modules. The server iterates
// over it to register and boot each one; boot order follows list order.
func Modules() []module.Module {
	return []module.Module{
		landingbuilder.New(),
		profilebuilder.New(),
		media.New(),
		previewstream.New(),
	}
}

// MountPath returns the route prefix a module's group is mounted under.
func MountPath(name string) string {
	switch name {
	case "landingbuilder":
		return "/builder/landing"
	case "profilebuilder":
		return "/builder/profile"
	case "media":
		return "/builder/media"
	case "previewstream":
		return "/builder/preview"
	default:
		return "/" + name
	}
}
