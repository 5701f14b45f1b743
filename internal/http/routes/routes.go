// Package routes wires every HTTP operation into the API.
package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/appname-greeter/internal/config"
	"github.com/janisto/appname-greeter/internal/http/greeting"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, cfg config.Config) {
	greeting.Register(api, cfg)
}
