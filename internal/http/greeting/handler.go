// Package greeting serves the root endpoint, which names the running
// application.
package greeting

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/janisto/appname-greeter/internal/config"
	applog "github.com/janisto/appname-greeter/internal/platform/logging"
)

// MissingName stands in for the application name when APP_NAME is unset.
const MissingName = "None"

// Message renders the greeting for name. A nil name renders MissingName; an
// empty name is rendered as is.
func Message(name *string) string {
	value := MissingName
	if name != nil {
		value = *name
	}
	return fmt.Sprintf("This is %s.", value)
}

type handler struct {
	message string
	named   bool
}

// Register wires the greeting route into the provided API router. The message
// is fixed for the lifetime of the process, since cfg is immutable.
func Register(api huma.API, cfg config.Config) {
	h := &handler{
		message: Message(cfg.AppName),
		named:   cfg.AppName != nil,
	}

	huma.Register(api, huma.Operation{
		OperationID: "get-greeting",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Greet with the application name",
		Description: "Returns a message naming the application, taken from the APP_NAME environment variable.",
		Tags:        []string{"Greeting"},
	}, h.get)
}

func (h *handler) get(ctx context.Context, _ *struct{}) (*Output, error) {
	applog.LogInfo(ctx, "greeting get", zap.String("path", "/"), zap.Bool("appNameSet", h.named))
	return &Output{Body: Data{Message: h.message}}, nil
}
