// Package greeting provides the greeting endpoint as an HTTP Cloud Function.
package greeting

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

// MissingName and message mirror internal/http/greeting, which this module
// cannot import; keep the two in sync.
const MissingName = "None"

func init() {
	name, ok := os.LookupEnv("APP_NAME")
	var appName *string
	if ok {
		appName = &name
	}
	functions.HTTP("Greeting", newHandler(appName))
}

// Response is the function response.
type Response struct {
	Message string `json:"message"`
}

func message(name *string) string {
	value := MissingName
	if name != nil {
		value = *name
	}
	return fmt.Sprintf("This is %s.", value)
}

func newHandler(appName *string) http.HandlerFunc {
	resp := Response{Message: message(appName)}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
