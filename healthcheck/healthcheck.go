package healthcheck

import (
	"encoding/json"
	"net/http"
)

// Self reports liveness.
func Self(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
