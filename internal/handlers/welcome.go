package handlers

import (
	_ "embed"
	"net/http"
)

//go:embed static/welcome.html
var welcomePage []byte

func serveWelcome(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(welcomePage)
}
