package httpx

import "net/http"

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Required for login and password forms so browsers never replay them
// from cache.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// InternalError writes a generic 500 response. Handlers use this for
// unexpected failures (decode errors, storage errors); the detail goes to
// the log, never to the client.
func InternalError(w http.ResponseWriter) {
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
