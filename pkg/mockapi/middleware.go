package mockapi

import "net/http"

func (s *Server) apiKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("X-Api-Key")
		if key == "" {
			http.Error(w, "API key is required", http.StatusUnauthorized)
			return
		}
		if key != s.apiKey {
			s.logger.Warn("Rejected request with invalid API key", "path", r.URL.Path)
			http.Error(w, "Invalid or inactive API key", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
