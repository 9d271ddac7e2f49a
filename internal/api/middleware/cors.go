package middleware

import (
	"github.com/go-chi/cors"
)

// ExposedHeaders are readable by the page's script on a cross-origin download.
var ExposedHeaders = []string{"Content-Length", "Content-Disposition", "X-Translation-Warning", "X-Translation-Id"}

func CORSHandler(allowedOrigins []string) cors.Options {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	// When wildcard is used, disable AllowCredentials to prevent CSRF
	allowCreds := true
	for _, o := range allowedOrigins {
		if o == "*" {
			allowCreds = false
			break
		}
	}

	return cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   ExposedHeaders,
		AllowCredentials: allowCreds,
		MaxAge:           300,
	}
}
