package httptransport

import (
	"net/http"
	"time"

	"onboard/pkg/requestcontext"
)

// requestTime captures the current time at the start of the request and pins
// it on the context, so age validation and event timestamps within one
// pipeline run all observe the same "now".
func requestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
