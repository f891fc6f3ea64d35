package middlewares

import (
	"encoding/json"
	"fmt"
	"net/http"

	"crypto-sweep/utility"
	"crypto-sweep/utility/errorcode"
	"crypto-sweep/utility/logger"
	apiResponse "crypto-sweep/utility/response"

	"github.com/getsentry/sentry-go"
)

var response = apiResponse.New()

// Middleware ... Middleware struct
type Middleware struct {
	logger *logger.Logger
	next   http.Handler
}

// NewMiddleware ... Creates a middleware instance
func NewMiddleware(appLogger *logger.Logger, handler http.Handler) *Middleware {
	return &Middleware{appLogger, handler}
}

// Build ... Build midlleware functions
func (m *Middleware) Build() http.Handler {
	return m.next
}

// LogAPIRequests ... Logs every incoming request
func (m *Middleware) LogAPIRequests() *Middleware {
	nextHandler := http.HandlerFunc(func(responseWriter http.ResponseWriter, requestReader *http.Request) {
		m.logger.Info(fmt.Sprintf("Incoming request from : %s with IP : %s to : %s", requestReader.UserAgent(), utility.GetIPAdress(requestReader), requestReader.URL.Path))
		m.next.ServeHTTP(responseWriter, requestReader)
	})

	return &Middleware{m.logger, nextHandler}
}

// Recover ... Converts handler panics to a 500 response and reports them
func (m *Middleware) Recover() *Middleware {
	nextHandler := http.HandlerFunc(func(responseWriter http.ResponseWriter, requestReader *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				m.logger.Error("Recovered from panic on %s : %+v", requestReader.URL.Path, recovered)
				sentry.CurrentHub().Recover(recovered)

				responseWriter.Header().Set("Content-Type", "application/json")
				responseWriter.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(responseWriter).Encode(response.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
			}
		}()
		m.next.ServeHTTP(responseWriter, requestReader)
	})

	return &Middleware{m.logger, nextHandler}
}
