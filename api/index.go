package handler

import (
	"net/http"
	"sync"

	"timevault/config"
	"timevault/di"
	"timevault/shared/logger"
	httpTransport "timevault/transport/http"
	"timevault/transport/http/response"
)

var (
	once    sync.Once
	service *httpTransport.HTTP
	initErr error
)

// Handler is the serverless entry point. The service graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		service, initErr = di.InitializeService()
	})

	if initErr != nil {
		logger.ErrorWithStack(initErr)
		response.WithError(w, initErr)

		return
	}

	service.ServeHTTP(w, r)
}
