package infra

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/grpc"

	"github.com/bez-dna/bzd-messages/internal/config"
	"github.com/bez-dna/bzd-messages/internal/pkg/logger"
)

// LoggerHTTP gives every request its own child logger, so AddFuncName never races between requests.
func LoggerHTTP(next http.Handler, log *logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := log.With("method", r.Method, "path", r.URL.Path)

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), config.KeyLogger, reqLogger)))
	})
}

func LoggerGRPC(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		reqLogger := log.With("grpc_method", info.FullMethod)

		resp, err := handler(context.WithValue(ctx, config.KeyLogger, reqLogger), req)
		if err != nil {
			reqLogger.Error(fmt.Sprintf("request failed: %v", err))
		}

		return resp, err
	}
}
