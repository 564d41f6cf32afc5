package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -generate types,chi-server -package api -o ../internal/generated/api.gen.go openapi.yaml
