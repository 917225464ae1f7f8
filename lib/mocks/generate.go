package mocks

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o=dwh.warehouse.mock.go ../dwh Warehouse
//counterfeiter:generate -o=dwh.uploader.mock.go ../dwh Uploader

//counterfeiter:generate -o=metrics.client.mock.go ../telemetry/metrics/base Client
