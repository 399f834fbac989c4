//go:generate mockgen -source=../catalog_gateway.go -destination=./mock_catalog_gateway.go -package=mocks
//go:generate mockgen -source=../order_gateway.go   -destination=./mock_order_gateway.go   -package=mocks
//go:generate mockgen -source=../logger.go          -destination=./mock_logger.go          -package=mocks

package mocks
