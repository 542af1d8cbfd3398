// Package mocks provides gomock implementations of the ports used by the service and http layers.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockInventoryAPI(ctrl)
//	api.EXPECT().ListAlerts(gomock.Any(), "tok").Return(alerts, nil)
package mocks

// InventoryAPI: ListSupplies, CreateSupply, UpdateSupply, RecordUsage, ListAlerts, ResolveAlert,
// ListRecommendations, ListSavings, UsageHistory, SavingsHistory, ExportReport
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=inventory_api_mock.go github.com/sustainastock/sustainastock-ui/internal/ports InventoryAPI

// AuthAPI: Login, Register
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=auth_api_mock.go github.com/sustainastock/sustainastock-ui/internal/ports AuthAPI

// SessionDeriver: Derive
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_deriver_mock.go github.com/sustainastock/sustainastock-ui/internal/ports SessionDeriver

// FlashStore: Put, Take
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=flash_store_mock.go github.com/sustainastock/sustainastock-ui/internal/ports FlashStore
