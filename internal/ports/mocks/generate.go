//go:generate mockgen -source=../reservation_cache.go  -destination=./mock_reservation_cache.go  -package=mocks
//go:generate mockgen -source=../reservation_source.go -destination=./mock_reservation_source.go -package=mocks
//go:generate mockgen -source=../room_catalog.go       -destination=./mock_room_catalog.go       -package=mocks
//go:generate mockgen -source=../device_repository.go  -destination=./mock_device_repository.go  -package=mocks
//go:generate mockgen -source=../housekeeping.go       -destination=./mock_housekeeping.go       -package=mocks
//go:generate mockgen -source=../provisioner.go        -destination=./mock_provisioner.go        -package=mocks
//go:generate mockgen -source=../fallback.go           -destination=./mock_fallback.go           -package=mocks
//go:generate mockgen -source=../guest_validator.go    -destination=./mock_guest_validator.go    -package=mocks
//go:generate mockgen -source=../access_manager.go     -destination=./mock_access_manager.go     -package=mocks
//go:generate mockgen -source=../admin_service.go      -destination=./mock_admin_service.go      -package=mocks

package mocks
