//go:build cgo && !purego

package mmh3

func defaultBackendName() string { return BackendCFFI }
