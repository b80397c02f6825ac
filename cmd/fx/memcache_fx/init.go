package memcache_fx

import (
	"go.uber.org/fx"

	mem "alpinepulse/pkg/memcache"
)

var Module = fx.Provide(provideBlobStore)

func provideBlobStore() mem.BlobStore {
	return mem.NewSessionBlobs()
}
