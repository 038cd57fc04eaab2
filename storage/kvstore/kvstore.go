// Package kvstore selects the raw key-value backend configured by `store.engine`.
package kvstore

import (
	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/storage/kvstore/filestore"
	"github.com/umairnumplate/noor-ul-masajid/storage/kvstore/memstore"
	"github.com/umairnumplate/noor-ul-masajid/storage/kvstore/sqlstore"
)

const (
	EngineFile   = "file"
	EngineMemory = "memory"
)

func Open(conf *core.Config) (core.KVStore, error) {
	switch conf.Store.Engine {
	case "", sqlstore.EngineSQLite:
		sc := conf.Store
		sc.Engine = sqlstore.EngineSQLite
		return sqlstore.Open(sc, conf.DataDir)
	case sqlstore.EnginePostgres:
		return sqlstore.Open(conf.Store, conf.DataDir)
	case EngineFile:
		return filestore.Open(conf.DataDir)
	case EngineMemory:
		return memstore.New(), nil
	}
	return nil, errors.Errorf("unknown store engine %q", conf.Store.Engine)
}
