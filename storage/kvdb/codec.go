package kvdb

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

// Get decodes the JSON value stored under `key`. A missing key or an unreadable value yields `def`;
// neither is an error for the caller.
func Get[T any](kv core.KVStore, logger core.Logger, key string, def T) T {
	b, err := kv.Get(key)
	if err != nil {
		if errors.Cause(err) == core.ErrKeyNotFound {
			logger.Debug(fmt.Sprintf("kvdb: %s not stored yet", key))
		} else {
			logger.Warn(fmt.Sprintf("kvdb: reading %s: %v", key, err), err)
		}
		return def
	}

	var v T
	if err = json.Unmarshal(b, &v); err != nil {
		logger.Warn(fmt.Sprintf("kvdb: parsing %s: %v", key, err), err)
		return def
	}
	return v
}

// Set stores `v` as JSON under `key`. Failures are logged only; it reports whether the write succeeded.
func Set(kv core.KVStore, logger core.Logger, key string, v interface{}) bool {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Error(fmt.Sprintf("kvdb: encoding %s: %v", key, err), err)
		return false
	}
	if err = kv.Set(key, b); err != nil {
		logger.Error(fmt.Sprintf("kvdb: writing %s: %v", key, err), err)
		return false
	}
	return true
}
