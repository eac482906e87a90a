// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package assetreg

import (
	"github.com/thuyaaung/ccdispatch/dispatch"
	"github.com/thuyaaung/ccdispatch/migration"
	"github.com/thuyaaung/ccdispatch/param"
)

// migration units run in lexicographic order of their names
func registerMigrations(reg *migration.Registry) {
	reg.Register(MigrationPath, "001_schema_version", migrateSchemaVersion)
	reg.Register(MigrationPath, "002_owner_index", migrateOwnerIndex)
}

func migrateSchemaVersion(tc *dispatch.TxContext, helper dispatch.Helper,
	args []param.Value) (interface{}, error) {

	lh := helper.(*LedgerHelper)
	if err := lh.PutJSON(keySchemaVersion, 1); err != nil {
		return nil, err
	}
	return map[string]int{"schemaVersion": 1}, nil
}

func migrateOwnerIndex(tc *dispatch.TxContext, helper dispatch.Helper,
	args []param.Value) (interface{}, error) {

	lh := helper.(*LedgerHelper)
	// reserves the owner index collection
	if err := lh.PutJSON(ownerKeyPrefix+"enabled", true); err != nil {
		return nil, err
	}
	if err := lh.PutJSON(keySchemaVersion, 2); err != nil {
		return nil, err
	}
	return map[string]int{"schemaVersion": 2}, nil
}
