// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package assetreg

import (
	"errors"
	"fmt"

	"github.com/thuyaaung/ccdispatch/dispatch"
	"github.com/thuyaaung/ccdispatch/logger"
	"github.com/thuyaaung/ccdispatch/migration"
	"github.com/thuyaaung/ccdispatch/param"
)

// MigrationPath groups this handler's migration units
const MigrationPath = "assetreg"

const (
	keySchemaVersion = "schema-version"
	assetKeyPrefix   = "asset:"
	ownerKeyPrefix   = "owner:"
)

// Asset is the ledger record managed by this handler
type Asset struct {
	ID    string                 `json:"id"`
	Owner string                 `json:"owner"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// New builds the asset registry handler with its operations and
// migration units registered
func New(reg *migration.Registry, lg logger.Logger) *dispatch.Handler {
	registerMigrations(reg)
	runner := migration.NewRunner(MigrationPath, reg)

	h := dispatch.New(dispatch.Config{
		Name:          "assetreg",
		HelperFactory: NewLedgerHelper,
		Logger:        lg,
	})
	h.Register("createAsset", createAsset)
	h.Register("getAsset", getAsset)
	h.Register("transferAsset", transferAsset)
	h.Register("schemaVersion", schemaVersion)
	h.Register("runMigrations", runner.Operation())
	return h
}

func createAsset(tc *dispatch.TxContext, helper dispatch.Helper,
	args []param.Value) (interface{}, error) {

	if len(args) < 2 {
		return nil, errors.New("createAsset requires id and owner")
	}
	lh := helper.(*LedgerHelper)
	asset := Asset{
		ID:    args[0].String(),
		Owner: args[1].String(),
	}
	if len(args) > 2 {
		asset.Props = args[2].Object()
	}

	var existing Asset
	found, err := lh.GetJSON(assetKeyPrefix+asset.ID, &existing)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, fmt.Errorf("asset %s already exists", asset.ID)
	}
	if err := lh.PutJSON(assetKeyPrefix+asset.ID, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func getAsset(tc *dispatch.TxContext, helper dispatch.Helper,
	args []param.Value) (interface{}, error) {

	if len(args) < 1 {
		return nil, errors.New("getAsset requires id")
	}
	lh := helper.(*LedgerHelper)
	id := args[0].String()

	var asset Asset
	found, err := lh.GetJSON(assetKeyPrefix+id, &asset)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("asset %s not found", id)
	}
	return asset, nil
}

func transferAsset(tc *dispatch.TxContext, helper dispatch.Helper,
	args []param.Value) (interface{}, error) {

	if len(args) < 2 {
		return nil, errors.New("transferAsset requires id and new owner")
	}
	lh := helper.(*LedgerHelper)
	id := args[0].String()

	var asset Asset
	found, err := lh.GetJSON(assetKeyPrefix+id, &asset)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("asset %s not found", id)
	}
	asset.Owner = args[1].String()
	if err := lh.PutJSON(assetKeyPrefix+id, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func schemaVersion(tc *dispatch.TxContext, helper dispatch.Helper,
	args []param.Value) (interface{}, error) {

	lh := helper.(*LedgerHelper)
	var version int
	if _, err := lh.GetJSON(keySchemaVersion, &version); err != nil {
		return nil, err
	}
	return version, nil
}
