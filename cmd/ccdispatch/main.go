// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package main

import (
	"log"
	"path"

	"github.com/dgraph-io/badger/v3"
	"github.com/spf13/cobra"
	"github.com/thuyaaung/ccdispatch/chaincodes/assetreg"
	"github.com/thuyaaung/ccdispatch/logger"
	"github.com/thuyaaung/ccdispatch/migration"
	"github.com/thuyaaung/ccdispatch/server"
	"github.com/thuyaaung/ccdispatch/storage"
)

const (
	flagDebug   = "debug"
	flagDataDir = "datadir"
	flagPort    = "port"
)

var rootCmd = &cobra.Command{
	Use:   "ccdispatch",
	Short: "Chaincode dispatch server",
	Run: func(cmd *cobra.Command, args []string) {
		debug, err := cmd.Flags().GetBool(flagDebug)
		check(err)
		datadir, err := cmd.Flags().GetString(flagDataDir)
		check(err)
		port, err := cmd.Flags().GetInt(flagPort)
		check(err)

		logger.Set(logger.NewWithConfig(logger.Config{Debug: debug}))

		db, err := badger.Open(badger.DefaultOptions(path.Join(datadir, "db")).
			WithLogger(nil))
		if err != nil {
			logger.I().Fatalw("open database failed", "error", err)
		}
		defer db.Close()

		strg := storage.New(db)
		handler := assetreg.New(migration.NewRegistry(strg), logger.I())
		srv := server.New(handler, strg, server.Config{APIPort: port})
		if err := srv.Serve(); err != nil {
			logger.I().Fatalw("server stopped", "error", err)
		}
	},
}

func main() {
	check(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().Bool(flagDebug, false, "debug mode")
	rootCmd.PersistentFlags().StringP(flagDataDir, "d", "", "handler data directory")
	rootCmd.MarkPersistentFlagRequired(flagDataDir)

	rootCmd.Flags().IntP(flagPort, "p", 9060, "api port")
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
