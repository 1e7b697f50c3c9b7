package main

import (
	"log"
	"os"

	"github.com/edlane/campusdir/core"
	"github.com/edlane/campusdir/core/account"
	"github.com/edlane/campusdir/storage/database"
	dbrepos "github.com/edlane/campusdir/storage/database/sqlboiler"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up DB
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(db.Ping())

	// start CLI
	cli := commandLine{
		db:      db,
		acctSvc: account.NewService(dbrepos.NewAccountRepository(db)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
