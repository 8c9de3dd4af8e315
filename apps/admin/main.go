package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/staffroom/core"
	"github.com/trezcool/staffroom/core/school"
	emailsvc "github.com/trezcool/staffroom/services/email"
	logsvc "github.com/trezcool/staffroom/services/logger"
	timetablesvc "github.com/trezcool/staffroom/services/timetable"
	inmemdb "github.com/trezcool/staffroom/storage/database/inmem"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	school.InitValidators(validate, translator)

	parser, err := timetablesvc.NewGeminiParser(context.Background(), conf, validate, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up timetable parser: %v", err), err)
	}
	repo := inmemdb.NewStateRepository(inmemdb.Open(school.SeedState()))

	// start CLI
	cli := commandLine{
		svc:    school.NewService(repo, parser, emailsvc.NewConsoleService(conf, logger), logger),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
